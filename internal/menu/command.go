package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one numbered menu entry.
type Command int

// Menu entries, numbered as shown to the user.
const (
	IncomeSummary        Command = iota + 1 // total and average income
	ExpenseSummary                          // per-category expense totals and averages
	SavingsSummary                          // per-category potential savings
	IncomeDistribution                      // income histogram chart
	CategoryDistribution                    // expense category bar chart
	SavingsPatterns                         // potential savings pie chart
	RatioDistribution                       // expense-to-income ratio histogram
	TopCategory                             // top spending category, listed and charted
	Exit                                    // leave the menu
)

var commandTitles = map[Command]string{
	IncomeSummary:        "Income Summary",
	ExpenseSummary:       "Expense Summary",
	SavingsSummary:       "Savings Summary",
	IncomeDistribution:   "Income Distribution Plot",
	CategoryDistribution: "Category Distribution Plot",
	SavingsPatterns:      "Savings Patterns Plot",
	RatioDistribution:    "Expense-to-Income Ratio Plot",
	TopCategory:          "Top Spending Category",
	Exit:                 "Exit",
}

// Commands returns every command in menu order.
func Commands() []Command {
	out := make([]Command, 0, int(Exit))
	for c := IncomeSummary; c <= Exit; c++ {
		out = append(out, c)
	}
	return out
}

func (c Command) String() string {
	if t, ok := commandTitles[c]; ok {
		return t
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand parses a menu choice such as "3".
func ParseCommand(s string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(IncomeSummary) || n > int(Exit) {
		return 0, fmt.Errorf("invalid choice %q", s)
	}
	return Command(n), nil
}
