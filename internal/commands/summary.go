package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/menu"
)

var summaryKinds = map[string]menu.Command{
	"income":   menu.IncomeSummary,
	"expenses": menu.ExpenseSummary,
	"savings":  menu.SavingsSummary,
}

var chartKinds = map[string]menu.Command{
	"income":     menu.IncomeDistribution,
	"categories": menu.CategoryDistribution,
	"savings":    menu.SavingsPatterns,
	"ratio":      menu.RatioDistribution,
	"top":        menu.TopCategory,
}

func newSummaryCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "summary income|expenses|savings",
		Short:     "Print totals and averages",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"income", "expenses", "savings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := summaryKinds[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown summary %q", args[0])
			}
			session, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return session.Execute(cmd.Context(), kind)
		},
	}
}

func newTopCommand(opts *globalOptions) *cobra.Command {
	var highlight bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the top spending category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return session.Top(cmd.Context(), highlight)
		},
	}

	cmd.Flags().BoolVar(&highlight, "highlight", false, "list every category with the top one marked")

	return cmd
}

func newRatiosCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ratios",
		Short: "Print net expenses and expense-to-income ratio per row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return session.Ratios(cmd.Context())
		},
	}
}

func newChartCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "chart income|categories|savings|ratio|top|all",
		Short:     "Write charts as PNG files",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"income", "categories", "savings", "ratio", "top", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			kind, ok := chartKinds[name]
			if !ok && name != "all" {
				return fmt.Errorf("unknown chart %q", args[0])
			}
			session, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			if name == "all" {
				_, err := session.SaveAllCharts(cmd.Context())
				return err
			}
			return session.Execute(cmd.Context(), kind)
		},
	}
}
