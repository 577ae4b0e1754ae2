// Package menu runs the numbered text menu over a loaded record table.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/fintrack-dev/fintrack/internal/analysis"
	"github.com/fintrack-dev/fintrack/internal/charts"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

const goodbye = "Exiting program... Goodbye!"

// Options configures a Session.
type Options struct {
	Table      *model.Table
	Categories model.CategorySet
	Renderer   *charts.Renderer
	OutputDir  string
	Out        io.Writer
	Logger     *log.Logger
}

// Session holds everything a command needs: the table, the categories and
// where to send output.
type Session struct {
	table    *model.Table
	cats     model.CategorySet
	renderer *charts.Renderer
	outDir   string
	out      io.Writer
	report   *report.Writer
	log      *log.Logger
}

// New creates a Session. A nil Logger discards log output.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		table:    opts.Table,
		cats:     opts.Categories,
		renderer: opts.Renderer,
		outDir:   opts.OutputDir,
		out:      opts.Out,
		report:   report.New(opts.Out),
		log:      logger,
	}
}

type handler func(*Session, context.Context) error

var handlers = map[Command]handler{
	IncomeSummary:        (*Session).incomeSummary,
	ExpenseSummary:       (*Session).expenseSummary,
	SavingsSummary:       (*Session).savingsSummary,
	IncomeDistribution:   saveChart(IncomeDistribution),
	CategoryDistribution: saveChart(CategoryDistribution),
	SavingsPatterns:      saveChart(SavingsPatterns),
	RatioDistribution:    saveChart(RatioDistribution),
	TopCategory:          (*Session).topCategory,
}

// Execute runs a single command.
func (s *Session) Execute(ctx context.Context, cmd Command) error {
	h, ok := handlers[cmd]
	if !ok {
		return fmt.Errorf("no handler for %s", cmd)
	}
	s.log.Debug("running command", "command", cmd.String())
	return h(s, ctx)
}

// Run prints the menu and executes choices read from in until Exit or end
// of input. Command failures are reported and the loop continues.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading choice: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, goodbye)
			return nil
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice! Please try again.")
			continue
		}
		if cmd == Exit {
			fmt.Fprintln(s.out, goodbye)
			return nil
		}
		if err := s.Execute(ctx, cmd); err != nil {
			s.log.Error("command failed", "command", cmd.String(), "err", err)
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "--Personal Finance Tracker Menu--")
	for _, c := range Commands() {
		fmt.Fprintf(s.out, "%d. %s\n", int(c), c)
	}
	fmt.Fprintf(s.out, "Enter your choice (%d-%d): ", int(IncomeSummary), int(Exit))
}

func (s *Session) incomeSummary(context.Context) error {
	sum, err := analysis.IncomeSummary(s.table, s.cats)
	if err != nil {
		return err
	}
	s.report.Income(sum)
	return nil
}

func (s *Session) expenseSummary(context.Context) error {
	b, err := analysis.ExpenseSummary(s.table, s.cats)
	if err != nil {
		return err
	}
	s.report.Breakdown("Expense Summary", b)
	return nil
}

func (s *Session) savingsSummary(context.Context) error {
	b, err := analysis.SavingsSummary(s.table, s.cats)
	if err != nil {
		return err
	}
	s.report.Breakdown("Savings Summary", b)
	return nil
}

func (s *Session) topCategory(ctx context.Context) error {
	if err := s.Top(ctx, true); err != nil {
		return err
	}
	return saveChart(TopCategory)(s, ctx)
}

// Top prints the top spending category. With highlight set, every expense
// category total is listed with the top one marked.
func (s *Session) Top(_ context.Context, highlight bool) error {
	if !highlight {
		p, err := analysis.TopCategory(s.table, s.cats.Expenses)
		if err != nil {
			return err
		}
		s.report.Top(p)
		return nil
	}
	h, err := analysis.HighlightTopCategory(s.table, s.cats.Expenses)
	if err != nil {
		return err
	}
	s.report.Highlight(h)
	return nil
}

// Ratios prints net expenses and the expense-to-income ratio for every row.
func (s *Session) Ratios(_ context.Context) error {
	d, err := analysis.Derive(s.table, s.cats)
	if err != nil {
		return err
	}
	if _, skipped := d.FiniteRatios(); skipped > 0 {
		s.log.Warn("rows with zero income have no finite ratio", "rows", skipped)
	}
	s.report.Ratios(d)
	return nil
}
