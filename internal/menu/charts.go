package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/fintrack-dev/fintrack/internal/analysis"
	"github.com/fintrack-dev/fintrack/internal/charts"
)

// ChartCommands lists the commands that produce a chart, in menu order.
var ChartCommands = []Command{
	IncomeDistribution,
	CategoryDistribution,
	SavingsPatterns,
	RatioDistribution,
	TopCategory,
}

var chartNames = map[Command]string{
	IncomeDistribution:   "income-distribution",
	CategoryDistribution: "category-distribution",
	SavingsPatterns:      "savings-distribution",
	RatioDistribution:    "expense-to-income-ratio",
	TopCategory:          "top-spending-category",
}

// saveChart returns a handler that renders the chart for cmd to the output
// directory.
func saveChart(cmd Command) handler {
	return func(s *Session, ctx context.Context) error {
		job, err := s.ChartJob(cmd)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := charts.WriteFile(s.outDir, job.Name, job.Render)
		if err != nil {
			return err
		}
		s.log.Info("chart written", "chart", job.Name, "path", path)
		fmt.Fprintf(s.out, "Saved %s to %s\n", cmd, path)
		return nil
	}
}

// SaveAllCharts renders every chart concurrently.
func (s *Session) SaveAllCharts(ctx context.Context) ([]string, error) {
	jobs := make([]charts.Job, 0, len(ChartCommands))
	for _, cmd := range ChartCommands {
		job, err := s.ChartJob(cmd)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	paths, err := charts.RenderAll(ctx, s.outDir, jobs)
	if err != nil {
		return nil, err
	}
	for i, p := range paths {
		fmt.Fprintf(s.out, "Saved %s to %s\n", ChartCommands[i], p)
	}
	return paths, nil
}

// ChartJob returns the chart job for a chart command. The analysis runs when
// the job renders.
func (s *Session) ChartJob(cmd Command) (charts.Job, error) {
	if s.renderer == nil {
		return charts.Job{}, fmt.Errorf("charts are not configured")
	}
	name, ok := chartNames[cmd]
	if !ok {
		return charts.Job{}, fmt.Errorf("%s has no chart", cmd)
	}

	var render func(io.Writer) error
	switch cmd {
	case IncomeDistribution:
		render = func(w io.Writer) error {
			incomes, err := s.table.Numeric(s.cats.Income)
			if err != nil {
				return err
			}
			values := make([]float64, len(incomes))
			for i, v := range incomes {
				values[i] = v.InexactFloat64()
			}
			return s.renderer.IncomeHistogram(w, values)
		}
	case CategoryDistribution:
		render = func(w io.Writer) error {
			totals, err := analysis.CategoryTotals(s.table, s.cats.Expenses)
			if err != nil {
				return err
			}
			return s.renderer.CategoryBar(w, totals)
		}
	case SavingsPatterns:
		render = func(w io.Writer) error {
			totals, err := analysis.CategoryTotals(s.table, s.cats.Savings)
			if err != nil {
				return err
			}
			return s.renderer.SavingsPie(w, totals)
		}
	case RatioDistribution:
		render = func(w io.Writer) error {
			d, err := analysis.Derive(s.table, s.cats)
			if err != nil {
				return err
			}
			ratios, skipped := d.FiniteRatios()
			if skipped > 0 {
				s.log.Warn("skipping rows with zero income", "rows", skipped)
			}
			return s.renderer.RatioHistogram(w, ratios)
		}
	case TopCategory:
		render = func(w io.Writer) error {
			h, err := analysis.HighlightTopCategory(s.table, s.cats.Expenses)
			if err != nil {
				return err
			}
			return s.renderer.TopCategoryBar(w, h)
		}
	}
	return charts.Job{Name: name, Render: render}, nil
}
