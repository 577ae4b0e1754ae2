// Package charts renders analysis results as PNG charts.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/fintrack-dev/fintrack/internal/analysis"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

// ErrNothingToPlot is returned when a chart would have no bars or slices.
var ErrNothingToPlot = errors.New("nothing to plot")

var (
	topColor   = chart.ColorRed
	otherColor = chart.ColorBlue
)

// Renderer draws charts at a fixed size.
type Renderer struct {
	Width  int
	Height int
	Bins   int
}

// NewRenderer creates a Renderer.
func NewRenderer(width, height, bins int) *Renderer {
	return &Renderer{Width: width, Height: height, Bins: bins}
}

// IncomeHistogram plots the distribution of income.
func (r *Renderer) IncomeHistogram(w io.Writer, incomes []float64) error {
	return r.histogram(w, "Income Distribution", incomes, "%.0f")
}

// RatioHistogram plots the distribution of expense-to-income ratios.
// Callers pass finite ratios only.
func (r *Renderer) RatioHistogram(w io.Writer, ratios []float64) error {
	return r.histogram(w, "Distribution of Expense-to-Income Ratio", ratios, "%.2f")
}

// CategoryBar plots total spending per category.
func (r *Renderer) CategoryBar(w io.Writer, totals model.Series) error {
	bars := make([]chart.Value, len(totals))
	for i, p := range totals {
		bars[i] = chart.Value{Label: report.Humanize(p.Label), Value: p.Value.InexactFloat64()}
	}
	return r.bar(w, "Category Distribution", bars)
}

// TopCategoryBar plots total spending per category with the top category
// drawn in red and the others in blue.
func (r *Renderer) TopCategoryBar(w io.Writer, h analysis.Highlight) error {
	title := fmt.Sprintf("Top Spending Category: %s ($%s)", report.Humanize(h.Top.Label), report.Money(h.Top.Value))
	return r.bar(w, title, highlightBars(h))
}

// SavingsPie plots the share of each potential-savings category. Categories
// with no positive total are left out.
func (r *Renderer) SavingsPie(w io.Writer, totals model.Series) error {
	var sum float64
	for _, v := range totals.Floats() {
		if v > 0 {
			sum += v
		}
	}
	if sum == 0 {
		return ErrNothingToPlot
	}

	values := make([]chart.Value, 0, len(totals))
	for _, p := range totals {
		v := p.Value.InexactFloat64()
		if v <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", report.Humanize(p.Label), v/sum*100),
			Value: v,
		})
	}

	pie := chart.PieChart{
		Title:      "Savings Distribution",
		Width:      r.Width,
		Height:     r.Height,
		Values:     values,
		Background: background(),
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render savings pie: %w", err)
	}
	return nil
}

func (r *Renderer) histogram(w io.Writer, title string, values []float64, labelFormat string) error {
	bins := Histogram(values, r.Bins)
	if len(bins) == 0 {
		return ErrNothingToPlot
	}
	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		bars[i] = chart.Value{
			Label: fmt.Sprintf(labelFormat, b.Min),
			Value: float64(b.Count),
			Style: chart.Style{FillColor: otherColor, StrokeColor: otherColor},
		}
	}
	return r.bar(w, title, bars)
}

func (r *Renderer) bar(w io.Writer, title string, bars []chart.Value) error {
	if len(bars) == 0 {
		return ErrNothingToPlot
	}

	lo, hi := 0.0, 0.0
	for _, b := range bars {
		lo = min(lo, b.Value)
		hi = max(hi, b.Value)
	}
	if lo == hi {
		hi = lo + 1
	}

	// Fit every bar into the canvas: each bar takes two thirds of its slot.
	slot := (r.Width - 100) / len(bars)
	barWidth := max(slot*2/3, 1)

	graph := chart.BarChart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   barWidth,
		BarSpacing: max(slot-barWidth, 1),
		Background: background(),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %q: %w", title, err)
	}
	return nil
}

func highlightBars(h analysis.Highlight) []chart.Value {
	bars := make([]chart.Value, len(h.Categories))
	for i, c := range h.Categories {
		color := otherColor
		if c.IsTop {
			color = topColor
		}
		bars[i] = chart.Value{
			Label: report.Humanize(c.Label),
			Value: c.Value.InexactFloat64(),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}
	return bars
}

func background() chart.Style {
	return chart.Style{
		Padding:   chart.Box{Top: 50, Left: 50, Right: 50, Bottom: 50},
		FillColor: chart.ColorWhite,
	}
}

// WriteFile renders into memory and writes <dir>/<name>.png. Nothing is
// written when rendering fails.
func WriteFile(dir, name string, render func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating chart dir: %w", err)
	}
	path := filepath.Join(dir, name+".png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing chart: %w", err)
	}
	return path, nil
}
