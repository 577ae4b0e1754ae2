// Package report renders analysis results as plain text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fintrack-dev/fintrack/internal/analysis"
	"github.com/fintrack-dev/fintrack/internal/model"
)

var titleCaser = cases.Title(language.English)

// Styles controls how report sections are decorated.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Top     lipgloss.Style
}

// DefaultStyles returns the styles used by the CLI. Colours are dropped
// automatically when output is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle(),
		Top:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000")),
	}
}

// Writer renders results to an io.Writer.
type Writer struct {
	w      io.Writer
	styles Styles
}

// New creates a Writer with the default styles.
func New(w io.Writer) *Writer {
	return &Writer{w: w, styles: DefaultStyles()}
}

// Humanize turns a column name such as "Potential_Savings_Eating_Out" into
// "Potential Savings Eating Out".
func Humanize(column string) string {
	return titleCaser.String(strings.ReplaceAll(column, "_", " "))
}

// Money formats a value with two decimals.
func Money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// Income writes the income total and average.
func (r *Writer) Income(s analysis.Scalar) {
	fmt.Fprintf(r.w, "Total Income: %s, Average Income: %s\n", Money(s.Total), Money(s.Average))
}

// Breakdown writes per-category totals followed by per-category averages.
func (r *Writer) Breakdown(title string, b analysis.Breakdown) {
	fmt.Fprintln(r.w, r.styles.Heading.Render(title+":"))
	r.series(b.Totals)
	fmt.Fprintln(r.w, r.styles.Heading.Render("Average per Category:"))
	r.series(b.Averages)
}

// Top writes the top spending category.
func (r *Writer) Top(p model.Point) {
	fmt.Fprintf(r.w, "Top Spending Category: %s (%s)\n", Humanize(p.Label), Money(p.Value))
}

// Highlight writes every category total, marking the top category.
func (r *Writer) Highlight(h analysis.Highlight) {
	r.Top(h.Top)
	labels := make([]string, len(h.Categories))
	for i, c := range h.Categories {
		labels[i] = c.Label
	}
	width := labelWidth(labels)
	for _, c := range h.Categories {
		line := fmt.Sprintf("  %-*s %12s", width, Humanize(c.Label), Money(c.Value))
		if c.IsTop {
			fmt.Fprintln(r.w, r.styles.Top.Render("* "+line[2:]))
			continue
		}
		fmt.Fprintln(r.w, r.styles.Label.Render(line))
	}
}

// Ratios writes net expenses and the expense-to-income ratio for each row.
func (r *Writer) Ratios(d *analysis.Derived) {
	fmt.Fprintln(r.w, r.styles.Heading.Render(fmt.Sprintf("%5s %14s %14s %10s", "Row", "Income", "Net Expenses", "Ratio")))
	for i := 0; i < d.Rows(); i++ {
		row := d.Row(i)
		fmt.Fprintf(r.w, "%5d %14s %14s %10s\n", i+1, Money(row.Income), Money(row.NetExpenses), row.Ratio)
	}
}

func (r *Writer) series(s model.Series) {
	width := labelWidth(s.Labels())
	for _, p := range s {
		fmt.Fprintf(r.w, "  %-*s %12s\n", width, Humanize(p.Label), Money(p.Value))
	}
}

func labelWidth(labels []string) int {
	width := 0
	for _, l := range labels {
		if n := len(Humanize(l)); n > width {
			width = n
		}
	}
	return width
}
