package analysis

import (
	"fmt"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Ranked is a category total marked as the top category or not.
type Ranked struct {
	model.Point
	IsTop bool
}

// Highlight is the top category together with every category's total,
// in category order, for presentation.
type Highlight struct {
	Top        model.Point
	Categories []Ranked
}

// TopCategory returns the category with the largest total across all rows.
// Ties go to the category listed first.
func TopCategory(t *model.Table, columns []string) (model.Point, error) {
	totals, err := CategoryTotals(t, columns)
	if err != nil {
		return model.Point{}, fmt.Errorf("top category: %w", err)
	}
	return pickTop(totals), nil
}

// HighlightTopCategory selects the top category like TopCategory and marks
// each category with whether it is the top one.
func HighlightTopCategory(t *model.Table, columns []string) (Highlight, error) {
	totals, err := CategoryTotals(t, columns)
	if err != nil {
		return Highlight{}, fmt.Errorf("top category: %w", err)
	}
	top := pickTop(totals)

	ranked := make([]Ranked, len(totals))
	topMarked := false
	for i, p := range totals {
		// Only the first category with the top label and value is marked.
		isTop := !topMarked && p.Label == top.Label
		if isTop {
			topMarked = true
		}
		ranked[i] = Ranked{Point: p, IsTop: isTop}
	}
	return Highlight{Top: top, Categories: ranked}, nil
}

// pickTop expects a non-empty series. Strict comparison keeps the first
// of equal totals.
func pickTop(totals model.Series) model.Point {
	best := totals[0]
	for _, p := range totals[1:] {
		if p.Value.GreaterThan(best.Value) {
			best = p
		}
	}
	return best
}
