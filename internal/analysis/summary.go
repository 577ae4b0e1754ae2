package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Scalar is the total and mean of a single column.
type Scalar struct {
	Total   decimal.Decimal
	Average decimal.Decimal
}

// Breakdown holds per-category totals and averages in category order.
type Breakdown struct {
	Totals   model.Series
	Averages model.Series
}

// IncomeSummary sums and averages the income column.
func IncomeSummary(t *model.Table, cats model.CategorySet) (Scalar, error) {
	if t.Rows() == 0 {
		return Scalar{}, ErrEmptyDataset
	}
	values, err := t.Numeric(cats.Income)
	if err != nil {
		return Scalar{}, fmt.Errorf("income summary: %w", err)
	}
	total := sum(values)
	return Scalar{Total: total, Average: mean(total, t.Rows())}, nil
}

// ExpenseSummary returns per-category totals and averages over the expense
// categories.
func ExpenseSummary(t *model.Table, cats model.CategorySet) (Breakdown, error) {
	b, err := Summarize(t, cats.Expenses)
	if err != nil {
		return Breakdown{}, fmt.Errorf("expense summary: %w", err)
	}
	return b, nil
}

// SavingsSummary returns per-category totals and averages over the savings
// categories.
func SavingsSummary(t *model.Table, cats model.CategorySet) (Breakdown, error) {
	b, err := Summarize(t, cats.Savings)
	if err != nil {
		return Breakdown{}, fmt.Errorf("savings summary: %w", err)
	}
	return b, nil
}

// Summarize sums and averages each column across all rows.
func Summarize(t *model.Table, columns []string) (Breakdown, error) {
	if len(columns) == 0 {
		return Breakdown{}, ErrEmptyCategorySet
	}
	if t.Rows() == 0 {
		return Breakdown{}, ErrEmptyDataset
	}
	totals, err := CategoryTotals(t, columns)
	if err != nil {
		return Breakdown{}, err
	}

	averages := make(model.Series, len(totals))
	for i, p := range totals {
		averages[i] = model.Point{Label: p.Label, Value: mean(p.Value, t.Rows())}
	}
	return Breakdown{Totals: totals, Averages: averages}, nil
}

// CategoryTotals sums each column across all rows. A table with no rows
// yields zero totals.
func CategoryTotals(t *model.Table, columns []string) (model.Series, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyCategorySet
	}
	totals := make(model.Series, 0, len(columns))
	for _, c := range columns {
		values, err := t.Numeric(c)
		if err != nil {
			return nil, err
		}
		totals = append(totals, model.Point{Label: c, Value: sum(values)})
	}
	return totals, nil
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// mean expects rows > 0.
func mean(total decimal.Decimal, rows int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(rows)))
}
