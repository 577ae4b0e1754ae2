package analysis

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// RatioKind classifies an expense-to-income ratio.
type RatioKind int

const (
	// Finite is an ordinary ratio.
	Finite RatioKind = iota
	// PosInf is a positive net expense over zero income.
	PosInf
	// NegInf is a negative net expense over zero income.
	NegInf
	// Undefined is zero net expense over zero income.
	Undefined
)

// Ratio is net expenses over income for one row. Zero income never yields a
// finite value: the kind records which non-finite result it would be.
type Ratio struct {
	Value decimal.Decimal // meaningful only when Kind == Finite
	Kind  RatioKind
}

// NewRatio divides net by income.
func NewRatio(net, income decimal.Decimal) Ratio {
	if income.IsZero() {
		switch net.Sign() {
		case 1:
			return Ratio{Kind: PosInf}
		case -1:
			return Ratio{Kind: NegInf}
		default:
			return Ratio{Kind: Undefined}
		}
	}
	return Ratio{Value: net.Div(income), Kind: Finite}
}

// IsFinite reports whether the ratio has a finite value.
func (r Ratio) IsFinite() bool {
	return r.Kind == Finite
}

// Float64 returns the ratio as a float, using ±Inf and NaN for zero income.
func (r Ratio) Float64() float64 {
	switch r.Kind {
	case PosInf:
		return math.Inf(1)
	case NegInf:
		return math.Inf(-1)
	case Undefined:
		return math.NaN()
	default:
		return r.Value.InexactFloat64()
	}
}

func (r Ratio) String() string {
	switch r.Kind {
	case PosInf:
		return "+Inf"
	case NegInf:
		return "-Inf"
	case Undefined:
		return "NaN"
	default:
		return r.Value.StringFixed(4)
	}
}

// DerivedRow is one row's derived fields.
type DerivedRow struct {
	Income      decimal.Decimal
	NetExpenses decimal.Decimal
	Ratio       Ratio
}

// Derived is a view over a table with net expenses and the
// expense-to-income ratio computed for every row.
type Derived struct {
	Table       *model.Table
	NetExpenses []decimal.Decimal
	Ratios      []Ratio
	incomes     []decimal.Decimal
}

// Derive computes net expenses and the expense-to-income ratio for every row.
// The table is not modified. Zero-income rows get a non-finite ratio instead
// of failing the batch.
func Derive(t *model.Table, cats model.CategorySet) (*Derived, error) {
	incomes, err := t.Numeric(cats.Income)
	if err != nil {
		return nil, fmt.Errorf("deriving columns: %w", err)
	}

	expenses := make([][]decimal.Decimal, len(cats.Expenses))
	for i, c := range cats.Expenses {
		expenses[i], err = t.Numeric(c)
		if err != nil {
			return nil, fmt.Errorf("deriving columns: %w", err)
		}
	}

	d := &Derived{
		Table:       t,
		NetExpenses: make([]decimal.Decimal, t.Rows()),
		Ratios:      make([]Ratio, t.Rows()),
		incomes:     incomes,
	}
	for row := 0; row < t.Rows(); row++ {
		net := decimal.Zero
		for _, col := range expenses {
			net = net.Add(col[row])
		}
		d.NetExpenses[row] = net
		d.Ratios[row] = NewRatio(net, incomes[row])
	}
	return d, nil
}

// Rows returns the number of rows.
func (d *Derived) Rows() int {
	return len(d.NetExpenses)
}

// Row returns the derived fields of row i.
func (d *Derived) Row(i int) DerivedRow {
	return DerivedRow{
		Income:      d.incomes[i],
		NetExpenses: d.NetExpenses[i],
		Ratio:       d.Ratios[i],
	}
}

// FiniteRatios returns the finite ratios as floats and how many rows were
// left out because their income was zero.
func (d *Derived) FiniteRatios() (values []float64, skipped int) {
	values = make([]float64, 0, len(d.Ratios))
	for _, r := range d.Ratios {
		if !r.IsFinite() {
			skipped++
			continue
		}
		values = append(values, r.Float64())
	}
	return values, skipped
}
