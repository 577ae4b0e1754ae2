package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func TestDerive(t *testing.T) {
	got, err := Derive(twoRowTable(t), twoRowCats)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())

	assertDec(t, "700", got.NetExpenses[0])
	assertDec(t, "800", got.NetExpenses[1])

	require.True(t, got.Ratios[0].IsFinite())
	require.True(t, got.Ratios[1].IsFinite())
	assertDec(t, "0.7", got.Ratios[0].Value)
	assertDec(t, "0.4", got.Ratios[1].Value)

	row := got.Row(1)
	assertDec(t, "2000", row.Income)
	assertDec(t, "800", row.NetExpenses)
}

func TestDerive_DoesNotModifyTable(t *testing.T) {
	tbl := twoRowTable(t)
	_, err := Derive(tbl, twoRowCats)
	require.NoError(t, err)
	assert.Equal(t, []string{"Income", "Rent", "Groceries"}, tbl.Columns())
}

func TestDerive_Idempotent(t *testing.T) {
	tbl := twoRowTable(t)

	first, err := Derive(tbl, twoRowCats)
	require.NoError(t, err)
	second, err := Derive(tbl, twoRowCats)
	require.NoError(t, err)

	require.Equal(t, first.Rows(), second.Rows())
	for i := 0; i < first.Rows(); i++ {
		assert.True(t, first.NetExpenses[i].Equal(second.NetExpenses[i]), "net row %d", i)
		assert.Equal(t, first.Ratios[i].Kind, second.Ratios[i].Kind, "ratio kind row %d", i)
		assert.True(t, first.Ratios[i].Value.Equal(second.Ratios[i].Value), "ratio row %d", i)
	}
}

func TestDerive_ZeroIncome(t *testing.T) {
	tbl, err := model.FromRecords([]string{"Income", "Rent"}, []map[string]decimal.Decimal{
		{"Income": d(0), "Rent": d(100)},
		{"Income": d(0), "Rent": d(0)},
		{"Income": d(500), "Rent": d(100)},
	})
	require.NoError(t, err)
	cats := model.CategorySet{Income: "Income", Expenses: []string{"Rent"}}

	got, err := Derive(tbl, cats)
	require.NoError(t, err, "zero income must not fail the batch")

	assert.Equal(t, PosInf, got.Ratios[0].Kind)
	assert.False(t, got.Ratios[0].IsFinite())
	assert.True(t, math.IsInf(got.Ratios[0].Float64(), 1))

	assert.Equal(t, Undefined, got.Ratios[1].Kind)
	assert.True(t, math.IsNaN(got.Ratios[1].Float64()))

	assertDec(t, "0.2", got.Ratios[2].Value)

	values, skipped := got.FiniteRatios()
	assert.Equal(t, 2, skipped)
	assert.Equal(t, []float64{0.2}, values)
}

func TestDerive_NoExpenseCategories(t *testing.T) {
	got, err := Derive(twoRowTable(t), model.CategorySet{Income: "Income"})
	require.NoError(t, err)
	for i := 0; i < got.Rows(); i++ {
		assert.True(t, got.NetExpenses[i].IsZero())
		assert.True(t, got.Ratios[i].Value.IsZero())
	}
}

func TestDerive_UnknownColumn(t *testing.T) {
	_, err := Derive(twoRowTable(t), model.CategorySet{Income: "Income", Expenses: []string{"Rent", "Fuel"}})
	var unknown *model.UnknownColumnError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Fuel", unknown.Column)
}
