package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySetValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     CategorySet
		wantErr string
	}{
		{"valid", CategorySet{Income: "Income", Expenses: []string{"Rent"}, Savings: []string{"Potential_Savings_Rent"}}, ""},
		{"no categories", CategorySet{Income: "Income"}, ""},
		{"missing income", CategorySet{Expenses: []string{"Rent"}}, "income column"},
		{"duplicate expense", CategorySet{Income: "Income", Expenses: []string{"Rent", "Rent"}}, `"Rent" already listed as expense`},
		{"overlap", CategorySet{Income: "Income", Expenses: []string{"Rent"}, Savings: []string{"Rent"}}, `savings category "Rent"`},
		{"income as expense", CategorySet{Income: "Income", Expenses: []string{"Income"}}, "already listed as income"},
		{"blank name", CategorySet{Income: "Income", Savings: []string{""}}, "empty name"},
	}
	for _, tt := range tests {
		err := tt.set.Validate()
		if tt.wantErr == "" {
			require.NoError(t, err, tt.name)
			continue
		}
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), tt.wantErr, tt.name)
	}
}

func TestSeries(t *testing.T) {
	s := Series{{Label: "Rent", Value: d(1000)}, {Label: "Groceries", Value: d(500)}}

	assert.Equal(t, []string{"Rent", "Groceries"}, s.Labels())
	assert.Equal(t, []float64{1000, 500}, s.Floats())
	assert.True(t, s.Sum().Equal(d(1500)))

	v, ok := s.Get("Groceries")
	assert.True(t, ok)
	assert.True(t, v.Equal(d(500)))

	_, ok = s.Get("Transport")
	assert.False(t, ok)
}
