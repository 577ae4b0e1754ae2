package model

import "github.com/shopspring/decimal"

// Point is a labelled value, e.g. one category total.
type Point struct {
	Label string
	Value decimal.Decimal
}

// Series is an ordered list of points.
type Series []Point

// Labels returns the point labels in order.
func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Label
	}
	return out
}

// Floats returns the point values as float64.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value.InexactFloat64()
	}
	return out
}

// Sum returns the sum of all values.
func (s Series) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s {
		total = total.Add(p.Value)
	}
	return total
}

// Get returns the value for label.
func (s Series) Get(label string) (decimal.Decimal, bool) {
	for _, p := range s {
		if p.Label == label {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}
