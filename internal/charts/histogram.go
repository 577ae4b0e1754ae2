package charts

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bucket covering [Min, Max). The last bin also
// includes Max.
type Bin struct {
	Min   float64
	Max   float64
	Count int
}

// Histogram splits values into equal-width bins between their minimum and
// maximum. Non-finite values are ignored. Constant input gives a single bin.
func Histogram(values []float64, bins int) []Bin {
	if bins <= 0 {
		return nil
	}
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return nil
	}
	sort.Float64s(finite)
	lo, hi := finite[0], finite[len(finite)-1]
	if lo == hi {
		return []Bin{{Min: lo, Max: hi, Count: len(finite)}}
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram bins are half-open, so widen the top divider to keep
	// the maximum in the last bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, finite, nil)

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Min: dividers[i], Max: dividers[i+1], Count: int(counts[i])}
	}
	out[bins-1].Max = hi
	return out
}
