package angle

import (
	"math"

	"github.com/abhisek/angler/internal/expr"
)

const (
	// balanceSamples is how many evenly spaced points the peak-magnitude
	// scan uses.
	balanceSamples = 100

	// balanceRatio is the largest peak-magnitude ratio tolerated before the
	// smaller function is scaled up.
	balanceRatio = 5
)

// Balance equalizes the two functions' peak magnitudes for plotting. When
// the larger peak exceeds the smaller by more than a factor of balanceRatio,
// the smaller function is multiplied by ceil(ratio/balanceRatio). Run on the
// raw generated pair, before normalization or solving.
func Balance(f1, f2 expr.Expr, iv Interval) (expr.Expr, expr.Expr) {
	m1 := peakMagnitude(f1, iv)
	m2 := peakMagnitude(f2, iv)
	if m1 <= 0 || m2 <= 0 {
		return f1, f2
	}

	ratio := math.Max(m1, m2) / math.Min(m1, m2)
	if ratio <= balanceRatio {
		return f1, f2
	}

	k := math.Ceil(ratio / balanceRatio)
	if m1 < m2 {
		return expr.Scale(f1, k), f2
	}
	return f1, expr.Scale(f2, k)
}

// peakMagnitude returns the largest finite |f(x)| over balanceSamples evenly
// spaced points, or 0 if no sample is finite.
func peakMagnitude(f expr.Expr, iv Interval) float64 {
	step := iv.Width() / float64(balanceSamples-1)
	peak := 0.0
	for i := 0; i < balanceSamples; i++ {
		v := math.Abs(f.Eval(iv.A + float64(i)*step))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
