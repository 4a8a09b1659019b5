package angle

import (
	"fmt"
	"math"
	"math/rand"
)

// Interval is the bounded domain a round is played on. Invariant: A < B.
type Interval struct {
	A, B float64
}

// Easy returns the fixed beginner interval [-1, 1].
func Easy() Interval { return Interval{A: -1, B: 1} }

// Random draws an integer interval with endpoints in [-5, 5], redrawing
// until they differ, and orders them.
func Random(rng *rand.Rand) Interval {
	a := float64(rng.Intn(11) - 5)
	b := a
	for b == a {
		b = float64(rng.Intn(11) - 5)
	}
	if b < a {
		a, b = b, a
	}
	return Interval{A: a, B: b}
}

// Limit returns max(|A|, |B|), the parameter that keeps the asin primitive
// inside its domain on this interval.
func (iv Interval) Limit() float64 {
	return math.Max(math.Abs(iv.A), math.Abs(iv.B))
}

// Width returns B - A.
func (iv Interval) Width() float64 { return iv.B - iv.A }

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.A, iv.B)
}
