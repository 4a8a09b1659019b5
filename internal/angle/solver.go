// Package angle computes the L² angle between two real functions on a
// bounded interval, with the pre-processing (magnitude balancing, unit
// normalization, acute sign flips) the game applies around it.
package angle

import (
	"math"

	"github.com/abhisek/angler/internal/expr"
	"github.com/abhisek/angler/internal/quad"
)

// Result is a successfully computed angle together with the expressions that
// were actually used — after any normalization or sign flip — so the caller
// can display exactly what was measured.
type Result struct {
	Degrees float64
	F1, F2  expr.Expr
}

// Compute returns the L² angle between f1 and f2 over iv in degrees.
//
// With unitary set, both functions are normalized to unit norm first. With
// ensureAcute set, f2 is negated when the inner product is negative, forcing
// the angle into [0°, 90°]. The second return value is false when the angle
// is undefined — a zero or non-finite norm anywhere in the computation — and
// the caller should regenerate the pair.
func Compute(f1, f2 expr.Expr, iv Interval, unitary, ensureAcute bool) (Result, bool) {
	if unitary {
		n1 := norm(f1, iv)
		n2 := norm(f2, iv)
		if !validNorm(n1) || !validNorm(n2) {
			return Result{}, false
		}
		f1 = expr.Scale(f1, 1/n1)
		f2 = expr.Scale(f2, 1/n2)
	}

	ip := innerProduct(f1, f2, iv)
	if ensureAcute && ip < 0 {
		f2 = expr.Negate(f2)
		ip = -ip
	}

	n1 := norm(f1, iv)
	n2 := norm(f2, iv)
	if !validNorm(n1) || !validNorm(n2) {
		return Result{}, false
	}

	cos := ip / (n1 * n2)
	if math.IsNaN(cos) {
		return Result{}, false
	}
	cos = math.Max(-1, math.Min(1, cos))

	deg := math.Acos(cos) * 180 / math.Pi
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Result{}, false
	}
	return Result{Degrees: deg, F1: f1, F2: f2}, true
}

// InnerProduct exposes the L² inner product ∫ f·g over iv.
func InnerProduct(f, g expr.Expr, iv Interval) float64 {
	return innerProduct(f, g, iv)
}

func innerProduct(f, g expr.Expr, iv Interval) float64 {
	return quad.Simpson(func(x float64) float64 {
		return f.Eval(x) * g.Eval(x)
	}, iv.A, iv.B, quad.DefaultIntervals)
}

// norm returns sqrt(∫ f² ) over iv.
func norm(f expr.Expr, iv Interval) float64 {
	sq := quad.Simpson(func(x float64) float64 {
		v := f.Eval(x)
		return v * v
	}, iv.A, iv.B, quad.DefaultIntervals)
	return math.Sqrt(sq)
}

func validNorm(n float64) bool {
	return n > 0 && !math.IsInf(n, 0) && !math.IsNaN(n)
}
