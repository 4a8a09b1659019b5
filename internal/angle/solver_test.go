package angle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/abhisek/angler/internal/expr"
)

func TestComputeOppositeFunctions(t *testing.T) {
	// f1=x, f2=-x on [-1,1]: ip = -2/3, norms sqrt(2/3) each, angle 180°.
	f1 := expr.X()
	f2 := expr.Negate(expr.X())
	iv := Easy()

	res, ok := Compute(f1, f2, iv, false, false)
	if !ok {
		t.Fatal("Compute returned degenerate for x vs -x")
	}
	if math.Abs(res.Degrees-180) > 1e-6 {
		t.Errorf("angle = %v, want 180", res.Degrees)
	}

	ip := InnerProduct(f1, f2, iv)
	if math.Abs(ip-(-2.0/3)) > 1e-6 {
		t.Errorf("inner product = %v, want -2/3", ip)
	}
}

func TestComputeAcuteFlipsSign(t *testing.T) {
	f1 := expr.X()
	f2 := expr.Negate(expr.X())
	iv := Easy()

	res, ok := Compute(f1, f2, iv, false, true)
	if !ok {
		t.Fatal("Compute returned degenerate")
	}
	if math.Abs(res.Degrees) > 1e-6 {
		t.Errorf("acute angle = %v, want 0", res.Degrees)
	}
	// The flip is reflected in the returned expression.
	if res.F2.String() != "--x" {
		t.Errorf("flipped f2 renders as %q", res.F2.String())
	}
	// And the recomputed inner product is non-negative.
	if ip := InnerProduct(res.F1, res.F2, iv); ip < 0 {
		t.Errorf("post-flip inner product = %v, want >= 0", ip)
	}
}

func TestComputeOrthogonalFunctions(t *testing.T) {
	// x and x² are orthogonal on [-1,1] by symmetry.
	f1 := expr.X()
	f2 := expr.Pow(expr.X(), expr.Num(2))

	res, ok := Compute(f1, f2, Easy(), false, false)
	if !ok {
		t.Fatal("Compute returned degenerate")
	}
	if math.Abs(res.Degrees-90) > 1e-6 {
		t.Errorf("angle = %v, want 90", res.Degrees)
	}
}

func TestComputeUnitaryNormalizes(t *testing.T) {
	// Scaling must not change the angle in unitary mode, and the returned
	// expressions must have unit norm.
	f1 := expr.Scale(expr.X(), 3)
	f2 := expr.Apply("sin", expr.X())
	iv := Easy()

	res, ok := Compute(f1, f2, iv, true, false)
	if !ok {
		t.Fatal("Compute returned degenerate")
	}

	plain, ok := Compute(expr.X(), f2, iv, true, false)
	if !ok {
		t.Fatal("Compute returned degenerate for unscaled pair")
	}
	if math.Abs(res.Degrees-plain.Degrees) > 1e-6 {
		t.Errorf("unitary angle changed under scaling: %v vs %v", res.Degrees, plain.Degrees)
	}

	for _, f := range []expr.Expr{res.F1, res.F2} {
		n := math.Sqrt(InnerProduct(f, f, iv))
		if math.Abs(n-1) > 1e-6 {
			t.Errorf("normalized function has norm %v, want 1", n)
		}
	}
}

func TestComputeDegenerateZeroNorm(t *testing.T) {
	zero := expr.Num(0)
	if _, ok := Compute(zero, expr.X(), Easy(), false, false); ok {
		t.Error("zero-norm function produced a defined angle")
	}
	if _, ok := Compute(zero, expr.X(), Easy(), true, false); ok {
		t.Error("zero-norm function produced a defined angle in unitary mode")
	}
}

func TestComputeDegenerateNonFinite(t *testing.T) {
	// asin(x) without the domain guard is NaN over most of [-5,5].
	bad := expr.Apply("asin", expr.X())
	if _, ok := Compute(bad, expr.X(), Interval{A: -5, B: 5}, false, false); ok {
		t.Error("non-finite norm produced a defined angle")
	}
}

func TestComputeRangeInvariant(t *testing.T) {
	// Whatever the inputs, a defined angle is in [0,180], and in [0,90]
	// under acute mode. Exercised over a spread of simple pairs.
	pairs := []struct{ f1, f2 expr.Expr }{
		{expr.X(), expr.Apply("sin", expr.X())},
		{expr.Apply("cos", expr.X()), expr.Apply("exp", expr.X())},
		{expr.Pow(expr.X(), expr.Num(3)), expr.Negate(expr.Apply("tanh", expr.X()))},
		{expr.Apply("sinh", expr.X()), expr.Apply("atan", expr.X())},
	}

	for _, p := range pairs {
		for _, acute := range []bool{false, true} {
			res, ok := Compute(p.f1, p.f2, Easy(), false, acute)
			if !ok {
				continue
			}
			hi := 180.0
			if acute {
				hi = 90
			}
			if res.Degrees < 0 || res.Degrees > hi+1e-9 {
				t.Errorf("angle %v outside [0,%v] for %q vs %q (acute=%v)",
					res.Degrees, hi, p.f1.String(), p.f2.String(), acute)
			}
		}
	}
}

func TestRandomInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		iv := Random(rng)
		if iv.A >= iv.B {
			t.Fatalf("interval not ordered: %v", iv)
		}
		if iv.A < -5 || iv.B > 5 {
			t.Fatalf("interval out of range: %v", iv)
		}
		if iv.A != math.Trunc(iv.A) || iv.B != math.Trunc(iv.B) {
			t.Fatalf("interval endpoints not integers: %v", iv)
		}
	}
}

func TestIntervalLimit(t *testing.T) {
	tests := []struct {
		iv   Interval
		want float64
	}{
		{Easy(), 1},
		{Interval{A: -5, B: 2}, 5},
		{Interval{A: -1, B: 4}, 4},
	}
	for _, tt := range tests {
		if got := tt.iv.Limit(); got != tt.want {
			t.Errorf("%v.Limit() = %v, want %v", tt.iv, got, tt.want)
		}
	}
}
