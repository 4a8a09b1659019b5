package funcgen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/abhisek/angler/internal/expr"
)

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	a := New(rand.New(rand.NewSource(42)))
	b := New(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		fa := a.Generate(1)
		fb := b.Generate(1)
		if !expr.Equal(fa, fb) {
			t.Fatalf("draw %d diverged: %q vs %q", i, fa.String(), fb.String())
		}
	}
}

func TestGenerateEvaluatesFinitelyOnEasyInterval(t *testing.T) {
	// Every primitive is total on [-1,1] with limit 1, so single and summed
	// draws should mostly evaluate finite; composed exp/sinh chains can
	// still overflow, which is fine — the solver discards those rounds.
	// Here we only check that Eval never panics across many draws.
	g := New(rand.New(rand.NewSource(7)))
	for i := 0; i < 200; i++ {
		f := g.Generate(1)
		for x := -1.0; x <= 1.0; x += 0.25 {
			_ = f.Eval(x)
		}
	}
}

func TestGenerateAsinRespectsIntervalLimit(t *testing.T) {
	// With limit 5, asin(x/5) must stay in domain across [-5,5].
	e := primitives[len(primitives)-1](5)
	for x := -5.0; x <= 5.0; x += 0.5 {
		if v := e.Eval(x); math.IsNaN(v) {
			t.Fatalf("asin primitive NaN at x=%v with limit 5", x)
		}
	}
	if e.String() != "asin((x / 5))" {
		t.Errorf("asin primitive renders as %q", e.String())
	}
}

func TestPairRejectsIdenticalAndNegated(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))
	for i := 0; i < 100; i++ {
		f1, f2, err := g.Pair(1)
		if err != nil {
			t.Fatalf("Pair: %v", err)
		}
		if expr.Equal(f1, f2) {
			t.Fatalf("identical pair slipped through: %q", f1.String())
		}
		if expr.Equal(expr.Negate(f1), f2) || expr.Equal(f1, expr.Negate(f2)) {
			t.Fatalf("negated pair slipped through: %q / %q", f1.String(), f2.String())
		}
	}
}

func TestDegeneratePair(t *testing.T) {
	x := expr.X()
	tests := []struct {
		name   string
		f1, f2 expr.Expr
		want   bool
	}{
		{"identical", x, expr.X(), true},
		{"negated second", x, expr.Negate(expr.X()), true},
		{"negated first", expr.Negate(expr.X()), x, true},
		{"distinct", x, expr.Apply("sin", expr.X()), false},
		{"commuted sum is not caught", expr.Add(x, expr.Num(1)), expr.Add(expr.Num(1), x), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := degeneratePair(tt.f1, tt.f2); got != tt.want {
				t.Errorf("degeneratePair = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrimitivePoolSize(t *testing.T) {
	if len(primitives) != 13 {
		t.Errorf("primitive pool has %d entries, want 13", len(primitives))
	}
}
