// Package funcgen builds random expression trees by combining primitives
// from a fixed pool with sums, products, and function composition.
package funcgen

import (
	"errors"
	"math/rand"

	"github.com/abhisek/angler/internal/expr"
)

// ErrRetriesExhausted is returned when the pair de-duplication loop cannot
// produce a distinct second function within the retry cap.
var ErrRetriesExhausted = errors.New("funcgen: could not generate a distinct function pair")

// maxRetries bounds the pair de-duplication loop. Collisions are expected to
// resolve in one or two redraws; the cap only guards against pathological
// random streams.
const maxRetries = 1000

// Generator produces random functions from an injectable random source,
// allowing deterministic replay under a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds one random function. limit is max(|a|,|b|) of the round's
// interval and parameterizes the asin primitive's domain guard.
//
// It draws 1-3 distinct primitives, independently scales (p=1/3) and negates
// (p=1/2) each, then combines them: two primitives by sum, product, or
// composition in a random direction; three primitives by two independently
// chosen +/* operators, left to right.
func (g *Generator) Generate(limit float64) expr.Expr {
	count := g.rng.Intn(3) + 1

	order := g.rng.Perm(len(primitives))
	parts := make([]expr.Expr, count)
	for i := 0; i < count; i++ {
		e := primitives[order[i]](limit)
		if g.rng.Intn(3) == 0 {
			e = expr.Scale(e, scalars[g.rng.Intn(len(scalars))])
		}
		if g.rng.Intn(2) == 0 {
			e = expr.Negate(e)
		}
		parts[i] = e
	}

	switch count {
	case 1:
		return parts[0]
	case 2:
		switch g.rng.Intn(3) {
		case 0:
			return expr.Add(parts[0], parts[1])
		case 1:
			return expr.Mul(parts[0], parts[1])
		default:
			if g.rng.Intn(2) == 0 {
				return parts[0].Substitute(parts[1])
			}
			return parts[1].Substitute(parts[0])
		}
	default:
		combined := g.combine(parts[0], parts[1])
		return g.combine(combined, parts[2])
	}
}

// Pair generates two functions for a round, redrawing the second until it is
// neither structurally equal to the first nor its structural negation.
// Equality is syntactic (canonical string forms), matching the display-level
// de-duplication the game relies on.
func (g *Generator) Pair(limit float64) (expr.Expr, expr.Expr, error) {
	f1 := g.Generate(limit)
	for i := 0; i < maxRetries; i++ {
		f2 := g.Generate(limit)
		if degeneratePair(f1, f2) {
			continue
		}
		return f1, f2, nil
	}
	return nil, nil, ErrRetriesExhausted
}

// combine joins two trees with a random + or *.
func (g *Generator) combine(l, r expr.Expr) expr.Expr {
	if g.rng.Intn(2) == 0 {
		return expr.Add(l, r)
	}
	return expr.Mul(l, r)
}

// degeneratePair reports whether the two functions are identical or one is
// the negation of the other, either of which would make the angle trivial.
func degeneratePair(f1, f2 expr.Expr) bool {
	return expr.Equal(f1, f2) ||
		expr.Equal(expr.Negate(f1), f2) ||
		expr.Equal(f1, expr.Negate(f2))
}
