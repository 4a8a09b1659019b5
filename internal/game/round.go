// Package game orchestrates rounds: it drives the generator, the magnitude
// balancer, and the angle solver until a well-defined angle comes out, then
// freezes the result for display and scoring.
package game

import (
	"errors"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/abhisek/angler/internal/angle"
	"github.com/abhisek/angler/internal/expr"
	"github.com/abhisek/angler/internal/funcgen"
)

// ErrNoValidRound is returned when the regeneration loop cannot produce a
// function pair with a defined angle within the retry cap.
var ErrNoValidRound = errors.New("game: could not generate a valid round")

// maxRoundRetries bounds the regenerate-on-degenerate loop.
const maxRoundRetries = 1000

// PlotSamples is the number of evenly spaced points each final function is
// sampled at for display.
const PlotSamples = 200

// Flags are the per-round mode toggles, supplied by the settings layer.
type Flags struct {
	Unitary      bool
	AcuteOnly    bool
	EasyInterval bool
}

// Sample is one plotted point. Gap1/Gap2 mark non-finite values the renderer
// must skip rather than draw.
type Sample struct {
	X, Y1, Y2  float64
	Gap1, Gap2 bool
}

// Outcome is the frozen result of one round. Never mutated after creation.
type Outcome struct {
	ID       uuid.UUID
	Interval angle.Interval
	Flags    Flags
	Angle    float64
	F1, F2   expr.Expr
	Samples  []Sample
}

// Engine runs rounds against a single random source, so a fixed seed replays
// the same sequence of rounds.
type Engine struct {
	rng *rand.Rand
	gen *funcgen.Generator
}

// NewEngine creates an Engine backed by rng.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng, gen: funcgen.New(rng)}
}

// NewInterval picks the round's interval: the fixed [-1,1] under the easy
// flag, otherwise random integer endpoints.
func (e *Engine) NewInterval(flags Flags) angle.Interval {
	if flags.EasyInterval {
		return angle.Easy()
	}
	return angle.Random(e.rng)
}

// StartRound produces one complete round on iv. It regenerates the whole
// function pair whenever the solver reports an undefined angle, up to the
// retry cap.
func (e *Engine) StartRound(iv angle.Interval, flags Flags) (*Outcome, error) {
	for i := 0; i < maxRoundRetries; i++ {
		f1, f2, err := e.gen.Pair(iv.Limit())
		if err != nil {
			return nil, err
		}

		f1, f2 = angle.Balance(f1, f2, iv)

		res, ok := angle.Compute(f1, f2, iv, flags.Unitary, flags.AcuteOnly)
		if !ok {
			continue
		}

		return &Outcome{
			ID:       uuid.New(),
			Interval: iv,
			Flags:    flags,
			Angle:    res.Degrees,
			F1:       res.F1,
			F2:       res.F2,
			Samples:  samplePair(res.F1, res.F2, iv),
		}, nil
	}
	return nil, ErrNoValidRound
}

// samplePair evaluates both final functions at PlotSamples evenly spaced
// points, endpoints included, marking non-finite values as gaps.
func samplePair(f1, f2 expr.Expr, iv angle.Interval) []Sample {
	step := iv.Width() / float64(PlotSamples-1)
	out := make([]Sample, PlotSamples)
	for i := range out {
		x := iv.A + float64(i)*step
		y1 := f1.Eval(x)
		y2 := f2.Eval(x)
		out[i] = Sample{
			X:    x,
			Y1:   y1,
			Y2:   y2,
			Gap1: !finite(y1),
			Gap2: !finite(y2),
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
