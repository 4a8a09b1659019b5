// Package play implements the round screen: plot, guess input, and reveal.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/angler/internal/game"
	"github.com/abhisek/angler/internal/screen"
	"github.com/abhisek/angler/internal/settings"
	"github.com/abhisek/angler/internal/store"
	"github.com/abhisek/angler/internal/ui/components"
	"github.com/abhisek/angler/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseGuessing
	phaseRevealing
	phaseDone
)

const scoreTickInterval = 30 * time.Millisecond

// PlayScreen runs rounds until the player leaves.
type PlayScreen struct {
	engine *game.Engine
	store  *store.Store
	prefs  *settings.Settings

	phase   phase
	outcome *game.Outcome
	input   components.AngleInput
	counter components.ScoreCounter
	guess   float64
	score   float64
	errMsg  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the play screen. st may be nil (no history recorded).
func New(engine *game.Engine, st *store.Store, prefs *settings.Settings) *PlayScreen {
	return &PlayScreen{
		engine: engine,
		store:  st,
		prefs:  prefs,
		input:  components.NewAngleInput("angle in degrees"),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.startRound(), p.input.Init())
}

func (p *PlayScreen) Title() string {
	return "Round"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseGuessing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit guess"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "N", Description: "Next round"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

// flags derives the round mode flags from current preferences.
func (p *PlayScreen) flags() game.Flags {
	return game.Flags{
		Unitary:      p.prefs.UnitaryMode,
		AcuteOnly:    p.prefs.AcuteAnglesOnly,
		EasyInterval: p.prefs.EasyInterval,
	}
}

// startRound generates a round off the update loop.
func (p *PlayScreen) startRound() tea.Cmd {
	flags := p.flags()
	engine := p.engine
	return func() tea.Msg {
		iv := engine.NewInterval(flags)
		out, err := engine.StartRound(iv, flags)
		if err != nil {
			return roundFailedMsg{Err: err}
		}
		return roundReadyMsg{Outcome: out}
	}
}

// persistRound writes the finished round to history.
func (p *PlayScreen) persistRound() tea.Cmd {
	if p.store == nil {
		return nil
	}
	st := p.store
	rec := store.RoundRecord{
		ID:        p.outcome.ID.String(),
		PlayedAt:  time.Now(),
		IntervalA: p.outcome.Interval.A,
		IntervalB: p.outcome.Interval.B,
		Unitary:   p.outcome.Flags.Unitary,
		Acute:     p.outcome.Flags.AcuteOnly,
		F1:        p.outcome.F1.String(),
		F2:        p.outcome.F2.String(),
		Angle:     p.outcome.Angle,
		Guess:     p.guess,
		Score:     p.score,
	}
	return func() tea.Msg {
		return persistDoneMsg{Err: st.SaveRound(context.Background(), rec)}
	}
}

func scoreTick() tea.Cmd {
	return tea.Tick(scoreTickInterval, func(t time.Time) tea.Msg {
		return scoreTickMsg(t)
	})
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundReadyMsg:
		p.outcome = msg.Outcome
		p.phase = phaseGuessing
		p.input.Reset()
		return p, nil

	case roundFailedMsg:
		p.errMsg = msg.Err.Error()
		return p, nil

	case scoreTickMsg:
		if p.phase != phaseRevealing {
			return p, nil
		}
		if p.counter.Tick() {
			p.phase = phaseDone
			return p, nil
		}
		return p, scoreTick()

	case persistDoneMsg:
		if msg.Err != nil {
			p.errMsg = "saving round: " + msg.Err.Error()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseGuessing {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch p.phase {
	case phaseGuessing:
		if msg.String() == "enter" {
			guess, ok := p.input.Value()
			if !ok {
				return p, nil
			}
			p.guess = guess
			p.score = game.Score(p.outcome.Angle, guess)
			p.counter = components.NewScoreCounter(p.score)
			p.phase = phaseRevealing
			return p, tea.Batch(p.persistRound(), scoreTick())
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case phaseDone:
		if msg.String() == "n" || msg.String() == "N" {
			p.phase = phaseLoading
			p.outcome = nil
			return p, p.startRound()
		}
	}
	return p, nil
}
