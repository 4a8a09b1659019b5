package play

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/angler/internal/angle"
	"github.com/abhisek/angler/internal/game"
	"github.com/abhisek/angler/internal/settings"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T) *PlayScreen {
	t.Helper()
	prefs := settings.Default()
	return New(game.NewEngine(rand.New(rand.NewSource(1))), nil, &prefs)
}

func readyScreen(t *testing.T) *PlayScreen {
	t.Helper()
	p := newTestScreen(t)
	engine := game.NewEngine(rand.New(rand.NewSource(1)))
	out, err := engine.StartRound(angle.Easy(), game.Flags{EasyInterval: true})
	require.NoError(t, err)

	s, _ := p.Update(roundReadyMsg{Outcome: out})
	return s.(*PlayScreen)
}

func TestRoundReadyEntersGuessing(t *testing.T) {
	p := readyScreen(t)
	assert.Equal(t, phaseGuessing, p.phase)
	assert.NotNil(t, p.outcome)
}

func TestSubmitGuessScoresAndReveals(t *testing.T) {
	p := readyScreen(t)

	for _, r := range "45" {
		s, _ := p.Update(keyPress(r))
		p = s.(*PlayScreen)
	}
	s, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p = s.(*PlayScreen)

	assert.Equal(t, phaseRevealing, p.phase)
	assert.Equal(t, 45.0, p.guess)
	assert.Equal(t, game.Score(p.outcome.Angle, 45), p.score)
	assert.NotNil(t, cmd)
}

func TestSubmitWithoutNumberIgnored(t *testing.T) {
	p := readyScreen(t)
	s, _ := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p = s.(*PlayScreen)
	assert.Equal(t, phaseGuessing, p.phase)
}

func TestScoreTicksUntilDone(t *testing.T) {
	p := readyScreen(t)

	s, _ := p.Update(keyPress('9'))
	p = s.(*PlayScreen)
	s, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	p = s.(*PlayScreen)

	for i := 0; i < 1000 && p.phase == phaseRevealing; i++ {
		s, _ = p.Update(scoreTickMsg{})
		p = s.(*PlayScreen)
	}
	assert.Equal(t, phaseDone, p.phase)
}

func TestNextRoundAfterDone(t *testing.T) {
	p := readyScreen(t)
	p.phase = phaseDone

	s, cmd := p.Update(keyPress('n'))
	p = s.(*PlayScreen)
	assert.Equal(t, phaseLoading, p.phase)
	assert.Nil(t, p.outcome)
	assert.NotNil(t, cmd)
}

func TestRoundFailedShowsError(t *testing.T) {
	p := newTestScreen(t)
	s, _ := p.Update(roundFailedMsg{Err: game.ErrNoValidRound})
	p = s.(*PlayScreen)
	assert.NotEmpty(t, p.errMsg)
}

func TestViewRendersAllPhases(t *testing.T) {
	p := readyScreen(t)
	assert.NotEmpty(t, p.View(80, 24))

	p.phase = phaseDone
	p.guess = 30
	assert.NotEmpty(t, p.View(80, 24))
}
