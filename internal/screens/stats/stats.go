// Package stats shows the round history and its aggregates.
package stats

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/angler/internal/screen"
	"github.com/abhisek/angler/internal/store"
	"github.com/abhisek/angler/internal/ui/theme"
)

const recentLimit = 10

// statsLoadedMsg carries the history read off the update loop.
type statsLoadedMsg struct {
	Summary store.Summary
	Recent  []store.RoundRecord
	Err     error
}

// StatsScreen displays aggregates and the most recent rounds.
type StatsScreen struct {
	store   *store.Store
	summary store.Summary
	recent  []store.RoundRecord
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the statistics screen.
func New(st *store.Store) *StatsScreen {
	return &StatsScreen{store: st}
}

func (s *StatsScreen) Init() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		ctx := context.Background()
		sum, err := st.RoundSummary(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		recent, err := st.RecentRounds(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Summary: sum, Recent: recent}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.summary = m.Summary
			s.recent = m.Recent
			s.loaded = true
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var content string
	switch {
	case s.errMsg != "":
		content = theme.Bad.Render("✗ " + s.errMsg)
	case !s.loaded:
		content = theme.Hint.Render("Loading...")
	case s.summary.Rounds == 0:
		content = theme.Hint.Render("No rounds played yet.")
	default:
		content = lipgloss.JoinVertical(lipgloss.Left, s.renderSummary(), "", s.renderRecent())
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *StatsScreen) renderSummary() string {
	sum := s.summary
	body := fmt.Sprintf(
		"Rounds played     %d\nAverage score     %.1f\nBest score        %.1f\nAverage error     %.1f°",
		sum.Rounds, sum.AvgScore, sum.BestScore, sum.AvgError,
	)
	return theme.Card.Render(theme.Body.Render(body))
}

func (s *StatsScreen) renderRecent() string {
	header := theme.Subtitle.Render("Recent rounds")
	var rows string
	for _, r := range s.recent {
		line := fmt.Sprintf("%s  angle %6.1f°  guess %6.1f°  score %5.1f",
			r.PlayedAt.Local().Format("Jan 02 15:04"), r.Angle, r.Guess, r.Score)
		rows += theme.Body.Render(line) + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, theme.Card.Render(rows))
}
