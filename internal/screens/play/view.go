package play

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/angler/internal/game"
	"github.com/abhisek/angler/internal/plot"
	"github.com/abhisek/angler/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return centered(width, height, theme.Bad.Render("✗ "+p.errMsg))
	}
	if p.outcome == nil {
		return centered(width, height, theme.Hint.Render("Generating functions..."))
	}

	chart := p.renderChart(width, height)
	formulas := p.renderFormulas()
	prompt := p.renderPrompt()

	content := lipgloss.JoinVertical(lipgloss.Center, chart, "", formulas, "", prompt)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderChart draws both curves on a shared braille canvas.
func (p *PlayScreen) renderChart(width, height int) string {
	cw := width - 10
	if cw > 90 {
		cw = 90
	}
	if cw < 20 {
		cw = 20
	}
	ch := height - 12
	if ch > 18 {
		ch = 18
	}
	if ch < 6 {
		ch = 6
	}

	s1, s2 := seriesFromSamples(p.outcome.Samples)
	yMin, yMax := plot.Bounds(s1, s2)

	canvas := plot.NewCanvas(cw, ch, p.outcome.Interval.A, p.outcome.Interval.B, yMin, yMax)
	canvas.DrawSeries(0, s1, p.prefs.LineThickness)
	canvas.DrawSeries(1, s2, p.prefs.LineThickness)

	body := canvas.Render(theme.CurveStyle(0), theme.CurveStyle(1))
	caption := theme.Hint.Render(fmt.Sprintf("interval %s", p.outcome.Interval))

	return lipgloss.JoinVertical(lipgloss.Center, theme.Card.Render(body), caption)
}

func (p *PlayScreen) renderFormulas() string {
	f1 := theme.CurveStyle(0).Render("f(x) = " + p.outcome.F1.String())
	f2 := theme.CurveStyle(1).Render("g(x) = " + p.outcome.F2.String())
	return lipgloss.JoinVertical(lipgloss.Left, f1, f2)
}

func (p *PlayScreen) renderPrompt() string {
	switch p.phase {
	case phaseGuessing:
		label := theme.Body.Render("What is the angle between f and g?  ")
		return label + p.input.View()

	case phaseRevealing, phaseDone:
		actual := theme.Body.Render(fmt.Sprintf("Actual angle: %.1f°   Your guess: %.1f°", p.outcome.Angle, p.guess))
		scoreStyle := theme.Bad
		if p.score >= 50 {
			scoreStyle = theme.Good
		}
		score := scoreStyle.Render("Score: " + p.counter.View())
		return lipgloss.JoinVertical(lipgloss.Center, actual, score)
	}
	return ""
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// seriesFromSamples splits the round's samples into the two plot series.
func seriesFromSamples(samples []game.Sample) ([]plot.Point, []plot.Point) {
	s1 := make([]plot.Point, len(samples))
	s2 := make([]plot.Point, len(samples))
	for i, s := range samples {
		s1[i] = plot.Point{X: s.X, Y: s.Y1, Gap: s.Gap1}
		s2[i] = plot.Point{X: s.X, Y: s.Y2, Gap: s.Gap2}
	}
	return s1, s2
}
