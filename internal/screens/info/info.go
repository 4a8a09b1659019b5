// Package info is the static "how it works" panel.
package info

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/angler/internal/screen"
	"github.com/abhisek/angler/internal/ui/theme"
)

const text = `Functions form a vector space, and on a bounded interval [a, b]
the integral

    ⟨f, g⟩ = ∫ f(x)·g(x) dx

acts as an inner product. Just like with arrows in the plane, it
defines an angle between two functions:

    cos θ = ⟨f, g⟩ / (‖f‖·‖g‖),  where ‖f‖ = √⟨f, f⟩

Identical functions are at 0°, a function and its negation at 180°,
and functions whose product integrates to zero are orthogonal — at
90° — no matter how similar their graphs look.

Each round draws two random functions. Look at their shapes, guess
the angle, and build an intuition for geometry in function space.

Unitary mode normalizes both functions to ‖f‖ = 1 first; acute mode
flips one function's sign when needed so the angle stays below 90°.`

// InfoScreen renders the explanation text.
type InfoScreen struct{}

var _ screen.Screen = (*InfoScreen)(nil)

// New creates the info screen.
func New() *InfoScreen {
	return &InfoScreen{}
}

func (i *InfoScreen) Init() tea.Cmd {
	return nil
}

func (i *InfoScreen) Title() string {
	return "How It Works"
}

func (i *InfoScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return i, nil
}

func (i *InfoScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(theme.Body.Render(text)))
}
