package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/angler/internal/ui/theme"
)

// AngleInput wraps bubbles/textinput for entering an angle in degrees.
type AngleInput struct {
	Model textinput.Model
}

// NewAngleInput creates a styled numeric input.
func NewAngleInput(placeholder string) AngleInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 7
	ti.Focus()
	return AngleInput{Model: ti}
}

// Init returns the initial command.
func (a AngleInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update filters input to what parses toward a decimal number.
func (a AngleInput) Update(msg tea.Msg) (AngleInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			c := key[0]
			if (c < '0' || c > '9') && c != '.' && c != '-' {
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// Value parses the entered angle. ok is false while the field doesn't hold
// a number.
func (a AngleInput) Value() (float64, bool) {
	v, err := strconv.ParseFloat(a.Model.Value(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Reset clears the field.
func (a *AngleInput) Reset() {
	a.Model.SetValue("")
}

// View renders the input.
func (a AngleInput) View() string {
	return theme.Body.Render(a.Model.View())
}
