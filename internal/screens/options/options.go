// Package options implements the settings screen. Changes apply immediately
// and are persisted to the settings file on every edit.
package options

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/angler/internal/screen"
	"github.com/abhisek/angler/internal/settings"
	"github.com/abhisek/angler/internal/ui/layout"
	"github.com/abhisek/angler/internal/ui/theme"
)

// curveColors are the palette entries the player can cycle through.
var curveColors = []string{
	"#14B8A6", "#F97316", "#8B5CF6", "#22C55E", "#F43F5E", "#EAB308", "#3B82F6",
}

// OptionsScreen edits the shared settings in place.
type OptionsScreen struct {
	prefs    *settings.Settings
	path     string
	selected int
	saveErr  error
}

var _ screen.Screen = (*OptionsScreen)(nil)
var _ screen.KeyHintProvider = (*OptionsScreen)(nil)

// New creates the settings screen backed by the shared settings value.
func New(prefs *settings.Settings, path string) *OptionsScreen {
	return &OptionsScreen{prefs: prefs, path: path}
}

func (o *OptionsScreen) Init() tea.Cmd {
	return nil
}

func (o *OptionsScreen) Title() string {
	return "Settings"
}

func (o *OptionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→/Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

// rows describes the editable entries in display order.
const (
	rowDarkMode = iota
	rowUnitary
	rowAcute
	rowEasyInterval
	rowThickness
	rowFirstColor
	rowSecondColor
	rowCount
)

func (o *OptionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.selected > 0 {
			o.selected--
		}
	case "down", "j":
		if o.selected < rowCount-1 {
			o.selected++
		}
	case "enter", "right", "l", "space":
		o.edit(+1)
	case "left", "h":
		o.edit(-1)
	}
	return o, nil
}

// edit adjusts the selected row by delta, reapplies the theme, and saves.
func (o *OptionsScreen) edit(delta int) {
	s := o.prefs
	switch o.selected {
	case rowDarkMode:
		s.DarkMode = !s.DarkMode
	case rowUnitary:
		s.UnitaryMode = !s.UnitaryMode
	case rowAcute:
		s.AcuteAnglesOnly = !s.AcuteAnglesOnly
	case rowEasyInterval:
		s.EasyInterval = !s.EasyInterval
	case rowThickness:
		s.LineThickness += delta
		if s.LineThickness < 1 {
			s.LineThickness = 1
		}
		if s.LineThickness > 3 {
			s.LineThickness = 3
		}
	case rowFirstColor:
		s.FirstColor = cycleColor(s.FirstColor, delta)
	case rowSecondColor:
		s.SecondColor = cycleColor(s.SecondColor, delta)
	}

	theme.Apply(s.DarkMode, s.FirstColor, s.SecondColor)
	o.saveErr = settings.Save(o.path, *s)
}

func cycleColor(current string, delta int) string {
	idx := 0
	for i, c := range curveColors {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(curveColors)) % len(curveColors)
	return curveColors[idx]
}

func (o *OptionsScreen) View(width, height int) string {
	s := o.prefs
	rows := []struct {
		label, value string
	}{
		{"Dark mode", onOff(s.DarkMode)},
		{"Unitary mode (normalize to ‖f‖ = 1)", onOff(s.UnitaryMode)},
		{"Acute angles only (0–90°)", onOff(s.AcuteAnglesOnly)},
		{"Easy interval [-1, 1]", onOff(s.EasyInterval)},
		{"Line thickness", fmt.Sprintf("%d", s.LineThickness)},
		{"First curve color", colorSwatch(s.FirstColor)},
		{"Second curve color", colorSwatch(s.SecondColor)},
	}

	var body string
	for i, row := range rows {
		style := theme.Unselected
		prefix := "  "
		if i == o.selected {
			style = theme.Selected
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%-38s %s", prefix, row.label, row.value)
		body += style.Render(line) + "\n"
	}

	if o.saveErr != nil {
		body += "\n" + theme.Bad.Render("✗ could not save: "+o.saveErr.Error())
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(body))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func colorSwatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██ " + hex)
}
