package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Defaults are the dark variant; Apply switches the whole
// palette and rebuilds the derived styles.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Violet
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Curve colors for the two plotted functions. Overridden from settings.
var (
	Curve1 = lipgloss.Color("#14B8A6")
	Curve2 = lipgloss.Color("#F97316")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Apply switches between the dark and light palettes and installs the two
// curve colors, then rebuilds every derived style. Call before the first
// render; styles capture colors at build time.
func Apply(dark bool, curve1, curve2 string) {
	if dark {
		Text = lipgloss.Color("#F8FAFC")
		TextDim = lipgloss.Color("#94A3B8")
		BgCard = lipgloss.Color("#1E293B")
		Border = lipgloss.Color("#334155")
	} else {
		Text = lipgloss.Color("#0F172A")
		TextDim = lipgloss.Color("#64748B")
		BgCard = lipgloss.Color("#E2E8F0")
		Border = lipgloss.Color("#94A3B8")
	}
	if curve1 != "" {
		Curve1 = lipgloss.Color(curve1)
	}
	if curve2 != "" {
		Curve2 = lipgloss.Color(curve2)
	}
	rebuild()
}

func rebuild() {
	Title = Title.Foreground(Primary)
	Subtitle = Subtitle.Foreground(TextDim)
	Body = Body.Foreground(Text)
	Hint = Hint.Foreground(TextDim)
	Header = Header.Background(BgCard)
	Footer = Footer.Background(BgCard)
	Card = Card.Background(BgCard).BorderForeground(Border)
	Selected = Selected.Foreground(Primary)
	Unselected = Unselected.Foreground(Text)
	Good = Good.Foreground(Success)
	Bad = Bad.Foreground(Error)
}

// CurveStyle returns the foreground style for plotted series id (0 or 1).
func CurveStyle(id int) lipgloss.Style {
	if id == 0 {
		return lipgloss.NewStyle().Foreground(Curve1)
	}
	return lipgloss.NewStyle().Foreground(Curve2)
}
