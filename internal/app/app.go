package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/angler/internal/game"
	"github.com/abhisek/angler/internal/router"
	"github.com/abhisek/angler/internal/screens/home"
	"github.com/abhisek/angler/internal/settings"
	"github.com/abhisek/angler/internal/store"
	"github.com/abhisek/angler/internal/ui/layout"
	"github.com/abhisek/angler/internal/ui/theme"
)

// Options carries the dependencies the TUI runs on.
type Options struct {
	Engine       *game.Engine
	Store        *store.Store
	Settings     *settings.Settings
	SettingsPath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(home.New(opts.Engine, opts.Store, opts.Settings, opts.SettingsPath)),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.modeBadges(), m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(interface{ KeyHints() []layout.KeyHint }); ok && hinter.KeyHints() != nil {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// modeBadges summarizes the active mode flags for the header.
func (m AppModel) modeBadges() string {
	s := m.opts.Settings
	badges := ""
	if s.UnitaryMode {
		badges += "‖·‖=1  "
	}
	if s.AcuteAnglesOnly {
		badges += "≤90°  "
	}
	if s.EasyInterval {
		badges += "[-1,1]"
	}
	return badges
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	theme.Apply(opts.Settings.DarkMode, opts.Settings.FirstColor, opts.Settings.SecondColor)

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
