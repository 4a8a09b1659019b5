package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/angler/internal/game"
	"github.com/abhisek/angler/internal/router"
	"github.com/abhisek/angler/internal/screen"
	"github.com/abhisek/angler/internal/screens/info"
	"github.com/abhisek/angler/internal/screens/options"
	"github.com/abhisek/angler/internal/screens/play"
	"github.com/abhisek/angler/internal/screens/stats"
	"github.com/abhisek/angler/internal/settings"
	"github.com/abhisek/angler/internal/store"
	"github.com/abhisek/angler/internal/ui/components"
	"github.com/abhisek/angler/internal/ui/theme"
)

const banner = `
   ╱│  angler
  ╱ │  guess the angle between functions
 ╱__│
`

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen wired to the app's dependencies.
func New(engine *game.Engine, st *store.Store, prefs *settings.Settings, prefsPath string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(engine, st, prefs)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: options.New(prefs, prefsPath)}
			}
		}},
		{Label: "HOW IT WORKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: info.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render(banner)
	menu := theme.Card.Render(h.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", menu)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
