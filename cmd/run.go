package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/abhisek/angler/internal/app"
	"github.com/abhisek/angler/internal/game"
	"github.com/abhisek/angler/internal/settings"
	"github.com/abhisek/angler/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads settings, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prefsPath, err := settings.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve settings path: %w", err)
	}
	prefs, err := settings.Load(prefsPath)
	if err != nil {
		// A broken settings file shouldn't block playing.
		fmt.Fprintln(os.Stderr, "Ignoring settings file:", err)
		prefs = settings.Default()
	}

	engine := game.NewEngine(rand.New(rand.NewSource(time.Now().UnixNano())))

	return app.Run(app.Options{
		Engine:       engine,
		Store:        st,
		Settings:     &prefs,
		SettingsPath: prefsPath,
	})
}
