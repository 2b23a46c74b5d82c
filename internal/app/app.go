package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"shellpane/internal/config"
	"shellpane/internal/system"
	"shellpane/internal/ui"
)

// Start runs the shell pane TUI and returns any error.
func Start() error {
	settings, err := config.LoadSettings()
	if err != nil {
		system.Logger.Warn("settings unreadable, using defaults", "err", err)
	}
	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	m := ui.NewModel(settings)
	defer m.Terminal().Dispose()
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return err
	}
	return nil
}

// Main is a helper to use as entry-point from cmd.
func Main() {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
