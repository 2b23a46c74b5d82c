package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"shellpane/internal/config"
	"shellpane/internal/contrib"
	"shellpane/internal/detect"
	"shellpane/internal/term"
)

// chrome rows around the pane: sticky header + status bar.
const chromeRows = 2

// Model is the shell pane TUI: one PTY-backed terminal with a sticky
// command header above it and a status bar below.
type Model struct {
	t   *term.Terminal
	det *detect.Detector

	settings config.Settings
	width    int
	height   int
	ready    bool
	quitting bool
	errText  string

	// command palette (jump to command)
	paletteOpen bool
	ti          textinput.Model
	filtered    []detect.Command
	palIndex    int

	// settings hot reload
	watcher *fsnotify.Watcher
	watchCh chan struct{}
}

// NewModel builds the pane model: terminal surface, command detection, and
// contributions (the sticky overlay activates on the detection capability).
func NewModel(settings config.Settings) Model {
	opts := term.DefaultOptions()
	opts.Theme = settings.Theme
	opts.TabWidth = settings.TabWidth
	opts.ScrollbackLimit = settings.ScrollbackLimit
	opts.RefreshDebounce = time.Duration(settings.StickyDebounceMS) * time.Millisecond
	opts.MinContrast = settings.MinContrast

	t := term.New(80, 24, opts)
	det := detect.Attach(t)
	contrib.Activate(t)

	ti := textinput.New()
	ti.Prompt = " > "
	ti.Placeholder = "jump to command"
	ti.CharLimit = 256

	return Model{
		t:        t,
		det:      det,
		settings: settings,
		ti:       ti,
	}
}

// Terminal exposes the pane's terminal instance.
func (m Model) Terminal() *term.Terminal { return m.t }

// Init starts the shell and the settings watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(startShellCmd(m.t, m.settings.Shell), startWatchCmd())
}
