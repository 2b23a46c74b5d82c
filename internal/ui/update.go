package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"shellpane/internal/sticky"
	"shellpane/internal/term"
)

const wheelStep = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rows := msg.Height - chromeRows
		if rows < 1 {
			rows = 1
		}
		m.t.Resize(msg.Width, rows)
		m.ti.Width = msg.Width - 10
		if !m.ready {
			m.ready = true
			// rendered surface now exists; contributions may draw
			m.t.SetReady()
		}
		return m, nil

	case shellStartedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, tea.Quit
		}
		return m, readPTYOnceCmd(m.t)

	case ptyChunkMsg:
		m.t.Advance(msg.data)
		m.flushSticky()
		return m, readPTYOnceCmd(m.t)

	case ptyClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)

	case settingsChangedMsg:
		m.settings = msg.s
		m.applySettings()
		return m, watchSubscribeCmd(m.watchCh)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.t.ScrollBy(wheelStep)
		m.flushSticky()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.t.ScrollBy(-wheelStep)
		m.flushSticky()
		return m, nil
	}
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if c, ok := sticky.Get(m.t); ok {
			if zone.Get(c.ZoneID()).InBounds(msg) {
				c.Click()
				c.Flush()
				return m, nil
			}
		}
		if zone.Get("pane.status.bottom").InBounds(msg) {
			m.t.ScrollToBottom()
			m.flushSticky()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.paletteOpen {
		switch msg.String() {
		case "esc":
			m.paletteOpen = false
			m.ti.Blur()
			return m, nil
		case "enter":
			m.paletteJump()
			m.paletteOpen = false
			m.ti.Blur()
			m.flushSticky()
			return m, nil
		case "up", "ctrl+p":
			if m.palIndex > 0 {
				m.palIndex--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.palIndex < len(m.filtered)-1 {
				m.palIndex++
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		m.refreshPalette()
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+q":
		m.quitting = true
		m.t.Dispose()
		return m, tea.Quit
	case "alt+p":
		m.paletteOpen = true
		m.ti.SetValue("")
		m.ti.Focus()
		m.palIndex = 0
		m.refreshPalette()
		return m, nil
	case "shift+pgup":
		m.t.ScrollBy(m.t.Rows() - 1)
		m.flushSticky()
		return m, nil
	case "shift+pgdown":
		m.t.ScrollBy(-(m.t.Rows() - 1))
		m.flushSticky()
		return m, nil
	case "shift+end":
		m.t.ScrollToBottom()
		m.flushSticky()
		return m, nil
	}
	if data := keyToPTYBytes(msg); len(data) > 0 {
		if m.t.ScrollOffset() > 0 && m.t.BufferKind() == term.BufferNormal {
			// typing snaps back to live output
			m.t.ScrollToBottom()
		}
		return m, writePTYCmd(m.t, data)
	}
	return m, nil
}

// flushSticky runs any pending sticky refresh so the frame about to render
// shows current overlay state.
func (m *Model) flushSticky() {
	if c, ok := sticky.Get(m.t); ok {
		c.Flush()
	}
}

// applySettings pushes reloaded settings into the terminal options; the
// sticky overlay re-copies visual options on its next refresh.
func (m *Model) applySettings() {
	o := m.t.Options()
	o.Theme = m.settings.Theme
	o.TabWidth = m.settings.TabWidth
	o.ScrollbackLimit = m.settings.ScrollbackLimit
	o.MinContrast = m.settings.MinContrast
	m.t.SetOptions(o)
	m.flushSticky()
}
