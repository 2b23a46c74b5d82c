package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"shellpane/internal/detect"
	"shellpane/internal/term"
	"shellpane/internal/theme"
)

const paletteMaxRows = 10

// refreshPalette refilters detected commands against the input, newest
// first.
func (m *Model) refreshPalette() {
	cmds := m.det.Commands()
	// newest first
	rev := make([]detect.Command, 0, len(cmds))
	for i := len(cmds) - 1; i >= 0; i-- {
		rev = append(rev, cmds[i])
	}
	q := strings.TrimSpace(m.ti.Value())
	if q == "" {
		m.filtered = rev
	} else {
		texts := make([]string, len(rev))
		for i, c := range rev {
			texts[i] = c.Text
		}
		matches := fuzzy.Find(q, texts)
		m.filtered = make([]detect.Command, 0, len(matches))
		for _, mt := range matches {
			m.filtered = append(m.filtered, rev[mt.Index])
		}
	}
	if m.palIndex >= len(m.filtered) {
		m.palIndex = 0
	}
}

// renderPalette draws the jump-to-command box above the status bar.
func (m Model) renderPalette() string {
	th := theme.Lookup(m.settings.Theme)
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Primary).
		Padding(0, 1).
		Width(w)

	var b strings.Builder
	b.WriteString(m.ti.View())
	b.WriteString("\n")
	if len(m.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(th.Muted).Render("no commands detected yet"))
	}
	rows := len(m.filtered)
	if rows > paletteMaxRows {
		rows = paletteMaxRows
	}
	sel := lipgloss.NewStyle().Foreground(th.OnAccent).Background(th.Primary)
	dim := lipgloss.NewStyle().Foreground(th.Secondary)
	for i := 0; i < rows; i++ {
		c := m.filtered[i]
		status := " "
		if c.Running {
			status = "…"
		} else if c.HasExit && c.ExitCode != 0 {
			status = "✗"
		} else if c.HasExit {
			status = "✓"
		}
		line := fmt.Sprintf("%s %s", status, c.Text)
		if c.Marker != nil {
			line += dim.Render(fmt.Sprintf("  :%d", c.Marker.Line()))
		}
		if xansi.StringWidth(line) > w-2 {
			line = xansi.Truncate(line, w-2, "…")
		}
		if i == m.palIndex {
			line = sel.Render(line)
		}
		b.WriteString(line)
		if i < rows-1 {
			b.WriteString("\n")
		}
	}
	return box.Render(b.String())
}

// paletteJump scrolls the pane so the selected command is centered.
func (m *Model) paletteJump() {
	if m.palIndex < 0 || m.palIndex >= len(m.filtered) {
		return
	}
	c := m.filtered[m.palIndex]
	if c.Marker == nil {
		return
	}
	m.t.ScrollToLine(c.Marker.Line(), term.AlignCenter)
}
