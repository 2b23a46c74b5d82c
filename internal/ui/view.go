package ui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	runewidth "github.com/mattn/go-runewidth"

	"shellpane/internal/sticky"
	"shellpane/internal/term"
	"shellpane/internal/theme"
	appver "shellpane/internal/version"
)

func (m Model) View() string {
	if m.quitting {
		if m.errText != "" {
			return "shellpane: " + m.errText + "\n"
		}
		return ""
	}
	if !m.ready {
		return "starting…\n"
	}

	b := &strings.Builder{}

	// sticky header row (blank when hidden so the pane doesn't jump)
	header := ""
	if c, ok := sticky.Get(m.t); ok {
		header = c.View()
	}
	if header == "" {
		header = strings.Repeat(" ", m.width)
	}
	b.WriteString(header)
	b.WriteString("\n")

	for _, line := range m.t.VisibleLines() {
		b.WriteString(line)
		b.WriteString("\x1b[0m\n")
	}

	if m.paletteOpen {
		// palette floats above the status bar; simplest stable layout is
		// to draw it in place of the last pane rows
		pal := m.renderPalette()
		out := b.String()
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		palLines := strings.Split(pal, "\n")
		if len(palLines) < len(lines) {
			copy(lines[len(lines)-len(palLines):], palLines)
		}
		b = &strings.Builder{}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	return zone.Scan(b.String())
}

// renderStatusBar draws mode, scroll position, and key hints.
func (m Model) renderStatusBar() string {
	th := theme.Lookup(m.settings.Theme)
	base := th.StatusBarBase()

	left := th.ChipStyle(th.Primary).Render("shellpane")
	mode := "normal"
	if m.t.BufferKind() == term.BufferAlt {
		mode = "alt"
	}
	parts := []string{left, base.Render(padCell(" "+mode, 8))}

	if off := m.t.ScrollOffset(); off > 0 {
		scrolled := th.ChipStyle(th.Yellow).Render(fmt.Sprintf("↑%d", off))
		parts = append(parts, zone.Mark("pane.status.bottom", scrolled))
	}

	hints := "alt+p palette · shift+pgup/pgdn scroll · ctrl+q quit"
	right := base.Render(hints+" ") + th.ChipStyle(th.Blue).Render("v"+appver.AppVersion)

	leftStr := strings.Join(parts, "")
	gap := m.width - xansi.StringWidth(leftStr) - xansi.StringWidth(right)
	if gap < 1 {
		// drop hints on narrow panes
		right = th.ChipStyle(th.Blue).Render("v" + appver.AppVersion)
		gap = m.width - xansi.StringWidth(leftStr) - xansi.StringWidth(right)
		if gap < 1 {
			gap = 1
		}
	}
	return leftStr + base.Render(strings.Repeat(" ", gap)) + right
}

// padCell right-pads s with spaces to the given display width.
func padCell(s string, w int) string {
	if d := w - runewidth.StringWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
