package term

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// BaseY returns the absolute index just past the last completed history
// line: the bottom of scroll history, where the partial line lives.
func (t *Terminal) BaseY() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.baseYLocked()
}

func (t *Terminal) baseYLocked() int {
	return t.startLine + len(t.history)
}

// ViewportTop returns the absolute index of the line currently pinned to
// the top of the viewport.
func (t *Terminal) ViewportTop() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewportTopLocked()
}

func (t *Terminal) viewportTopLocked() int {
	// total addressable lines include the partial one
	total := t.baseYLocked() + 1
	top := total - t.rows - t.offset
	if top < t.startLine {
		top = t.startLine
	}
	return top
}

// ScrollOffset returns how many lines the viewport is scrolled up from the
// bottom; 0 means pinned to live output.
func (t *Terminal) ScrollOffset() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset
}

func (t *Terminal) maxOffsetLocked() int {
	m := t.baseYLocked() + 1 - t.rows - t.startLine
	if m < 0 {
		m = 0
	}
	return m
}

func (t *Terminal) clampOffsetLocked() {
	if t.offset < 0 {
		t.offset = 0
	}
	if m := t.maxOffsetLocked(); t.offset > m {
		t.offset = m
	}
}

func (t *Terminal) scrollEventsLocked() []event {
	var evs []event
	for _, fn := range t.scrollLs.snapshot() {
		fn := fn
		evs = append(evs, func() { fn(struct{}{}) })
	}
	return evs
}

// ScrollBy moves the viewport by delta lines; positive scrolls up into
// history. No-op on the alternate buffer.
func (t *Terminal) ScrollBy(delta int) {
	t.mu.Lock()
	if t.alt {
		t.mu.Unlock()
		return
	}
	before := t.offset
	t.offset += delta
	t.clampOffsetLocked()
	var evs []event
	if t.offset != before {
		evs = t.scrollEventsLocked()
	}
	t.mu.Unlock()
	t.fire(evs)
}

// ScrollToBottom pins the viewport back to live output.
func (t *Terminal) ScrollToBottom() {
	t.mu.Lock()
	var evs []event
	if t.offset != 0 {
		t.offset = 0
		evs = t.scrollEventsLocked()
	}
	t.mu.Unlock()
	t.fire(evs)
}

// ScrollToLine positions the viewport so the absolute line lands at the
// requested alignment.
func (t *Terminal) ScrollToLine(line int, align Align) {
	t.mu.Lock()
	wantTop := line
	if align == AlignCenter {
		wantTop = line - t.rows/2
	}
	total := t.baseYLocked() + 1
	before := t.offset
	t.offset = total - t.rows - wantTop
	t.clampOffsetLocked()
	var evs []event
	if t.offset != before {
		evs = t.scrollEventsLocked()
	}
	t.mu.Unlock()
	t.fire(evs)
}

// Serialize returns the styled text of the last scrollback history lines
// plus the partial line, newline-joined. A request for more lines than are
// retained is clamped to what exists. This is the serializer surface the
// sticky overlay reads from: asking for BaseY()−line lines makes the first
// line of the result the content of that absolute line.
func (t *Terminal) Serialize(scrollback int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	start := len(t.history) - scrollback
	if start < 0 {
		start = 0
	}
	if start > len(t.history) {
		start = len(t.history)
	}
	parts := make([]string, 0, len(t.history)-start+1)
	parts = append(parts, t.history[start:]...)
	parts = append(parts, t.partial)
	return strings.Join(parts, "\n")
}

// Line returns the styled content of an absolute history line, or "" when
// it has been trimmed or not yet written.
func (t *Terminal) Line(idx int) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := idx - t.startLine
	if i < 0 || i >= len(t.history) {
		return "", false
	}
	return t.history[i], true
}

// VisibleLines renders the viewport: the alternate buffer comes straight
// from the emulator, the normal buffer is a window over history. Each line
// is truncated to the column count with styling preserved.
func (t *Terminal) VisibleLines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.alt {
		out := t.emu.Render()
		lines := strings.Split(out, "\r\n")
		if len(lines) > t.rows {
			lines = lines[:t.rows]
		}
		return lines
	}

	top := t.viewportTopLocked()
	lines := make([]string, 0, t.rows)
	for i := top; i < top+t.rows; i++ {
		var s string
		switch {
		case i < t.baseYLocked():
			s = t.history[i-t.startLine]
		case i == t.baseYLocked():
			s = t.partial
		}
		if xansi.StringWidth(s) > t.cols {
			s = xansi.Truncate(s, t.cols, "")
		}
		lines = append(lines, s)
	}
	return lines
}
