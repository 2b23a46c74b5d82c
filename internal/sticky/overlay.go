package sticky

import (
	"strings"
	"sync"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/vt"

	"shellpane/internal/term"
	"shellpane/internal/theme"
)

// overlay is the sticky header surface: a one-row, non-interactive
// terminal emulator used purely as a rendering target for a single styled
// line mirrored out of the primary's scrollback.
type overlay struct {
	mu      sync.Mutex
	emu     *vt.Emulator
	cols    int
	opts    term.Options
	visible bool
}

func newOverlay(cols int) *overlay {
	if cols < 1 {
		cols = 80
	}
	return &overlay{
		emu:  vt.NewEmulator(cols, 1),
		cols: cols,
	}
}

// applyOptions resizes the surface to the primary's column count and one
// row, copies the primary's visual options, and pins the interaction
// options: no cursor, no retained scrollback, no diagnostic logging.
func (o *overlay) applyOptions(cols int, primary term.Options) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if cols > 0 && cols != o.cols {
		o.cols = cols
		o.emu.Resize(cols, 1)
	}
	primary.CursorHidden = true
	primary.ScrollbackLimit = 0
	primary.Logging = false
	o.opts = primary
}

// write resets the row (cursor home, erase line) and writes the styled
// content into the emulator.
func (o *overlay) write(content string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = o.emu.Write([]byte("\x1b[H\x1b[2K"))
	_, _ = o.emu.Write([]byte(content))
}

func (o *overlay) setVisible(v bool) {
	o.mu.Lock()
	o.visible = v
	o.mu.Unlock()
}

func (o *overlay) isVisible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// view renders the overlay's single row, truncated to the column count and
// padded on the theme's sticky background. Empty when hidden.
func (o *overlay) view() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.visible {
		return ""
	}
	row, _, _ := strings.Cut(o.emu.Render(), "\r\n")
	row = strings.TrimRight(row, " ")
	if xansi.StringWidth(row) > o.cols {
		row = xansi.Truncate(row, o.cols, "…")
	}
	style := theme.Lookup(o.opts.Theme).StickyStyle()
	pad := o.cols - xansi.StringWidth(row)
	if pad < 0 {
		pad = 0
	}
	return style.Render(row + strings.Repeat(" ", pad))
}
