package term

import "time"

// Options carries the visual and behavioral configuration of a terminal
// surface. The sticky overlay copies the visual fields from its primary on
// every refresh and hard-codes the interaction fields, so a theme or tab
// width change is picked up without a dedicated change notification.
type Options struct {
	// Theme names the color palette (resolved via internal/theme).
	Theme string
	// TabWidth is the tab stop width in cells.
	TabWidth int
	// ScrollbackLimit caps retained history lines; 0 means unlimited.
	ScrollbackLimit int
	// MinContrast is the minimum contrast ratio enforced when rendering.
	MinContrast float64
	// DrawBoldBright renders bold text with bright palette colors.
	DrawBoldBright bool
	// CursorHidden suppresses cursor rendering.
	CursorHidden bool
	// Logging enables per-surface diagnostic logging.
	Logging bool
	// RefreshDebounce is the coalescing window for event-driven refreshes
	// of attached contributions. Zero still coalesces (trailing edge, no
	// minimum delay).
	RefreshDebounce time.Duration
}

// DefaultOptions returns the options applied to a primary surface.
func DefaultOptions() Options {
	return Options{
		Theme:           "vitesse-dark",
		TabWidth:        8,
		ScrollbackLimit: 10000,
		MinContrast:     1,
		DrawBoldBright:  true,
	}
}
