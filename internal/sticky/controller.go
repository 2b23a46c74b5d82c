// Package sticky keeps a one-line header above a terminal pane showing the
// shell command that produced the output currently at the top of the
// viewport. It attaches to a terminal as a contribution, listens for
// scroll, line-feed and buffer-change events, resolves the pinned command
// through the command-detection capability, and mirrors one styled line
// into a dedicated one-row overlay surface.
package sticky

import (
	"fmt"
	"strings"
	"sync"

	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"shellpane/internal/detect"
	"shellpane/internal/system"
	"shellpane/internal/term"
)

// ContributionID is the registry key of the sticky overlay contribution.
const ContributionID = "sticky-scroll"

// CommandSource is the command-detection capability the controller reads:
// it maps an absolute history line to the command covering it.
type CommandSource interface {
	CommandAt(line int) (detect.Command, bool)
}

// Controller owns the overlay for one terminal instance.
type Controller struct {
	t   *term.Terminal
	deb *Debouncer

	mu         sync.Mutex
	ov         *overlay
	markerLine int
	disabled   bool
	disposed   bool

	buildOnce sync.Once
	unsubs    []func()
	zoneID    string
}

// New attaches a controller to t: listeners are registered immediately and
// the overlay surface is constructed asynchronously. Refreshes arriving
// before the overlay exists are tolerated and simply not drawn; they are
// not replayed.
func New(t *term.Terminal) *Controller {
	c := &Controller{
		t:          t,
		deb:        NewDebouncer(t.Options().RefreshDebounce),
		markerLine: InvalidLine,
		zoneID:     fmt.Sprintf("sticky.%p", t),
	}
	c.unsubs = append(c.unsubs,
		t.OnScroll(c.Refresh),
		t.OnLineFeed(c.Refresh),
		t.OnBufferChange(c.bufferChanged),
		t.OnReady(c.Refresh),
	)
	go c.ensureOverlay()
	return c
}

// ensureOverlay constructs the overlay surface on first call and returns
// it afterwards; construction failure disables the feature for this
// terminal rather than panicking the host.
func (c *Controller) ensureOverlay() *overlay {
	c.buildOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				system.Logger.Error("sticky overlay construction failed; feature disabled", "err", r)
				c.mu.Lock()
				c.disabled = true
				c.mu.Unlock()
			}
		}()
		ov := newOverlay(c.t.Cols())
		c.mu.Lock()
		c.ov = ov
		c.mu.Unlock()
		c.Refresh()
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ov
}

// Refresh schedules a refresh; bursts within the debounce window coalesce
// into one trailing execution.
func (c *Controller) Refresh() {
	c.deb.Trigger(c.refresh)
}

// Flush forces any pending refresh to run now. Used by hosts that need the
// overlay current before rendering, and by tests.
func (c *Controller) Flush() {
	c.deb.Flush()
}

func (c *Controller) bufferChanged(kind term.BufferKind) {
	if kind == term.BufferAlt {
		// hidden immediately; no stale header over a full-screen app
		c.mu.Lock()
		ov := c.ov
		c.mu.Unlock()
		if ov != nil {
			ov.setVisible(false)
		}
	}
	c.Refresh()
}

// refresh is the debounced body. Every failure path is a silent early
// return: the overlay keeps its last state and nothing surfaces to the
// user.
func (c *Controller) refresh() {
	c.mu.Lock()
	if c.disposed || c.disabled {
		c.mu.Unlock()
		return
	}
	ov := c.ov
	c.mu.Unlock()

	t := c.t
	if !t.Ready() {
		return
	}

	c.setMarker(InvalidLine)

	src, ok := commandSource(t)
	if !ok {
		return
	}
	cmd, ok := src.CommandAt(t.ViewportTop())
	if !ok {
		return
	}
	line := ResolveMarkerLine(cmd.Marker)
	if line == InvalidLine {
		return
	}
	c.setMarker(line)

	if ov == nil {
		// overlay still constructing; next triggering event redraws
		return
	}

	content := firstLine(t.Serialize(t.BaseY() - line))
	visible := t.BufferKind() == term.BufferNormal && !blank(content)
	ov.setVisible(visible)
	if visible {
		ov.write(content)
		c.syncOptions(ov)
	}
	if system.Debug() {
		system.Logger.Debug("sticky refresh", "line", line, "command", cmd.Text, "visible", visible)
	}
}

// syncOptions mirrors the primary's visual configuration onto the overlay.
// Reapplied on every refresh since theme or tab width may change between
// refreshes without notification.
func (c *Controller) syncOptions(ov *overlay) {
	ov.applyOptions(c.t.Cols(), c.t.Options())
}

func (c *Controller) setMarker(line int) {
	c.mu.Lock()
	c.markerLine = line
	c.mu.Unlock()
}

// Marker returns the absolute line of the pinned command, or InvalidLine.
func (c *Controller) Marker() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.markerLine
}

// Visible reports whether the overlay is currently shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	ov := c.ov
	c.mu.Unlock()
	return ov != nil && ov.isVisible()
}

// View renders the overlay line wrapped in its click zone, or "" when
// hidden.
func (c *Controller) View() string {
	c.mu.Lock()
	ov := c.ov
	disabled := c.disabled
	c.mu.Unlock()
	if disabled || ov == nil || !ov.isVisible() {
		return ""
	}
	return zone.Mark(c.zoneID, ov.view())
}

// ZoneID is the bubblezone id of the overlay's click target.
func (c *Controller) ZoneID() string {
	return c.zoneID
}

// Click scrolls the primary terminal so the pinned command's line is
// vertically centered. No-op without a recorded marker.
func (c *Controller) Click() {
	line := c.Marker()
	if line == InvalidLine {
		return
	}
	c.t.ScrollToLine(line, term.AlignCenter)
}

// Dispose releases listeners and the overlay. Called through the
// terminal's disposal path by the contribution registry.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	unsubs := c.unsubs
	c.unsubs = nil
	c.ov = nil
	c.mu.Unlock()
	c.deb.Stop()
	for _, u := range unsubs {
		u()
	}
}

func commandSource(t *term.Terminal) (CommandSource, bool) {
	v, ok := t.Capability(term.CapCommandDetection)
	if !ok {
		return nil, false
	}
	src, ok := v.(CommandSource)
	return src, ok
}

// firstLine truncates serialized content at the first line break, keeping
// styling escape sequences.
func firstLine(s string) string {
	first, _, _ := strings.Cut(s, "\n")
	return strings.TrimRight(first, "\r")
}

// blank reports whether styled content has no visible text.
func blank(s string) bool {
	return strings.TrimSpace(xansi.Strip(s)) == ""
}
