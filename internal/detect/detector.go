package detect

import (
	"strconv"
	"strings"
	"sync"

	"shellpane/internal/system"
	"shellpane/internal/term"
)

// Detector watches a terminal's output stream for shell-integration
// sequences (OSC 133) and records command boundaries against absolute
// scrollback lines. Shells without integration fall back to prompt pattern
// matching on completed lines.
//
// The detector registers itself as the terminal's command-detection
// capability; the sticky overlay and the command palette consume it
// through that lookup.
type Detector struct {
	mu       sync.Mutex
	commands []Command // sorted by marker line, ascending
	pending  *pendingCommand
	seenOSC  bool

	unsubs []func()
}

type pendingCommand struct {
	cmd       Command
	awaitText bool
}

// Attach creates a detector, subscribes it to the terminal's OSC and line
// streams, and publishes it as the command-detection capability.
func Attach(t *term.Terminal) *Detector {
	d := &Detector{}
	d.unsubs = append(d.unsubs,
		t.OnOSC(d.handleOSC),
		t.OnLine(d.handleLine),
		t.OnDispose(d.dispose),
	)
	t.RegisterCapability(term.CapCommandDetection, d)
	return d
}

func (d *Detector) dispose() {
	d.mu.Lock()
	unsubs := d.unsubs
	d.unsubs = nil
	d.mu.Unlock()
	for _, u := range unsubs {
		u()
	}
}

// handleOSC processes one OSC payload. Only "133;..." is of interest:
//
//	A prompt start, B command input start, C pre-execution, D;<code> done.
func (d *Detector) handleOSC(payload string, line int) {
	if !strings.HasPrefix(payload, "133;") {
		return
	}
	parts := strings.Split(payload[len("133;"):], ";")
	if len(parts) == 0 || parts[0] == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seenOSC = true

	switch parts[0] {
	case "A":
		// prompt start; nothing recorded until input begins
	case "B":
		d.pending = &pendingCommand{
			cmd:       Command{Marker: StartMarker{L: line}, Running: true},
			awaitText: true,
		}
	case "C":
		if d.pending != nil {
			d.pending.awaitText = false
		}
	case "D":
		p := d.pending
		d.pending = nil
		if p == nil {
			return
		}
		c := p.cmd
		c.Running = false
		c.Marker = PromptMarker{L: c.Marker.Line()}
		if len(parts) > 1 {
			if code, err := strconv.Atoi(parts[1]); err == nil {
				c.ExitCode = code
				c.HasExit = true
			}
		}
		d.appendLocked(c)
		if system.Debug() {
			system.Logger.Debug("command finished", "text", c.Text, "line", c.Marker.Line(), "exit", c.ExitCode)
		}
	}
}

// handleLine captures command text for a pending OSC command, or falls
// back to prompt pattern matching when the shell has no integration.
func (d *Detector) handleLine(text string, line int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil && d.pending.awaitText {
		// first completed line after 133;B is the typed command line
		d.pending.cmd.Text = strings.TrimSpace(trimPrompt(text))
		d.pending.awaitText = false
		return
	}
	if d.seenOSC {
		return
	}
	if cmdText, ok := matchPrompt(text); ok {
		d.appendLocked(Command{
			Text:   cmdText,
			Marker: PromptMarker{L: line},
		})
	}
}

func (d *Detector) appendLocked(c Command) {
	// markers arrive in line order; tolerate redraw duplicates at the
	// same line by replacing
	if n := len(d.commands); n > 0 && d.commands[n-1].Marker.Line() == c.Marker.Line() {
		d.commands[n-1] = c
		return
	}
	d.commands = append(d.commands, c)
}

// Commands returns a snapshot of detected commands, oldest first.
func (d *Detector) Commands() []Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Command, len(d.commands))
	copy(out, d.commands)
	if d.pending != nil && !d.pending.awaitText {
		out = append(out, d.pending.cmd)
	}
	return out
}

// CommandAt returns the command covering the given absolute history line:
// the latest command whose marker line is at or above it.
func (d *Detector) CommandAt(line int) (Command, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p := d.pending; p != nil && !p.awaitText && p.cmd.Marker.Line() <= line {
		return p.cmd, true
	}
	lo, hi := 0, len(d.commands)
	for lo < hi {
		mid := (lo + hi) / 2
		if d.commands[mid].Marker.Line() <= line {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return Command{}, false
	}
	return d.commands[lo-1], true
}
