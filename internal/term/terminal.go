package term

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/x/vt"
	"github.com/charmbracelet/x/xpty"
)

// Terminal is the host terminal instance: a PTY-backed shell whose output
// is split into a styled scrollback history (the normal buffer) and mirrored
// into a vt emulator used to render the alternate full-screen buffer.
//
// Absolute line indices address scrollback history; they stay stable even
// after old lines are trimmed. BaseY is the index just past the last
// completed line, i.e. the bottom of scroll history where the partial line
// lives.
type Terminal struct {
	mu sync.Mutex

	cols, rows int
	opts       Options

	emu *vt.Emulator
	pty xpty.Pty
	cmd *exec.Cmd

	// scrollback
	history   []string // completed styled lines (SGR kept, OSC stripped)
	startLine int      // absolute index of history[0]
	partial   string   // styled text after the last line feed
	offset    int      // lines scrolled up from the bottom; 0 = pinned

	alt      bool
	ready    bool
	disposed bool

	// lexer state carried across chunks
	lexState lexState
	seq      []byte

	scrollLs   listenerSet[struct{}]
	lineFeedLs listenerSet[struct{}]
	bufferLs   listenerSet[BufferKind]
	readyLs    listenerSet[struct{}]
	oscLs      listenerSet[oscEvent]
	lineLs     listenerSet[lineEvent]
	capLs      listenerSet[Capability]
	disposeLs  listenerSet[struct{}]

	caps map[Capability]any
}

// New creates a terminal surface of the given size. No PTY is started;
// callers either Start a shell or feed bytes through Advance directly.
func New(cols, rows int, opts Options) *Terminal {
	if cols < 1 {
		cols = 80
	}
	if rows < 1 {
		rows = 24
	}
	return &Terminal{
		cols: cols,
		rows: rows,
		opts: opts,
		emu:  vt.NewEmulator(cols, rows),
	}
}

// Start launches shell (or $SHELL when empty) on a fresh PTY sized to the
// terminal.
func (t *Terminal) Start(shell string) error {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	t.mu.Lock()
	cols, rows := t.cols, t.rows
	t.mu.Unlock()

	p, err := xpty.NewPty(cols, rows)
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	if err := p.Start(cmd); err != nil {
		_ = p.Close()
		return fmt.Errorf("start shell: %w", err)
	}

	t.mu.Lock()
	t.pty = p
	t.cmd = cmd
	t.mu.Unlock()
	return nil
}

// Read performs one blocking PTY read into buf.
func (t *Terminal) Read(buf []byte) (int, error) {
	t.mu.Lock()
	p := t.pty
	t.mu.Unlock()
	if p == nil {
		return 0, os.ErrClosed
	}
	return p.Read(buf)
}

// Input writes user input bytes to the shell.
func (t *Terminal) Input(data []byte) error {
	t.mu.Lock()
	p := t.pty
	t.mu.Unlock()
	if p == nil {
		return os.ErrClosed
	}
	_, err := p.Write(data)
	return err
}

// Cols returns the column count of the surface.
func (t *Terminal) Cols() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cols
}

// Rows returns the visible row count of the surface.
func (t *Terminal) Rows() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows
}

// Options returns the current option set.
func (t *Terminal) Options() Options {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts
}

// SetOptions replaces the option set. Visual consumers re-read options on
// refresh, so no change event fires.
func (t *Terminal) SetOptions(o Options) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opts = o
}

// BufferKind reports the active screen buffer.
func (t *Terminal) BufferKind() BufferKind {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.alt {
		return BufferAlt
	}
	return BufferNormal
}

// Ready reports whether the rendered surface is available.
func (t *Terminal) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}

// SetReady marks the rendered surface available and fires ready listeners.
// Idempotent.
func (t *Terminal) SetReady() {
	t.mu.Lock()
	if t.ready {
		t.mu.Unlock()
		return
	}
	t.ready = true
	ls := t.readyLs.snapshot()
	t.mu.Unlock()
	for _, fn := range ls {
		fn(struct{}{})
	}
}

// Resize changes the surface size, resizing the emulator and PTY to match.
func (t *Terminal) Resize(cols, rows int) {
	if cols < 1 || rows < 1 {
		return
	}
	t.mu.Lock()
	t.cols, t.rows = cols, rows
	t.emu.Resize(cols, rows)
	p := t.pty
	t.clampOffsetLocked()
	evs := t.scrollEventsLocked()
	t.mu.Unlock()
	if p != nil {
		_ = p.Resize(cols, rows)
	}
	t.fire(evs)
}

// Dispose releases the PTY and notifies dispose listeners. All owned
// resources of attached contributions are released through this one path.
func (t *Terminal) Dispose() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	p := t.pty
	t.pty = nil
	ls := t.disposeLs.snapshot()
	t.mu.Unlock()
	if p != nil {
		_ = p.Close()
	}
	for _, fn := range ls {
		fn(struct{}{})
	}
}

// OnDispose registers fn to run when the terminal is disposed.
func (t *Terminal) OnDispose(fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.disposeLs.add(func(struct{}) { fn() }))
}

type lexState int

const (
	lexNormal lexState = iota
	lexEsc
	lexCSI
	lexOSC
	lexOSCEsc
)

// Advance feeds a chunk of shell output through the terminal: the styled
// scrollback is updated, OSC sequences are dispatched to observers (and
// stripped before reaching the emulator, which otherwise leaks them into
// the host terminal), and buffer switches are tracked.
func (t *Terminal) Advance(data []byte) {
	if len(data) == 0 {
		return
	}
	t.mu.Lock()
	var evs []event
	emuBytes := make([]byte, 0, len(data))

	for _, b := range data {
		switch t.lexState {
		case lexNormal:
			switch b {
			case 0x1b:
				t.lexState = lexEsc
				t.seq = append(t.seq[:0], b)
			case '\n':
				evs = append(evs, t.completeLineLocked()...)
				emuBytes = append(emuBytes, b)
			case '\r':
				// carriage return redraws the partial line from scratch
				if !t.alt {
					t.partial = ""
				}
				emuBytes = append(emuBytes, b)
			default:
				if !t.alt && (b >= 0x20 || b == '\t') {
					t.partial += string([]byte{b})
				}
				emuBytes = append(emuBytes, b)
			}
		case lexEsc:
			switch b {
			case '[':
				t.lexState = lexCSI
				t.seq = append(t.seq, b)
			case ']':
				t.lexState = lexOSC
				t.seq = t.seq[:0]
			default:
				// two-byte escape; drop from history, forward to emulator
				t.lexState = lexNormal
				emuBytes = append(emuBytes, 0x1b, b)
			}
		case lexCSI:
			t.seq = append(t.seq, b)
			if b >= 0x40 && b <= 0x7e {
				evs = append(evs, t.finishCSILocked()...)
				emuBytes = append(emuBytes, t.seq...)
				t.lexState = lexNormal
			}
		case lexOSC:
			switch b {
			case 0x07:
				evs = append(evs, t.finishOSCLocked()...)
				t.lexState = lexNormal
			case 0x1b:
				t.lexState = lexOSCEsc
			default:
				t.seq = append(t.seq, b)
			}
		case lexOSCEsc:
			if b == '\\' {
				evs = append(evs, t.finishOSCLocked()...)
				t.lexState = lexNormal
			} else {
				// not a string terminator; keep both bytes in the payload
				t.seq = append(t.seq, 0x1b, b)
				t.lexState = lexOSC
			}
		}
	}

	_, _ = t.emu.Write(emuBytes)
	t.mu.Unlock()
	t.fire(evs)
}

// completeLineLocked moves the partial line into history and emits
// line-feed plus line events. While the alternate buffer is active output
// never reaches scrollback.
func (t *Terminal) completeLineLocked() []event {
	if t.alt {
		return nil
	}
	line := t.partial
	idx := t.startLine + len(t.history)
	t.partial = ""
	t.history = append(t.history, line)
	if lim := t.opts.ScrollbackLimit; lim > 0 && len(t.history) > lim {
		drop := len(t.history) - lim
		t.history = t.history[drop:]
		t.startLine += drop
	}
	if t.offset > 0 {
		// keep the viewed window anchored while new output arrives
		t.offset++
		t.clampOffsetLocked()
	}

	var evs []event
	for _, fn := range t.lineLs.snapshot() {
		fn := fn
		evs = append(evs, func() { fn(lineEvent{text: stripSGR(line), line: idx}) })
	}
	for _, fn := range t.lineFeedLs.snapshot() {
		fn := fn
		evs = append(evs, func() { fn(struct{}{}) })
	}
	return evs
}

// finishCSILocked inspects a complete CSI sequence: SGR styling is kept in
// the partial line; alternate-buffer switches (DECSET/DECRST 1049, 1047,
// 47) flip the buffer kind; everything else is dropped from history.
func (t *Terminal) finishCSILocked() []event {
	seq := string(t.seq) // starts with ESC [
	body := seq[2:]
	if len(body) == 0 {
		return nil
	}
	final := body[len(body)-1]
	params := body[:len(body)-1]

	if final == 'm' && !t.alt {
		t.partial += seq
		return nil
	}
	if (final == 'h' || final == 'l') && strings.HasPrefix(params, "?") {
		switch strings.TrimPrefix(params, "?") {
		case "1049", "1047", "47":
			alt := final == 'h'
			if alt == t.alt {
				return nil
			}
			t.alt = alt
			if !alt {
				t.partial = ""
			}
			kind := BufferNormal
			if alt {
				kind = BufferAlt
			}
			var evs []event
			for _, fn := range t.bufferLs.snapshot() {
				fn := fn
				evs = append(evs, func() { fn(kind) })
			}
			return evs
		}
	}
	return nil
}

func (t *Terminal) finishOSCLocked() []event {
	payload := string(t.seq)
	t.seq = t.seq[:0]
	line := t.startLine + len(t.history)
	var evs []event
	for _, fn := range t.oscLs.snapshot() {
		fn := fn
		evs = append(evs, func() { fn(oscEvent{payload: payload, line: line}) })
	}
	return evs
}

// stripSGR removes CSI sequences from a history line, yielding plain text
// for observers that match on content.
func stripSGR(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
