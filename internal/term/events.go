package term

// BufferKind identifies which screen buffer is active.
type BufferKind int

const (
	// BufferNormal is the scrollback-backed primary buffer.
	BufferNormal BufferKind = iota
	// BufferAlt is the alternate full-screen buffer (vim, less, ...).
	BufferAlt
)

// Align selects vertical placement for ScrollToLine.
type Align int

const (
	// AlignTop places the target line at the top of the viewport.
	AlignTop Align = iota
	// AlignCenter centers the target line vertically.
	AlignCenter
)

// listenerSet is a small keyed registry so listeners can unregister
// individually; firing order follows registration order close enough for
// our needs (map iteration is fine, listeners are independent).
type listenerSet[T any] struct {
	next int
	fns  map[int]func(T)
}

func (s *listenerSet[T]) add(fn func(T)) func() {
	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() { delete(s.fns, id) }
}

func (s *listenerSet[T]) snapshot() []func(T) {
	out := make([]func(T), 0, len(s.fns))
	for _, fn := range s.fns {
		out = append(out, fn)
	}
	return out
}

// unlock wraps a raw unregister func so it takes the terminal lock; the
// controller disposes from outside the event path.
func (t *Terminal) unlock(rm func()) func() {
	return func() {
		t.mu.Lock()
		rm()
		t.mu.Unlock()
	}
}

// OnScroll registers fn for viewport scroll changes. The returned func
// unregisters it.
func (t *Terminal) OnScroll(fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.scrollLs.add(func(struct{}) { fn() }))
}

// OnLineFeed registers fn for history line completion.
func (t *Terminal) OnLineFeed(fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.lineFeedLs.add(func(struct{}) { fn() }))
}

// OnBufferChange registers fn for normal/alt buffer switches.
func (t *Terminal) OnBufferChange(fn func(BufferKind)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.bufferLs.add(fn))
}

// OnReady registers fn to run once the rendered surface is available. When
// the terminal is already ready, fn runs immediately.
func (t *Terminal) OnReady(fn func()) func() {
	t.mu.Lock()
	if t.ready {
		t.mu.Unlock()
		fn()
		return func() {}
	}
	defer t.mu.Unlock()
	return t.unlock(t.readyLs.add(func(struct{}) { fn() }))
}

// OnOSC registers fn for OSC sequences carrying the absolute history line
// at which the sequence arrived. Used by command detection.
func (t *Terminal) OnOSC(fn func(payload string, line int)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.oscLs.add(func(e oscEvent) { fn(e.payload, e.line) }))
}

// OnLine registers fn for each completed history line (plain text, styling
// stripped) with its absolute index.
func (t *Terminal) OnLine(fn func(text string, line int)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.lineLs.add(func(e lineEvent) { fn(e.text, e.line) }))
}

type oscEvent struct {
	payload string
	line    int
}

type lineEvent struct {
	text string
	line int
}

// event is a deferred listener invocation collected under the terminal
// lock and fired after release, so listeners may call back into Terminal.
type event func()

func (t *Terminal) fire(evs []event) {
	for _, ev := range evs {
		ev()
	}
}
