package term

// Capability identifies an optional per-terminal service registered by
// supporting packages and looked up by contributions.
type Capability string

// CapCommandDetection maps viewport rows to shell commands.
const CapCommandDetection Capability = "command-detection"

// RegisterCapability publishes a capability implementation on this
// terminal and notifies capability listeners.
func (t *Terminal) RegisterCapability(kind Capability, impl any) {
	t.mu.Lock()
	if t.caps == nil {
		t.caps = make(map[Capability]any)
	}
	t.caps[kind] = impl
	ls := t.capLs.snapshot()
	t.mu.Unlock()
	for _, fn := range ls {
		fn(kind)
	}
}

// Capability returns the registered implementation for kind, if any.
func (t *Terminal) Capability(kind Capability) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	impl, ok := t.caps[kind]
	return impl, ok
}

// OnCapability registers fn for capability registrations. Used by the
// contribution registry to activate lazily.
func (t *Terminal) OnCapability(fn func(Capability)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlock(t.capLs.add(fn))
}
