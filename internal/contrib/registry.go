// Package contrib is a small registry of per-terminal contributions:
// named features that attach to a terminal instance once its activation
// capability appears and are released together with it.
package contrib

import (
	"sync"

	"shellpane/internal/term"
)

// Contribution is one attached feature instance.
type Contribution interface {
	Dispose()
}

// Registration describes a contribution type.
type Registration struct {
	// ID is the stable lookup key.
	ID string
	// Capability gates activation; zero value activates immediately.
	Capability term.Capability
	// New constructs the contribution for a terminal.
	New func(*term.Terminal) Contribution
}

var (
	mu            sync.Mutex
	registrations []Registration
	instances     = map[*term.Terminal]map[string]Contribution{}
)

// Register adds a contribution type. Typically called from package init.
func Register(r Registration) {
	mu.Lock()
	defer mu.Unlock()
	registrations = append(registrations, r)
}

// Activate instantiates registered contributions for t: those without an
// activation capability now, gated ones when their capability is (or
// becomes) registered. Disposal is wired to the terminal's dispose path.
func Activate(t *term.Terminal) {
	mu.Lock()
	regs := make([]Registration, len(registrations))
	copy(regs, registrations)
	mu.Unlock()

	tryAll := func() {
		for _, r := range regs {
			if r.Capability != "" {
				if _, ok := t.Capability(r.Capability); !ok {
					continue
				}
			}
			instantiate(t, r)
		}
	}
	tryAll()
	unsub := t.OnCapability(func(term.Capability) { tryAll() })
	t.OnDispose(func() {
		unsub()
		Release(t)
	})
}

func instantiate(t *term.Terminal, r Registration) {
	mu.Lock()
	byID := instances[t]
	if byID == nil {
		byID = map[string]Contribution{}
		instances[t] = byID
	}
	if _, exists := byID[r.ID]; exists {
		mu.Unlock()
		return
	}
	// reserve the slot before constructing so a re-entrant Activate
	// cannot double-instantiate
	byID[r.ID] = nil
	mu.Unlock()

	c := r.New(t)

	mu.Lock()
	instances[t][r.ID] = c
	mu.Unlock()
}

// Get returns the contribution with id attached to t, if any.
func Get(t *term.Terminal, id string) (Contribution, bool) {
	mu.Lock()
	defer mu.Unlock()
	c, ok := instances[t][id]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

// Release disposes and forgets every contribution attached to t.
func Release(t *term.Terminal) {
	mu.Lock()
	byID := instances[t]
	delete(instances, t)
	mu.Unlock()
	for _, c := range byID {
		if c != nil {
			c.Dispose()
		}
	}
}
