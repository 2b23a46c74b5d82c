package contrib

import (
	"testing"

	"shellpane/internal/term"
)

type testContribution struct {
	t        *term.Terminal
	disposed bool
}

func (c *testContribution) Dispose() { c.disposed = true }

func TestActivate_GatedOnCapability(t *testing.T) {
	const capKind = term.Capability("test-cap-gated")
	var built int
	Register(Registration{
		ID:         "test.gated",
		Capability: capKind,
		New: func(tr *term.Terminal) Contribution {
			built++
			return &testContribution{t: tr}
		},
	})

	tr := term.New(80, 24, term.DefaultOptions())
	Activate(tr)
	if built != 0 {
		t.Fatalf("contribution built before capability appeared")
	}
	if _, ok := Get(tr, "test.gated"); ok {
		t.Fatalf("Get returned unbuilt contribution")
	}

	tr.RegisterCapability(capKind, struct{}{})
	if built != 1 {
		t.Fatalf("built = %d after capability registration, want 1", built)
	}
	c, ok := Get(tr, "test.gated")
	if !ok {
		t.Fatalf("Get failed after activation")
	}
	if c.(*testContribution).t != tr {
		t.Fatalf("contribution bound to wrong terminal")
	}

	// re-registering the capability must not double-instantiate
	tr.RegisterCapability(capKind, struct{}{})
	if built != 1 {
		t.Fatalf("built = %d after duplicate capability, want 1", built)
	}
}

func TestActivate_UngatedBuildsImmediately(t *testing.T) {
	var built int
	Register(Registration{
		ID: "test.ungated",
		New: func(tr *term.Terminal) Contribution {
			built++
			return &testContribution{t: tr}
		},
	})
	tr := term.New(80, 24, term.DefaultOptions())
	Activate(tr)
	if built != 1 {
		t.Fatalf("built = %d, want 1", built)
	}
}

func TestDispose_ReleasesContributions(t *testing.T) {
	var inst *testContribution
	Register(Registration{
		ID: "test.disposal",
		New: func(tr *term.Terminal) Contribution {
			inst = &testContribution{t: tr}
			return inst
		},
	})
	tr := term.New(80, 24, term.DefaultOptions())
	Activate(tr)
	if inst == nil {
		t.Fatalf("contribution not built")
	}
	tr.Dispose()
	if !inst.disposed {
		t.Fatalf("contribution not disposed with terminal")
	}
	if _, ok := Get(tr, "test.disposal"); ok {
		t.Fatalf("disposed contribution still discoverable")
	}
}
