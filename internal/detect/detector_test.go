package detect

import (
	"fmt"
	"testing"

	"shellpane/internal/term"
)

func newAttached(t *testing.T) (*term.Terminal, *Detector) {
	t.Helper()
	tr := term.New(80, 24, term.DefaultOptions())
	return tr, Attach(tr)
}

func TestAttach_RegistersCapability(t *testing.T) {
	tr, d := newAttached(t)
	v, ok := tr.Capability(term.CapCommandDetection)
	if !ok {
		t.Fatalf("capability not registered")
	}
	if v.(*Detector) != d {
		t.Fatalf("capability is not the attached detector")
	}
}

func TestOSC133_CommandLifecycle(t *testing.T) {
	tr, d := newAttached(t)

	// prompt on line 0, command typed, runs, exits 0
	tr.Advance([]byte("\x1b]133;A\x07$ "))
	tr.Advance([]byte("\x1b]133;B\x07ls -la\n"))
	tr.Advance([]byte("\x1b]133;C\x07total 8\nfile\n"))

	cmds := d.Commands()
	if len(cmds) != 1 {
		t.Fatalf("running commands = %d, want 1", len(cmds))
	}
	if !cmds[0].Running {
		t.Fatalf("command not marked running")
	}
	if _, ok := cmds[0].Marker.(StartMarker); !ok {
		t.Fatalf("running command marker = %T, want StartMarker", cmds[0].Marker)
	}
	if cmds[0].Marker.Line() != 0 {
		t.Fatalf("start marker line = %d, want 0", cmds[0].Marker.Line())
	}

	tr.Advance([]byte("\x1b]133;D;0\x07\x1b]133;A\x07$ "))
	cmds = d.Commands()
	if len(cmds) != 1 {
		t.Fatalf("finished commands = %d, want 1", len(cmds))
	}
	c := cmds[0]
	if c.Running {
		t.Fatalf("command still running after D")
	}
	if _, ok := c.Marker.(PromptMarker); !ok {
		t.Fatalf("finished command marker = %T, want PromptMarker", c.Marker)
	}
	if !c.HasExit || c.ExitCode != 0 {
		t.Fatalf("exit = %d (has %v), want 0", c.ExitCode, c.HasExit)
	}
	if c.Text != "ls -la" {
		t.Fatalf("command text = %q, want %q", c.Text, "ls -la")
	}
}

func TestOSC133_ExitCodeNonZero(t *testing.T) {
	tr, d := newAttached(t)
	tr.Advance([]byte("\x1b]133;B\x07false\n\x1b]133;C\x07\x1b]133;D;1\x07"))
	cmds := d.Commands()
	if len(cmds) != 1 || cmds[0].ExitCode != 1 || !cmds[0].HasExit {
		t.Fatalf("commands = %+v", cmds)
	}
}

func TestCommandAt_CoversFollowingOutput(t *testing.T) {
	tr, d := newAttached(t)
	// three commands at lines 0, 10, 20 with 9 output lines each
	for n := 0; n < 3; n++ {
		tr.Advance([]byte(fmt.Sprintf("\x1b]133;B\x07cmd%d\n", n)))
		tr.Advance([]byte("\x1b]133;C\x07"))
		for i := 0; i < 9; i++ {
			tr.Advance([]byte(fmt.Sprintf("out %d.%d\n", n, i)))
		}
		tr.Advance([]byte("\x1b]133;D;0\x07"))
	}

	cases := []struct {
		line int
		want string
		ok   bool
	}{
		{0, "cmd0", true},
		{5, "cmd0", true},
		{9, "cmd0", true},
		{10, "cmd1", true},
		{19, "cmd1", true},
		{20, "cmd2", true},
		{29, "cmd2", true},
	}
	for _, tc := range cases {
		c, ok := d.CommandAt(tc.line)
		if ok != tc.ok || (ok && c.Text != tc.want) {
			t.Fatalf("CommandAt(%d) = %q, %v; want %q, %v", tc.line, c.Text, ok, tc.want, tc.ok)
		}
	}
}

func TestCommandAt_BeforeFirstCommand(t *testing.T) {
	tr, d := newAttached(t)
	tr.Advance([]byte("motd banner\n\x1b]133;B\x07uptime\n\x1b]133;C\x07\x1b]133;D;0\x07"))
	if _, ok := d.CommandAt(0); ok {
		t.Fatalf("banner line attributed to a command")
	}
	c, ok := d.CommandAt(1)
	if !ok || c.Text != "uptime" {
		t.Fatalf("CommandAt(1) = %q, %v", c.Text, ok)
	}
}

func TestFallback_PromptPatterns(t *testing.T) {
	tr, d := newAttached(t)
	tr.Advance([]byte("user@host:~/src$ make test\n"))
	tr.Advance([]byte("ok\n"))
	cmds := d.Commands()
	if len(cmds) != 1 {
		t.Fatalf("fallback commands = %d, want 1", len(cmds))
	}
	if cmds[0].Text != "make test" {
		t.Fatalf("fallback text = %q", cmds[0].Text)
	}
	if _, ok := cmds[0].Marker.(PromptMarker); !ok {
		t.Fatalf("fallback marker = %T", cmds[0].Marker)
	}
}

func TestFallback_DisabledOnceOSCSeen(t *testing.T) {
	tr, d := newAttached(t)
	tr.Advance([]byte("\x1b]133;A\x07"))
	tr.Advance([]byte("user@host:~/src$ not-a-real-detection\n"))
	if got := len(d.Commands()); got != 0 {
		t.Fatalf("regex fallback still active after OSC 133: %d commands", got)
	}
}
