package detect

import "testing"

func TestMatchPrompt(t *testing.T) {
	cases := []struct {
		line string
		want string
		ok   bool
	}{
		{"user@host:~/src$ go build ./...", "go build ./...", true},
		{"bash-5.1$ echo hi", "echo hi", true},
		{"$ ls", "ls", true},
		{"# whoami", "whoami", true},
		{"> cat file", "cat file", true},
		{"❯ git status", "git status", true},
		{"plain output line", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := matchPrompt(tc.line)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("matchPrompt(%q) = %q, %v; want %q, %v", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTrimPrompt(t *testing.T) {
	if got := trimPrompt("$ make"); got != "make" {
		t.Fatalf("trimPrompt = %q", got)
	}
	if got := trimPrompt("make"); got != "make" {
		t.Fatalf("trimPrompt without prompt = %q", got)
	}
}
