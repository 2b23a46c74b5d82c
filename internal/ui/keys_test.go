package ui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyToPTYBytes(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want []byte
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")}, []byte("ls")},
		{tea.KeyMsg{Type: tea.KeyEnter}, []byte("\r")},
		{tea.KeyMsg{Type: tea.KeySpace}, []byte(" ")},
		{tea.KeyMsg{Type: tea.KeyBackspace}, []byte{0x7f}},
		{tea.KeyMsg{Type: tea.KeyUp}, []byte("\x1b[A")},
		{tea.KeyMsg{Type: tea.KeyTab}, []byte("\t")},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, []byte{0x03}},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, []byte{0x04}},
	}
	for _, tc := range cases {
		if got := keyToPTYBytes(tc.msg); !bytes.Equal(got, tc.want) {
			t.Fatalf("keyToPTYBytes(%s) = %q, want %q", tc.msg.String(), got, tc.want)
		}
	}
}
