package ui

import tea "github.com/charmbracelet/bubbletea"

// keyToPTYBytes encodes a key press as the byte sequence the shell
// expects. Unhandled keys return nil and are swallowed.
func keyToPTYBytes(k tea.KeyMsg) []byte {
	if k.Type == tea.KeyRunes && len(k.Runes) > 0 {
		return []byte(string(k.Runes))
	}
	switch k.Type {
	case tea.KeySpace:
		return []byte(" ")
	case tea.KeyEnter:
		return []byte("\r")
	case tea.KeyBackspace:
		return []byte{0x7f}
	}
	switch k.String() {
	case "up":
		return []byte("\x1b[A")
	case "down":
		return []byte("\x1b[B")
	case "right":
		return []byte("\x1b[C")
	case "left":
		return []byte("\x1b[D")
	case "home":
		return []byte("\x1b[H")
	case "end":
		return []byte("\x1b[F")
	case "pgup":
		return []byte("\x1b[5~")
	case "pgdown":
		return []byte("\x1b[6~")
	case "delete":
		return []byte("\x1b[3~")
	case "tab":
		return []byte("\t")
	case "esc":
		return []byte{0x1b}
	case "ctrl+c":
		return []byte{0x03}
	case "ctrl+d":
		return []byte{0x04}
	case "ctrl+l":
		return []byte{0x0c}
	case "ctrl+r":
		return []byte{0x12}
	case "ctrl+u":
		return []byte{0x15}
	case "ctrl+w":
		return []byte{0x17}
	case "ctrl+z":
		return []byte{0x1a}
	}
	return nil
}
