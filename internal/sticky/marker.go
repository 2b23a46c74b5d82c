package sticky

import "shellpane/internal/detect"

// InvalidLine is the sentinel for "no marker recorded".
const InvalidLine = -1

// ResolveMarkerLine maps either command-marker variant to its absolute
// history line. A nil marker or a negative line resolves to the sentinel.
func ResolveMarkerLine(m detect.Marker) int {
	var line int
	switch m := m.(type) {
	case detect.StartMarker:
		line = m.L
	case detect.PromptMarker:
		line = m.L
	default:
		return InvalidLine
	}
	if line < 0 {
		return InvalidLine
	}
	return line
}
