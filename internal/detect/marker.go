package detect

// Marker locates a command inside scrollback history. The two variants
// mirror how in-progress and completed commands are tracked: a command
// still running only has the line its input started on, while a finished
// one is anchored at its prompt region.
type Marker interface {
	// Line returns the absolute history line the marker points at.
	Line() int
	sealed()
}

// StartMarker anchors an in-progress command at the line its input began.
type StartMarker struct{ L int }

// Line implements Marker.
func (m StartMarker) Line() int { return m.L }
func (StartMarker) sealed()     {}

// PromptMarker anchors a completed command at its prompt line.
type PromptMarker struct{ L int }

// Line implements Marker.
func (m PromptMarker) Line() int { return m.L }
func (PromptMarker) sealed()     {}

// Command is one detected shell command.
type Command struct {
	// Text is the command line as typed, best effort.
	Text string
	// Marker anchors the command in history; nil when unknown.
	Marker Marker
	// Running reports whether the command has not finished yet.
	Running bool
	// ExitCode is valid once Running is false and the shell reported one.
	ExitCode int
	// HasExit reports whether ExitCode was reported.
	HasExit bool
}
