package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// Debug reports whether verbose diagnostics are enabled via SHELLPANE_DEBUG.
func Debug() bool {
	return os.Getenv("SHELLPANE_DEBUG") != ""
}

func init() {
	if Debug() {
		Logger.SetLevel(clog.DebugLevel)
	}
}
