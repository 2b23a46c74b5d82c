package version

// AppVersion is the shellpane release version. Overridden at build time via
// -ldflags "-X shellpane/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
