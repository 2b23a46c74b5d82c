// Package theme centralizes the color palettes shared by the pane and the
// sticky overlay.
//
// The dark palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a resolved color palette.
type Theme struct {
	Name string

	// Core brand/semantic colors
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Red     lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	// Surfaces
	Bg     lipgloss.Color
	BgSoft lipgloss.Color
	Border lipgloss.Color

	// Text on accent backgrounds (buttons/chips)
	OnAccent lipgloss.Color
}

// VitesseDark is the default palette.
var VitesseDark = Theme{
	Name:    "vitesse-dark",
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#252525"),

	OnAccent: lipgloss.Color("#222"),
}

// VitesseLight is the light counterpart.
var VitesseLight = Theme{
	Name:    "vitesse-light",
	Primary: lipgloss.Color("#1c6b48"),
	Blue:    lipgloss.Color("#296aa3"),
	Yellow:  lipgloss.Color("#bda437"),
	Red:     lipgloss.Color("#ab5959"),

	Text:      lipgloss.Color("#393a34"),
	Secondary: lipgloss.Color("#6a6a66"),
	Muted:     lipgloss.Color("#a0a09a"),

	Bg:     lipgloss.Color("#ffffff"),
	BgSoft: lipgloss.Color("#f1f0e9"),
	Border: lipgloss.Color("#e5e5e2"),

	OnAccent: lipgloss.Color("#fdfdfd"),
}

var themes = map[string]Theme{
	VitesseDark.Name:  VitesseDark,
	VitesseLight.Name: VitesseLight,
}

// Lookup resolves a theme by name, falling back to the dark palette.
func Lookup(name string) Theme {
	if th, ok := themes[name]; ok {
		return th
	}
	return VitesseDark
}

// Names lists the available theme names.
func Names() []string {
	return []string{VitesseDark.Name, VitesseLight.Name}
}

// StickyStyle is the overlay line style: soft background so the mirrored
// line reads as pinned rather than part of the stream.
func (t Theme) StickyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.BgSoft).Foreground(t.Text)
}

// StatusBarBase returns the base style for the status bar.
func (t Theme) StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Secondary).Background(t.Bg)
}

// ChipStyle returns a style for colored status-bar segments.
func (t Theme) ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.OnAccent).Background(bg).Padding(0, 1)
}
