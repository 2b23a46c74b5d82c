package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"shellpane/internal/config"
	"shellpane/internal/theme"
)

// Run launches an interactive form to edit settings.json: theme, shell
// override, tab width, and scrollback limit. Saves on submit.
func Run() error {
	cur, err := config.LoadSettings()
	if err != nil {
		return err
	}

	selTheme := cur.Theme
	shell := cur.Shell
	tabWidth := strconv.Itoa(cur.TabWidth)
	scrollback := strconv.Itoa(cur.ScrollbackLimit)

	// Light theme tweaks matching the pane palette
	green := lipgloss.Color("#4d9375")
	ht := huh.ThemeCharm()
	ht.FieldSeparator = lipgloss.NewStyle()
	ht.Blurred.Title = ht.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	ht.Focused.Title = ht.Focused.Title.Width(18).Foreground(green).Bold(true)
	ht.Focused.Base.BorderForeground(green)

	themeOpts := make([]huh.Option[string], 0, len(theme.Names()))
	for _, n := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(n, n))
	}

	digits := func(s string) error {
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("enter a number")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Edit shellpane settings.json"),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&selTheme),
			huh.NewInput().
				Title("Shell").
				Placeholder("$SHELL").
				Value(&shell),
			huh.NewInput().
				Title("Tab width").
				Validate(digits).
				Value(&tabWidth),
			huh.NewInput().
				Title("Scrollback").
				Validate(digits).
				Value(&scrollback),
		),
	).WithTheme(ht).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	cur.Theme = selTheme
	cur.Shell = shell
	cur.TabWidth, _ = strconv.Atoi(tabWidth)
	cur.ScrollbackLimit, _ = strconv.Atoi(scrollback)
	if err := config.SaveSettings(cur); err != nil {
		return err
	}
	fmt.Println("\n✓ saved settings.json")
	return nil
}
