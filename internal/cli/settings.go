package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellpane/internal/config"
	"shellpane/internal/settings"
)

func init() {
	settingsCmd.AddCommand(settingsSchemaCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit shellpane settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for settings.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.SettingsSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
