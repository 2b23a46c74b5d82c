package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shellpane/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "shellpane",
	Short: "shellpane – a shell pane with a sticky command header",
	Long:  "shellpane runs your shell inside a scrollable pane and pins the command that produced the output at the top of the viewport.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
