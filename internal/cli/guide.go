package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMD string

func init() {
	rootCmd.AddCommand(guideCmd)
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(78),
		)
		if err != nil {
			fmt.Print(guideMD)
			return nil
		}
		out, err := r.Render(guideMD)
		if err != nil {
			fmt.Print(guideMD)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}
