package cli

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tube-digest/internal/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal form",
	Long: `Launch a terminal form: paste a URL, press Enter and read the summary.

Controls:
  Enter        - Summarize
  PgUp / PgDn  - Scroll the summary
  Esc, Ctrl+C  - Quit

Logs go to paths.temp/tubedigest.log while the form is open.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return tui.Run(cmd.Context(), current.processor)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
