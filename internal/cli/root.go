package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// ErrReported marks a failure whose message was already printed.
var ErrReported = errors.New("error already reported")

const annotationNoBootstrap = "no-bootstrap"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "tubedigest",
	Short: "Summarize YouTube videos from their transcripts",
	Long: `tubedigest fetches the caption transcript of a YouTube video, splits it into
token-bounded chunks and summarizes each chunk with a summarization model.

Use it one-shot from the shell, as an interactive terminal form, as a web form
with a JSON API, or as a drop-folder watcher for URL lists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if skipBootstrap(cmd) {
			return nil
		}
		a, err := buildApp(cmd.Context(), options{
			configPath: configPath,
			logLevel:   logLevel,
			logToFile:  cmd == tuiCmd,
		})
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
}

func skipBootstrap(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationNoBootstrap] == "true" {
		return true
	}
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// Execute runs the command line with ctx as the root context.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if current != nil {
		current.Close()
	}
	return err
}
