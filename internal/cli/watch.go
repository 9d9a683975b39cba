package cli

import (
	"context"
	"errors"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/tube-digest/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize URL lists dropped into the input folder",
	Long: `Watch paths.input for .txt or .urls files holding one YouTube URL per line
(lines starting with # are ignored). Each video gets a report in paths.output
and the list file is moved to paths.archived. Lists already present when the
watcher starts are processed first.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, log := current.cfg, current.logger

	log.Info(ctx, "========================================")
	log.Info(ctx, "tubedigest watch %s", version)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, current.processor.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Watcher stopped")
	return nil
}
