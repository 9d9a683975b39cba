package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/tube-digest/internal/chunker"
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/llm"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/processor"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/tokenizer"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
	"github.com/nguyentantai21042004/tube-digest/pkg/executor"
)

// app holds the handles shared by every command. They are built once per run
// and read-only afterwards.
type app struct {
	cfg       *config.Config
	logger    logger.Logger
	processor processor.Processor
	closers   []io.Closer
}

type options struct {
	configPath string
	logLevel   string
	logToFile  bool
}

// current is the app built by the root pre-run hook.
var current *app

// buildApp is swapped out in tests.
var buildApp = newApp

func newApp(ctx context.Context, opts options) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	a := &app{cfg: cfg}

	var logOut io.Writer = os.Stderr
	if opts.logToFile {
		// the terminal belongs to the form
		if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
			return nil, fmt.Errorf("create temp dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(cfg.Paths.Temp, "tubedigest.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		logOut = f
	}
	log := logger.NewWithWriter(logOut, cfg.Logging.Level, cfg.Logging.Format)
	a.logger = log

	tok, err := tokenizer.New(cfg.Tokenizer.Encoding)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}

	model, err := llm.New(ctx, cfg.Model, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init model: %w", err)
	}

	log.Debug(ctx, "Tokenizer %s, model %s/%s, transcript backend %s",
		cfg.Tokenizer.Encoding, cfg.Model.Provider, cfg.Model.Name, cfg.YouTube.Backend)

	s := summarizer.New(chunker.New(tok, chunker.WithMaxTokens(cfg.Tokenizer.MaxTokens)), model, log)
	a.processor = processor.New(cfg, newFetcher(cfg, log), s, log)
	return a, nil
}

func newFetcher(cfg *config.Config, log logger.Logger) youtube.Fetcher {
	if cfg.YouTube.Backend == config.BackendYtDlp {
		return youtube.NewYtDlp(executor.New(), cfg.YouTube.YtDlpPath, cfg.Paths.Temp, cfg.YouTube.Languages, log)
	}
	return youtube.NewInnertube(cfg.YouTube.Languages, cfg.YouTube.Timeout, log)
}

// Close releases files opened for the run.
func (a *app) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
