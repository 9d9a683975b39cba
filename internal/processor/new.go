package processor

import (
	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/summarizer"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

type implProcessor struct {
	cfg        *config.Config
	fetcher    youtube.Fetcher
	summarizer summarizer.Summarizer
	logger     logger.Logger
	sem        *semaphore
}

// New creates a Processor. At most cfg.Performance.MaxConcurrent pipeline runs
// execute at the same time.
func New(cfg *config.Config, fetcher youtube.Fetcher, s summarizer.Summarizer, log logger.Logger) Processor {
	maxConcurrent := cfg.Performance.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implProcessor{
		cfg:        cfg,
		fetcher:    fetcher,
		summarizer: s,
		logger:     log,
		sem:        newSemaphore(maxConcurrent),
	}
}
