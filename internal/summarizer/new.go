package summarizer

import (
	"github.com/nguyentantai21042004/tube-digest/internal/chunker"
	"github.com/nguyentantai21042004/tube-digest/internal/llm"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

type implSummarizer struct {
	chunker chunker.Chunker
	model   llm.Model
	logger  logger.Logger
}

// New creates a Summarizer that feeds chunks from c to m in order.
func New(c chunker.Chunker, m llm.Model, log logger.Logger) Summarizer {
	return &implSummarizer{
		chunker: c,
		model:   m,
		logger:  log,
	}
}
