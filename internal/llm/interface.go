package llm

import (
	"context"
	"errors"
)

// ErrNoCandidates is returned when the model answers without any summary.
var ErrNoCandidates = errors.New("model returned no candidates")

// Candidate is one generated summary.
type Candidate struct {
	SummaryText string `json:"summary_text"`
}

// Model summarizes a single chunk of text.
// Implementations must be safe for concurrent use.
type Model interface {
	Infer(ctx context.Context, text string) ([]Candidate, error)
}
