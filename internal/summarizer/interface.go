package summarizer

import "context"

// Summarizer condenses a transcript by summarizing it chunk by chunk.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
