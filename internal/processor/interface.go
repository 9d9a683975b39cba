package processor

import "context"

// Processor runs the URL-to-summary pipeline.
type Processor interface {
	// Summarize resolves rawURL, fetches its transcript and summarizes it.
	// Failures are returned as *Error.
	Summarize(ctx context.Context, rawURL string) (*Result, error)
	// Process summarizes every URL listed in a drop-folder file and writes one
	// report per video, then archives the list file.
	Process(ctx context.Context, listPath string) error
}
