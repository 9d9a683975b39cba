package chunker

import "github.com/nguyentantai21042004/tube-digest/internal/tokenizer"

// DefaultMaxTokens matches the summarization model's input window.
const DefaultMaxTokens = 1024

type implChunker struct {
	tok       tokenizer.Tokenizer
	maxTokens int
}

// Option configures the chunker.
type Option func(*implChunker)

// WithMaxTokens sets the per-chunk token budget. Non-positive values are ignored.
func WithMaxTokens(n int) Option {
	return func(c *implChunker) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// New creates a Chunker that measures words with tok.
func New(tok tokenizer.Tokenizer, opts ...Option) Chunker {
	c := &implChunker{
		tok:       tok,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
