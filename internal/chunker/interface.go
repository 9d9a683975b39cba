package chunker

import "iter"

// Chunker splits text into word-aligned chunks bounded by a token budget.
type Chunker interface {
	// All yields chunks lazily, in input order.
	All(text string) iter.Seq[string]
	// Split collects All into a slice.
	Split(text string) []string
}
