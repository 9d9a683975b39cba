package chunker

import (
	"iter"
	"slices"
	"strings"
)

// All implements Chunker.
//
// Each word is tokenized on its own and the counts are summed, so a chunk's real token
// count may differ slightly from the sum. A word that alone exceeds the budget becomes
// its own chunk.
func (c *implChunker) All(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var (
			current []string
			running int
		)

		for _, word := range strings.Fields(text) {
			count := len(c.tok.Tokenize(word))
			if running+count > c.maxTokens && len(current) > 0 {
				if !yield(strings.Join(current, " ")) {
					return
				}
				current = current[:0]
				running = 0
			}
			current = append(current, word)
			running += count
		}

		if len(current) > 0 {
			yield(strings.Join(current, " "))
		}
	}
}

// Split implements Chunker.
func (c *implChunker) Split(text string) []string {
	return slices.Collect(c.All(text))
}
