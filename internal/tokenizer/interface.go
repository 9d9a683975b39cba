package tokenizer

// Tokenizer turns text into model token IDs. Only the length of the result is relied on.
// Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokenize(text string) []int
}
