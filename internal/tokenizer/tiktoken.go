package tokenizer

// Tokenize implements Tokenizer. Special-token text is encoded as ordinary text.
func (t *implTiktoken) Tokenize(text string) []int {
	if text == "" {
		return nil
	}
	return t.tkm.EncodeOrdinary(text)
}
