package summarizer

// ChunkError reports the chunk that failed. Its message is the underlying error's.
type ChunkError struct {
	Index int
	Err   error
}

func (e *ChunkError) Error() string {
	return e.Err.Error()
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
