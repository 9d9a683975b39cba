package summarizer

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/llm"
)

// Summarize implements Summarizer. The first failing chunk aborts the run and
// no partial summary is returned.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	startTime := time.Now()
	var summaries []string

	i := 0
	for chunk := range s.chunker.All(text) {
		s.logger.Debug(ctx, "[chunk %d] summarizing %d words", i+1, len(strings.Fields(chunk)))

		candidates, err := s.model.Infer(ctx, chunk)
		if err != nil {
			s.logger.Error(ctx, "[chunk %d] model failed: %v", i+1, err)
			return "", &ChunkError{Index: i, Err: err}
		}
		if len(candidates) == 0 {
			s.logger.Error(ctx, "[chunk %d] model returned nothing", i+1)
			return "", &ChunkError{Index: i, Err: llm.ErrNoCandidates}
		}

		summaries = append(summaries, candidates[0].SummaryText)
		i++
	}

	s.logger.Info(ctx, "Summarized %d chunk(s) in %s", i, time.Since(startTime).Round(time.Millisecond))
	return strings.Join(summaries, " "), nil
}
