package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

// Result is a finished pipeline run.
type Result struct {
	VideoID  string
	URL      string
	Summary  string
	Segments int
	Elapsed  time.Duration
}

// Summarize implements Processor.
func (p *implProcessor) Summarize(ctx context.Context, rawURL string) (*Result, error) {
	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		p.logger.Warn(ctx, "No video ID in %q", rawURL)
		return nil, &Error{Kind: KindInput, Err: ErrNoVideoID}
	}

	if err := p.sem.acquire(ctx); err != nil {
		return nil, &Error{Kind: KindTransport, VideoID: videoID, Err: err}
	}
	defer p.sem.release()

	startTime := time.Now()
	p.logger.Info(ctx, "Starting summary: %s", videoID)

	segments, err := p.fetcher.Fetch(ctx, videoID)
	if err != nil {
		p.logger.Error(ctx, "Transcript fetch failed for %s: %v", videoID, err)
		return nil, &Error{Kind: KindTransport, VideoID: videoID, Err: err}
	}
	if len(segments) == 0 {
		p.logger.Warn(ctx, "Transcript for %s is empty", videoID)
		return nil, &Error{Kind: KindNotFound, VideoID: videoID, Err: ErrNoTranscript}
	}
	p.logger.Info(ctx, "Fetched %d transcript segments for %s", len(segments), videoID)

	summary, err := p.summarizer.Summarize(ctx, youtube.FormatText(segments))
	if err != nil {
		return nil, &Error{Kind: KindModel, VideoID: videoID, Err: err}
	}

	res := &Result{
		VideoID:  videoID,
		URL:      rawURL,
		Summary:  summary,
		Segments: len(segments),
		Elapsed:  time.Since(startTime),
	}
	p.logger.Info(ctx, "Summary for %s completed in %s", videoID, res.Elapsed.Round(time.Millisecond))
	return res, nil
}
