package youtube

import (
	"context"
	"errors"
)

var (
	// ErrTranscriptsDisabled means the video exposes no caption tracks at all.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	// ErrVideoUnavailable means YouTube refused to play the video (private, removed, region lock).
	ErrVideoUnavailable = errors.New("video is unavailable")
	// ErrNoCaptions means caption tracks exist but none could be fetched.
	ErrNoCaptions = errors.New("no usable caption track")
)

// Fetcher retrieves the caption transcript of a video.
// An empty, nil-error result means the video has a transcript with no segments.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) ([]Segment, error)
}
