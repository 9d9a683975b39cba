package processor

import (
	"errors"
	"fmt"
)

// BlankURLWarning is shown when the user submits an empty URL.
const BlankURLWarning = "Please enter a valid YouTube URL."

var (
	ErrNoVideoID    = errors.New("video ID could not be extracted")
	ErrNoTranscript = errors.New("no transcript available")
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindInput Kind = iota + 1
	KindNotFound
	KindModel
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindNotFound:
		return "not_found"
	case KindModel:
		return "model"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by Summarize.
type Error struct {
	Kind    Kind
	VideoID string
	Err     error
}

func (e *Error) Error() string {
	if e.VideoID != "" {
		return fmt.Sprintf("%s error for %s: %v", e.Kind, e.VideoID, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindTransport for errors not produced by the pipeline.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransport
}

// Message is the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var pe *Error
	if !errors.As(err, &pe) {
		return "An error occurred: " + err.Error()
	}

	switch pe.Kind {
	case KindInput:
		return "Video ID could not be extracted."
	case KindNotFound:
		return "No transcript available for this video."
	case KindModel:
		return "Error summarizing text: " + detail(pe)
	default:
		return "An error occurred: " + detail(pe)
	}
}

// Render returns what a UI shows for one run: the summary or the failure message.
func Render(res *Result, err error) string {
	if err != nil {
		return Message(err)
	}
	if res == nil {
		return ""
	}
	return res.Summary
}

func detail(e *Error) string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}
