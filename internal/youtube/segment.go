package youtube

import (
	"strings"
	"time"
)

// Segment is one timed caption line.
type Segment struct {
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
	Text     string        `json:"text"`
}

// FormatText joins segment texts in timeline order, one segment per line.
// Blank segments are skipped.
func FormatText(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n")
}
