package youtube

import "regexp"

// videoIDRe matches watch?v=, youtu.be/, /embed/, /v/, /e/ and bare path URL shapes.
// Unanchored: the first ID-like token in scan order wins.
var videoIDRe = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// The boolean is false when the string contains no recognizable ID.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDRe.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// WatchURL returns the canonical watch page URL for id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
