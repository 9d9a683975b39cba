package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ?version=3", "dQw4w9WgXcQ", true},
		{"e path", "https://www.youtube.com/e/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch with extra params", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"bare path form", "https://www.youtube.com/user/someone/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no scheme", "youtu.be/abcdefghijk", "abcdefghijk", true},
		{"embedded in text", "look at this https://youtu.be/A_b-C_d-E_f now", "A_b-C_d-E_f", true},
		{"first match wins", "https://youtu.be/aaaaaaaaaaa https://youtu.be/bbbbbbbbbbb", "aaaaaaaaaaa", true},
		{"home page", "https://www.youtube.com/", "", false},
		{"too short id", "https://youtu.be/short", "", false},
		{"other site", "https://vimeo.com/123456789", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", WatchURL("dQw4w9WgXcQ"))
}
