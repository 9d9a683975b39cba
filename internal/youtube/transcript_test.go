package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

const captionXML = `<transcript><text start="0" dur="1">first line</text><text start="1" dur="1">second line</text></transcript>`

func watchPage(playerJSON string) string {
	return `<html><script>var ytInitialPlayerResponse = ` + playerJSON + `;var meta = {};</script></html>`
}

func newTestServer(t *testing.T, player func(base string) string, apiPlayer func(base string) string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/watch":
			if player == nil {
				fmt.Fprint(w, "<html>consent wall</html>")
				return
			}
			fmt.Fprint(w, watchPage(player(srv.URL)))
		case r.URL.Path == playerPath:
			if apiPlayer == nil {
				http.Error(w, "no", http.StatusForbidden)
				return
			}
			fmt.Fprint(w, apiPlayer(srv.URL))
		case strings.HasPrefix(r.URL.Path, "/api/timedtext"):
			fmt.Fprintf(w, "%s", captionXML)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func tracksJSON(base string) string {
	return `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[` +
		`{"baseUrl":"` + base + `/api/timedtext?lang=de","languageCode":"de"},` +
		`{"baseUrl":"` + base + `/api/timedtext?lang=en&kind=asr","languageCode":"en","kind":"asr"}` +
		`]}},"note":"brace } inside \"string\""}`
}

func TestInnertubeFetchWatchPage(t *testing.T) {
	srv := newTestServer(t, tracksJSON, nil)
	f := NewInnertube([]string{"en"}, 5*time.Second, logger.Discard(), WithBaseURL(srv.URL))

	segments, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "first line", segments[0].Text)
	assert.Equal(t, "second line", segments[1].Text)
}

func TestInnertubeFallsBackToPlayerEndpoint(t *testing.T) {
	srv := newTestServer(t, nil, tracksJSON)
	f := NewInnertube(nil, 5*time.Second, logger.Discard(), WithBaseURL(srv.URL))

	segments, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Len(t, segments, 2)
}

func TestInnertubeTranscriptsDisabled(t *testing.T) {
	srv := newTestServer(t, func(string) string {
		return `{"playabilityStatus":{"status":"OK"}}`
	}, nil)
	f := NewInnertube([]string{"en"}, 5*time.Second, logger.Discard(), WithBaseURL(srv.URL))

	_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.True(t, errors.Is(err, ErrTranscriptsDisabled), "got %v", err)
}

func TestInnertubeVideoUnavailable(t *testing.T) {
	srv := newTestServer(t, func(string) string {
		return `{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`
	}, nil)
	f := NewInnertube([]string{"en"}, 5*time.Second, logger.Discard(), WithBaseURL(srv.URL))

	_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVideoUnavailable)
	assert.Contains(t, err.Error(), "Video unavailable")
}

func TestInnertubeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	f := NewInnertube([]string{"en"}, 5*time.Second, logger.Discard(), WithBaseURL(srv.URL))

	_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u1", LanguageCode: "de"},
		{BaseURL: "u2", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u3", LanguageCode: "en"},
		{BaseURL: "u4&exp=xpe", LanguageCode: "fr"},
	}

	tests := []struct {
		name  string
		langs []string
		want  string
	}{
		{"manual preferred", []string{"en"}, "u3"},
		{"first preference wins", []string{"de", "en"}, "u1"},
		{"english fallback", []string{"ja"}, "u2"},
		{"po token track skipped", []string{"fr"}, "u2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickBestTrack(tracks, tt.langs)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.BaseURL)
		})
	}

	_, ok := pickBestTrack([]captionTrack{{BaseURL: "x&exp=xpe", LanguageCode: "en"}}, []string{"en"})
	assert.False(t, ok)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":{"b":"x\\"},"c":"\"}"}`, string(extractJSON([]byte(`{"a":{"b":"x\\"},"c":"\"}"};rest`))))
	assert.Nil(t, extractJSON([]byte(`not json`)))
	assert.Nil(t, extractJSON([]byte(`{"unterminated":`)))
}
