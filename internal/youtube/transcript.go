package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// errNoPlayerResponse marks a watch page we could not read, as opposed to a video without captions.
var errNoPlayerResponse = errors.New("ytInitialPlayerResponse not found in watch page")

// Fetch implements Fetcher.
func (f *implInnertube) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	player, err := f.playerFromWatchPage(ctx, videoID)
	if errors.Is(err, errNoPlayerResponse) {
		f.logger.Warn(ctx, "youtube: watch page had no player response for %s, trying player endpoint", videoID)
		player, err = f.playerFromAPI(ctx, videoID)
	}
	if err != nil {
		return nil, err
	}

	tracks, err := captionTracks(player)
	if err != nil {
		return nil, err
	}
	track, ok := pickBestTrack(tracks, f.langs)
	if !ok {
		return nil, fmt.Errorf("%w: all tracks require a browser session", ErrNoCaptions)
	}

	f.logger.Debug(ctx, "youtube: using %s track (kind=%q) for %s", track.LanguageCode, track.Kind, videoID)
	return f.fetchTimedText(ctx, track.BaseURL)
}

// playerFromWatchPage scrapes ytInitialPlayerResponse out of the watch page HTML.
func (f *implInnertube) playerFromWatchPage(ctx context.Context, videoID string) (*playerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/watch?v="+videoID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgentChrome)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	body, err := f.do(req, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	idx := bytes.Index(body, []byte(playerRespMarker))
	if idx < 0 {
		return nil, errNoPlayerResponse
	}
	raw := extractJSON(body[idx+len(playerRespMarker):])
	if raw == nil {
		return nil, errNoPlayerResponse
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &player, nil
}

// playerFromAPI asks the ANDROID Innertube /player endpoint for the caption list.
func (f *implInnertube) playerFromAPI(ctx context.Context, videoID string) (*playerResponse, error) {
	payload, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+playerPath+"?prettyPrint=false", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	body, err := f.do(req, maxPlayerRespBytes)
	if err != nil {
		return nil, fmt.Errorf("android player: %w", err)
	}

	var player playerResponse
	if err := json.Unmarshal(body, &player); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &player, nil
}

func (f *implInnertube) fetchTimedText(ctx context.Context, baseURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgentChrome)

	body, err := f.do(req, maxTimedTextBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty caption document", ErrNoCaptions)
	}
	return parseTimedText(body)
}

func (f *implInnertube) do(req *http.Request, limit int64) ([]byte, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// captionTracks classifies a player response into tracks or a sentinel error.
func captionTracks(player *playerResponse) ([]captionTrack, error) {
	if ps := player.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		if ps.Reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, ps.Reason)
		}
		return nil, fmt.Errorf("%w: status %s", ErrVideoUnavailable, ps.Status)
	}
	if player.Captions == nil {
		return nil, ErrTranscriptsDisabled
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}
	return tracks, nil
}

// needsPoToken reports whether a caption track URL can only be fetched by a browser.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack prefers a manual track in a requested language, then an auto-generated
// one, then any English track, then the first usable track.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if t.BaseURL != "" && !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}
