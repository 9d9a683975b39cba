package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// json3 is yt-dlp's native YouTube caption format.
type json3 struct {
	Events []struct {
		TStartMs    int64 `json:"tStartMs"`
		DDurationMs int64 `json:"dDurationMs"`
		Segs        []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

// Fetch implements Fetcher.
func (f *implYtDlp) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	if f.tempDir != "" {
		if err := os.MkdirAll(f.tempDir, 0755); err != nil {
			return nil, fmt.Errorf("create temp dir: %w", err)
		}
	}
	// Isolated dir per fetch so concurrent runs never see each other's files
	workDir, err := os.MkdirTemp(f.tempDir, "ytdlp-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", strings.Join(f.langs, ","),
		"--sub-format", "json3",
		"--no-warnings",
		"-o", "%(id)s.%(ext)s",
		WatchURL(videoID),
	}

	f.logger.Debug(ctx, "yt-dlp in %s: %s %s", workDir, f.binary, strings.Join(args, " "))
	if _, err := f.executor.ExecuteInDir(ctx, workDir, f.binary, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	path, ok := f.pickSubtitleFile(workDir, videoID)
	if !ok {
		return nil, ErrTranscriptsDisabled
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitles: %w", err)
	}
	return parseJSON3(data)
}

// pickSubtitleFile chooses <id>.<lang>.json3 following the language preference order.
func (f *implYtDlp) pickSubtitleFile(dir, videoID string) (string, bool) {
	matches, _ := filepath.Glob(filepath.Join(dir, videoID+".*.json3"))
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)

	for _, lang := range f.langs {
		want := filepath.Join(dir, videoID+"."+lang+".json3")
		for _, m := range matches {
			if m == want {
				return m, true
			}
		}
	}
	return matches[0], true
}

func parseJSON3(data []byte) ([]Segment, error) {
	var doc json3
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json3: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Events))
	for _, ev := range doc.Events {
		var sb strings.Builder
		for _, s := range ev.Segs {
			sb.WriteString(s.UTF8)
		}
		text := cleanCaption(sb.String())
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start:    time.Duration(ev.TStartMs) * time.Millisecond,
			Duration: time.Duration(ev.DDurationMs) * time.Millisecond,
			Text:     text,
		})
	}
	return segments, nil
}
