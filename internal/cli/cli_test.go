package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/internal/processor"
	"github.com/nguyentantai21042004/tube-digest/internal/youtube"
)

type fakeProcessor struct {
	res *processor.Result
	err error
}

func (f *fakeProcessor) Summarize(context.Context, string) (*processor.Result, error) {
	return f.res, f.err
}

func (f *fakeProcessor) Process(context.Context, string) error { return nil }

func useFakeApp(t *testing.T, proc processor.Processor) {
	t.Helper()
	original := buildApp
	buildApp = func(context.Context, options) (*app, error) {
		return &app{
			cfg:       &config.Config{},
			logger:    logger.Discard(),
			processor: proc,
		}, nil
	}
	t.Cleanup(func() {
		buildApp = original
		current = nil
		summarizeJSON = false
	})
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	// version never loads config
	stdout, _, err := execute(t, "version", "--config", "does-not-exist.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tubedigest version test-version-1.0.0")
}

func TestSummarizeCmd(t *testing.T) {
	useFakeApp(t, &fakeProcessor{res: &processor.Result{
		VideoID: "dQw4w9WgXcQ",
		URL:     "https://youtu.be/dQw4w9WgXcQ",
		Summary: "A concise summary.",
	}})

	stdout, _, err := execute(t, "summarize", "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "A concise summary.\n", stdout)
}

func TestSummarizeCmdJSON(t *testing.T) {
	useFakeApp(t, &fakeProcessor{res: &processor.Result{
		VideoID:  "dQw4w9WgXcQ",
		URL:      "https://youtu.be/dQw4w9WgXcQ",
		Summary:  "A concise summary.",
		Segments: 12,
		Elapsed:  1500 * time.Millisecond,
	}})

	stdout, _, err := execute(t, "summarize", "--json", "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)

	var got summarizeOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, summarizeOutput{
		VideoID:   "dQw4w9WgXcQ",
		URL:       "https://youtu.be/dQw4w9WgXcQ",
		Summary:   "A concise summary.",
		Segments:  12,
		ElapsedMs: 1500,
	}, got)
}

func TestSummarizeCmdFailure(t *testing.T) {
	useFakeApp(t, &fakeProcessor{err: &processor.Error{
		Kind:    processor.KindTransport,
		VideoID: "dQw4w9WgXcQ",
		Err:     youtube.ErrTranscriptsDisabled,
	}})

	stdout, stderr, err := execute(t, "summarize", "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrReported)
	assert.Empty(t, stdout)
	assert.Equal(t, "An error occurred: transcripts are disabled for this video\n", stderr)
}

func TestSummarizeCmdFailureJSON(t *testing.T) {
	useFakeApp(t, &fakeProcessor{err: &processor.Error{Kind: processor.KindNotFound, Err: processor.ErrNoTranscript}})

	stdout, _, err := execute(t, "summarize", "--json", "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrReported)

	var got summarizeError
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "not_found", got.Error.Kind)
	assert.Equal(t, "No transcript available for this video.", got.Error.Message)
}

func TestSummarizeCmdBlank(t *testing.T) {
	proc := &fakeProcessor{err: errors.New("must not be called")}
	useFakeApp(t, proc)

	_, stderr, err := execute(t, "summarize", "  ")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "Please enter a valid YouTube URL.\n", stderr)
}

func TestSummarizeCmdBadConfig(t *testing.T) {
	t.Cleanup(func() { current = nil })

	_, _, err := execute(t, "summarize", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "youtube:\n  backend: ytdlp\npaths:\n  temp: " + filepath.Join(dir, "tmp") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	a, err := newApp(context.Background(), options{configPath: path, logLevel: "debug", logToFile: true})
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.processor)
	assert.Equal(t, "debug", a.cfg.Logging.Level)
	_, err = os.Stat(filepath.Join(dir, "tmp", "tubedigest.log"))
	assert.NoError(t, err)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Paths: config.PathsConfig{
		Input:    filepath.Join(dir, "in"),
		Output:   filepath.Join(dir, "out"),
		Archived: filepath.Join(dir, "archived"),
		Temp:     filepath.Join(dir, "tmp"),
	}}

	require.NoError(t, ensureDirectories(cfg))
	for _, d := range []string{"in", "out", "archived", "tmp"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
