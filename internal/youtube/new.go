package youtube

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/pkg/executor"
)

type implInnertube struct {
	client  *http.Client
	baseURL string
	langs   []string
	logger  logger.Logger
}

// Option configures the Innertube fetcher.
type Option func(*implInnertube)

// WithBaseURL points the fetcher at a different YouTube host.
func WithBaseURL(u string) Option {
	return func(f *implInnertube) {
		if u != "" {
			f.baseURL = u
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *implInnertube) {
		if c != nil {
			f.client = c
		}
	}
}

// NewInnertube creates a Fetcher that reads caption tracks from the watch page,
// falling back to the ANDROID player endpoint when the page carries no player response.
func NewInnertube(langs []string, timeout time.Duration, log logger.Logger, opts ...Option) Fetcher {
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	f := &implInnertube{
		client:  &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
		langs:   langs,
		logger:  log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type implYtDlp struct {
	executor executor.Executor
	binary   string
	tempDir  string
	langs    []string
	logger   logger.Logger
}

// NewYtDlp creates a Fetcher that shells out to yt-dlp for json3 subtitles.
func NewYtDlp(exec executor.Executor, binary, tempDir string, langs []string, log logger.Logger) Fetcher {
	if binary == "" {
		binary = "yt-dlp"
	}
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &implYtDlp{
		executor: exec,
		binary:   binary,
		tempDir:  tempDir,
		langs:    langs,
		logger:   log,
	}
}
