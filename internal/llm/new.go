package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/tube-digest/internal/config"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

type implHuggingFace struct {
	client    *http.Client
	endpoint  string
	model     string
	apiKey    string
	maxLength int
	minLength int
	logger    logger.Logger
}

// HFOptions are the Hugging Face Inference API settings.
type HFOptions struct {
	Endpoint  string
	Model     string
	APIKey    string
	MaxLength int
	MinLength int
	Timeout   time.Duration
}

// NewHuggingFace creates a Model backed by the Hugging Face summarization pipeline.
func NewHuggingFace(opts HFOptions, log logger.Logger) Model {
	return &implHuggingFace{
		client:    &http.Client{Timeout: opts.Timeout},
		endpoint:  opts.Endpoint,
		model:     opts.Model,
		apiKey:    opts.APIKey,
		maxLength: opts.MaxLength,
		minLength: opts.MinLength,
		logger:    log,
	}
}

type implGemini struct {
	clients []*genai.Client
	next    uint64
	model   string
	logger  logger.Logger
}

// NewGemini creates a Model that sends each chunk to Gemini, cycling through
// the supplied API keys one call at a time.
func NewGemini(ctx context.Context, apiKeys []string, model string, httpOpts genai.HTTPOptions, log logger.Logger) (Model, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("gemini: at least one API key is required")
	}

	clients := make([]*genai.Client, 0, len(apiKeys))
	for i, key := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      key,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: httpOpts,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini: create client for key %d: %w", i+1, err)
		}
		clients = append(clients, client)
	}

	return &implGemini{
		clients: clients,
		model:   model,
		logger:  log,
	}, nil
}

// New builds the Model selected by cfg.Provider. A positive cfg.RequestsPerSecond
// wraps it in a rate limiter.
func New(ctx context.Context, cfg config.ModelConfig, log logger.Logger) (Model, error) {
	var (
		m   Model
		err error
	)

	switch cfg.Provider {
	case config.ProviderHuggingFace:
		var key string
		if len(cfg.APIKeys) > 0 {
			key = cfg.APIKeys[0]
		}
		m = NewHuggingFace(HFOptions{
			Endpoint:  cfg.Endpoint,
			Model:     cfg.Name,
			APIKey:    key,
			MaxLength: cfg.MaxLength,
			MinLength: cfg.MinLength,
			Timeout:   cfg.Timeout,
		}, log)
	case config.ProviderGemini:
		m, err = NewGemini(ctx, cfg.APIKeys, cfg.Name, genai.HTTPOptions{BaseURL: cfg.Endpoint}, log)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}

	if cfg.RequestsPerSecond > 0 {
		m = WithRateLimit(m, cfg.RequestsPerSecond, 1)
	}
	return m, nil
}
