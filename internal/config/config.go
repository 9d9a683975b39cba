package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendInnertube = "innertube"
	BackendYtDlp     = "ytdlp"

	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"

	DefaultMaxTokens = 1024
)

type Config struct {
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Tokenizer   TokenizerConfig   `yaml:"tokenizer"`
	Model       ModelConfig       `yaml:"model"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type YouTubeConfig struct {
	Backend   string        `yaml:"backend"`
	Languages []string      `yaml:"languages"`
	Timeout   time.Duration `yaml:"timeout"`
	YtDlpPath string        `yaml:"ytdlp_path"`
}

type TokenizerConfig struct {
	Encoding  string `yaml:"encoding"`
	MaxTokens int    `yaml:"max_tokens"`
}

type ModelConfig struct {
	Provider  string        `yaml:"provider"`
	Name      string        `yaml:"name"`
	Endpoint  string        `yaml:"endpoint"`
	APIKeys   []string      `yaml:"api_keys"`
	MaxLength int           `yaml:"max_length"`
	MinLength int           `yaml:"min_length"`
	Timeout   time.Duration `yaml:"timeout"`
	// RequestsPerSecond caps calls to the model. Zero means unlimited.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the YAML file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv lets secrets live outside the config file.
func (c *Config) applyEnv() {
	if keys := splitList(os.Getenv("TUBEDIGEST_API_KEYS")); len(keys) > 0 {
		c.Model.APIKeys = keys
		return
	}
	if len(c.Model.APIKeys) > 0 {
		return
	}

	provider := c.Model.Provider
	if provider == "" {
		provider = ProviderHuggingFace
	}
	switch provider {
	case ProviderHuggingFace:
		if key := os.Getenv("HF_API_TOKEN"); key != "" {
			c.Model.APIKeys = []string{key}
		}
	case ProviderGemini:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.Model.APIKeys = []string{key}
		}
	}
}

func (c *Config) Validate() error {
	if c.YouTube.Backend == "" {
		c.YouTube.Backend = BackendInnertube
	}
	if c.YouTube.Backend != BackendInnertube && c.YouTube.Backend != BackendYtDlp {
		return fmt.Errorf("youtube.backend must be %q or %q, got %q", BackendInnertube, BackendYtDlp, c.YouTube.Backend)
	}
	if len(c.YouTube.Languages) == 0 {
		c.YouTube.Languages = []string{"en"}
	}
	if c.YouTube.Timeout == 0 {
		c.YouTube.Timeout = 15 * time.Second
	}
	if c.YouTube.YtDlpPath == "" {
		c.YouTube.YtDlpPath = "yt-dlp"
	}

	if c.Tokenizer.Encoding == "" {
		c.Tokenizer.Encoding = "r50k_base"
	}
	if c.Tokenizer.MaxTokens == 0 {
		c.Tokenizer.MaxTokens = DefaultMaxTokens
	}
	if c.Tokenizer.MaxTokens < 0 {
		return fmt.Errorf("tokenizer.max_tokens must be positive, got %d", c.Tokenizer.MaxTokens)
	}

	if c.Model.Provider == "" {
		c.Model.Provider = ProviderHuggingFace
	}
	switch c.Model.Provider {
	case ProviderHuggingFace:
		if c.Model.Name == "" {
			c.Model.Name = "sshleifer/distilbart-cnn-12-6"
		}
		if c.Model.Endpoint == "" {
			c.Model.Endpoint = "https://router.huggingface.co/hf-inference/models"
		}
	case ProviderGemini:
		if c.Model.Name == "" {
			c.Model.Name = "gemini-2.5-flash"
		}
		if len(c.Model.APIKeys) == 0 {
			return fmt.Errorf("model.api_keys is required for provider %q", ProviderGemini)
		}
	default:
		return fmt.Errorf("model.provider must be %q or %q, got %q", ProviderHuggingFace, ProviderGemini, c.Model.Provider)
	}
	if c.Model.MaxLength == 0 {
		c.Model.MaxLength = 142
	}
	if c.Model.MinLength == 0 {
		c.Model.MinLength = 56
	}
	if c.Model.MinLength > c.Model.MaxLength {
		return fmt.Errorf("model.min_length (%d) exceeds model.max_length (%d)", c.Model.MinLength, c.Model.MaxLength)
	}
	if c.Model.Timeout == 0 {
		c.Model.Timeout = 120 * time.Second
	}
	if c.Model.RequestsPerSecond < 0 {
		return fmt.Errorf("model.requests_per_second must not be negative, got %v", c.Model.RequestsPerSecond)
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
