package model

import "time"

// Config holds the complete biascope tool configuration.
// The engine itself takes no per-call configuration; everything here
// concerns the plumbing around it (fetching, caching, output, LLM).
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Lexicon     LexiconConfig     `yaml:"lexicon" json:"lexicon"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// HTTPConfig controls article fetching for the scan/batch commands
type HTTPConfig struct {
	Timeout        time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS    bool          `yaml:"insecure_tls" json:"insecure_tls"`
	RespectRobots  bool          `yaml:"respect_robots" json:"respect_robots"`
	RatePerSecond  float64       `yaml:"rate_per_second" json:"rate_per_second"` // Per-domain
	RateBurst      int           `yaml:"rate_burst" json:"rate_burst"`
}

// CacheConfig controls the layered analysis cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"` // Disk cache directory
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" json:"batch_workers"`
}

// LexiconConfig controls where dictionaries come from
type LexiconConfig struct {
	// Path to a YAML lexicon file overriding the embedded defaults.
	// Empty means use the embedded lexicon.
	Path string `yaml:"path" json:"path"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig controls the optional post-score explanation
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "" disables
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // From env only, never serialized
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       60 * time.Second,
			UserAgent:     "Biascope/0.1 (+https://github.com/openpress/biascope)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
			RatePerSecond: 2.0,
			RateBurst:     5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.biascope/cache at startup
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}
