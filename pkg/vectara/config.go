package vectara

import (
	"time"

	"go.mau.fi/util/ptr"
)

const (
	DefaultBaseURL           = "https://api.vectara.io"
	DefaultSearchLimit       = 25
	DefaultMaxUsedResults    = 7
	DefaultMaxResponseTokens = 1024
	DefaultMaxResponseChars  = 2048
	DefaultTemperature       = 0.2
	DefaultFrequencyPenalty  = 0.1
	DefaultPresencePenalty   = 0.1
	DefaultScoreCutoff       = 0.5
	DefaultDiversityBias     = 0.3
	DefaultResponseLanguage  = "eng"
	DefaultTimeoutSecs       = 30
)

// Config controls how queries are sent to the Vectara query API.
// Pointer fields distinguish "not set" from an explicit zero override.
// Values are passed through as-is; range validation is up to the caller.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	CorpusKey string `yaml:"corpus_key"`

	// Retrieval tuning
	SearchLimit    int      `yaml:"search_limit"`     // candidates scanned by the search stage
	MaxUsedResults int      `yaml:"max_used_results"` // results fed into generation and citations
	ScoreCutoff    *float64 `yaml:"score_cutoff"`     // minimum relevance score for a citable passage
	DiversityBias  *float64 `yaml:"diversity_bias"`   // mmr reranker diversity/relevance tradeoff

	// Generation tuning
	MaxResponseTokens int      `yaml:"max_response_tokens"`
	MaxResponseChars  int      `yaml:"max_response_chars"`
	Temperature       *float64 `yaml:"temperature"`
	FrequencyPenalty  *float64 `yaml:"frequency_penalty"`
	PresencePenalty   *float64 `yaml:"presence_penalty"`
	ResponseLanguage  string   `yaml:"response_language"`

	TimeoutSecs int `yaml:"timeout_seconds"`
}

// RequestTimeout returns the configured upstream timeout as a duration.
func (cfg Config) RequestTimeout() time.Duration {
	return time.Duration(cfg.TimeoutSecs) * time.Second
}

// WithDefaults returns a copy of the config with every unset field filled in.
func (cfg Config) WithDefaults() Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SearchLimit == 0 {
		cfg.SearchLimit = DefaultSearchLimit
	}
	if cfg.MaxUsedResults == 0 {
		cfg.MaxUsedResults = DefaultMaxUsedResults
	}
	if cfg.ScoreCutoff == nil {
		cfg.ScoreCutoff = ptr.Ptr(DefaultScoreCutoff)
	}
	if cfg.DiversityBias == nil {
		cfg.DiversityBias = ptr.Ptr(DefaultDiversityBias)
	}
	if cfg.MaxResponseTokens == 0 {
		cfg.MaxResponseTokens = DefaultMaxResponseTokens
	}
	if cfg.MaxResponseChars == 0 {
		cfg.MaxResponseChars = DefaultMaxResponseChars
	}
	if cfg.Temperature == nil {
		cfg.Temperature = ptr.Ptr(DefaultTemperature)
	}
	if cfg.FrequencyPenalty == nil {
		cfg.FrequencyPenalty = ptr.Ptr(DefaultFrequencyPenalty)
	}
	if cfg.PresencePenalty == nil {
		cfg.PresencePenalty = ptr.Ptr(DefaultPresencePenalty)
	}
	if cfg.ResponseLanguage == "" {
		cfg.ResponseLanguage = DefaultResponseLanguage
	}
	if cfg.TimeoutSecs == 0 {
		cfg.TimeoutSecs = DefaultTimeoutSecs
	}
	return cfg
}
