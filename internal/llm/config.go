package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures one provider. TECHNIQ_* variables set it
// explicitly; DiscoverConfig fills it from the usual vendor key variables
// when nothing explicit is present.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one request including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL points the client at any OpenAI-compatible backend.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey string
	// Model is an OpenRouter path like "google/gemini-2.0-flash-exp".
	Model   string
	BaseURL string
}

// RetryConfig shapes the backoff schedule for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig favors the cheap fast models; drill generation is a small
// structured request and does not need a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads the TECHNIQ_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	read := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	read("TECHNIQ_LLM_PROVIDER", &cfg.Provider)
	read("TECHNIQ_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	read("TECHNIQ_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	read("TECHNIQ_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	read("TECHNIQ_OPENAI_MODEL", &cfg.OpenAI.Model)
	read("TECHNIQ_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	read("TECHNIQ_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	read("TECHNIQ_GEMINI_MODEL", &cfg.Gemini.Model)
	read("TECHNIQ_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	read("TECHNIQ_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig checks the standard vendor key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and selects the first
// provider that has one. Returns false when no key is set anywhere.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider, cfg.Gemini.APIKey = "gemini", k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenAI.APIKey = "openai", k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider, cfg.Anthropic.APIKey = "anthropic", k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenRouter.APIKey = "openrouter", k
		return cfg, true
	}
	return Config{}, false
}

// Validate confirms the selected provider has its key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}
	key, known := keys[c.Provider]
	switch {
	case c.Provider == "mock":
		return nil
	case !known:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	case key == "":
		return fmt.Errorf("TECHNIQ_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
