package llm

import (
	"context"
	"fmt"

	"github.com/techniq-app/techniq/internal/store"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware stack: caller, retry, event logging, backend.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var backend Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		backend, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		backend, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		backend, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		backend, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if events != nil {
		backend = WithLogging(backend, events)
	}
	return WithRetry(backend, cfg.Retry), nil
}

// NewProviderFromEnv resolves configuration from the environment: explicit
// TECHNIQ_* settings win, otherwise the standard vendor key variables are
// tried in turn. Errors when nothing at all is configured.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set TECHNIQ_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}
