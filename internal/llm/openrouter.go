package llm

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is the OpenAI provider pointed at OpenRouter, whose
// API is wire-compatible. Model names are OpenRouter paths and are never
// alias-resolved.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	inner := newOpenAIClient(OpenAIConfig{APIKey: cfg.APIKey, BaseURL: base}, cfg.Model)
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
