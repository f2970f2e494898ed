package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "google/gemini-2.0-flash-exp",
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// Route paths are never alias-resolved.
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %q", p.ModelID())
	}

	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
