package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicStub(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func TestAnthropicGenerate(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_01",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"name":"Cone Weave","skill_type":"dribbling","difficulty":2}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 120, "output_tokens": 80},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a youth soccer coach.",
		Messages:  UserMessage("A dribbling drill for a winger."),
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Usage.InputTokens != 120 || resp.Usage.OutputTokens != 80 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop = %q, want end", resp.StopReason)
	}
	var drill struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(resp.Content, &drill); err != nil || drill.Name != "Cone Weave" {
		t.Errorf("content = %s (%v)", resp.Content, err)
	}
}

func TestAnthropicRateLimitMapsToErrRateLimit(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
	})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("drill"), MaxTokens: 64})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want ErrRateLimit", err, err)
	}
}

func TestAnthropicServerErrorMapsToUnavailable(t *testing.T) {
	p := anthropicStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "overloaded"},
		})
	})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("drill"), MaxTokens: 64})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want ErrProviderUnavailable", err, err)
	}
}

func TestNewAnthropicProviderRequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
