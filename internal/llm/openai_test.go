package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiStub(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-01",
			"object":  "chat.completion",
			"created": 1756600000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"name":"Wall Pass Rhythm","skill_type":"passing","difficulty":3}`,
				},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 90, "completion_tokens": 60, "total_tokens": 150},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a youth soccer coach.",
		Messages:  UserMessage("A passing drill against a wall."),
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Usage.TotalTokens != 150 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop = %q, want end", resp.StopReason)
	}
}

func TestOpenAITruncationReportsMaxTokens(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-02",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"name":"Cut`},
				"finish_reason": "length",
			}},
			"usage": map[string]any{"prompt_tokens": 90, "completion_tokens": 16, "total_tokens": 106},
		})
	})

	resp, err := p.Generate(context.Background(), Request{Messages: UserMessage("drill"), MaxTokens: 16})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop = %q, want max_tokens", resp.StopReason)
	}
}

func TestOpenAIRateLimitMapsToErrRateLimit(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
	})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("drill"), MaxTokens: 64})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want ErrRateLimit", err, err)
	}
}

func TestOpenAIEmptyChoicesIsInvalid(t *testing.T) {
	p := openaiStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-03",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{},
		})
	})

	_, err := p.Generate(context.Background(), Request{Messages: UserMessage("drill"), MaxTokens: 64})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
	}
}

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
