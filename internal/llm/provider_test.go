package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

var drillJSON = json.RawMessage(`{"name":"Cone Weave","skill_type":"dribbling","difficulty":2}`)

func TestMockProviderAnswersInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: drillJSON, Usage: Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}},
		MockResponse{Content: json.RawMessage(`{"name":"Wall Pass Rhythm"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: UserMessage("a dribbling drill")})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(first.Content) != string(drillJSON) {
		t.Errorf("content = %s", first.Content)
	}
	if first.Usage.InputTokens != 40 || first.StopReason != "end" {
		t.Errorf("usage/stop = %+v %q", first.Usage, first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{Messages: UserMessage("a passing drill")})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(second.Content) != `{"name":"Wall Pass Rhythm"}` {
		t.Errorf("content = %s", second.Content)
	}
}

func TestMockProviderEmptyQueueIsUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want ErrProviderUnavailable", err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: drillJSON}, MockResponse{Err: &ErrRateLimit{}})

	req := Request{System: "You are a youth soccer coach.", Messages: UserMessage("drill please")}
	_, _ = mock.Generate(context.Background(), req)
	_, err := mock.Generate(context.Background(), Request{})

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("queued error not returned, got %T", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
	if mock.Calls[0].System != "You are a youth soccer coach." {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestPurposeTagging(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("untagged purpose = %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "drill-gen")
	if got := PurposeFrom(ctx); got != "drill-gen" {
		t.Errorf("purpose = %q, want drill-gen", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic missing key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-x"}}, false},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-x"}}, false},
		{"openrouter missing key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafile"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModelAliasPassThrough(t *testing.T) {
	if got := modelAlias("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("alias = %q", got)
	}
	if got := modelAlias("claude-haiku-4-5-20251001", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("full ID should pass through, got %q", got)
	}
	if got := modelAlias("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("alias = %q", got)
	}
}
