// Package llm talks to hosted language models for drill generation and
// coaching text. TechnIQ only ever makes short one-shot requests: a system
// prompt describing the coach persona, one user turn, and usually a JSON
// schema the answer must conform to.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single model behind a uniform one-shot interface.
type Provider interface {
	// Generate runs one request against the model. When the request
	// carries a Schema the returned Content is JSON already validated
	// against it; otherwise Content is the raw model text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Role marks who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// UserMessage builds the single-turn message list used by every caller in
// this app.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Request is everything a Generate call needs.
type Request struct {
	// System sets the model's persona, for this app a youth soccer coach.
	System string

	// Messages is the conversation so far. Drill generation sends
	// exactly one user turn.
	Messages []Message

	// Schema, when set, switches the provider to its structured output
	// mode and the response is validated against it before return.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema names a JSON shape the model must produce. Name doubles as the
// provider-side identifier (tool name, response-format name), so keep it
// kebab-case, e.g. "soccer-drill".
type Schema struct {
	Name        string
	Description string

	// Definition is a plain JSON Schema document as a map.
	Definition map[string]any
}

// Usage is the token spend of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the model's answer.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the identifier the backend reports, which may be more
	// specific than the one requested.
	Model string

	// StopReason is normalized across providers to "end" or "max_tokens".
	StopReason string
}

// modelAlias resolves a short friendly name ("claude-haiku") through the
// given alias table, passing unlisted names through untouched so full
// model IDs always work.
func modelAlias(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
