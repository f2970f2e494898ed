package drills

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/techniq-app/techniq/internal/llm"
)

// Generator produces a drill for the given input.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Drill, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// drillOutput is the raw LLM response before validation.
type drillOutput struct {
	Name           string   `json:"name"`
	SkillType      string   `json:"skill_type"`
	Difficulty     int      `json:"difficulty"`
	DurationMins   int      `json:"duration_mins"`
	Equipment      []string `json:"equipment"`
	Steps          []string `json:"steps"`
	CoachingPoints []string `json:"coaching_points"`
}

// Generate produces a single drill for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Drill, error) {
	ctx = llm.WithPurpose(ctx, "drill-gen")

	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(input, g.config)),
		Schema:      DrillSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw drillOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	d := &Drill{
		Name:           raw.Name,
		SkillType:      raw.SkillType,
		Difficulty:     raw.Difficulty,
		DurationMins:   raw.DurationMins,
		Equipment:      raw.Equipment,
		Steps:          raw.Steps,
		CoachingPoints: raw.CoachingPoints,
	}
	if err := validateDrill(d); err != nil {
		return nil, err
	}
	return d, nil
}

// validateDrill enforces the structural contract on a generated drill.
func validateDrill(d *Drill) error {
	if d.Name == "" {
		return fmt.Errorf("generated drill has no name")
	}
	if d.SkillType == "" {
		return fmt.Errorf("generated drill %q has no skill type", d.Name)
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("generated drill %q has no steps", d.Name)
	}
	if d.Difficulty < 1 || d.Difficulty > 5 {
		return fmt.Errorf("generated drill %q has difficulty %d outside 1-5", d.Name, d.Difficulty)
	}
	if d.DurationMins <= 0 {
		return fmt.Errorf("generated drill %q has non-positive duration", d.Name)
	}
	return nil
}
