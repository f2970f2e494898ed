package llm

import "testing"

func TestToGeminiSchemaDrillShape(t *testing.T) {
	schema := toGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":       map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "integer"},
			"skill_type": map[string]any{"type": "string", "enum": []any{"dribbling", "passing", "shooting"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"name", "skill_type"},
	})

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["difficulty"].Type != "INTEGER" {
		t.Errorf("difficulty type = %s", schema.Properties["difficulty"].Type)
	}
	if len(schema.Properties["skill_type"].Enum) != 3 {
		t.Errorf("enum values = %d, want 3", len(schema.Properties["skill_type"].Enum))
	}
	steps := schema.Properties["steps"]
	if steps.Type != "ARRAY" || steps.Items.Type != "STRING" {
		t.Errorf("steps = %s of %v", steps.Type, steps.Items)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestGeminiTypeFallsBackToString(t *testing.T) {
	if got := geminiType("duration"); got != "STRING" {
		t.Errorf("unknown type maps to %s, want STRING", got)
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
