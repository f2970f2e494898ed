package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// A pared-down version of the drill schema, enough to exercise required
// fields, enums, bounds, and array items.
func drillTestSchema() *Schema {
	return &Schema{
		Name:        "drill-check",
		Description: "One training drill",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":       map[string]any{"type": "string"},
				"skill_type": map[string]any{"type": "string", "enum": []any{"dribbling", "passing", "shooting"}},
				"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"name", "skill_type", "difficulty"},
		},
	}
}

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete drill", `{"name":"Cone Weave","skill_type":"dribbling","difficulty":2,"steps":["set 6 cones","weave through"]}`, false},
		{"optional steps omitted", `{"name":"Wall Passes","skill_type":"passing","difficulty":1}`, false},
		{"missing difficulty", `{"name":"Cone Weave","skill_type":"dribbling"}`, true},
		{"skill outside enum", `{"name":"Keepy Uppies","skill_type":"juggling","difficulty":2}`, true},
		{"difficulty over bound", `{"name":"Cone Weave","skill_type":"dribbling","difficulty":9}`, true},
		{"difficulty as text", `{"name":"Cone Weave","skill_type":"dribbling","difficulty":"hard"}`, true},
		{"step items not strings", `{"name":"Cone Weave","skill_type":"dribbling","difficulty":2,"steps":[1,2]}`, true},
		{"not JSON at all", `six cones, weave through them`, true},
		{"empty response", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSchema(drillTestSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkSchema() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Errorf("err = %T, want ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestCheckSchemaNilAcceptsAnything(t *testing.T) {
	if err := checkSchema(nil, json.RawMessage(`plain coaching advice, not JSON`)); err != nil {
		t.Fatalf("nil schema should accept raw text: %v", err)
	}
}
