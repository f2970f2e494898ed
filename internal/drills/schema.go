package drills

import "github.com/techniq-app/techniq/internal/llm"

// DrillSchema defines the JSON schema for LLM drill generation responses.
var DrillSchema = &llm.Schema{
	Name:        "soccer-drill",
	Description: "A single soccer training drill with step-by-step instructions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Short memorable drill name",
			},
			"skill_type": map[string]any{
				"type":        "string",
				"enum":        []any{"dribbling", "passing", "shooting", "defending", "fitness", "first_touch"},
				"description": "The primary skill this drill trains",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Difficulty from 1 (beginner) to 5 (advanced)",
			},
			"duration_mins": map[string]any{
				"type":        "integer",
				"minimum":     5,
				"maximum":     60,
				"description": "How long the drill takes in minutes",
			},
			"equipment": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Required equipment. Empty array when only a ball is needed.",
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Ordered setup and execution steps, 3 to 8 entries",
			},
			"coaching_points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Key things to focus on while performing the drill",
			},
		},
		"required":             []any{"name", "skill_type", "difficulty", "duration_mins", "equipment", "steps", "coaching_points"},
		"additionalProperties": false,
	},
}
