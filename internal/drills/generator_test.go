package drills

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/techniq-app/techniq/internal/llm"
)

var validDrillJSON = json.RawMessage(`{
	"name": "Cone Weave Sprint",
	"skill_type": "dribbling",
	"difficulty": 3,
	"duration_mins": 15,
	"equipment": ["6 cones"],
	"steps": ["Set up cones", "Weave through at pace", "Sprint back"],
	"coaching_points": ["Keep the ball close"]
}`)

func sampleInput() GenerateInput {
	return GenerateInput{
		Profile: Profile{
			Position:        "winger",
			ExperienceLevel: "intermediate",
			TrainingGoals:   []string{"improve weak foot"},
		},
		SkillType:    SkillDribbling,
		RecentDrills: []string{"Box Turns"},
	}
}

func TestLLMGeneratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDrillJSON})
	gen := New(mock, DefaultConfig())

	d, err := gen.Generate(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if d.Name != "Cone Weave Sprint" || d.SkillType != SkillDribbling {
		t.Errorf("drill = %+v", d)
	}
	if len(d.Steps) != 3 {
		t.Errorf("steps = %d, want 3", len(d.Steps))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != DrillSchema {
		t.Error("request did not carry the drill schema")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"winger", "dribbling", "improve weak foot", "Box Turns"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestLLMGeneratorRejectsInvalidDrills(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing name", `{"name":"","skill_type":"passing","difficulty":2,"duration_mins":10,"equipment":[],"steps":["a"],"coaching_points":[]}`},
		{"no steps", `{"name":"X","skill_type":"passing","difficulty":2,"duration_mins":10,"equipment":[],"steps":[],"coaching_points":[]}`},
		{"difficulty out of range", `{"name":"X","skill_type":"passing","difficulty":9,"duration_mins":10,"equipment":[],"steps":["a"],"coaching_points":[]}`},
		{"zero duration", `{"name":"X","skill_type":"passing","difficulty":2,"duration_mins":0,"equipment":[],"steps":["a"],"coaching_points":[]}`},
		{"not json", `cones everywhere`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.json)})
			gen := New(mock, DefaultConfig())
			if _, err := gen.Generate(context.Background(), sampleInput()); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLLMGeneratorProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	gen := New(mock, DefaultConfig())
	if _, err := gen.Generate(context.Background(), sampleInput()); err == nil {
		t.Error("expected provider error to surface")
	}
}

func TestBuildRecentLimits(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	out := buildRecent(names, 3)
	if strings.Contains(out, "d") || strings.Contains(out, "e") {
		t.Errorf("recent list not limited: %q", out)
	}
	if buildRecent(nil, 3) != "None" {
		t.Errorf("empty recent list should render as None")
	}
}

func TestFallbackGeneratorSkipsRecent(t *testing.T) {
	gen := NewFallback()
	in := GenerateInput{SkillType: SkillDribbling, RecentDrills: []string{"Cone Slalom"}}

	d, err := gen.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if d.Name == "Cone Slalom" {
		t.Errorf("fallback repeated a recent drill")
	}
	if d.SkillType != SkillDribbling {
		t.Errorf("skill type = %q, want dribbling", d.SkillType)
	}
}

func TestFallbackGeneratorUnknownSkill(t *testing.T) {
	gen := NewFallback()
	d, err := gen.Generate(context.Background(), GenerateInput{SkillType: "telepathy"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if d == nil || d.Name == "" {
		t.Error("expected a drill for unknown skill type")
	}
}

func TestFallbackCatalogIsValid(t *testing.T) {
	for skill, drills := range fallbackCatalog {
		if len(drills) == 0 {
			t.Errorf("skill %q has an empty catalog", skill)
		}
		for i := range drills {
			if err := validateDrill(&drills[i]); err != nil {
				t.Errorf("catalog drill invalid: %v", err)
			}
			if drills[i].SkillType != skill {
				t.Errorf("drill %q filed under %q but tagged %q", drills[i].Name, skill, drills[i].SkillType)
			}
		}
	}
}
