package recs

import (
	"math"
	"testing"
)

func TestExerciseScore(t *testing.T) {
	tests := []struct {
		name   string
		sample SessionSample
		want   float64
	}{
		{
			name:   "perfect session",
			sample: SessionSample{CompletionRate: 1.0, DurationSecs: 1800, Technique: 5},
			want:   1.0,
		},
		{
			name:   "floor applies to a bad session",
			sample: SessionSample{CompletionRate: 0, DurationSecs: 0, Technique: 0},
			want:   0.1,
		},
		{
			name: "mid session",
			// 0.5*0.4 + (15/30)*0.3 + (3/5)*0.3 = 0.53
			sample: SessionSample{CompletionRate: 0.5, DurationSecs: 900, Technique: 3},
			want:   0.53,
		},
		{
			name: "long duration caps at ideal",
			// duration score capped at 1.0 even for a two-hour grind
			sample: SessionSample{CompletionRate: 1.0, DurationSecs: 7200, Technique: 5},
			want:   1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExerciseScore(tt.sample)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ExerciseScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	a := map[string]float64{"x": 0.8, "y": 0.6}
	identical := map[string]float64{"x": 0.8, "y": 0.6}
	if got := CosineSimilarity(a, identical); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("similarity of identical users = %v, want 1", got)
	}

	oneCommon := map[string]float64{"x": 0.8, "z": 0.5}
	if got := CosineSimilarity(a, oneCommon); got != 0 {
		t.Errorf("similarity with one common exercise = %v, want 0", got)
	}

	if got := CosineSimilarity(a, map[string]float64{}); got != 0 {
		t.Errorf("similarity with empty user = %v, want 0", got)
	}
}

func TestAddSamplesAveragesRepeats(t *testing.T) {
	e := NewEngine()
	e.AddSamples([]SessionSample{
		{UserID: "u1", Exercise: "Cone Dribbling", CompletionRate: 1.0, DurationSecs: 1800, Technique: 5},
		{UserID: "u1", Exercise: "Cone Dribbling", CompletionRate: 0, DurationSecs: 0, Technique: 0},
	})
	got := e.scores["u1"]["Cone Dribbling"]
	if math.Abs(got-0.55) > 1e-9 {
		t.Errorf("averaged score = %v, want 0.55", got)
	}
}

func TestAddSamplesSkipsAnonymous(t *testing.T) {
	e := NewEngine()
	e.AddSamples([]SessionSample{{Exercise: "Wall Passes", CompletionRate: 1}})
	if len(e.scores) != 0 {
		t.Errorf("anonymous sample created a profile: %v", e.scores)
	}
}

func buildCommunity() *Engine {
	e := NewEngine()
	good := SessionSample{CompletionRate: 1.0, DurationSecs: 1800, Technique: 5}
	samples := []SessionSample{}
	add := func(user string, exercises ...string) {
		for _, ex := range exercises {
			s := good
			s.UserID = user
			s.Exercise = ex
			samples = append(samples, s)
		}
	}
	// "me" and "peer" overlap heavily; peer has done Shooting Drill too.
	add("me", "Cone Dribbling", "Wall Passes")
	add("peer", "Cone Dribbling", "Wall Passes", "Shooting Drill")
	add("stranger", "Juggling")
	e.AddSamples(samples)
	return e
}

func TestCollaborativeRecommendsUnseenFromSimilarUsers(t *testing.T) {
	e := buildCommunity()
	all := []string{"Cone Dribbling", "Wall Passes", "Shooting Drill", "Juggling"}

	recs := e.Collaborative("me", all, 5)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1: %+v", len(recs), recs)
	}
	if recs[0].Exercise != "Shooting Drill" {
		t.Errorf("recommended %q, want Shooting Drill", recs[0].Exercise)
	}
}

func TestCollaborativeUnknownUser(t *testing.T) {
	e := buildCommunity()
	if recs := e.Collaborative("nobody", []string{"Juggling"}, 5); recs != nil {
		t.Errorf("recs for unknown user = %+v, want nil", recs)
	}
}

func TestContentBasedPrefersStrongSkills(t *testing.T) {
	e := NewEngine()
	e.AddSamples([]SessionSample{
		{UserID: "me", Exercise: "Cone Dribbling", CompletionRate: 1.0, DurationSecs: 1800, Technique: 5},
		{UserID: "me", Exercise: "Long Balls", CompletionRate: 0.2, DurationSecs: 300, Technique: 1},
	})
	meta := map[string]ExerciseMeta{
		"Cone Dribbling":  {SkillType: "dribbling", Difficulty: 2},
		"Long Balls":      {SkillType: "passing", Difficulty: 2},
		"Slalom Runs":     {SkillType: "dribbling", Difficulty: 3},
		"Crossing Drills": {SkillType: "passing", Difficulty: 3},
	}
	all := []string{"Cone Dribbling", "Long Balls", "Slalom Runs", "Crossing Drills"}

	recs := e.ContentBased("me", all, meta, 5)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2: %+v", len(recs), recs)
	}
	if recs[0].Exercise != "Slalom Runs" {
		t.Errorf("top pick = %q, want Slalom Runs (strongest skill)", recs[0].Exercise)
	}
}

func TestRecommendFallsBackToDefaults(t *testing.T) {
	e := NewEngine()
	recs := e.Recommend("me", nil, nil, 3)
	if len(recs) != 3 {
		t.Fatalf("got %d defaults, want 3", len(recs))
	}
	if recs[0].Exercise != "Ball Control" || recs[0].MatchPercent != 85 {
		t.Errorf("first default = %+v", recs[0])
	}
	if recs[2].MatchPercent != 75 {
		t.Errorf("third default match = %d, want 75", recs[2].MatchPercent)
	}
}

func TestRecommendBlendsSources(t *testing.T) {
	e := buildCommunity()
	all := []string{"Cone Dribbling", "Wall Passes", "Shooting Drill", "Juggling"}
	meta := map[string]ExerciseMeta{
		"Cone Dribbling": {SkillType: "dribbling", Difficulty: 1},
		"Wall Passes":    {SkillType: "passing", Difficulty: 1},
		"Shooting Drill": {SkillType: "shooting", Difficulty: 2},
		"Juggling":       {SkillType: "dribbling", Difficulty: 2},
	}

	recs := e.Recommend("me", all, meta, 3)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0].Exercise != "Shooting Drill" {
		t.Errorf("top pick = %q, want Shooting Drill", recs[0].Exercise)
	}
	for _, r := range recs {
		if r.MatchPercent < 40 || r.MatchPercent > 95 {
			t.Errorf("match percent %d out of display range", r.MatchPercent)
		}
	}
}
