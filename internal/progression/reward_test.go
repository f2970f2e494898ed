package progression

import "testing"

func TestComputeSessionRewardBaseOnly(t *testing.T) {
	facts := SessionFacts{}
	b := ComputeSessionReward(facts, false, 3)
	if b.Total() != BasePoints {
		t.Errorf("bare session total = %d, want %d", b.Total(), BasePoints)
	}
}

func TestComputeSessionRewardAllBonuses(t *testing.T) {
	facts := SessionFacts{
		Intensity:     7,
		ExerciseCount: 5,
		AllCompleted:  true,
		Rating:        4,
		HasNotes:      true,
	}
	b := ComputeSessionReward(facts, true, 7)
	want := Breakdown{
		Base:              50,
		IntensityBonus:    70,
		FirstSessionBonus: 25,
		CompletionBonus:   20,
		RatingBonus:       5,
		NotesBonus:        5,
		StreakBonus:       150,
	}
	if b != want {
		t.Errorf("breakdown = %+v, want %+v", b, want)
	}
	if b.Total() != 325 {
		t.Errorf("total = %d, want 325", b.Total())
	}
}

func TestCompletionBonusRequiresExercises(t *testing.T) {
	// A session with zero planned exercises cannot earn the completion
	// bonus even when the completed flag is set.
	facts := SessionFacts{AllCompleted: true, ExerciseCount: 0}
	b := ComputeSessionReward(facts, false, 0)
	if b.CompletionBonus != 0 {
		t.Errorf("completion bonus = %d, want 0 with no exercises", b.CompletionBonus)
	}

	facts.ExerciseCount = 1
	b = ComputeSessionReward(facts, false, 0)
	if b.CompletionBonus != CompletionBonus {
		t.Errorf("completion bonus = %d, want %d", b.CompletionBonus, CompletionBonus)
	}
}

func TestStreakMilestoneBonus(t *testing.T) {
	tests := []struct {
		days int
		want int64
	}{
		{0, 0},
		{1, 0},
		{6, 0},
		{7, 150},
		{8, 0},
		{14, 200},
		{30, 500},
		{60, 750},
		{100, 1000},
		{365, 5000},
		{366, 0},
	}
	for _, tt := range tests {
		if got := StreakMilestoneBonus(tt.days); got != tt.want {
			t.Errorf("StreakMilestoneBonus(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestBreakdownTotalMatchesComponents(t *testing.T) {
	b := Breakdown{Base: 50, IntensityBonus: 30, FirstSessionBonus: 25,
		CompletionBonus: 20, RatingBonus: 5, NotesBonus: 5, StreakBonus: 200}
	if b.Total() != 335 {
		t.Errorf("Total() = %d, want 335", b.Total())
	}
}
