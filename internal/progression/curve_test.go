package progression

import "testing"

func TestExperienceForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{-3, 0},
		{0, 0},
		{1, 0},
		{2, 100},
		{3, 250},
		{4, 475},
		{5, 812},
	}
	for _, tt := range tests {
		if got := ExperienceForLevel(tt.level); got != tt.want {
			t.Errorf("ExperienceForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestExperienceForLevelMonotonic(t *testing.T) {
	prev := ExperienceForLevel(1)
	for l := 2; l <= MaxLevel; l++ {
		cur := ExperienceForLevel(l)
		if cur <= prev {
			t.Fatalf("curve not strictly increasing at level %d: %d <= %d", l, cur, prev)
		}
		prev = cur
	}
}

func TestExperienceForLevelCapped(t *testing.T) {
	cap := ExperienceForLevel(MaxLevel)
	if got := ExperienceForLevel(MaxLevel + 1); got != cap {
		t.Errorf("ExperienceForLevel(%d) = %d, want cap %d", MaxLevel+1, got, cap)
	}
	if got := ExperienceForLevel(999); got != cap {
		t.Errorf("ExperienceForLevel(999) = %d, want cap %d", got, cap)
	}
}

func TestLevelForExperienceRoundTrip(t *testing.T) {
	for l := 1; l <= MaxLevel; l++ {
		threshold := ExperienceForLevel(l)
		if got := LevelForExperience(threshold); got != l {
			t.Errorf("LevelForExperience(ExperienceForLevel(%d)) = %d", l, got)
		}
		if l > 1 {
			if got := LevelForExperience(threshold - 1); got != l-1 {
				t.Errorf("LevelForExperience(%d) = %d, want %d", threshold-1, got, l-1)
			}
		}
	}
}

func TestLevelForExperienceBounds(t *testing.T) {
	if got := LevelForExperience(-50); got != 1 {
		t.Errorf("LevelForExperience(-50) = %d, want 1", got)
	}
	if got := LevelForExperience(0); got != 1 {
		t.Errorf("LevelForExperience(0) = %d, want 1", got)
	}
	huge := ExperienceForLevel(MaxLevel) * 10
	if got := LevelForExperience(huge); got != MaxLevel {
		t.Errorf("LevelForExperience(%d) = %d, want %d", huge, got, MaxLevel)
	}
}

func TestProgressFraction(t *testing.T) {
	if got := ProgressFraction(0, 1); got != 0 {
		t.Errorf("ProgressFraction(0, 1) = %v, want 0", got)
	}
	if got := ProgressFraction(50, 1); got != 0.5 {
		t.Errorf("ProgressFraction(50, 1) = %v, want 0.5", got)
	}
	// Half way between level 2 (100) and level 3 (250).
	if got := ProgressFraction(175, 2); got != 0.5 {
		t.Errorf("ProgressFraction(175, 2) = %v, want 0.5", got)
	}
	// A stale level argument clamps rather than going out of range.
	if got := ProgressFraction(50, 2); got != 0 {
		t.Errorf("ProgressFraction(50, 2) = %v, want 0 clamped", got)
	}
	if got := ProgressFraction(300, 2); got != 1 {
		t.Errorf("ProgressFraction(300, 2) = %v, want 1 clamped", got)
	}
	atCap := ExperienceForLevel(MaxLevel) + 12345
	if got := ProgressFraction(atCap, MaxLevel); got != 1.0 {
		t.Errorf("ProgressFraction at cap = %v, want 1.0", got)
	}
	if got := ProgressFraction(-10, 1); got != 0 {
		t.Errorf("ProgressFraction(-10, 1) = %v, want 0", got)
	}
}
