package progression

// MaxLevel is the curve ceiling. Experience keeps accumulating past it but
// the level never does.
const MaxLevel = 50

// ExperienceForLevel returns the cumulative experience required to reach
// level. Level 1 costs nothing; each step up costs 1.5x the previous one,
// starting at 100 for level 2, with every marginal cost truncated to a
// whole number before summing. Levels above MaxLevel cost the same as
// MaxLevel, and levels below 1 cost the same as level 1.
func ExperienceForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	var total int64
	marginal := 100.0
	for l := 2; l <= level; l++ {
		total += int64(marginal)
		marginal *= 1.5
	}
	return total
}

// LevelForExperience returns the highest level whose cumulative requirement
// is at or below xp, capped at MaxLevel. Negative xp maps to level 1.
func LevelForExperience(xp int64) int {
	level := 1
	for level < MaxLevel && xp >= ExperienceForLevel(level+1) {
		level++
	}
	return level
}

// ProgressFraction returns the fraction of the way from level's cumulative
// requirement to the next level's, in [0, 1]. At MaxLevel it is always 1.
func ProgressFraction(xp int64, level int) float64 {
	if level < 1 {
		level = 1
	}
	if level >= MaxLevel {
		return 1.0
	}
	floor := ExperienceForLevel(level)
	ceil := ExperienceForLevel(level + 1)
	frac := float64(xp-floor) / float64(ceil-floor)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
