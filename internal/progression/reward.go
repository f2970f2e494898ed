package progression

// Experience point values. Every session earns the base; the rest are
// conditional bonuses layered on top.
const (
	BasePoints          int64 = 50
	IntensityMultiplier int64 = 10
	FirstSessionBonus   int64 = 25
	CompletionBonus     int64 = 20
	RatingBonus         int64 = 5
	NotesBonus          int64 = 5
)

// streakMilestones maps an exact streak length to a one-time bonus paid on
// the day the streak hits that length. Passing through a milestone without
// landing on it exactly pays nothing.
var streakMilestones = map[int]int64{
	7:   150,
	14:  200,
	30:  500,
	60:  750,
	100: 1000,
	365: 5000,
}

// StreakMilestoneBonus returns the one-time bonus for reaching exactly
// streakDays, or 0 when streakDays is not a milestone.
func StreakMilestoneBonus(streakDays int) int64 {
	return streakMilestones[streakDays]
}

// ComputeSessionReward derives the experience breakdown for one session.
// firstToday reports whether this is the first session recorded on the
// session's calendar day, and streakDays is the streak length after the
// streak update for this session has been applied.
func ComputeSessionReward(facts SessionFacts, firstToday bool, streakDays int) Breakdown {
	b := Breakdown{Base: BasePoints}
	if facts.Intensity > 0 {
		b.IntensityBonus = int64(facts.Intensity) * IntensityMultiplier
	}
	if firstToday {
		b.FirstSessionBonus = FirstSessionBonus
	}
	if facts.AllCompleted && facts.ExerciseCount > 0 {
		b.CompletionBonus = CompletionBonus
	}
	if facts.HasRating() {
		b.RatingBonus = RatingBonus
	}
	if facts.HasNotes {
		b.NotesBonus = NotesBonus
	}
	b.StreakBonus = StreakMilestoneBonus(streakDays)
	return b
}
