package progression

import "time"

// SessionFacts is the immutable record of one finished training session,
// produced by the session flow. Early-ended sessions still produce facts;
// the reward base guarantees they earn something.
type SessionFacts struct {
	// SessionID identifies the concrete session entity. The ledger refuses
	// to record the same ID twice.
	SessionID string

	// Intensity is the self-reported effort, 0-10.
	Intensity int

	// ExerciseCount is the number of exercises in the session plan.
	ExerciseCount int

	// AllCompleted reports whether every planned exercise was finished.
	AllCompleted bool

	// Rating is the post-session rating 1-5; 0 when the player skipped it.
	Rating int

	// HasNotes reports whether the player wrote session notes.
	HasNotes bool

	// ActivityDate is the calendar day the session counts toward,
	// normalized to midnight in the engine's location.
	ActivityDate time.Time
}

// HasRating reports whether the player rated the session.
func (f SessionFacts) HasRating() bool {
	return f.Rating > 0
}

// Breakdown is the per-component experience award for one session.
type Breakdown struct {
	Base              int64
	IntensityBonus    int64
	FirstSessionBonus int64
	CompletionBonus   int64
	RatingBonus       int64
	NotesBonus        int64
	StreakBonus       int64
}

// Total returns the sum of all components.
func (b Breakdown) Total() int64 {
	return b.Base + b.IntensityBonus + b.FirstSessionBonus +
		b.CompletionBonus + b.RatingBonus + b.NotesBonus + b.StreakBonus
}

// SessionOutcome is what the ledger hands back to the caller for display.
type SessionOutcome struct {
	Breakdown Breakdown

	// NewLevel is set when the session caused a level-up.
	NewLevel *int

	// Level is the player's level after the session.
	Level int

	// TotalExperience is the cumulative experience after the session.
	TotalExperience int64

	// StreakDays is the streak length after the update.
	StreakDays int

	// UsedFreeze reports whether a streak freeze was consumed.
	UsedFreeze bool

	// CoinTotal is the coin balance after all payouts.
	CoinTotal int64
}
