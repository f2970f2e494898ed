package progression

import (
	"sort"
	"time"
)

// Streak is the consecutive-day activity state. All dates are normalized
// midnights in the engine's location.
type Streak struct {
	CurrentDays  int
	LongestDays  int
	Freezes      int
	LastActivity *time.Time
}

// StreakUpdate describes what RecordActivity did to the streak.
type StreakUpdate struct {
	// Changed is false for a repeat activity on the already-recorded day.
	Changed bool
	// Extended is true when the streak grew by one, either consecutively
	// or across a one-day gap bridged by a freeze.
	Extended bool
	// UsedFreeze is true when a freeze was consumed to bridge the gap.
	UsedFreeze bool
	// Reset is true when the streak restarted at one.
	Reset bool
}

// RecordActivity folds one day of activity into the streak. Multiple
// activities on the same day are a no-op after the first. A gap of exactly
// one missed day is bridged by consuming a freeze when one is available;
// any longer gap, or a one-day gap with no freezes, resets the streak to
// one. LongestDays never decreases.
func (s *Streak) RecordActivity(day time.Time) StreakUpdate {
	var upd StreakUpdate

	switch {
	case s.LastActivity == nil:
		s.CurrentDays = 1
		upd = StreakUpdate{Changed: true, Extended: true}

	case SameDay(*s.LastActivity, day):
		return StreakUpdate{}

	default:
		gap := DaysBetween(*s.LastActivity, day)
		switch {
		case gap == 1:
			s.CurrentDays++
			upd = StreakUpdate{Changed: true, Extended: true}
		case gap == 2 && s.Freezes > 0:
			s.Freezes--
			s.CurrentDays++
			upd = StreakUpdate{Changed: true, Extended: true, UsedFreeze: true}
		default:
			s.CurrentDays = 1
			upd = StreakUpdate{Changed: true, Reset: true}
		}
	}

	if s.CurrentDays > s.LongestDays {
		s.LongestDays = s.CurrentDays
	}
	d := day
	s.LastActivity = &d
	return upd
}

// RecomputeFromHistory rebuilds the current streak from the full set of
// activity days, as a drift audit. Days are deduplicated; the streak is the
// length of the consecutive run ending at today or yesterday, and zero when
// the most recent activity is older than that. Freezes play no part here:
// the audit only sees days activity actually happened. LongestDays is
// raised if the recomputed run exceeds it, never lowered, since freezes may
// have legitimately bridged gaps the raw history shows.
func (s *Streak) RecomputeFromHistory(days []time.Time, today time.Time) {
	uniq := dedupeDaysDesc(days)
	if len(uniq) == 0 {
		s.CurrentDays = 0
		return
	}

	latest := uniq[0]
	if DaysBetween(latest, today) > 1 {
		s.CurrentDays = 0
		return
	}

	run := 1
	for i := 1; i < len(uniq); i++ {
		if DaysBetween(uniq[i], uniq[i-1]) != 1 {
			break
		}
		run++
	}
	s.CurrentDays = run
	if run > s.LongestDays {
		s.LongestDays = run
	}
	d := latest
	s.LastActivity = &d
}

// dedupeDaysDesc returns the unique calendar days sorted newest first.
func dedupeDaysDesc(days []time.Time) []time.Time {
	if len(days) == 0 {
		return nil
	}
	sorted := make([]time.Time, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	uniq := sorted[:1]
	for _, d := range sorted[1:] {
		if !SameDay(d, uniq[len(uniq)-1]) {
			uniq = append(uniq, d)
		}
	}
	return uniq
}
