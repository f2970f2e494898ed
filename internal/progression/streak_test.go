package progression

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestStreakFirstEverActivity(t *testing.T) {
	var s Streak
	upd := s.RecordActivity(day(0))
	if !upd.Changed || !upd.Extended || upd.Reset || upd.UsedFreeze {
		t.Errorf("unexpected update %+v", upd)
	}
	if s.CurrentDays != 1 || s.LongestDays != 1 {
		t.Errorf("streak = %d/%d, want 1/1", s.CurrentDays, s.LongestDays)
	}
	if s.LastActivity == nil || !SameDay(*s.LastActivity, day(0)) {
		t.Errorf("last activity not recorded")
	}
}

func TestStreakSameDayIdempotent(t *testing.T) {
	var s Streak
	s.RecordActivity(day(0))
	for i := 0; i < 3; i++ {
		upd := s.RecordActivity(day(0))
		if upd.Changed {
			t.Fatalf("repeat activity on same day changed streak: %+v", upd)
		}
	}
	if s.CurrentDays != 1 {
		t.Errorf("streak = %d after repeats, want 1", s.CurrentDays)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	var s Streak
	for i := 0; i < 5; i++ {
		s.RecordActivity(day(i))
	}
	if s.CurrentDays != 5 || s.LongestDays != 5 {
		t.Errorf("streak = %d/%d, want 5/5", s.CurrentDays, s.LongestDays)
	}
}

func TestStreakFreezeBridgesOneMissedDay(t *testing.T) {
	s := Streak{Freezes: 1}
	s.RecordActivity(day(0))
	s.RecordActivity(day(1))

	// Miss day 2, train on day 3.
	upd := s.RecordActivity(day(3))
	if !upd.Extended || !upd.UsedFreeze {
		t.Errorf("expected freeze extension, got %+v", upd)
	}
	if s.CurrentDays != 3 {
		t.Errorf("streak = %d, want 3", s.CurrentDays)
	}
	if s.Freezes != 0 {
		t.Errorf("freezes = %d, want 0", s.Freezes)
	}
}

func TestStreakGapWithoutFreezeResets(t *testing.T) {
	var s Streak
	s.RecordActivity(day(0))
	s.RecordActivity(day(1))

	upd := s.RecordActivity(day(3))
	if !upd.Reset {
		t.Errorf("expected reset, got %+v", upd)
	}
	if s.CurrentDays != 1 {
		t.Errorf("streak = %d, want 1", s.CurrentDays)
	}
	if s.LongestDays != 2 {
		t.Errorf("longest = %d, want 2", s.LongestDays)
	}
}

func TestStreakTwoMissedDaysResetEvenWithFreezes(t *testing.T) {
	s := Streak{Freezes: 5}
	s.RecordActivity(day(0))

	upd := s.RecordActivity(day(3))
	if !upd.Reset || upd.UsedFreeze {
		t.Errorf("expected plain reset, got %+v", upd)
	}
	if s.Freezes != 5 {
		t.Errorf("freezes = %d, want 5 untouched", s.Freezes)
	}
	if s.CurrentDays != 1 {
		t.Errorf("streak = %d, want 1", s.CurrentDays)
	}
}

func TestStreakLongestNeverDecreases(t *testing.T) {
	var s Streak
	for i := 0; i < 10; i++ {
		s.RecordActivity(day(i))
	}
	s.RecordActivity(day(20)) // break
	if s.LongestDays != 10 {
		t.Errorf("longest = %d, want 10", s.LongestDays)
	}
	s.RecordActivity(day(21))
	s.RecordActivity(day(22))
	if s.LongestDays != 10 || s.CurrentDays != 3 {
		t.Errorf("streak = %d/%d, want 3/10", s.CurrentDays, s.LongestDays)
	}
}

func TestRecomputeFromHistoryConsecutiveRun(t *testing.T) {
	today := day(10)
	history := []time.Time{day(10), day(9), day(8), day(6), day(5)}

	var s Streak
	s.RecomputeFromHistory(history, today)
	if s.CurrentDays != 3 {
		t.Errorf("streak = %d, want 3", s.CurrentDays)
	}
	if s.LongestDays != 3 {
		t.Errorf("longest = %d, want 3", s.LongestDays)
	}
}

func TestRecomputeFromHistoryEndsYesterday(t *testing.T) {
	today := day(10)
	history := []time.Time{day(9), day(8)}

	var s Streak
	s.RecomputeFromHistory(history, today)
	if s.CurrentDays != 2 {
		t.Errorf("streak = %d, want 2", s.CurrentDays)
	}
}

func TestRecomputeFromHistoryStaleGoesToZero(t *testing.T) {
	today := day(10)
	history := []time.Time{day(7), day(6), day(5)}

	s := Streak{CurrentDays: 3, LongestDays: 3}
	s.RecomputeFromHistory(history, today)
	if s.CurrentDays != 0 {
		t.Errorf("streak = %d, want 0 for stale history", s.CurrentDays)
	}
	if s.LongestDays != 3 {
		t.Errorf("longest = %d, want 3 preserved", s.LongestDays)
	}
}

func TestRecomputeFromHistoryEmpty(t *testing.T) {
	s := Streak{CurrentDays: 4, LongestDays: 9}
	s.RecomputeFromHistory(nil, day(0))
	if s.CurrentDays != 0 {
		t.Errorf("streak = %d, want 0", s.CurrentDays)
	}
	if s.LongestDays != 9 {
		t.Errorf("longest = %d, want 9 preserved", s.LongestDays)
	}
}

func TestRecomputeFromHistoryDuplicatesAndOrder(t *testing.T) {
	today := day(5)
	// Unsorted with duplicate timestamps on the same day.
	history := []time.Time{
		day(3), day(5).Add(9 * time.Hour), day(4), day(5), day(4).Add(20 * time.Hour),
	}

	var s Streak
	s.RecomputeFromHistory(history, today)
	if s.CurrentDays != 3 {
		t.Errorf("streak = %d, want 3", s.CurrentDays)
	}
}

func TestRecomputeNeverLowersLongest(t *testing.T) {
	// Freezes bridged gaps during live tracking, so the raw history shows
	// a shorter run than the tracked longest. The audit must keep it.
	today := day(2)
	history := []time.Time{day(2), day(1)}

	s := Streak{CurrentDays: 8, LongestDays: 15}
	s.RecomputeFromHistory(history, today)
	if s.CurrentDays != 2 {
		t.Errorf("streak = %d, want 2", s.CurrentDays)
	}
	if s.LongestDays != 15 {
		t.Errorf("longest = %d, want 15 preserved", s.LongestDays)
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// US spring-forward 2026: March 8. The day is 23 hours long.
	a := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	b := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween across spring-forward = %d, want 1", got)
	}
}
