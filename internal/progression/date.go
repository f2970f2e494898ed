package progression

import (
	"math"
	"time"
)

// DayOf normalizes t to midnight of its calendar day in loc. All streak
// arithmetic operates on these normalized days so that "consecutive" means
// consecutive calendar days, not 24-hour windows.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b. Both must be
// normalized midnights in the same location. Rounding absorbs DST-shortened
// and DST-lengthened days.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
