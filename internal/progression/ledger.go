package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/store"
)

// ErrSessionRecorded is returned when a session ID has already been
// credited, so a retry cannot double-pay.
var ErrSessionRecorded = errors.New("session already recorded")

// Ledger applies finished sessions to the player record: streak, experience,
// level, and the coin payouts that follow. It is the only writer of the
// progression fields.
type Ledger struct {
	players store.PlayerRepo
	economy *economy.Service
	loc     *time.Location
}

// NewLedger returns a ledger operating in loc. A nil loc means local time.
func NewLedger(players store.PlayerRepo, econ *economy.Service, loc *time.Location) *Ledger {
	if loc == nil {
		loc = time.Local
	}
	return &Ledger{players: players, economy: econ, loc: loc}
}

// Location returns the calendar location the ledger operates in.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// CompleteSession credits one finished session. The order matters: the
// streak updates first so the reward sees the post-update streak length,
// then experience and level apply, and the whole progression change commits
// in a single save. Coin payouts follow as independent transactions; a
// payout failure leaves the already-applied awards in place and is reported
// alongside the outcome.
func (l *Ledger) CompleteSession(ctx context.Context, facts SessionFacts) (*SessionOutcome, error) {
	p, err := l.players.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}
	if facts.SessionID != "" && facts.SessionID == p.LastSessionID {
		return nil, ErrSessionRecorded
	}

	day := DayOf(facts.ActivityDate, l.loc)
	firstToday := p.LastActivityDate == nil || !SameDay(DayOf(*p.LastActivityDate, l.loc), day)

	streak := streakFromPlayer(p, l.loc)
	upd := streak.RecordActivity(day)

	breakdown := ComputeSessionReward(facts, firstToday, streak.CurrentDays)

	oldLevel := p.Level
	p.TotalExperience += breakdown.Total()
	p.Level = LevelForExperience(p.TotalExperience)
	p.CurrentStreakDays = streak.CurrentDays
	p.LongestStreakDays = streak.LongestDays
	p.StreakFreezes = streak.Freezes
	p.LastActivityDate = streak.LastActivity
	p.LastSessionID = facts.SessionID

	// One save for the whole progression change. On failure nothing was
	// applied; the loaded copy is discarded.
	if err := l.players.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving progression: %w", err)
	}

	outcome := &SessionOutcome{
		Breakdown:       breakdown,
		Level:           p.Level,
		TotalExperience: p.TotalExperience,
		StreakDays:      streak.CurrentDays,
		UsedFreeze:      upd.UsedFreeze,
	}
	if p.Level > oldLevel {
		lvl := p.Level
		outcome.NewLevel = &lvl
	}

	txs, err := l.economy.SessionPayout(ctx, economy.SessionPayoutInput{
		FirstOfDay:           firstToday,
		PerfectRating:        facts.Rating == 5,
		StreakContinued: upd.Extended && streak.CurrentDays > 1,
		StreakWeekly:    upd.Changed && streak.CurrentDays > 0 && streak.CurrentDays%7 == 0,
		LevelsGained:    p.Level - oldLevel,
	})
	if len(txs) > 0 {
		outcome.CoinTotal = txs[len(txs)-1].Balance
	}
	if err != nil {
		return outcome, fmt.Errorf("session payout: %w", err)
	}
	return outcome, nil
}

// AuditStreak recomputes the streak from the recorded activity days and
// persists the corrected value when it drifted. It returns the corrected
// streak and whether anything changed.
func (l *Ledger) AuditStreak(ctx context.Context, days []time.Time, now time.Time) (Streak, bool, error) {
	p, err := l.players.Load(ctx)
	if err != nil {
		return Streak{}, false, fmt.Errorf("loading player: %w", err)
	}

	streak := streakFromPlayer(p, l.loc)
	streak.RecomputeFromHistory(days, DayOf(now, l.loc))

	changed := streak.CurrentDays != p.CurrentStreakDays ||
		streak.LongestDays != p.LongestStreakDays
	if !changed {
		return streak, false, nil
	}

	p.CurrentStreakDays = streak.CurrentDays
	p.LongestStreakDays = streak.LongestDays
	if streak.LastActivity != nil {
		p.LastActivityDate = streak.LastActivity
	}
	if err := l.players.Save(ctx, p); err != nil {
		return streak, false, fmt.Errorf("saving audit result: %w", err)
	}
	return streak, true, nil
}

func streakFromPlayer(p *store.Player, loc *time.Location) Streak {
	s := Streak{
		CurrentDays: p.CurrentStreakDays,
		LongestDays: p.LongestStreakDays,
		Freezes:     p.StreakFreezes,
	}
	if p.LastActivityDate != nil {
		d := DayOf(*p.LastActivityDate, loc)
		s.LastActivity = &d
	}
	return s
}
