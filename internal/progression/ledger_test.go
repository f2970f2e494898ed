package progression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/store"
)

// memPlayerRepo is an in-memory PlayerRepo with an optional save failure,
// for exercising the single-save commit semantics.
type memPlayerRepo struct {
	p        store.Player
	failSave bool
	saves    int
}

func newMemPlayerRepo() *memPlayerRepo {
	return &memPlayerRepo{p: store.Player{ID: 1, Level: 1}}
}

func (m *memPlayerRepo) Load(ctx context.Context) (*store.Player, error) {
	cp := m.p
	if m.p.LastActivityDate != nil {
		d := *m.p.LastActivityDate
		cp.LastActivityDate = &d
	}
	return &cp, nil
}

func (m *memPlayerRepo) Save(ctx context.Context, p *store.Player) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.p = *p
	m.saves++
	return nil
}

func newTestLedger(repo *memPlayerRepo) *Ledger {
	econ := economy.NewService(repo, nil)
	return NewLedger(repo, econ, time.UTC)
}

func TestCompleteSessionFirstEver(t *testing.T) {
	repo := newMemPlayerRepo()
	ledger := newTestLedger(repo)
	ctx := context.Background()

	facts := SessionFacts{
		SessionID:     "sess-1",
		Intensity:     6,
		ExerciseCount: 4,
		AllCompleted:  true,
		Rating:        5,
		HasNotes:      true,
		ActivityDate:  day(0),
	}
	out, err := ledger.CompleteSession(ctx, facts)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	// 50 base + 60 intensity + 25 first-of-day + 20 completion + 5 rating
	// + 5 notes, no streak milestone on day one.
	if got := out.Breakdown.Total(); got != 165 {
		t.Errorf("experience total = %d, want 165", got)
	}
	if out.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", out.StreakDays)
	}
	if out.NewLevel == nil || *out.NewLevel != 2 {
		t.Errorf("new level = %v, want 2", out.NewLevel)
	}
	// 25 session + 10 first-of-day + 15 perfect rating + 50 level-up.
	if out.CoinTotal != 100 {
		t.Errorf("coin total = %d, want 100", out.CoinTotal)
	}
	if repo.p.LastSessionID != "sess-1" {
		t.Errorf("last session ID = %q, want sess-1", repo.p.LastSessionID)
	}
}

func TestCompleteSessionDuplicateID(t *testing.T) {
	repo := newMemPlayerRepo()
	ledger := newTestLedger(repo)
	ctx := context.Background()

	facts := SessionFacts{SessionID: "sess-1", ActivityDate: day(0)}
	if _, err := ledger.CompleteSession(ctx, facts); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	xp := repo.p.TotalExperience
	coins := repo.p.CoinBalance

	_, err := ledger.CompleteSession(ctx, facts)
	if !errors.Is(err, ErrSessionRecorded) {
		t.Fatalf("err = %v, want ErrSessionRecorded", err)
	}
	if repo.p.TotalExperience != xp || repo.p.CoinBalance != coins {
		t.Error("duplicate session mutated player state")
	}
}

func TestCompleteSessionSecondOfDay(t *testing.T) {
	repo := newMemPlayerRepo()
	ledger := newTestLedger(repo)
	ctx := context.Background()

	morning := day(0).Add(8 * time.Hour)
	evening := day(0).Add(19 * time.Hour)

	if _, err := ledger.CompleteSession(ctx, SessionFacts{SessionID: "a", ActivityDate: morning}); err != nil {
		t.Fatalf("first: %v", err)
	}
	out, err := ledger.CompleteSession(ctx, SessionFacts{SessionID: "b", ActivityDate: evening})
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if out.Breakdown.FirstSessionBonus != 0 {
		t.Errorf("second session of the day earned first-session bonus")
	}
	if out.StreakDays != 1 {
		t.Errorf("streak = %d, want 1 (same day)", out.StreakDays)
	}
}

func TestCompleteSessionExtendsStreak(t *testing.T) {
	repo := newMemPlayerRepo()
	ledger := newTestLedger(repo)
	ctx := context.Background()

	if _, err := ledger.CompleteSession(ctx, SessionFacts{SessionID: "a", ActivityDate: day(0)}); err != nil {
		t.Fatalf("day 0: %v", err)
	}
	out, err := ledger.CompleteSession(ctx, SessionFacts{SessionID: "b", ActivityDate: day(1)})
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if out.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", out.StreakDays)
	}
	if repo.p.LongestStreakDays != 2 {
		t.Errorf("longest = %d, want 2", repo.p.LongestStreakDays)
	}
}

func TestCompleteSessionStreakMilestone(t *testing.T) {
	repo := newMemPlayerRepo()
	last := day(-1)
	// Level 4 exactly, far enough from level 5 that the milestone bonus
	// does not also trigger a level-up payout.
	repo.p.TotalExperience = 475
	repo.p.Level = 4
	repo.p.CurrentStreakDays = 6
	repo.p.LongestStreakDays = 6
	repo.p.LastActivityDate = &last
	ledger := newTestLedger(repo)

	out, err := ledger.CompleteSession(context.Background(), SessionFacts{
		SessionID: "sess-7", ActivityDate: day(0),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.StreakDays != 7 {
		t.Fatalf("streak = %d, want 7", out.StreakDays)
	}
	if out.Breakdown.StreakBonus != 150 {
		t.Errorf("streak bonus = %d, want 150", out.Breakdown.StreakBonus)
	}
	// 25 session + 10 first-of-day + 5 streak continued + 50 weekly.
	if out.CoinTotal != 90 {
		t.Errorf("coin total = %d, want 90", out.CoinTotal)
	}
}

func TestCompleteSessionWeeklyCoinsWithoutExperienceMilestone(t *testing.T) {
	repo := newMemPlayerRepo()
	last := day(-1)
	repo.p.TotalExperience = 475
	repo.p.Level = 4
	repo.p.CurrentStreakDays = 20
	repo.p.LongestStreakDays = 20
	repo.p.LastActivityDate = &last
	ledger := newTestLedger(repo)

	out, err := ledger.CompleteSession(context.Background(), SessionFacts{
		SessionID: "sess-21", ActivityDate: day(0),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.StreakDays != 21 {
		t.Fatalf("streak = %d, want 21", out.StreakDays)
	}
	// Day 21 is not an experience milestone but is a weekly coin day.
	if out.Breakdown.StreakBonus != 0 {
		t.Errorf("streak bonus = %d, want 0", out.Breakdown.StreakBonus)
	}
	// 25 session + 10 first-of-day + 5 streak continued + 50 weekly.
	if out.CoinTotal != 90 {
		t.Errorf("coin total = %d, want 90", out.CoinTotal)
	}
}

func TestCompleteSessionConsumesFreeze(t *testing.T) {
	repo := newMemPlayerRepo()
	last := day(-2)
	repo.p.CurrentStreakDays = 3
	repo.p.LongestStreakDays = 3
	repo.p.StreakFreezes = 1
	repo.p.LastActivityDate = &last
	ledger := newTestLedger(repo)

	out, err := ledger.CompleteSession(context.Background(), SessionFacts{
		SessionID: "sess", ActivityDate: day(0),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !out.UsedFreeze {
		t.Error("expected a freeze to be consumed")
	}
	if out.StreakDays != 4 {
		t.Errorf("streak = %d, want 4", out.StreakDays)
	}
	if repo.p.StreakFreezes != 0 {
		t.Errorf("freezes = %d, want 0", repo.p.StreakFreezes)
	}
}

func TestCompleteSessionSaveFailureLeavesStateUntouched(t *testing.T) {
	repo := newMemPlayerRepo()
	repo.p.TotalExperience = 300
	repo.p.Level = 3
	repo.failSave = true
	ledger := newTestLedger(repo)

	_, err := ledger.CompleteSession(context.Background(), SessionFacts{
		SessionID: "sess", ActivityDate: day(0),
	})
	if err == nil {
		t.Fatal("expected save error")
	}
	if repo.p.TotalExperience != 300 || repo.p.Level != 3 {
		t.Errorf("player mutated despite save failure: %+v", repo.p)
	}
	if repo.p.CoinBalance != 0 {
		t.Errorf("coins paid out despite save failure: %d", repo.p.CoinBalance)
	}
}

func TestCompleteSessionMultiLevelJump(t *testing.T) {
	repo := newMemPlayerRepo()
	// 5 experience short of level 2; a big session can cross two levels.
	repo.p.TotalExperience = 95
	repo.p.Level = 1
	ledger := newTestLedger(repo)

	out, err := ledger.CompleteSession(context.Background(), SessionFacts{
		SessionID:     "sess",
		Intensity:     10,
		ExerciseCount: 6,
		AllCompleted:  true,
		Rating:        4,
		HasNotes:      true,
		ActivityDate:  day(0),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// 50 + 100 + 25 + 20 + 5 + 5 = 205; 95 + 205 = 300 which is level 3.
	if out.TotalExperience != 300 {
		t.Fatalf("total experience = %d, want 300", out.TotalExperience)
	}
	if out.NewLevel == nil || *out.NewLevel != 3 {
		t.Errorf("new level = %v, want 3", out.NewLevel)
	}
	// Base 25 + first-of-day 10 + two levels at 50 each.
	if out.CoinTotal != 135 {
		t.Errorf("coin total = %d, want 135", out.CoinTotal)
	}
}

func TestAuditStreakCorrectsDrift(t *testing.T) {
	repo := newMemPlayerRepo()
	repo.p.CurrentStreakDays = 9
	repo.p.LongestStreakDays = 9
	ledger := newTestLedger(repo)

	history := []time.Time{day(0), day(-1), day(-2)}
	streak, changed, err := ledger.AuditStreak(context.Background(), history, day(0))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !changed {
		t.Fatal("expected audit to report a correction")
	}
	if streak.CurrentDays != 3 {
		t.Errorf("streak = %d, want 3", streak.CurrentDays)
	}
	if repo.p.CurrentStreakDays != 3 {
		t.Errorf("persisted streak = %d, want 3", repo.p.CurrentStreakDays)
	}
	if repo.p.LongestStreakDays != 9 {
		t.Errorf("longest = %d, want 9 preserved", repo.p.LongestStreakDays)
	}
}

func TestAuditStreakNoChangeNoSave(t *testing.T) {
	repo := newMemPlayerRepo()
	last := day(0)
	repo.p.CurrentStreakDays = 2
	repo.p.LongestStreakDays = 2
	repo.p.LastActivityDate = &last
	ledger := newTestLedger(repo)

	history := []time.Time{day(0), day(-1)}
	_, changed, err := ledger.AuditStreak(context.Background(), history, day(0))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if changed {
		t.Error("audit reported a change for matching state")
	}
	if repo.saves != 0 {
		t.Errorf("audit saved %d times, want 0", repo.saves)
	}
}
