package achievements

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	econ := economy.NewService(s.PlayerRepo(), s.EventRepo())
	return NewService(s.PlayerRepo(), s.EventRepo(), econ), s
}

func addSession(t *testing.T, s *store.Store, id string) {
	t.Helper()
	err := s.EventRepo().AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    id,
		ActivityDate: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.Unlocked == nil {
			t.Errorf("achievement %q has no condition", a.ID)
		}
	}
}

func TestByID(t *testing.T) {
	if a := ByID("first_session"); a == nil || a.Name != "First Touch" {
		t.Errorf("ByID(first_session) = %+v", a)
	}
	if a := ByID("nope"); a != nil {
		t.Errorf("ByID(nope) = %+v, want nil", a)
	}
}

func TestEvaluateFirstSession(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	addSession(t, s, "s1")

	unlocked, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "first_session" {
		t.Fatalf("unlocked = %+v, want first_session only", unlocked)
	}

	p, err := s.PlayerRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p.Achievements) != 1 || p.Achievements[0] != "first_session" {
		t.Errorf("persisted achievements = %v", p.Achievements)
	}
	if p.CoinBalance != 50 {
		t.Errorf("coin balance = %d, want 50", p.CoinBalance)
	}
}

func TestEvaluateIsOneTime(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	addSession(t, s, "s1")

	if _, err := svc.Evaluate(ctx); err != nil {
		t.Fatalf("first evaluate: %v", err)
	}
	unlocked, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("re-evaluation unlocked %+v again", unlocked)
	}

	p, _ := s.PlayerRepo().Load(ctx)
	if p.CoinBalance != 50 {
		t.Errorf("coin balance = %d, want 50 (no double payout)", p.CoinBalance)
	}
}

func TestEvaluateMultipleAtOnce(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	addSession(t, s, "s1")

	p, err := s.PlayerRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p.Level = 10
	p.LongestStreakDays = 7
	if err := s.PlayerRepo().Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	unlocked, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := []string{"first_session", "week_streak", "level_5", "level_10"}
	if len(unlocked) != len(want) {
		t.Fatalf("unlocked %d achievements, want %d: %+v", len(unlocked), len(want), unlocked)
	}
	for i, id := range want {
		if unlocked[i].ID != id {
			t.Errorf("unlocked[%d] = %q, want %q", i, unlocked[i].ID, id)
		}
	}
}

func TestEvaluateNothingToUnlock(t *testing.T) {
	svc, _ := newTestService(t)

	unlocked, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if unlocked != nil {
		t.Errorf("unlocked = %+v, want nil for fresh player", unlocked)
	}
}
