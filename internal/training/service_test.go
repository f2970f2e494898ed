package training

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/techniq-app/techniq/internal/achievements"
	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/feed"
	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/store"
)

func newTestPipeline(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	econ := economy.NewService(s.PlayerRepo(), s.EventRepo())
	ledger := progression.NewLedger(s.PlayerRepo(), econ, time.UTC)
	ach := achievements.NewService(s.PlayerRepo(), s.EventRepo(), econ)
	fd := feed.NewService(s.FeedRepo())
	return NewService(s.EventRepo(), ledger, ach, fd), s
}

func sampleSession() *Session {
	sess := NewSession()
	sess.StartedAt = time.Date(2026, 8, 30, 17, 30, 0, 0, time.UTC)
	sess.Duration = 45 * time.Minute
	sess.Intensity = 7
	sess.Rating = 5
	sess.Notes = "worked on weak foot"
	sess.Exercises = []Exercise{
		{Name: "Cone dribbling", SkillType: "dribbling", Completed: true, Technique: 7.5},
		{Name: "Wall passes", SkillType: "passing", Completed: true, Technique: 8},
	}
	return sess
}

func TestCompletePipeline(t *testing.T) {
	svc, s := newTestPipeline(t)
	ctx := context.Background()

	res, err := svc.Complete(ctx, sampleSession())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	// 50 base + 70 intensity + 25 first-of-day + 20 completion + 5 rating
	// + 5 notes.
	if got := res.Outcome.Breakdown.Total(); got != 175 {
		t.Errorf("experience = %d, want 175", got)
	}
	if res.Outcome.NewLevel == nil || *res.Outcome.NewLevel != 2 {
		t.Errorf("new level = %v, want 2", res.Outcome.NewLevel)
	}

	// The session event landed with the awarded experience.
	records, err := s.EventRepo().QuerySessions(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d session events, want 1", len(records))
	}
	if records[0].ExperienceAwarded != 175 {
		t.Errorf("recorded experience = %d, want 175", records[0].ExperienceAwarded)
	}
	if len(records[0].Exercises) != 2 {
		t.Errorf("recorded exercises = %d, want 2", len(records[0].Exercises))
	}

	// First session unlocks an achievement.
	if len(res.Unlocked) != 1 || res.Unlocked[0].ID != "first_session" {
		t.Errorf("unlocked = %+v, want first_session", res.Unlocked)
	}

	// Feed got session, level-up and achievement posts.
	posts, err := s.FeedRepo().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(posts) != 3 {
		t.Errorf("got %d feed posts, want 3", len(posts))
	}
}

func TestCompleteDuplicateSessionRejected(t *testing.T) {
	svc, _ := newTestPipeline(t)
	ctx := context.Background()

	sess := sampleSession()
	if _, err := svc.Complete(ctx, sess); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	_, err := svc.Complete(ctx, sess)
	if !errors.Is(err, progression.ErrSessionRecorded) {
		t.Errorf("err = %v, want ErrSessionRecorded", err)
	}
}

func TestCompleteEndedEarlySession(t *testing.T) {
	svc, _ := newTestPipeline(t)
	ctx := context.Background()

	sess := sampleSession()
	sess.EndedEarly = true
	sess.Exercises[1].Completed = false
	sess.Rating = 0
	sess.Notes = ""

	res, err := svc.Complete(ctx, sess)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Outcome.Breakdown.CompletionBonus != 0 {
		t.Error("incomplete session earned completion bonus")
	}
	// Base pay still applies.
	if res.Outcome.Breakdown.Base == 0 {
		t.Error("ended-early session earned no base experience")
	}
}

func TestSessionAllCompleted(t *testing.T) {
	sess := NewSession()
	if sess.AllCompleted() {
		t.Error("empty session reported all completed")
	}
	sess.Exercises = []Exercise{{Name: "a", Completed: true}, {Name: "b", Completed: false}}
	if sess.AllCompleted() {
		t.Error("partial session reported all completed")
	}
	sess.Exercises[1].Completed = true
	if !sess.AllCompleted() {
		t.Error("finished session not reported all completed")
	}
}

func TestAuditStreak(t *testing.T) {
	svc, s := newTestPipeline(t)
	ctx := context.Background()

	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return today }
	t.Cleanup(func() { timeNow = time.Now })

	// Three consecutive recorded days, but the stored streak says 10.
	for i := 0; i < 3; i++ {
		err := s.EventRepo().AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:    fmt.Sprintf("s%d", i),
			ActivityDate: today.AddDate(0, 0, -i),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	p, _ := s.PlayerRepo().Load(ctx)
	p.CurrentStreakDays = 10
	p.LongestStreakDays = 10
	if err := s.PlayerRepo().Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	streak, changed, err := svc.AuditStreak(ctx)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !changed || streak.CurrentDays != 3 {
		t.Errorf("audit = changed %v, streak %d; want changed with 3", changed, streak.CurrentDays)
	}
}

func TestHistory(t *testing.T) {
	svc, _ := newTestPipeline(t)
	ctx := context.Background()

	first := sampleSession()
	if _, err := svc.Complete(ctx, first); err != nil {
		t.Fatalf("complete: %v", err)
	}
	second := sampleSession()
	second.StartedAt = first.StartedAt.Add(2 * time.Hour)
	if _, err := svc.Complete(ctx, second); err != nil {
		t.Fatalf("complete: %v", err)
	}

	records, err := svc.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SessionID != second.ID {
		t.Errorf("newest record = %q, want %q", records[0].SessionID, second.ID)
	}
}
