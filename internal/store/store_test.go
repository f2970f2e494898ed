package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A named in-memory database per test keeps state from leaking
	// between tests in the package.
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPlayerLoadCreatesDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.TotalExperience != 0 {
		t.Errorf("total experience = %d, want 0", p.TotalExperience)
	}
	if p.CoinBalance != 0 {
		t.Errorf("coin balance = %d, want 0", p.CoinBalance)
	}
	if p.LastActivityDate != nil {
		t.Errorf("last activity date = %v, want nil", p.LastActivityDate)
	}
}

func TestPlayerSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlayerRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	p.TotalExperience = 450
	p.Level = 3
	p.CurrentStreakDays = 4
	p.LongestStreakDays = 9
	p.StreakFreezes = 2
	p.LastActivityDate = &day
	p.LastSessionID = "sess-1"
	p.CoinBalance = 120
	p.TotalCoinsEarned = 300
	p.OwnedItems = []string{"boots-gold"}
	p.Achievements = []string{"first_session"}
	p.Position = "midfielder"

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.TotalExperience != 450 || got.Level != 3 {
		t.Errorf("experience/level = %d/%d, want 450/3", got.TotalExperience, got.Level)
	}
	if got.CurrentStreakDays != 4 || got.LongestStreakDays != 9 || got.StreakFreezes != 2 {
		t.Errorf("streak state = %d/%d/%d, want 4/9/2",
			got.CurrentStreakDays, got.LongestStreakDays, got.StreakFreezes)
	}
	if got.LastActivityDate == nil || !got.LastActivityDate.Equal(day) {
		t.Errorf("last activity date = %v, want %v", got.LastActivityDate, day)
	}
	if got.CoinBalance != 120 || got.TotalCoinsEarned != 300 {
		t.Errorf("coins = %d/%d, want 120/300", got.CoinBalance, got.TotalCoinsEarned)
	}
	if len(got.OwnedItems) != 1 || got.OwnedItems[0] != "boots-gold" {
		t.Errorf("owned items = %v", got.OwnedItems)
	}
	if got.LastSessionID != "sess-1" {
		t.Errorf("last session ID = %q, want %q", got.LastSessionID, "sess-1")
	}
}

func TestSessionEventsAndActivityDays(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	day1 := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	sessions := []SessionEventData{
		{SessionID: "s1", ActivityDate: day1, Intensity: 5, ExerciseCount: 3},
		{SessionID: "s2", ActivityDate: day1, Intensity: 7, ExerciseCount: 4},
		{SessionID: "s3", ActivityDate: day2, Intensity: 6, ExerciseCount: 2},
	}
	for _, data := range sessions {
		if err := repo.AppendSessionEvent(ctx, data); err != nil {
			t.Fatalf("append %s: %v", data.SessionID, err)
		}
	}

	has, err := repo.HasSession(ctx, "s2")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !has {
		t.Error("expected HasSession(s2) = true")
	}
	has, err = repo.HasSession(ctx, "missing")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if has {
		t.Error("expected HasSession(missing) = false")
	}

	records, err := repo.QuerySessions(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d sessions, want 3", len(records))
	}
	// Newest first.
	if records[0].SessionID != "s3" {
		t.Errorf("first record = %q, want s3", records[0].SessionID)
	}

	days, err := repo.ActivityDays(ctx)
	if err != nil {
		t.Fatalf("activity days: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d activity days, want 2 (deduplicated)", len(days))
	}
	if !days[0].Equal(day2) {
		t.Errorf("newest day = %v, want %v", days[0], day2)
	}
}

func TestCoinEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendCoinEvent(ctx, CoinEventData{
		Amount: 25, Direction: "earned", Reason: "session_complete", BalanceAfter: 25,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendCoinEvent(ctx, CoinEventData{
		Amount: 10, Direction: "spent", Reason: "shop_purchase", BalanceAfter: 15,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryCoinEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d coin events, want 2", len(records))
	}
	if records[0].Direction != "spent" || records[0].BalanceAfter != 15 {
		t.Errorf("newest event = %+v, want spent/15", records[0])
	}
}

func TestSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", ActivityDate: day}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendCoinEvent(ctx, CoinEventData{Amount: 25, Direction: "earned", Reason: "session_complete", BalanceAfter: 25}); err != nil {
		t.Fatalf("append coin: %v", err)
	}

	sessions, err := repo.QuerySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	coins, err := repo.QueryCoinEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query coins: %v", err)
	}
	if len(sessions) != 1 || len(coins) != 1 {
		t.Fatal("expected one event of each type")
	}
	// Sequence is shared across event types.
	if coins[0].Sequence <= sessions[0].Sequence {
		t.Errorf("coin sequence %d should follow session sequence %d",
			coins[0].Sequence, sessions[0].Sequence)
	}
}

func TestFeedRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.FeedRepo()
	ctx := context.Background()

	err := repo.Add(ctx, FeedPostData{
		PostID: "p1", Author: "You", Kind: "session", Body: "Completed a session",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	posts, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].Likes != 0 {
		t.Errorf("likes = %d, want 0", posts[0].Likes)
	}

	likes, err := repo.Like(ctx, "p1")
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes after like = %d, want 1", likes)
	}
}

func TestDrillEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	drills := []DrillEventData{
		{Name: "Cone Weave", SkillType: "dribbling", Difficulty: 2, DurationMins: 15, Source: "llm"},
		{Name: "Wall Pass Rhythm", SkillType: "passing", Difficulty: 3, DurationMins: 20, Source: "fallback"},
	}
	for _, d := range drills {
		if err := repo.AppendDrillEvent(ctx, d); err != nil {
			t.Fatalf("append %s: %v", d.Name, err)
		}
	}

	got, err := repo.QueryDrills(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d drills, want 2", len(got))
	}
	// Newest first.
	if got[0].Name != "Wall Pass Rhythm" || got[1].Name != "Cone Weave" {
		t.Errorf("order = %q, %q", got[0].Name, got[1].Name)
	}
	if got[1].Source != "llm" {
		t.Errorf("source = %q, want llm", got[1].Source)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "model-a", Purpose: "drill-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{Provider: "anthropic", Model: "model-a", Purpose: "drill-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "model-b", Purpose: "coaching", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[2].RequestBody != "req" || got[2].ResponseBody != "resp" {
		t.Errorf("bodies not round-tripped: %+v", got[2])
	}

	one, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ID != got[0].ID {
		t.Fatalf("get returned %+v", one)
	}
	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]LLMPurposeUsage, len(byPurpose))
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	gen := usage["drill-gen"]
	if gen.Calls != 2 || gen.InputTokens != 220 || gen.OutputTokens != 110 {
		t.Errorf("drill-gen usage = %+v", gen)
	}
	if gen.AvgLatencyMs != 300 {
		t.Errorf("drill-gen avg latency = %d, want 300", gen.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage, len(byModel))
	for _, u := range byModel {
		models[u.Model] = u
	}
	if m := models["model-b"]; m.Calls != 1 || m.InputTokens != 10 {
		t.Errorf("model-b usage = %+v", m)
	}
}
