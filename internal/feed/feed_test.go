package feed

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/techniq-app/techniq/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s.FeedRepo())
}

func TestPostKinds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.PostSession(ctx, 165, 3); err != nil {
		t.Fatalf("post session: %v", err)
	}
	if err := svc.PostLevelUp(ctx, 4); err != nil {
		t.Fatalf("post level up: %v", err)
	}
	if err := svc.PostAchievement(ctx, "Full Week"); err != nil {
		t.Fatalf("post achievement: %v", err)
	}

	posts, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	// Newest first.
	if posts[0].Kind != KindAchievement || !strings.Contains(posts[0].Body, "Full Week") {
		t.Errorf("newest post = %+v", posts[0])
	}
	if posts[2].Kind != KindSession || !strings.Contains(posts[2].Body, "3 day streak") {
		t.Errorf("oldest post = %+v", posts[2])
	}
}

func TestPostSessionWithoutStreak(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.PostSession(ctx, 75, 1); err != nil {
		t.Fatalf("post: %v", err)
	}
	posts, err := svc.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if strings.Contains(posts[0].Body, "streak") {
		t.Errorf("one-day streak should not be announced: %q", posts[0].Body)
	}
}

func TestLike(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.PostLevelUp(ctx, 2); err != nil {
		t.Fatalf("post: %v", err)
	}
	posts, _ := svc.Recent(ctx, 1)

	likes, err := svc.Like(ctx, posts[0].PostID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes = %d, want 1", likes)
	}
	likes, _ = svc.Like(ctx, posts[0].PostID)
	if likes != 2 {
		t.Errorf("likes = %d, want 2", likes)
	}
}
