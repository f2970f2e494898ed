// Package feed is the local activity feed: short posts generated from
// training milestones, with a like counter for a bit of dopamine.
package feed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/techniq-app/techniq/internal/store"
)

// Post kinds.
const (
	KindSession     = "session"
	KindLevelUp     = "level_up"
	KindAchievement = "achievement"
)

const defaultAuthor = "You"

// Service posts to and reads from the activity feed.
type Service struct {
	repo store.FeedRepo
}

// NewService returns a feed service over the given repo.
func NewService(repo store.FeedRepo) *Service {
	return &Service{repo: repo}
}

// PostSession announces a completed session.
func (s *Service) PostSession(ctx context.Context, xp int64, streakDays int) error {
	body := fmt.Sprintf("Completed a training session for %d XP", xp)
	if streakDays > 1 {
		body = fmt.Sprintf("%s. %d day streak!", body, streakDays)
	}
	return s.post(ctx, KindSession, body)
}

// PostLevelUp announces a level-up.
func (s *Service) PostLevelUp(ctx context.Context, level int) error {
	return s.post(ctx, KindLevelUp, fmt.Sprintf("Reached level %d!", level))
}

// PostAchievement announces an unlocked achievement.
func (s *Service) PostAchievement(ctx context.Context, name string) error {
	return s.post(ctx, KindAchievement, fmt.Sprintf("Unlocked achievement: %s", name))
}

func (s *Service) post(ctx context.Context, kind, body string) error {
	return s.repo.Add(ctx, store.FeedPostData{
		PostID: uuid.NewString(),
		Author: defaultAuthor,
		Kind:   kind,
		Body:   body,
	})
}

// Recent returns the newest posts, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]store.FeedPostRecord, error) {
	return s.repo.Recent(ctx, limit)
}

// Like bumps a post's like counter and returns the new count.
func (s *Service) Like(ctx context.Context, postID string) (int, error) {
	return s.repo.Like(ctx, postID)
}
