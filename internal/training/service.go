package training

import (
	"context"
	"fmt"
	"time"

	"github.com/techniq-app/techniq/internal/achievements"
	"github.com/techniq-app/techniq/internal/feed"
	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/store"
)

// Swapped in tests to pin the audit clock.
var timeNow = time.Now

// Result is everything a completed session produced, for display.
type Result struct {
	Outcome  *progression.SessionOutcome
	Unlocked []achievements.Achievement
}

// Service runs the session completion pipeline.
type Service struct {
	events       store.EventRepo
	ledger       *progression.Ledger
	achievements *achievements.Service
	feed         *feed.Service
}

// NewService wires the completion pipeline. achievements and feed may be
// nil; the corresponding steps are skipped.
func NewService(events store.EventRepo, ledger *progression.Ledger, ach *achievements.Service, fd *feed.Service) *Service {
	return &Service{events: events, ledger: ledger, achievements: ach, feed: fd}
}

// Complete records a finished session. The ledger applies first and is
// authoritative; the session event, achievement checks, and feed posts
// follow. A session ID that was already recorded is rejected before
// anything applies.
func (s *Service) Complete(ctx context.Context, sess *Session) (*Result, error) {
	dup, err := s.events.HasSession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("checking session: %w", err)
	}
	if dup {
		return nil, progression.ErrSessionRecorded
	}

	facts := sess.Facts(s.ledger.Location())
	outcome, err := s.ledger.CompleteSession(ctx, facts)
	if err != nil {
		return nil, err
	}

	if err := s.appendEvent(ctx, sess, facts, outcome); err != nil {
		return nil, fmt.Errorf("recording session: %w", err)
	}

	result := &Result{Outcome: outcome}
	if s.achievements != nil {
		unlocked, err := s.achievements.Evaluate(ctx)
		if err != nil {
			return result, fmt.Errorf("checking achievements: %w", err)
		}
		result.Unlocked = unlocked
	}
	s.announce(ctx, outcome, result.Unlocked)
	return result, nil
}

func (s *Service) appendEvent(ctx context.Context, sess *Session, facts progression.SessionFacts, outcome *progression.SessionOutcome) error {
	results := make([]store.ExerciseResult, len(sess.Exercises))
	for i, ex := range sess.Exercises {
		results[i] = store.ExerciseResult{
			Name:      ex.Name,
			SkillType: ex.SkillType,
			Completed: ex.Completed,
			Technique: ex.Technique,
		}
	}
	return s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:         sess.ID,
		ActivityDate:      facts.ActivityDate,
		Intensity:         sess.Intensity,
		ExerciseCount:     len(sess.Exercises),
		AllCompleted:      facts.AllCompleted,
		Rating:            sess.Rating,
		Notes:             sess.Notes,
		DurationSecs:      int(sess.Duration.Seconds()),
		ExperienceAwarded: outcome.Breakdown.Total(),
		Exercises:         results,
	})
}

// announce posts milestones to the feed. Best effort: a feed hiccup never
// fails a recorded session.
func (s *Service) announce(ctx context.Context, outcome *progression.SessionOutcome, unlocked []achievements.Achievement) {
	if s.feed == nil {
		return
	}
	_ = s.feed.PostSession(ctx, outcome.Breakdown.Total(), outcome.StreakDays)
	if outcome.NewLevel != nil {
		_ = s.feed.PostLevelUp(ctx, *outcome.NewLevel)
	}
	for _, a := range unlocked {
		_ = s.feed.PostAchievement(ctx, a.Name)
	}
}

// AuditStreak recomputes the streak from the session history and persists
// any correction.
func (s *Service) AuditStreak(ctx context.Context) (progression.Streak, bool, error) {
	days, err := s.events.ActivityDays(ctx)
	if err != nil {
		return progression.Streak{}, false, fmt.Errorf("loading activity days: %w", err)
	}
	now := progression.DayOf(timeNow(), s.ledger.Location())
	return s.ledger.AuditStreak(ctx, days, now)
}

// History returns recent session records, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.SessionRecord, error) {
	return s.events.QuerySessions(ctx, store.QueryOpts{Limit: limit})
}
