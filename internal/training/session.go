// Package training records finished sessions and drives the progression
// pipeline: ledger credit, event log, achievement checks, and feed posts.
package training

import (
	"time"

	"github.com/google/uuid"

	"github.com/techniq-app/techniq/internal/progression"
)

// Exercise is one planned exercise within a session.
type Exercise struct {
	Name      string
	SkillType string
	Completed bool
	// Technique is a self-assessed 0-10 score, 0 when not rated.
	Technique float64
}

// Session is one training session as entered by the player. Ending a
// session early still produces a valid session; unfinished exercises just
// forfeit the completion bonus.
type Session struct {
	ID         string
	StartedAt  time.Time
	Duration   time.Duration
	Exercises  []Exercise
	Intensity  int
	Rating     int
	Notes      string
	EndedEarly bool
}

// NewSession returns an empty session starting now.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// AllCompleted reports whether every exercise was finished. A session with
// no exercises is never "all completed".
func (s *Session) AllCompleted() bool {
	if len(s.Exercises) == 0 {
		return false
	}
	for _, ex := range s.Exercises {
		if !ex.Completed {
			return false
		}
	}
	return true
}

// Facts reduces the session to the immutable facts the ledger consumes.
// The activity day is taken from the session start in loc.
func (s *Session) Facts(loc *time.Location) progression.SessionFacts {
	return progression.SessionFacts{
		SessionID:     s.ID,
		Intensity:     s.Intensity,
		ExerciseCount: len(s.Exercises),
		AllCompleted:  s.AllCompleted(),
		Rating:        s.Rating,
		HasNotes:      s.Notes != "",
		ActivityDate:  progression.DayOf(s.StartedAt, loc),
	}
}
