package store

import (
	"context"
	"fmt"
	"time"

	"github.com/techniq-app/techniq/ent"
	"github.com/techniq-app/techniq/ent/sessionevent"
	entschema "github.com/techniq-app/techniq/ent/schema"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var exercises []entschema.ExerciseResult
	for _, e := range data.Exercises {
		exercises = append(exercises, entschema.ExerciseResult{
			Name:      e.Name,
			SkillType: e.SkillType,
			Completed: e.Completed,
			Technique: e.Technique,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetActivityDate(data.ActivityDate).
		SetIntensity(data.Intensity).
		SetExerciseCount(data.ExerciseCount).
		SetAllCompleted(data.AllCompleted).
		SetRating(data.Rating).
		SetNotes(data.Notes).
		SetDurationSecs(data.DurationSecs).
		SetExperienceAwarded(data.ExperienceAwarded)

	if len(exercises) > 0 {
		builder = builder.SetExercises(exercises)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) HasSession(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count session events: %w", err)
	}
	return n > 0, nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	query := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionRecord, len(events))
	for i, e := range events {
		var exercises []ExerciseResult
		for _, ex := range e.Exercises {
			exercises = append(exercises, ExerciseResult{
				Name:      ex.Name,
				SkillType: ex.SkillType,
				Completed: ex.Completed,
				Technique: ex.Technique,
			})
		}
		records[i] = SessionRecord{
			SessionID:         e.SessionID,
			ActivityDate:      e.ActivityDate,
			Intensity:         e.Intensity,
			ExerciseCount:     e.ExerciseCount,
			AllCompleted:      e.AllCompleted,
			Rating:            e.Rating,
			Notes:             e.Notes,
			DurationSecs:      e.DurationSecs,
			ExperienceAwarded: e.ExperienceAwarded,
			Exercises:         exercises,
			Sequence:          e.Sequence,
			Timestamp:         e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) ActivityDays(ctx context.Context) ([]time.Time, error) {
	events, err := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldActivityDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity days: %w", err)
	}

	var days []time.Time
	seen := make(map[string]bool)
	for _, e := range events {
		key := e.ActivityDate.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, e.ActivityDate)
	}
	return days, nil
}
