package store

import (
	"context"
	"fmt"

	"github.com/techniq-app/techniq/ent"
	"github.com/techniq-app/techniq/ent/drillevent"
)

func (r *eventRepo) AppendDrillEvent(ctx context.Context, data DrillEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DrillEvent.Create().
		SetSequence(seqNum).
		SetName(data.Name).
		SetSkillType(data.SkillType).
		SetPosition(data.Position).
		SetDifficulty(data.Difficulty).
		SetDurationMins(data.DurationMins).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save drill event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryDrills(ctx context.Context, opts QueryOpts) ([]DrillEventRecord, error) {
	query := r.client.DrillEvent.Query().
		Order(ent.Desc(drillevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(drillevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(drillevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query drill events: %w", err)
	}

	records := make([]DrillEventRecord, len(events))
	for i, e := range events {
		records[i] = DrillEventRecord{
			Name:         e.Name,
			SkillType:    e.SkillType,
			Position:     e.Position,
			Difficulty:   e.Difficulty,
			DurationMins: e.DurationMins,
			Source:       e.Source,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
