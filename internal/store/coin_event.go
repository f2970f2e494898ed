package store

import (
	"context"
	"fmt"

	"github.com/techniq-app/techniq/ent"
	"github.com/techniq-app/techniq/ent/coinevent"
)

func (r *eventRepo) AppendCoinEvent(ctx context.Context, data CoinEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CoinEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetDirection(data.Direction).
		SetReason(data.Reason).
		SetBalanceAfter(data.BalanceAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save coin event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCoinEvents(ctx context.Context, opts QueryOpts) ([]CoinEventRecord, error) {
	query := r.client.CoinEvent.Query().
		Order(ent.Desc(coinevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(coinevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(coinevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(coinevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(coinevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query coin events: %w", err)
	}

	records := make([]CoinEventRecord, len(events))
	for i, e := range events {
		records[i] = CoinEventRecord{
			Amount:       e.Amount,
			Direction:    e.Direction,
			Reason:       e.Reason,
			BalanceAfter: e.BalanceAfter,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
