// Package economy manages the player's coin balance. Coins are earned from
// training payouts and spent in the shop; the balance can never go negative
// and every movement leaves a ledger event behind for the history view.
package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/techniq-app/techniq/internal/store"
)

// Transaction directions.
const (
	DirectionEarned = "earned"
	DirectionSpent  = "spent"
)

// Well-known transaction reasons.
const (
	ReasonSessionComplete = "session_complete"
	ReasonFirstOfDay      = "first_of_day"
	ReasonPerfectRating   = "perfect_rating"
	ReasonStreakContinued = "streak_continued"
	ReasonStreakMilestone = "streak_milestone"
	ReasonLevelUp         = "level_up"
	ReasonAchievement     = "achievement"
	ReasonShopPurchase    = "shop_purchase"
)

// CoinTransaction describes one applied balance movement.
type CoinTransaction struct {
	Amount    int64
	Direction string
	Reason    string
	// Balance is the coin balance after this transaction applied.
	Balance   int64
	Timestamp time.Time
}

// Service is the coin economy. All mutations go through Award and Deduct so
// the non-negative balance invariant holds everywhere.
type Service struct {
	players store.PlayerRepo
	events  store.EventRepo
}

// NewService returns a coin economy backed by the given repos. events may
// be nil, in which case transactions are applied without audit records.
func NewService(players store.PlayerRepo, events store.EventRepo) *Service {
	return &Service{players: players, events: events}
}

// Balance returns the current coin balance.
func (s *Service) Balance(ctx context.Context) (int64, error) {
	p, err := s.players.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading player: %w", err)
	}
	return p.CoinBalance, nil
}

// CanAfford reports whether the balance covers amount.
func (s *Service) CanAfford(ctx context.Context, amount int64) (bool, error) {
	bal, err := s.Balance(ctx)
	if err != nil {
		return false, err
	}
	return bal >= amount, nil
}

// Award credits amount coins and returns the applied transaction. The
// amount must be positive. Lifetime earnings move in lockstep with awards.
func (s *Service) Award(ctx context.Context, amount int64, reason string) (*CoinTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("award amount must be positive, got %d", amount)
	}
	p, err := s.players.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}
	p.CoinBalance += amount
	p.TotalCoinsEarned += amount
	if err := s.players.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving balance: %w", err)
	}

	tx := &CoinTransaction{
		Amount:    amount,
		Direction: DirectionEarned,
		Reason:    reason,
		Balance:   p.CoinBalance,
		Timestamp: time.Now(),
	}
	s.record(ctx, tx)
	return tx, nil
}

// Deduct debits amount coins. It returns false without touching the
// balance when funds are insufficient; the error is reserved for
// persistence failures.
func (s *Service) Deduct(ctx context.Context, amount int64, reason string) (bool, error) {
	return s.DeductWith(ctx, amount, reason, nil)
}

// DeductWith debits amount and applies mutate to the same player record
// before the save, so a charge and whatever it pays for commit together.
// Like Deduct it returns false without touching anything when funds are
// insufficient.
func (s *Service) DeductWith(ctx context.Context, amount int64, reason string, mutate func(*store.Player)) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("deduct amount must be positive, got %d", amount)
	}
	p, err := s.players.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading player: %w", err)
	}
	if p.CoinBalance < amount {
		return false, nil
	}
	p.CoinBalance -= amount
	if mutate != nil {
		mutate(p)
	}
	if err := s.players.Save(ctx, p); err != nil {
		return false, fmt.Errorf("saving balance: %w", err)
	}

	s.record(ctx, &CoinTransaction{
		Amount:    amount,
		Direction: DirectionSpent,
		Reason:    reason,
		Balance:   p.CoinBalance,
		Timestamp: time.Now(),
	})
	return true, nil
}

// record appends the audit event. Best effort: the balance is already
// committed, and the event log is a history view, not the source of truth.
func (s *Service) record(ctx context.Context, tx *CoinTransaction) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendCoinEvent(ctx, store.CoinEventData{
		Amount:       tx.Amount,
		Direction:    tx.Direction,
		Reason:       tx.Reason,
		BalanceAfter: tx.Balance,
	})
}
