// Package achievements defines one-time unlockable badges with coin
// payouts. Unlocks are checked after every completed session against the
// player record and session history.
package achievements

import (
	"context"
	"fmt"

	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/store"
)

// Stats is the snapshot an achievement condition is evaluated against.
type Stats struct {
	SessionCount     int
	Level            int
	CurrentStreak    int
	LongestStreak    int
	TotalCoinsEarned int64
}

// Achievement is a one-time unlockable badge.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Coins       int64
	Unlocked    func(Stats) bool
}

// All returns the full achievement catalog in display order.
func All() []Achievement {
	return []Achievement{
		{
			ID:          "first_session",
			Name:        "First Touch",
			Description: "Complete your first training session",
			Coins:       50,
			Unlocked:    func(s Stats) bool { return s.SessionCount >= 1 },
		},
		{
			ID:          "ten_sessions",
			Name:        "Regular",
			Description: "Complete 10 training sessions",
			Coins:       100,
			Unlocked:    func(s Stats) bool { return s.SessionCount >= 10 },
		},
		{
			ID:          "fifty_sessions",
			Name:        "Grinder",
			Description: "Complete 50 training sessions",
			Coins:       300,
			Unlocked:    func(s Stats) bool { return s.SessionCount >= 50 },
		},
		{
			ID:          "week_streak",
			Name:        "Full Week",
			Description: "Train 7 days in a row",
			Coins:       100,
			Unlocked:    func(s Stats) bool { return s.LongestStreak >= 7 },
		},
		{
			ID:          "month_streak",
			Name:        "Iron Habit",
			Description: "Train 30 days in a row",
			Coins:       500,
			Unlocked:    func(s Stats) bool { return s.LongestStreak >= 30 },
		},
		{
			ID:          "level_5",
			Name:        "Rising Talent",
			Description: "Reach level 5",
			Coins:       100,
			Unlocked:    func(s Stats) bool { return s.Level >= 5 },
		},
		{
			ID:          "level_10",
			Name:        "Academy Prospect",
			Description: "Reach level 10",
			Coins:       250,
			Unlocked:    func(s Stats) bool { return s.Level >= 10 },
		},
		{
			ID:          "level_25",
			Name:        "First Team",
			Description: "Reach level 25",
			Coins:       750,
			Unlocked:    func(s Stats) bool { return s.Level >= 25 },
		},
		{
			ID:          "level_50",
			Name:        "Club Legend",
			Description: "Reach level 50",
			Coins:       2000,
			Unlocked:    func(s Stats) bool { return s.Level >= 50 },
		},
		{
			ID:          "coins_1000",
			Name:        "Sponsored",
			Description: "Earn 1000 coins in total",
			Coins:       100,
			Unlocked:    func(s Stats) bool { return s.TotalCoinsEarned >= 1000 },
		},
	}
}

// ByID returns the achievement with the given ID, or nil.
func ByID(id string) *Achievement {
	for _, a := range All() {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// Service evaluates and persists achievement unlocks.
type Service struct {
	players store.PlayerRepo
	events  store.EventRepo
	economy *economy.Service
}

// NewService returns an achievement evaluator.
func NewService(players store.PlayerRepo, events store.EventRepo, econ *economy.Service) *Service {
	return &Service{players: players, events: events, economy: econ}
}

// Evaluate checks every locked achievement against the current stats and
// unlocks the ones whose conditions now hold, paying their coin rewards.
// It returns the newly unlocked achievements in catalog order.
func (s *Service) Evaluate(ctx context.Context) ([]Achievement, error) {
	p, err := s.players.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}

	sessions, err := s.events.QuerySessions(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}

	stats := Stats{
		SessionCount:     len(sessions),
		Level:            p.Level,
		CurrentStreak:    p.CurrentStreakDays,
		LongestStreak:    p.LongestStreakDays,
		TotalCoinsEarned: p.TotalCoinsEarned,
	}

	have := make(map[string]bool, len(p.Achievements))
	for _, id := range p.Achievements {
		have[id] = true
	}

	var unlocked []Achievement
	for _, a := range All() {
		if have[a.ID] || !a.Unlocked(stats) {
			continue
		}
		unlocked = append(unlocked, a)
		p.Achievements = append(p.Achievements, a.ID)
	}
	if len(unlocked) == 0 {
		return nil, nil
	}

	if err := s.players.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving unlocks: %w", err)
	}
	for _, a := range unlocked {
		if a.Coins <= 0 {
			continue
		}
		if _, err := s.economy.Award(ctx, a.Coins, economy.ReasonAchievement); err != nil {
			return unlocked, fmt.Errorf("paying %s: %w", a.ID, err)
		}
	}
	return unlocked, nil
}
