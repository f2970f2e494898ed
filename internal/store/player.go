package store

import (
	"context"
	"fmt"

	"github.com/techniq-app/techniq/ent"
)

// playerRepo implements PlayerRepo using the ent client.
type playerRepo struct {
	client *ent.Client
}

func (r *playerRepo) Load(ctx context.Context) (*Player, error) {
	ps, err := r.client.PlayerState.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query player state: %w", err)
		}
		ps, err = r.client.PlayerState.Create().Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create player state: %w", err)
		}
	}

	return &Player{
		ID:                ps.ID,
		TotalExperience:   ps.TotalExperience,
		Level:             ps.Level,
		CurrentStreakDays: ps.CurrentStreakDays,
		LongestStreakDays: ps.LongestStreakDays,
		StreakFreezes:     ps.StreakFreezes,
		LastActivityDate:  ps.LastActivityDate,
		LastSessionID:     ps.LastSessionID,
		CoinBalance:       ps.CoinBalance,
		TotalCoinsEarned:  ps.TotalCoinsEarned,
		OwnedItems:        ps.OwnedItems,
		Achievements:      ps.Achievements,
		Position:          ps.Position,
		ExperienceLevel:   ps.ExperienceLevel,
		TrainingGoals:     ps.TrainingGoals,
	}, nil
}

func (r *playerRepo) Save(ctx context.Context, p *Player) error {
	builder := r.client.PlayerState.UpdateOneID(p.ID).
		SetTotalExperience(p.TotalExperience).
		SetLevel(p.Level).
		SetCurrentStreakDays(p.CurrentStreakDays).
		SetLongestStreakDays(p.LongestStreakDays).
		SetStreakFreezes(p.StreakFreezes).
		SetLastSessionID(p.LastSessionID).
		SetCoinBalance(p.CoinBalance).
		SetTotalCoinsEarned(p.TotalCoinsEarned).
		SetOwnedItems(p.OwnedItems).
		SetAchievements(p.Achievements).
		SetPosition(p.Position).
		SetExperienceLevel(p.ExperienceLevel).
		SetTrainingGoals(p.TrainingGoals)

	if p.LastActivityDate != nil {
		builder = builder.SetLastActivityDate(*p.LastActivityDate)
	} else {
		builder = builder.ClearLastActivityDate()
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save player state: %w", err)
	}
	return nil
}
