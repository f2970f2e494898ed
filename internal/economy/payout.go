package economy

import "context"

// Coin payout amounts for training sessions.
const (
	CoinsSessionComplete int64 = 25
	CoinsFirstOfDay      int64 = 10
	CoinsPerfectRating   int64 = 15
	CoinsStreakContinued int64 = 5
	CoinsStreakWeekly    int64 = 50
	CoinsPerLevelUp      int64 = 50
)

// SessionPayoutInput selects which conditional session payouts apply.
type SessionPayoutInput struct {
	FirstOfDay      bool
	PerfectRating   bool
	StreakContinued bool
	// StreakWeekly is set on the day the streak reaches a multiple of
	// seven days.
	StreakWeekly bool
	// LevelsGained is how many levels the session's experience crossed.
	LevelsGained int
}

// SessionPayout applies the full set of coin awards for one completed
// session. Each award commits independently; a failure partway returns the
// transactions that did apply along with the error, and already-applied
// awards stay applied.
func (s *Service) SessionPayout(ctx context.Context, in SessionPayoutInput) ([]CoinTransaction, error) {
	type payout struct {
		amount int64
		reason string
	}
	payouts := []payout{{CoinsSessionComplete, ReasonSessionComplete}}
	if in.FirstOfDay {
		payouts = append(payouts, payout{CoinsFirstOfDay, ReasonFirstOfDay})
	}
	if in.PerfectRating {
		payouts = append(payouts, payout{CoinsPerfectRating, ReasonPerfectRating})
	}
	if in.StreakContinued {
		payouts = append(payouts, payout{CoinsStreakContinued, ReasonStreakContinued})
	}
	if in.StreakWeekly {
		payouts = append(payouts, payout{CoinsStreakWeekly, ReasonStreakMilestone})
	}
	if in.LevelsGained > 0 {
		payouts = append(payouts, payout{CoinsPerLevelUp * int64(in.LevelsGained), ReasonLevelUp})
	}

	var applied []CoinTransaction
	for _, p := range payouts {
		tx, err := s.Award(ctx, p.amount, p.reason)
		if err != nil {
			return applied, err
		}
		applied = append(applied, *tx)
	}
	return applied, nil
}
