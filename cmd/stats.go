package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/achievements"
	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression, streak, and coin stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		p, err := st.PlayerRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load player: %w", err)
		}

		progress := progression.ProgressFraction(p.TotalExperience, p.Level)
		fmt.Printf("Level %d", p.Level)
		if p.Level < progression.MaxLevel {
			next := progression.ExperienceForLevel(p.Level + 1)
			fmt.Printf("  (%d / %d XP, %.0f%%)\n", p.TotalExperience, next, progress*100)
		} else {
			fmt.Printf("  (max, %d XP)\n", p.TotalExperience)
		}

		fmt.Printf("Streak:  %d days (best %d)", p.CurrentStreakDays, p.LongestStreakDays)
		if p.StreakFreezes > 0 {
			fmt.Printf(", %d freeze(s) banked", p.StreakFreezes)
		}
		fmt.Println()
		fmt.Printf("Coins:   %d (lifetime %d)\n", p.CoinBalance, p.TotalCoinsEarned)

		if len(p.Achievements) > 0 {
			var names []string
			for _, id := range p.Achievements {
				if a := achievements.ByID(id); a != nil {
					names = append(names, a.Name)
				}
			}
			fmt.Printf("Badges:  %s\n", strings.Join(names, ", "))
		}

		sessions, err := st.EventRepo().QuerySessions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-12s  %-9s  %-9s  %-6s  %s\n", "Date", "Exercises", "Intensity", "Rating", "XP")
		fmt.Println(strings.Repeat("─", 50))
		for _, s := range sessions {
			rating := "-"
			if s.Rating > 0 {
				rating = fmt.Sprintf("%d/5", s.Rating)
			}
			fmt.Printf("%-12s  %-9d  %-9d  %-6s  +%d\n",
				s.ActivityDate.Format("2006-01-02"),
				s.ExerciseCount, s.Intensity, rating, s.ExperienceAwarded)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
