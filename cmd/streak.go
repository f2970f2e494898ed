package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current training streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.PlayerRepo().Load(context.Background())
		if err != nil {
			return fmt.Errorf("load player: %w", err)
		}

		fmt.Printf("Current streak: %d days\n", p.CurrentStreakDays)
		fmt.Printf("Longest streak: %d days\n", p.LongestStreakDays)
		fmt.Printf("Freezes banked: %d\n", p.StreakFreezes)
		if p.LastActivityDate != nil {
			fmt.Printf("Last activity:  %s\n", p.LastActivityDate.Format("2006-01-02"))
		}
		return nil
	},
}

var streakAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Recompute the streak from the session log",
	Long: `Rebuild the streak counters from recorded session days and repair the
stored values if they have drifted. The longest streak is never lowered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svcs := buildServices(st)
		streak, changed, err := svcs.training.AuditStreak(context.Background())
		if err != nil {
			return err
		}

		if changed {
			fmt.Printf("Repaired: current %d days, longest %d days\n",
				streak.CurrentDays, streak.LongestDays)
		} else {
			fmt.Printf("Consistent: current %d days, longest %d days\n",
				streak.CurrentDays, streak.LongestDays)
		}
		return nil
	},
}

func init() {
	streakCmd.AddCommand(streakAuditCmd)
}
