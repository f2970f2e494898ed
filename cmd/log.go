package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/training"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a completed training session",
	Long: `Record a finished training session from flags, without the TUI.

Example:
  techniq log --exercises 5 --completed 5 --intensity 4 --duration 45 --rating 5 --notes "Worked on weak foot"`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().Int("exercises", 0, "Number of exercises in the session (required)")
	logCmd.Flags().Int("completed", -1, "Number of exercises finished (defaults to all)")
	logCmd.Flags().Int("intensity", 5, "Session intensity, 0-10")
	logCmd.Flags().Int("duration", 30, "Session duration in minutes")
	logCmd.Flags().Int("rating", 0, "Self-rating, 1-5 (0 to skip)")
	logCmd.Flags().String("notes", "", "Session notes")
	logCmd.Flags().Bool("ended-early", false, "Mark the session as ended early")
	_ = logCmd.MarkFlagRequired("exercises")
}

func runLog(cmd *cobra.Command, args []string) error {
	exercises, _ := cmd.Flags().GetInt("exercises")
	completed, _ := cmd.Flags().GetInt("completed")
	intensity, _ := cmd.Flags().GetInt("intensity")
	duration, _ := cmd.Flags().GetInt("duration")
	rating, _ := cmd.Flags().GetInt("rating")
	notes, _ := cmd.Flags().GetString("notes")
	endedEarly, _ := cmd.Flags().GetBool("ended-early")

	if exercises < 1 {
		return fmt.Errorf("--exercises must be at least 1")
	}
	if completed < 0 {
		completed = exercises
	}
	if completed > exercises {
		return fmt.Errorf("--completed (%d) cannot exceed --exercises (%d)", completed, exercises)
	}
	if intensity < 0 || intensity > 10 {
		return fmt.Errorf("--intensity must be 0-10")
	}
	if duration < 1 {
		return fmt.Errorf("--duration must be at least 1 minute")
	}
	if rating < 0 || rating > 5 {
		return fmt.Errorf("--rating must be 0-5")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svcs := buildServices(st)

	sess := training.NewSession()
	sess.Duration = time.Duration(duration) * time.Minute
	sess.Intensity = intensity
	sess.Rating = rating
	sess.Notes = notes
	sess.EndedEarly = endedEarly
	for i := 0; i < exercises; i++ {
		sess.Exercises = append(sess.Exercises, training.Exercise{
			Name:      fmt.Sprintf("Exercise %d", i+1),
			Completed: i < completed,
		})
	}

	result, err := svcs.training.Complete(context.Background(), sess)
	if err != nil {
		return err
	}

	printOutcome(result)
	return nil
}

func printOutcome(result *training.Result) {
	o := result.Outcome
	b := o.Breakdown

	fmt.Println("Session recorded.")
	fmt.Println(strings.Repeat("─", 40))

	line := func(label string, v int64) {
		if v > 0 {
			fmt.Printf("  %-22s +%d XP\n", label, v)
		}
	}
	line("Base", b.Base)
	line("Intensity", b.IntensityBonus)
	line("First session today", b.FirstSessionBonus)
	line("All exercises done", b.CompletionBonus)
	line("Rated", b.RatingBonus)
	line("Notes", b.NotesBonus)
	line("Streak milestone", b.StreakBonus)

	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("  %-22s +%d XP\n", "Total", b.Total())

	if o.NewLevel != nil {
		fmt.Printf("\nLEVEL UP! You are now level %d.\n", *o.NewLevel)
	}
	fmt.Printf("\nLevel %d  ·  %d XP  ·  %d day streak", o.Level, o.TotalExperience, o.StreakDays)
	if o.UsedFreeze {
		fmt.Print("  (freeze used)")
	}
	fmt.Printf("  ·  %d coins\n", o.CoinTotal)

	for _, a := range result.Unlocked {
		fmt.Printf("Achievement unlocked: %s (+%d coins)\n", a.Name, a.Coins)
	}
}
