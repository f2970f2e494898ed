package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/recs"
	"github.com/techniq-app/techniq/internal/store"
)

// localUserID identifies the local player in the recommendation engine.
const localUserID = "you"

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest exercises based on your training history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		sessions, err := st.EventRepo().QuerySessions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		engine := recs.NewEngine()
		engine.AddSamples(samplesFromHistory(sessions))

		exercises, meta := catalogFromHistory(sessions)
		recommendations := engine.Recommend(localUserID, exercises, meta, limit)

		fmt.Println("Recommended for your next session:")
		fmt.Println(strings.Repeat("─", 60))
		for i, r := range recommendations {
			fmt.Printf("%d. %-28s  %d%% match\n   %s\n", i+1, r.Exercise, r.MatchPercent, r.Reason)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("limit", "n", 3, "Number of recommendations")
}

// samplesFromHistory converts recorded sessions into per-exercise
// observations. Technique is rated 0-10 in sessions; the engine wants 1-5.
func samplesFromHistory(sessions []store.SessionRecord) []recs.SessionSample {
	var samples []recs.SessionSample
	for _, s := range sessions {
		if len(s.Exercises) == 0 {
			continue
		}
		perExercise := s.DurationSecs / len(s.Exercises)
		for _, ex := range s.Exercises {
			completion := 0.0
			if ex.Completed {
				completion = 1.0
			}
			technique := ex.Technique / 2
			if technique == 0 {
				technique = 3 // unrated, assume middling
			}
			samples = append(samples, recs.SessionSample{
				UserID:         localUserID,
				Exercise:       ex.Name,
				CompletionRate: completion,
				DurationSecs:   perExercise,
				Technique:      technique,
			})
		}
	}
	return samples
}

// catalogFromHistory collects the distinct exercises seen in history along
// with skill metadata where it was recorded.
func catalogFromHistory(sessions []store.SessionRecord) ([]string, map[string]recs.ExerciseMeta) {
	seen := make(map[string]bool)
	var exercises []string
	meta := make(map[string]recs.ExerciseMeta)
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			if seen[ex.Name] {
				continue
			}
			seen[ex.Name] = true
			exercises = append(exercises, ex.Name)
			if ex.SkillType != "" {
				meta[ex.Name] = recs.ExerciseMeta{SkillType: ex.SkillType, Difficulty: s.Intensity}
			}
		}
	}
	return exercises, meta
}
