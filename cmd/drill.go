package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/drills"
	"github.com/techniq-app/techniq/internal/llm"
	"github.com/techniq-app/techniq/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Generate a solo training drill",
	Long: `Generate a drill for a skill, tailored to your position and level.

Uses the configured LLM provider when available and falls back to the
built-in drill catalog otherwise.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("skill", drills.SkillDribbling, "Skill to train (dribbling, passing, shooting, defending, fitness, first_touch)")
	drillCmd.Flags().String("position", "", "Playing position (defaults to your profile)")
	drillCmd.Flags().String("level", "", "Experience level (defaults to your profile)")
	drillCmd.Flags().StringSlice("goal", nil, "Training goal, repeatable (defaults to your profile)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	skill, _ := cmd.Flags().GetString("skill")
	position, _ := cmd.Flags().GetString("position")
	level, _ := cmd.Flags().GetString("level")
	goals, _ := cmd.Flags().GetStringSlice("goal")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	events := st.EventRepo()

	p, err := st.PlayerRepo().Load(ctx)
	if err != nil {
		return fmt.Errorf("load player: %w", err)
	}
	if position == "" {
		position = p.Position
	}
	if level == "" {
		level = p.ExperienceLevel
	}
	if len(goals) == 0 {
		goals = p.TrainingGoals
	}

	// Recent drill names are passed to the generator to avoid repeats.
	recent, err := events.QueryDrills(ctx, store.QueryOpts{Limit: drills.DefaultConfig().MaxRecentDrills})
	if err != nil {
		return fmt.Errorf("query recent drills: %w", err)
	}
	var recentNames []string
	for _, r := range recent {
		recentNames = append(recentNames, r.Name)
	}

	var gen drills.Generator
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in drill catalog.")
		gen = drills.WithRecording(drills.NewFallback(), events, "fallback")
	} else {
		gen = drills.WithRecording(drills.New(provider, drills.DefaultConfig()), events, "llm")
	}

	input := drills.GenerateInput{
		Profile: drills.Profile{
			Position:        position,
			ExperienceLevel: level,
			TrainingGoals:   goals,
		},
		SkillType:    skill,
		RecentDrills: recentNames,
	}

	drill, err := gen.Generate(ctx, input)
	if err != nil {
		// LLM failed at request time. The catalog always answers.
		fmt.Fprintln(os.Stderr, "Generation failed:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in drill catalog.")
		fallback := drills.WithRecording(drills.NewFallback(), events, "fallback")
		drill, err = fallback.Generate(ctx, input)
		if err != nil {
			return err
		}
	}

	printDrill(drill)
	return nil
}

func printDrill(d *drills.Drill) {
	fmt.Printf("%s\n", d.Name)
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Skill: %s  ·  Difficulty: %d/5  ·  %d min\n", d.SkillType, d.Difficulty, d.DurationMins)
	if len(d.Equipment) > 0 {
		fmt.Printf("Equipment: %s\n", strings.Join(d.Equipment, ", "))
	}

	fmt.Println("\nSteps:")
	for i, s := range d.Steps {
		fmt.Printf("  %d. %s\n", i+1, s)
	}

	if len(d.CoachingPoints) > 0 {
		fmt.Println("\nCoaching points:")
		for _, c := range d.CoachingPoints {
			fmt.Printf("  • %s\n", c)
		}
	}
}
