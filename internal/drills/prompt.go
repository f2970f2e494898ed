package drills

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a soccer coach designing training drills for individual practice.

Rules:
- Generate a single drill a player can run alone or with one partner, in a backyard, park, or small pitch.
- The drill must match the requested skill type and suit the player's position and experience level.
- Keep equipment minimal: a ball, cones, and common household items. Never require a full team or a goalkeeper.
- Steps must be concrete and ordered: setup first, then execution, then progressions if any.
- Coaching points name what good execution looks like, not generic encouragement.
- Scale difficulty to the player's experience: beginners get simpler patterns, advanced players get tighter constraints and speed targets.
- Do not repeat any drill from the "recently trained" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	position := input.Profile.Position
	if position == "" {
		position = "player"
	}
	experience := input.Profile.ExperienceLevel
	if experience == "" {
		experience = "intermediate"
	}

	fmt.Fprintf(&b, "Position: %s\n", position)
	fmt.Fprintf(&b, "Experience: %s\n", experience)
	fmt.Fprintf(&b, "Skill to train: %s\n", input.SkillType)
	if len(input.Profile.TrainingGoals) > 0 {
		fmt.Fprintf(&b, "Goals: %s\n", strings.Join(input.Profile.TrainingGoals, ", "))
	}

	b.WriteString("\nRecently trained drills:\n")
	b.WriteString(buildRecent(input.RecentDrills, cfg.MaxRecentDrills))

	return b.String()
}

// buildRecent formats the recent drill names, respecting the max limit.
func buildRecent(names []string, max int) string {
	if len(names) == 0 {
		return "None"
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	var b strings.Builder
	for i, n := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, n)
	}
	return strings.TrimRight(b.String(), "\n")
}
