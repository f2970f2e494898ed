// Package drills generates personalized soccer drills, via an LLM when a
// provider is configured and from a static catalog otherwise.
package drills

// Skill types used across the app.
const (
	SkillDribbling = "dribbling"
	SkillPassing   = "passing"
	SkillShooting  = "shooting"
	SkillDefending = "defending"
	SkillFitness   = "fitness"
	SkillFirstTouch = "first_touch"
)

// Profile describes the player a drill is generated for.
type Profile struct {
	Position        string
	ExperienceLevel string
	TrainingGoals   []string
}

// GenerateInput is the request for one drill.
type GenerateInput struct {
	Profile   Profile
	SkillType string
	// RecentDrills are names to avoid repeating, newest first.
	RecentDrills []string
}

// Drill is a single generated training drill.
type Drill struct {
	Name           string
	SkillType      string
	Difficulty     int // 1 (easy) to 5 (hard)
	DurationMins   int
	Equipment      []string
	Steps          []string
	CoachingPoints []string
}
