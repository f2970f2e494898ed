package drills

import "context"

// FallbackGenerator serves drills from a static catalog when no LLM
// provider is configured. It cycles through the per-skill catalog,
// skipping recently trained drills when it can.
type FallbackGenerator struct{}

// NewFallback returns the static catalog generator.
func NewFallback() *FallbackGenerator {
	return &FallbackGenerator{}
}

// Generate picks a catalog drill for the requested skill type, preferring
// one not in the recent list. An unknown skill type falls back to the
// dribbling catalog.
func (f *FallbackGenerator) Generate(ctx context.Context, input GenerateInput) (*Drill, error) {
	catalog, ok := fallbackCatalog[input.SkillType]
	if !ok {
		catalog = fallbackCatalog[SkillDribbling]
	}

	recent := make(map[string]bool, len(input.RecentDrills))
	for _, n := range input.RecentDrills {
		recent[n] = true
	}
	for i := range catalog {
		if !recent[catalog[i].Name] {
			d := catalog[i]
			return &d, nil
		}
	}
	// Everything was recent; repeat the first.
	d := catalog[0]
	return &d, nil
}

var fallbackCatalog = map[string][]Drill{
	SkillDribbling: {
		{
			Name: "Cone Slalom", SkillType: SkillDribbling, Difficulty: 2, DurationMins: 15,
			Equipment: []string{"6 cones"},
			Steps: []string{
				"Set 6 cones in a line, two ball-widths apart.",
				"Dribble through the cones using only your right foot, then back with your left.",
				"Complete 5 rounds each side, resting 30 seconds between rounds.",
				"Progression: time each round and try to beat it without touching a cone.",
			},
			CoachingPoints: []string{"Small touches, ball within playing distance", "Head up between cones"},
		},
		{
			Name: "Box Turns", SkillType: SkillDribbling, Difficulty: 3, DurationMins: 10,
			Equipment: []string{"4 cones"},
			Steps: []string{
				"Mark a 5x5 meter box with the cones.",
				"Dribble to a corner and turn with an inside cut, outside cut, or drag-back.",
				"Change the turn every corner; 3 minutes on, 1 minute rest, 2 rounds.",
			},
			CoachingPoints: []string{"Accelerate out of every turn", "Use both feet equally"},
		},
	},
	SkillPassing: {
		{
			Name: "Wall Pass Rhythm", SkillType: SkillPassing, Difficulty: 1, DurationMins: 15,
			Equipment: []string{"wall or rebounder"},
			Steps: []string{
				"Stand 5 meters from the wall.",
				"Pass with your right foot, control the rebound with your left, and return it.",
				"100 passes, alternating feet every 10.",
				"Progression: limit yourself to two touches, then one.",
			},
			CoachingPoints: []string{"Lock the ankle on contact", "Pass with the inside of the foot through the middle of the ball"},
		},
		{
			Name: "Gate Passing", SkillType: SkillPassing, Difficulty: 2, DurationMins: 12,
			Equipment: []string{"4 cones", "partner or wall"},
			Steps: []string{
				"Build two 1-meter cone gates 8 meters apart.",
				"Pass through one gate, receive through the other.",
				"Score a point for each clean gate pass; play to 20.",
			},
			CoachingPoints: []string{"Weight the pass so it arrives rollable", "First touch out of your feet"},
		},
	},
	SkillShooting: {
		{
			Name: "Placement Corners", SkillType: SkillShooting, Difficulty: 2, DurationMins: 20,
			Equipment: []string{"goal or wall target", "5 balls"},
			Steps: []string{
				"Mark the bottom corners of the goal with cones or tape.",
				"From 12 meters, shoot for a corner with the inside of the foot.",
				"5 shots per corner per foot, then collect and repeat for 3 rounds.",
			},
			CoachingPoints: []string{"Plant foot pointing at the target", "Accuracy before power"},
		},
		{
			Name: "First-Touch Finish", SkillType: SkillShooting, Difficulty: 4, DurationMins: 15,
			Equipment: []string{"goal", "wall or partner"},
			Steps: []string{
				"Play the ball against the wall so it returns at an angle.",
				"Take one touch out of your body and shoot within two seconds.",
				"10 finishes per foot, 3 rounds.",
			},
			CoachingPoints: []string{"Touch into space, not under your feet", "Shoot across the keeper's imaginary position"},
		},
	},
	SkillDefending: {
		{
			Name: "Shadow Shuffle", SkillType: SkillDefending, Difficulty: 2, DurationMins: 10,
			Equipment: []string{"4 cones"},
			Steps: []string{
				"Set cones in a 3-meter diamond.",
				"Shuffle cone to cone in a defensive stance, never crossing your feet.",
				"30 seconds on, 30 seconds rest, 6 rounds.",
			},
			CoachingPoints: []string{"Stay low, weight on the balls of your feet", "Lead with the foot nearest the direction of travel"},
		},
	},
	SkillFitness: {
		{
			Name: "Pitch-Length Intervals", SkillType: SkillFitness, Difficulty: 3, DurationMins: 20,
			Equipment: []string{"2 cones"},
			Steps: []string{
				"Place cones 40 meters apart.",
				"Sprint to the far cone, walk back.",
				"10 repetitions, 2 sets, 2 minutes between sets.",
			},
			CoachingPoints: []string{"Full sprint every repetition", "Use the walk back as real recovery"},
		},
	},
	SkillFirstTouch: {
		{
			Name: "Juggle and Cushion", SkillType: SkillFirstTouch, Difficulty: 2, DurationMins: 15,
			Equipment: []string{},
			Steps: []string{
				"Throw the ball a meter above your head.",
				"Cushion the first touch to the ground with your thigh or foot without it bouncing away.",
				"20 repetitions per controlling surface: foot, thigh, chest.",
			},
			CoachingPoints: []string{"Withdraw the surface on contact", "Kill the ball within one step"},
		},
	},
}
