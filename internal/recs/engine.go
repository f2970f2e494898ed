// Package recs is a lightweight exercise recommendation engine with no ML
// dependencies: simple collaborative filtering over per-user exercise
// scores blended with content-based skill preferences.
package recs

import (
	"math"
	"sort"
)

// SessionSample is one exercise performance observation. Samples for other
// players come from synced community data; local history supplies the
// target player's own.
type SessionSample struct {
	UserID   string
	Exercise string
	// CompletionRate is the fraction of the exercise finished, 0-1.
	CompletionRate float64
	// DurationSecs is how long the player spent on the exercise.
	DurationSecs int
	// Technique is a self-assessed execution score 1-5.
	Technique float64
}

// ExerciseMeta describes an exercise for content-based matching.
type ExerciseMeta struct {
	SkillType  string
	Difficulty int
}

// Recommendation is one suggested exercise with display metadata.
type Recommendation struct {
	Exercise string
	// MatchPercent is a 45-95 display percentage derived from the score.
	MatchPercent int
	Reason     string
	Confidence float64
}

const (
	idealDurationMins = 30.0
	minSimilarity     = 0.1
	topSimilarUsers   = 5
	collabWeight      = 0.7
	contentWeight     = 0.3
)

// Engine accumulates per-user exercise scores and produces hybrid
// recommendations for a target user.
type Engine struct {
	scores map[string]map[string]float64
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{scores: make(map[string]map[string]float64)}
}

// ExerciseScore rates one performance in [0.1, 1.0]: a weighted blend of
// completion, duration relative to an ideal half hour, and technique.
func ExerciseScore(s SessionSample) float64 {
	durationScore := math.Min(float64(s.DurationSecs)/60.0/idealDurationMins, 1.0)
	technique := s.Technique / 5.0
	score := s.CompletionRate*0.4 + durationScore*0.3 + technique*0.3
	return math.Max(0.1, math.Min(1.0, score))
}

// AddSamples folds observations into the per-user profiles. Repeat
// observations of the same exercise average with the running score.
func (e *Engine) AddSamples(samples []SessionSample) {
	for _, s := range samples {
		if s.UserID == "" {
			continue
		}
		ex := s.Exercise
		if ex == "" {
			ex = "Unknown"
		}
		userScores := e.scores[s.UserID]
		if userScores == nil {
			userScores = make(map[string]float64)
			e.scores[s.UserID] = userScores
		}
		score := ExerciseScore(s)
		if prev, ok := userScores[ex]; ok {
			userScores[ex] = (prev + score) / 2
		} else {
			userScores[ex] = score
		}
	}
}

// CosineSimilarity compares two users over their common exercises. Fewer
// than two shared exercises is treated as no signal.
func CosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	common := 0
	for ex, av := range a {
		bv, ok := b[ex]
		if !ok {
			continue
		}
		common++
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if common < 2 || normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

type scored struct {
	exercise string
	score    float64
}

func sortScored(s []scored) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].score != s[j].score {
			return s[i].score > s[j].score
		}
		return s[i].exercise < s[j].exercise
	})
}

// Collaborative recommends exercises that the target's most similar users
// scored well on and the target has not done yet.
func (e *Engine) Collaborative(targetUser string, allExercises []string, limit int) []Recommendation {
	target, ok := e.scores[targetUser]
	if !ok {
		return nil
	}

	type simUser struct {
		userID     string
		similarity float64
	}
	var similar []simUser
	for userID, userScores := range e.scores {
		if userID == targetUser {
			continue
		}
		if sim := CosineSimilarity(target, userScores); sim > minSimilarity {
			similar = append(similar, simUser{userID, sim})
		}
	}
	sort.Slice(similar, func(i, j int) bool {
		if similar[i].similarity != similar[j].similarity {
			return similar[i].similarity > similar[j].similarity
		}
		return similar[i].userID < similar[j].userID
	})
	if len(similar) > topSimilarUsers {
		similar = similar[:topSimilarUsers]
	}

	known := make(map[string]bool, len(allExercises))
	for _, ex := range allExercises {
		known[ex] = true
	}

	weighted := make(map[string][]float64)
	for _, su := range similar {
		for ex, score := range e.scores[su.userID] {
			if _, done := target[ex]; done {
				continue
			}
			weighted[ex] = append(weighted[ex], score*su.similarity)
		}
	}

	var out []scored
	for ex, scores := range weighted {
		if !known[ex] {
			continue
		}
		var sum float64
		for _, s := range scores {
			sum += s
		}
		out = append(out, scored{ex, sum / float64(len(scores))})
	}
	sortScored(out)
	return toRecommendations(out, limit, "Similar players have improved with this drill")
}

// ContentBased recommends unseen exercises matching the target's preferred
// skill types, with a small bonus for exercises one difficulty step above
// the target's average.
func (e *Engine) ContentBased(targetUser string, allExercises []string, meta map[string]ExerciseMeta, limit int) []Recommendation {
	target, ok := e.scores[targetUser]
	if !ok {
		return nil
	}

	skillScores := make(map[string][]float64)
	var difficultySum float64
	for ex, score := range target {
		m, ok := meta[ex]
		if !ok {
			continue
		}
		skill := m.SkillType
		if skill == "" {
			skill = "General"
		}
		skillScores[skill] = append(skillScores[skill], score)
		difficultySum += float64(m.Difficulty)
	}
	skillPref := make(map[string]float64, len(skillScores))
	for skill, scores := range skillScores {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		skillPref[skill] = sum / float64(len(scores))
	}
	avgDifficulty := difficultySum / math.Max(float64(len(target)), 1)

	var out []scored
	for _, ex := range allExercises {
		if _, done := target[ex]; done {
			continue
		}
		m, ok := meta[ex]
		if !ok {
			continue
		}
		skill := m.SkillType
		if skill == "" {
			skill = "General"
		}
		score, ok := skillPref[skill]
		if !ok {
			score = 0.5
		}
		if m.Difficulty == int(avgDifficulty)+1 {
			score += 0.1
		}
		out = append(out, scored{ex, score})
	}
	sortScored(out)
	return toRecommendations(out, limit, "Matches your skill development pattern")
}

// Recommend blends collaborative (70%) and content-based (30%) scores and
// returns the top picks. With no personal history it falls back to a
// foundational default set.
func (e *Engine) Recommend(targetUser string, allExercises []string, meta map[string]ExerciseMeta, limit int) []Recommendation {
	if limit <= 0 {
		limit = 3
	}
	collab := e.Collaborative(targetUser, allExercises, limit*2)
	content := e.ContentBased(targetUser, allExercises, meta, limit*2)

	blended := make(map[string]float64)
	collabPicks := make(map[string]bool)
	for i, r := range collab {
		blended[r.Exercise] = r.Confidence * collabWeight
		if i < 3 {
			collabPicks[r.Exercise] = true
		}
	}
	for _, r := range content {
		blended[r.Exercise] += r.Confidence * contentWeight
	}

	var out []scored
	for ex, score := range blended {
		out = append(out, scored{ex, score})
	}
	sortScored(out)
	if len(out) > limit {
		out = out[:limit]
	}

	if len(out) == 0 {
		return defaultRecommendations(limit)
	}

	recs := make([]Recommendation, len(out))
	for i, s := range out {
		reason := "Matches your skill development pattern"
		if collabPicks[s.exercise] {
			reason = "Similar players have improved with this drill"
		}
		recs[i] = Recommendation{
			Exercise:     s.exercise,
			MatchPercent: matchPercent(s.score, i),
			Reason:       reason,
			Confidence:   s.score,
		}
	}
	return recs
}

// matchPercent maps a confidence score onto a 45-95 display percentage,
// nudged per rank so the list does not read as a flat wall of numbers.
func matchPercent(score float64, rank int) int {
	base := math.Min(95, math.Max(45, score*100))
	if rank < 3 {
		base += float64(-5 + rank*3)
	}
	return int(base)
}

func toRecommendations(s []scored, limit int, reason string) []Recommendation {
	if len(s) > limit {
		s = s[:limit]
	}
	recs := make([]Recommendation, len(s))
	for i, sc := range s {
		recs[i] = Recommendation{
			Exercise:     sc.exercise,
			MatchPercent: matchPercent(sc.score, i),
			Reason:       reason,
			Confidence:   sc.score,
		}
	}
	return recs
}

func defaultRecommendations(limit int) []Recommendation {
	defaults := []string{"Ball Control", "Passing Accuracy", "Endurance Run"}
	if limit > len(defaults) {
		limit = len(defaults)
	}
	recs := make([]Recommendation, 0, limit)
	for i, ex := range defaults[:limit] {
		recs = append(recs, Recommendation{
			Exercise:     ex,
			MatchPercent: 85 - i*5,
			Reason:       "Foundational skill for all players",
			Confidence:   0.8 - float64(i)*0.1,
		})
	}
	return recs
}
