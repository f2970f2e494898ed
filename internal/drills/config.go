package drills

// Config controls the behavior of the LLM drill generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxRecentDrills is the maximum number of recent drill names to
	// include in the prompt for deduplication.
	MaxRecentDrills int
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       768,
		Temperature:     0.7,
		MaxRecentDrills: 8,
	}
}
