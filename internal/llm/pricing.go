package llm

// ModelCost is USD per one million tokens, the unit every vendor quotes.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices a request's token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, nil when the model is not in
// the table. The stats view prints "n/a" for unknown models rather than
// guessing.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models this app's providers actually select: the
// config aliases, their dated upstream IDs, and the common OpenRouter
// routes. Prices from vendor pages, checked 2026-02.
var modelCosts = map[string]ModelCost{
	// Anthropic (claude-haiku / claude-sonnet aliases)
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-0":         {3, 15},
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-sonnet-4-5":         {3, 15},
	"claude-3-5-haiku-latest":   {0.8, 4},

	// OpenAI (gpt-4o-mini default)
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-4.1-nano":  {0.1, 0.4},
	"gpt-3.5-turbo": {0.5, 1.5},

	// Google (gemini-flash default)
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-1.5-flash":      {0.075, 0.3},

	// OpenRouter routes surface the upstream model name
	"google/gemini-2.0-flash-exp": {0, 0},
	"meta-llama/llama-3-8b":       {0.055, 0.055},
}
