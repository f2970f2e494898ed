package drills

import (
	"context"
	"fmt"
	"os"

	"github.com/techniq-app/techniq/internal/store"
)

// RecordingGenerator is a decorator that logs every generated drill as an
// event for history and recommendations.
type RecordingGenerator struct {
	inner  Generator
	events store.EventRepo
	source string // "llm" or "fallback"
}

// WithRecording wraps a Generator with drill event logging.
func WithRecording(g Generator, events store.EventRepo, source string) Generator {
	return &RecordingGenerator{inner: g, events: events, source: source}
}

func (r *RecordingGenerator) Generate(ctx context.Context, input GenerateInput) (*Drill, error) {
	d, err := r.inner.Generate(ctx, input)
	if err != nil {
		return nil, err
	}

	logErr := r.events.AppendDrillEvent(ctx, store.DrillEventData{
		Name:         d.Name,
		SkillType:    d.SkillType,
		Position:     input.Profile.Position,
		Difficulty:   d.Difficulty,
		DurationMins: d.DurationMins,
		Source:       r.source,
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log drill event: %v\n", logErr)
	}
	return d, nil
}
