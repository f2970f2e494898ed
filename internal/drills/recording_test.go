package drills

import (
	"context"
	"fmt"
	"testing"

	"github.com/techniq-app/techniq/internal/store"
)

func TestRecordingGeneratorLogsDrills(t *testing.T) {
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	gen := WithRecording(NewFallback(), s.EventRepo(), "fallback")
	d, err := gen.Generate(ctx, GenerateInput{
		Profile:   Profile{Position: "striker"},
		SkillType: SkillShooting,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	records, err := s.EventRepo().QueryDrills(ctx, store.QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query drills: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d drill events, want 1", len(records))
	}
	if records[0].Name != d.Name || records[0].Source != "fallback" {
		t.Errorf("record = %+v", records[0])
	}
	if records[0].Position != "striker" {
		t.Errorf("position = %q, want striker", records[0].Position)
	}
}
