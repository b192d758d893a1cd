package viz

import (
	"strings"
	"testing"
	"time"

	"github.com/doxalab/doxa/internal/domain"
)

func testSnapshot() *domain.Snapshot {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Snapshot{
		Beliefs: []domain.Belief{
			{
				ID:         "belief_price_347",
				Entity:     "flight_ua100",
				Predicate:  "price",
				Value:      domain.NumberValue(347),
				Confidence: 0.95,
				Source:     "airline_api",
				Status:     domain.StatusActive,
				CreatedAt:  now,
			},
			{
				ID:         "belief_price_420",
				Entity:     "flight_ua100",
				Predicate:  "price",
				Value:      domain.NumberValue(420),
				Confidence: 0.492,
				Source:     "scraper",
				Status:     domain.StatusArchived,
				CreatedAt:  now,
			},
			{
				ID:         "belief_gate_b12",
				Entity:     "flight_ua100",
				Predicate:  "gate",
				Value:      domain.StringValue("B12"),
				Confidence: 0.7,
				Source:     "airport_board",
				Status:     domain.StatusOutdated,
				CreatedAt:  now,
			},
		},
		Edges: []domain.Edge{
			{Source: "belief_gate_b12", Target: "belief_price_420", Relation: domain.RelationSupports, CreatedAt: now},
			{Source: "belief_price_347", Target: "belief_price_420", Relation: domain.RelationContradicts, CreatedAt: now},
		},
	}
}

func TestRenderDOT(t *testing.T) {
	out := RenderDOT(testSnapshot())

	if !strings.HasPrefix(out, "digraph beliefs {") {
		t.Errorf("expected digraph header, got %q", out[:40])
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("expected closing brace")
	}

	wantFragments := []string{
		`"belief_price_347"`,
		"fillcolor=\"palegreen\"",
		"fillcolor=\"gray80\"",
		"fillcolor=\"gold\"",
		"flight_ua100.price = 347",
		"flight_ua100.gate = B12",
		"conf 0.950 [active]",
		"tooltip=\"source=airline_api\"",
		`"belief_gate_b12" -> "belief_price_420" [label="supports", style=solid, color=black];`,
		`"belief_price_347" -> "belief_price_420" [label="contradicts", style=dashed, color=red];`,
	}
	for _, frag := range wantFragments {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing fragment %q", frag)
		}
	}
}

func TestRenderDOTEmptySnapshot(t *testing.T) {
	out := RenderDOT(&domain.Snapshot{})

	if !strings.Contains(out, "digraph beliefs {") {
		t.Error("expected digraph header")
	}
	if strings.Contains(out, "->") {
		t.Error("empty snapshot should render no edges")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 40, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long belief value that keeps going and going", 20, "a very long belie..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
