package slop

import (
	"strings"
	"testing"
)

func TestPenaltyTiersByScore(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{0, 0}, {3, 0}, {4, 2}, {11, 2}, {12, 4}, {24, 4}, {25, 6}, {39, 6}, {40, 8}, {80, 8},
	}
	for _, c := range cases {
		got := MapPenalty(Report{Score: c.score}).Points
		if got != c.want {
			t.Fatalf("score %d: expected penalty %d, got %d", c.score, c.want, got)
		}
	}
}

func TestPenaltyCountThresholdDominates(t *testing.T) {
	// Score alone would map to 4, but 7 distinct patterns force the 6 tier.
	p := MapPenalty(Report{Score: 20, PatternCount: 7})
	if p.Points != 6 {
		t.Fatalf("expected penalty 6 from pattern count, got %d", p.Points)
	}
}

func TestPenaltyScoreThresholdDominates(t *testing.T) {
	p := MapPenalty(Report{Score: 41, PatternCount: 2})
	if p.Points != 8 {
		t.Fatalf("expected penalty 8 from score, got %d", p.Points)
	}
}

func TestPenaltyQuotesVerbatimExamples(t *testing.T) {
	text := "It's important to note that this incredibly robust, seamless platform will leverage synergy."
	p := MapPenalty(Analyze(text))
	if p.Points == 0 {
		t.Fatal("expected a nonzero penalty")
	}
	if len(p.Issues) == 0 || len(p.Issues) > 3 {
		t.Fatalf("expected 1-3 issue strings, got %v", p.Issues)
	}
	if !strings.Contains(p.Issues[0], "it's important to note that") {
		t.Fatalf("expected the filler phrase quoted verbatim, got %q", p.Issues[0])
	}
}

func TestZeroPenaltyHasNoIssues(t *testing.T) {
	p := MapPenalty(Report{})
	if p.Points != 0 || len(p.Issues) != 0 {
		t.Fatalf("expected empty penalty, got %+v", p)
	}
}
