package slop

import "fmt"

// Penalty is the rubric-facing deduction derived from a slop report. The
// rubric applies it once at the total level, never per dimension.
type Penalty struct {
	Points int      `json:"points"`
	Issues []string `json:"issues"`
}

// penaltyTiers is a dual-threshold table: a tier applies when EITHER the
// composite score or the raw distinct-pattern count reaches it, whichever
// implies the higher deduction. Calibrated values; do not renormalize.
var penaltyTiers = []struct {
	minScore    int
	minPatterns int
	points      int
}{
	{40, 10, 8},
	{25, 6, 6},
	{12, 3, 4},
	{4, 1, 2},
}

const maxPenaltyIssues = 3

// MapPenalty converts a slop report into a bounded 0-8 point deduction plus
// up to three verbatim example patterns as human-readable issue strings.
func MapPenalty(r Report) Penalty {
	points := 0
	for _, tier := range penaltyTiers {
		if r.Score >= tier.minScore || r.PatternCount >= tier.minPatterns {
			points = tier.points
			break
		}
	}
	if points == 0 {
		return Penalty{}
	}

	issues := make([]string, 0, maxPenaltyIssues)
	for _, off := range r.TopOffenders {
		if off.Category == "emDash" || off.Category == "structural" {
			continue
		}
		issues = append(issues, fmt.Sprintf("AI-style wording detected: %q", off.Pattern))
		if len(issues) == maxPenaltyIssues {
			break
		}
	}
	return Penalty{Points: points, Issues: issues}
}
