// Package rubric scores a proposal document against four weighted 25-point
// dimensions and folds in the slop penalty once at the total level. Section
// structure is a hard gate: without a dedicated section heading a
// sub-criterion scores near zero no matter how much signal the text carries.
package rubric

import (
	"fmt"

	"proposal_grader/internal/slop"
)

type Subcriterion struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"maxPoints"`
}

type DimensionScore struct {
	Name        string         `json:"name"`
	Score       int            `json:"score"`
	Subcriteria []Subcriterion `json:"subcriteria"`
	Issues      []string       `json:"issues"`
}

type ProposalScore struct {
	TotalScore  int              `json:"totalScore"`
	Dimensions  []DimensionScore `json:"dimensions"`
	Slop        slop.Report      `json:"slop"`
	Penalty     slop.Penalty     `json:"penalty"`
	StyleIssues []string         `json:"styleIssues"`
}

const dimensionCap = 25
const totalCap = 100

// Score grades one document. Pure and deterministic: identical text yields
// an identical ProposalScore, and no input makes it fail.
func Score(text string) ProposalScore {
	slopReport := slop.Analyze(text)
	penalty := slop.MapPenalty(slopReport)

	doc := prepare(text)
	dimensions := make([]DimensionScore, 0, len(dimensionSpecs))
	sum := 0
	for _, spec := range dimensionSpecs {
		d := scoreDimension(doc, spec)
		sum += d.Score
		dimensions = append(dimensions, d)
	}

	total := sum - penalty.Points
	if total < 0 {
		total = 0
	}
	if total > totalCap {
		total = totalCap
	}

	return ProposalScore{
		TotalScore:  total,
		Dimensions:  dimensions,
		Slop:        slopReport,
		Penalty:     penalty,
		StyleIssues: penalty.Issues,
	}
}

func scoreDimension(doc document, spec dimensionSpec) DimensionScore {
	hasSection := doc.hasSection(spec.synonyms)

	out := DimensionScore{Name: spec.name}
	if !hasSection {
		out.Issues = append(out.Issues, fmt.Sprintf("Missing a dedicated %s section", spec.name))
	}

	for _, sub := range spec.subs {
		hits := sub.hits(doc.lower)
		points := gatedPoints(sub.max, hasSection, hits)
		out.Subcriteria = append(out.Subcriteria, Subcriterion{
			Name:      sub.name,
			Points:    points,
			MaxPoints: sub.max,
		})
		out.Score += points
		if hits == 0 && sub.missingIssue != "" {
			out.Issues = append(out.Issues, sub.missingIssue)
		}
	}
	if out.Score > dimensionCap {
		out.Score = dimensionCap
	}
	return out
}

// gatedPoints awards 40% of the sub-criterion ceiling for having the
// section at all, then one point per signal hit up to the ceiling. Without
// the section the most any signal can earn is a single point.
func gatedPoints(maxPts int, hasSection bool, hits int) int {
	if !hasSection {
		if hits == 0 {
			return 0
		}
		return 1
	}
	base := maxPts * 2 / 5
	span := maxPts - base
	if hits > span {
		hits = span
	}
	return base + hits
}
