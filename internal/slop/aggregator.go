// Package slop combines the lexical, structural, and stylometric passes
// into one bounded composite score with a severity tier and a ranked list
// of the most diagnostic offenders.
package slop

import (
	"fmt"

	"proposal_grader/internal/catalog"
	"proposal_grader/internal/lexical"
	"proposal_grader/internal/structural"
	"proposal_grader/internal/stylometry"
)

type Severity string

const (
	Clean    Severity = "clean"
	Light    Severity = "light"
	Moderate Severity = "moderate"
	Heavy    Severity = "heavy"
	Severe   Severity = "severe"
)

// MaxScore is the practical ceiling of the composite (40+25+15). It sits
// beside the 100-point rubric by calibration, not by accident; severity
// thresholds below assume this scale.
const MaxScore = 80

const (
	lexicalCap     = 40
	structuralCap  = 25
	stylometricCap = 15
)

type Breakdown struct {
	Lexical     int `json:"lexical"`
	Structural  int `json:"structural"`
	Stylometric int `json:"stylometric"`
}

type Offender struct {
	Category string `json:"category"`
	Pattern  string `json:"pattern"`
}

type Report struct {
	Score        int                  `json:"score"`
	MaxScore     int                  `json:"maxScore"`
	Severity     Severity             `json:"severity"`
	Breakdown    Breakdown            `json:"breakdown"`
	TopOffenders []Offender           `json:"topOffenders"`
	PatternCount int                  `json:"patternCount"`
	EmDashCount  int                  `json:"emDashCount"`
	Detection    lexical.Detection    `json:"detection"`
	Findings     []structural.Finding `json:"findings"`
	Stylometry   stylometry.Report    `json:"stylometry"`
}

// Analyze runs all three leaf passes over the document and aggregates them.
// Pure and deterministic; the empty string yields score 0 and severity clean.
func Analyze(text string) Report {
	detection := lexical.Detect(text)
	emDashes := lexical.CountEmDashes(text)
	findings := structural.Detect(text)
	style := stylometry.Analyze(text)

	breakdown := Breakdown{
		Lexical:     capInt(2*detection.Count()+emDashes, lexicalCap),
		Structural:  capInt(5*len(findings), structuralCap),
		Stylometric: capInt(5*style.FlagCount(), stylometricCap),
	}
	total := breakdown.Lexical + breakdown.Structural + breakdown.Stylometric

	return Report{
		Score:        total,
		MaxScore:     MaxScore,
		Severity:     severityFor(total),
		Breakdown:    breakdown,
		TopOffenders: assembleOffenders(detection, emDashes, findings),
		PatternCount: detection.Count(),
		EmDashCount:  emDashes,
		Detection:    detection,
		Findings:     findings,
		Stylometry:   style,
	}
}

func severityFor(total int) Severity {
	switch {
	case total <= 10:
		return Clean
	case total <= 25:
		return Light
	case total <= 45:
		return Moderate
	case total <= 65:
		return Heavy
	default:
		return Severe
	}
}

// offenderPrecedence fixes the assembly order of topOffenders. The order is
// diagnostic value, not match frequency, and must stay identical across
// runs, so it is an explicit list rather than map iteration.
var offenderPrecedence = []struct {
	category catalog.Category
	limit    int
}{
	{catalog.FillerPhrase, 3},
	{catalog.GenericBooster, 3},
	{catalog.Buzzword, 3},
	{catalog.Sycophantic, 2},
}

const maxOffenders = 10
const maxStructuralOffenders = 2

func assembleOffenders(detection lexical.Detection, emDashes int, findings []structural.Finding) []Offender {
	var out []Offender
	for _, p := range offenderPrecedence {
		entries := detection.Entries(p.category)
		for i, entry := range entries {
			if i >= p.limit {
				break
			}
			out = append(out, Offender{Category: string(p.category), Pattern: entry})
		}
	}
	if emDashes > 0 {
		out = append(out, Offender{
			Category: "emDash",
			Pattern:  fmt.Sprintf("%d em dash(es)", emDashes),
		})
	}
	for i, f := range findings {
		if i >= maxStructuralOffenders {
			break
		}
		out = append(out, Offender{Category: "structural", Pattern: string(f)})
	}
	if len(out) > maxOffenders {
		out = out[:maxOffenders]
	}
	return out
}

func capInt(v, ceiling int) int {
	if v > ceiling {
		return ceiling
	}
	if v < 0 {
		return 0
	}
	return v
}
