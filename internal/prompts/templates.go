// Package prompts builds LLM prompt text for the two follow-up workflows:
// a critique of a scored proposal and a rewrite request that targets the
// detected style issues. Prompts quote engine output verbatim so the model
// sees exactly what was flagged.
package prompts

import (
	"fmt"
	"strings"

	"proposal_grader/internal/rubric"
)

const CritiqueTemplate = `SYSTEM: You are a senior strategy reviewer.
PROPOSAL:
%s
SCORE: %d / 100
WEAK AREAS:
%s
TASK: Write a one-page critique. Address each weak area with a concrete fix.
CONSTRAINT: Do not praise. Do not restate the proposal.
OUTPUT: Plain prose, no headings.`

const RewriteTemplate = `SYSTEM: You are an editor removing AI-flavored filler from business writing.
PROPOSAL:
%s
FLAGGED WORDING:
%s
TASK: Rewrite the proposal preserving all facts, figures, and commitments.
CONSTRAINT: Remove every flagged phrase. Vary sentence length. No em dashes.
OUTPUT: The rewritten proposal only.`

func CritiquePrompt(text string, score rubric.ProposalScore) string {
	var weak []string
	for _, d := range score.Dimensions {
		for _, issue := range d.Issues {
			weak = append(weak, fmt.Sprintf("- [%s] %s", d.Name, issue))
		}
	}
	weak = append(weak, prefixed(score.StyleIssues)...)
	if len(weak) == 0 {
		weak = []string{"- None detected."}
	}
	return strings.TrimSpace(fmt.Sprintf(CritiqueTemplate, text, score.TotalScore, strings.Join(weak, "\n")))
}

func RewritePrompt(text string, score rubric.ProposalScore) string {
	var flagged []string
	for _, off := range score.Slop.TopOffenders {
		flagged = append(flagged, fmt.Sprintf("- [%s] %s", off.Category, off.Pattern))
	}
	if len(flagged) == 0 {
		flagged = []string{"- None detected."}
	}
	return strings.TrimSpace(fmt.Sprintf(RewriteTemplate, text, strings.Join(flagged, "\n")))
}

func prefixed(issues []string) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, "- [Style] "+issue)
	}
	return out
}
