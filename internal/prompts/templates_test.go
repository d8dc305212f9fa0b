package prompts

import (
	"strings"
	"testing"

	"proposal_grader/internal/rubric"
)

func TestCritiquePromptQuotesIssues(t *testing.T) {
	text := "This proposal is incredibly robust and will leverage synergy across teams. " +
		"We will utilize cutting-edge best practices. It's important to note that results may vary."
	score := rubric.Score(text)

	prompt := CritiquePrompt(text, score)
	if !strings.Contains(prompt, "SCORE:") {
		t.Fatalf("missing score line:\n%s", prompt)
	}
	for _, issue := range score.StyleIssues {
		if !strings.Contains(prompt, issue) {
			t.Fatalf("critique must quote issue %q verbatim:\n%s", issue, prompt)
		}
	}
}

func TestRewritePromptQuotesOffenders(t *testing.T) {
	text := "We will leverage synergy and utilize robust, cutting-edge solutions to unlock seamless value."
	score := rubric.Score(text)
	if len(score.Slop.TopOffenders) == 0 {
		t.Fatal("expected offenders in the fixture text")
	}

	prompt := RewritePrompt(text, score)
	for _, off := range score.Slop.TopOffenders {
		if !strings.Contains(prompt, off.Pattern) {
			t.Fatalf("rewrite must quote offender %q verbatim:\n%s", off.Pattern, prompt)
		}
	}
}

func TestPromptsOnCleanText(t *testing.T) {
	score := rubric.Score("The finance team loses 40 hours per month.")
	prompt := RewritePrompt("The finance team loses 40 hours per month.", score)
	if !strings.Contains(prompt, "None detected.") {
		t.Fatalf("clean text should yield an explicit empty list:\n%s", prompt)
	}
}
