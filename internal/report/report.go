// Package report renders a scored proposal for humans: a JSON snapshot for
// the project directory, a markdown summary for terminals, and an HTML
// rendering of that markdown for anything with a browser.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"proposal_grader/internal/rubric"
)

type Summary struct {
	Title       string               `json:"title"`
	WordCount   int                  `json:"word_count"`
	GeneratedAt string               `json:"generated_at"`
	Score       rubric.ProposalScore `json:"score"`
}

func Build(title, text string, score rubric.ProposalScore) Summary {
	return Summary{
		Title:       strings.TrimSpace(title),
		WordCount:   len(strings.Fields(text)),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Score:       score,
	}
}

func SaveJSON(path string, s Summary) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// LoadJSON reads a previously saved report.
func LoadJSON(path string) (Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read report: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return Summary{}, fmt.Errorf("parse report: %w", err)
	}
	return s, nil
}

// Markdown lays the score out as a readable report. The follow-up prompt
// builders quote the same issue strings verbatim, so wording here and in
// the engine must stay aligned.
func Markdown(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Proposal Score: %s\n\n", s.Title)
	fmt.Fprintf(&b, "**Total: %d / 100** (%d words)\n\n", s.Score.TotalScore, s.WordCount)

	b.WriteString("## Dimensions\n\n")
	for _, d := range s.Score.Dimensions {
		fmt.Fprintf(&b, "### %s: %d / 25\n\n", d.Name, d.Score)
		for _, sub := range d.Subcriteria {
			fmt.Fprintf(&b, "- %s: %d / %d\n", sub.Name, sub.Points, sub.MaxPoints)
		}
		for _, issue := range d.Issues {
			fmt.Fprintf(&b, "- Issue: %s\n", issue)
		}
		b.WriteString("\n")
	}

	slop := s.Score.Slop
	fmt.Fprintf(&b, "## Style Scan\n\n")
	fmt.Fprintf(&b, "Slop score %d / %d (%s); penalty applied: %d points.\n\n",
		slop.Score, slop.MaxScore, slop.Severity, s.Score.Penalty.Points)
	if len(slop.TopOffenders) > 0 {
		b.WriteString("Top offenders:\n\n")
		for _, off := range slop.TopOffenders {
			fmt.Fprintf(&b, "- [%s] %s\n", off.Category, off.Pattern)
		}
		b.WriteString("\n")
	}
	for _, issue := range s.Score.StyleIssues {
		fmt.Fprintf(&b, "- %s\n", issue)
	}
	return b.String()
}

// RenderHTML converts the markdown report to HTML.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
