// Package structural flags formulaic document-structure habits. These are
// strictly surface heuristics over the full text; each finding is recorded
// at most once per document.
package structural

import (
	"regexp"
	"strings"
)

type Finding string

const (
	FormulaicIntroduction      Finding = "formulaic-introduction"
	OverSignposting            Finding = "over-signposting"
	TemplateSectionProgression Finding = "template-section-progression"
	SymmetricCoverage          Finding = "symmetric-coverage"
)

// Consecutive template anchors must land within this many characters of the
// end of the previous anchor to count as a progression.
const anchorWindow = 500

var stockOpenings = []*regexp.Regexp{
	regexp.MustCompile(`^in today's\b`),
	regexp.MustCompile(`^in this document\b`),
	regexp.MustCompile(`^in this proposal\b`),
	regexp.MustCompile(`^in the modern\b`),
	regexp.MustCompile(`^in an era\b`),
	regexp.MustCompile(`^in the ever-evolving\b`),
	regexp.MustCompile(`^this document (will|outlines|describes)\b`),
	regexp.MustCompile(`^this proposal (will|outlines|describes)\b`),
}

var signposts = []string{
	"in this section, we will",
	"in this section we will",
	"let's now turn to",
	"let us now turn to",
	"as we will see",
	"as mentioned earlier",
	"in the following sections",
	"now that we have covered",
	"we will now explore",
	"let's dive into",
}

var balancedPairs = [][]string{
	{"on one hand", "on the other hand"},
	{"pros and cons"},
	{"advantages and disadvantages"},
	{"benefits and drawbacks"},
}

// Detect evaluates the four heuristics and returns the distinct findings in
// a fixed order. Output length is 0 to 4.
func Detect(text string) []Finding {
	lower := strings.ToLower(text)

	var out []Finding
	if hasFormulaicIntroduction(lower) {
		out = append(out, FormulaicIntroduction)
	}
	if hasSignposting(lower) {
		out = append(out, OverSignposting)
	}
	if hasTemplateProgression(lower) {
		out = append(out, TemplateSectionProgression)
	}
	if hasSymmetricCoverage(lower) {
		out = append(out, SymmetricCoverage)
	}
	return out
}

func hasFormulaicIntroduction(lower string) bool {
	opening := openingLine(lower)
	if opening == "" {
		return false
	}
	for _, re := range stockOpenings {
		if re.MatchString(opening) {
			return true
		}
	}
	return false
}

// openingLine returns the first line that reads like prose, skipping
// markdown headings and blank lines so a titled document is judged by its
// first sentence rather than its title.
func openingLine(lower string) string {
	for _, line := range strings.Split(lower, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

func hasSignposting(lower string) bool {
	for _, phrase := range signposts {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func hasTemplateProgression(lower string) bool {
	first := strings.Index(lower, "overview")
	if first < 0 {
		return false
	}
	rest := lower[first+len("overview"):]
	second := strings.Index(rest, "key points")
	if second < 0 || second > anchorWindow {
		return false
	}
	rest = rest[second+len("key points"):]
	for _, closer := range []string{"best practices", "conclusion"} {
		if idx := strings.Index(rest, closer); idx >= 0 && idx <= anchorWindow {
			return true
		}
	}
	return false
}

func hasSymmetricCoverage(lower string) bool {
	for _, pair := range balancedPairs {
		all := true
		for _, phrase := range pair {
			if !strings.Contains(lower, phrase) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
