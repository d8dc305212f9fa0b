package rubric

import (
	"regexp"
	"strings"
)

// document is the pre-lowered text plus the heading lines found in it,
// computed once per scoring call and shared by all four dimensions.
type document struct {
	lower    string
	headings []string
}

var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+(.+?)\s*$`),
	regexp.MustCompile(`(?m)^\s*\*\*([^*\n]{1,80})\*\*:?\s*$`),
	regexp.MustCompile(`(?m)^\s*\d+[.)]\s+([^\n]{1,80})\s*$`),
	regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z0-9 /&'-]{1,60}):\s*$`),
}

func prepare(text string) document {
	doc := document{lower: strings.ToLower(text)}
	for _, re := range headingPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			heading := strings.ToLower(strings.TrimSpace(m[1]))
			if heading != "" {
				doc.headings = append(doc.headings, heading)
			}
		}
	}
	return doc
}

// hasSection reports whether any heading line names one of the synonyms.
func (d document) hasSection(synonyms []string) bool {
	for _, h := range d.headings {
		for _, syn := range synonyms {
			if strings.Contains(h, syn) {
				return true
			}
		}
	}
	return false
}
