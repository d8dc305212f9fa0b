// Package lexical scans document text against the phrase catalogs.
// Matching is presence-based: a phrase counts once no matter how often it
// repeats, which bounds the contribution of any single buzzword downstream.
package lexical

import (
	"regexp"
	"strings"

	"proposal_grader/internal/catalog"
)

// Detection maps each category to the distinct catalog entries found at
// least once, in catalog order (not text order).
type Detection struct {
	ByCategory map[catalog.Category][]string `json:"byCategory"`
}

// Count reports the number of distinct entries detected across all
// categories. This is the pattern count the penalty mapper keys on.
func (d Detection) Count() int {
	total := 0
	for _, found := range d.ByCategory {
		total += len(found)
	}
	return total
}

// Entries returns the detected entries for one category, in catalog order.
func (d Detection) Entries(cat catalog.Category) []string {
	return d.ByCategory[cat]
}

// Detect runs Match for every category of the default catalog.
func Detect(text string) Detection {
	c := catalog.Default()
	out := Detection{ByCategory: make(map[catalog.Category][]string, len(catalog.Categories()))}
	lower := strings.ToLower(text)
	for _, cat := range catalog.Categories() {
		if found := matchLowered(lower, c.Entries(cat)); len(found) > 0 {
			out.ByCategory[cat] = found
		}
	}
	return out
}

// Match returns the subset of entries present in text, in entry order.
// Multi-word entries match by case-insensitive substring containment;
// single-word entries require word boundaries so "fast" cannot match
// inside "breakfast".
func Match(text string, entries []string) []string {
	return matchLowered(strings.ToLower(text), entries)
}

func matchLowered(lower string, entries []string) []string {
	var found []string
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if strings.Contains(entry, " ") {
			if strings.Contains(lower, entry) {
				found = append(found, entry)
			}
			continue
		}
		if wholeWordPattern(entry).MatchString(lower) {
			found = append(found, entry)
		}
	}
	return found
}

// CountEmDashes counts typographic em dashes; LLM output overuses them and
// the aggregator folds the raw count into the lexical sub-score.
func CountEmDashes(text string) int {
	return strings.Count(text, "—")
}

// Boundary patterns for the default catalog are built once; entries outside
// the catalog compile on demand and stay correct, just slower.
var boundaryPatterns = buildBoundaryPatterns()

func buildBoundaryPatterns() map[string]*regexp.Regexp {
	c := catalog.Default()
	out := map[string]*regexp.Regexp{}
	for _, cat := range catalog.Categories() {
		for _, entry := range c.Entries(cat) {
			if entry != "" && !strings.Contains(entry, " ") {
				out[entry] = compileBoundary(entry)
			}
		}
	}
	return out
}

func wholeWordPattern(entry string) *regexp.Regexp {
	if re, ok := boundaryPatterns[entry]; ok {
		return re
	}
	return compileBoundary(entry)
}

func compileBoundary(entry string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(entry)) + `\b`)
}
