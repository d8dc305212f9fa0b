package lexical

import (
	"strings"
	"testing"

	"proposal_grader/internal/catalog"
)

func TestSingleWordRequiresBoundary(t *testing.T) {
	if found := Match("breakfast is served daily", []string{"fast"}); len(found) != 0 {
		t.Fatalf("expected no match inside a longer word, got %v", found)
	}
	if found := Match("a fast turnaround", []string{"fast"}); len(found) != 1 {
		t.Fatalf("expected whole-word match, got %v", found)
	}
}

func TestMultiWordUsesSubstringContainment(t *testing.T) {
	text := "Also, it's important to note that nothing changed."
	found := Match(text, []string{"it's important to note that"})
	if len(found) != 1 {
		t.Fatalf("expected phrase match, got %v", found)
	}
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	found := Match("a ROBUST and Seamless rollout", []string{"robust", "seamless"})
	if len(found) != 2 {
		t.Fatalf("expected both matches regardless of case, got %v", found)
	}
}

func TestRepeatedPhraseCountsOnce(t *testing.T) {
	text := strings.Repeat("synergy everywhere, synergy always. ", 10)
	found := Match(text, []string{"synergy"})
	if len(found) != 1 {
		t.Fatalf("expected presence to be binary per entry, got %v", found)
	}
}

func TestResultsKeepCatalogOrder(t *testing.T) {
	entries := []string{"alpha phrase", "beta", "gamma phrase"}
	found := Match("gamma phrase before beta before alpha phrase", entries)
	if len(found) != 3 || found[0] != "alpha phrase" || found[2] != "gamma phrase" {
		t.Fatalf("expected catalog order, got %v", found)
	}
}

func TestDetectSpecimenText(t *testing.T) {
	text := "This is an incredibly robust, seamless, cutting-edge solution. " +
		"It's important to note that this will leverage synergy."
	d := Detect(text)

	boosters := d.Entries(catalog.GenericBooster)
	if len(boosters) == 0 || boosters[0] != "incredibly" {
		t.Fatalf("expected generic booster 'incredibly', got %v", boosters)
	}
	if buzz := d.Entries(catalog.Buzzword); len(buzz) < 3 {
		t.Fatalf("expected at least 3 buzzwords, got %v", buzz)
	}
	if filler := d.Entries(catalog.FillerPhrase); len(filler) == 0 {
		t.Fatalf("expected a filler phrase detection")
	}
	if d.Count() < 7 {
		t.Fatalf("expected at least 7 distinct patterns, got %d", d.Count())
	}
}

func TestEmptyInput(t *testing.T) {
	d := Detect("")
	if d.Count() != 0 {
		t.Fatalf("expected zero detections on empty input, got %d", d.Count())
	}
	if CountEmDashes("") != 0 {
		t.Fatal("expected zero em dashes on empty input")
	}
}

func TestCountEmDashes(t *testing.T) {
	if n := CountEmDashes("a — b — c - d"); n != 2 {
		t.Fatalf("expected 2 em dashes (hyphen excluded), got %d", n)
	}
}
