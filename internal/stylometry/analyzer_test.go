package stylometry

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func sentenceOfLength(n, seed int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("tok%d", seed*100+i)
	}
	return strings.Join(words, " ") + "."
}

func joinSentences(lengths []int) string {
	parts := make([]string, len(lengths))
	for i, n := range lengths {
		parts[i] = sentenceOfLength(n, i+1)
	}
	return strings.Join(parts, " ")
}

func TestVariedSentenceLengthsNotFlagged(t *testing.T) {
	text := joinSentences([]int{4, 35, 8, 22, 6})
	s := SentenceVariance(text)
	if s == nil {
		t.Fatal("expected sentence stats, got insufficient data")
	}
	if s.SentenceCount != 5 {
		t.Fatalf("expected 5 sentences, got %d", s.SentenceCount)
	}
	if math.Abs(s.MeanLength-15.0) > 0.001 {
		t.Fatalf("expected mean 15.0, got %.3f", s.MeanLength)
	}
	if s.StdDev < 8.0 {
		t.Fatalf("expected spread above the floor, got %.3f", s.StdDev)
	}
	if s.Flagged {
		t.Fatal("varied prose must not be flagged")
	}
}

func TestUniformSentenceLengthsFlagged(t *testing.T) {
	text := joinSentences([]int{12, 13, 11, 12, 13})
	s := SentenceVariance(text)
	if s == nil {
		t.Fatal("expected sentence stats, got insufficient data")
	}
	if s.StdDev >= 1.0 {
		t.Fatalf("expected near-zero spread, got %.3f", s.StdDev)
	}
	if !s.Flagged {
		t.Fatalf("uniform sentence lengths must be flagged (sd=%.3f)", s.StdDev)
	}
}

func TestTooFewSentencesIsInsufficientData(t *testing.T) {
	if s := SentenceVariance("One short line. Another short line."); s != nil {
		t.Fatalf("expected nil below 3 sentences, got %+v", s)
	}
	if s := SentenceVariance(""); s != nil {
		t.Fatalf("expected nil on empty input, got %+v", s)
	}
}

func TestVocabularyDiversityMinimumSample(t *testing.T) {
	if v := VocabularyDiversity(strings.Repeat("word ", 49)); v != nil {
		t.Fatalf("expected nil below 50 tokens, got %+v", v)
	}
	if v := VocabularyDiversity(""); v != nil {
		t.Fatalf("expected nil on empty input, got %+v", v)
	}
}

func TestRepetitiveVocabularyFlagged(t *testing.T) {
	text := strings.Repeat("the same word again ", 30) // 120 tokens, 4 types
	v := VocabularyDiversity(text)
	if v == nil {
		t.Fatal("expected vocabulary stats")
	}
	if v.WordCount != 120 {
		t.Fatalf("expected 120 tokens, got %d", v.WordCount)
	}
	if v.TTR >= 0.45 || !v.Flagged {
		t.Fatalf("expected low flagged ratio, got ttr=%.3f flagged=%t", v.TTR, v.Flagged)
	}
}

func TestGlobalRatioFallbackBelowFullWindow(t *testing.T) {
	// 60 unique tokens: above the minimum sample but below one full window.
	words := make([]string, 60)
	for i := range words {
		words[i] = fmt.Sprintf("unique%d", i)
	}
	v := VocabularyDiversity(strings.Join(words, " "))
	if v == nil {
		t.Fatal("expected vocabulary stats")
	}
	if math.Abs(v.TTR-1.0) > 0.001 {
		t.Fatalf("expected global ratio 1.0, got %.3f", v.TTR)
	}
	if v.Flagged {
		t.Fatal("fully distinct vocabulary must not be flagged")
	}
}

func TestFlagCount(t *testing.T) {
	uniform := joinSentences([]int{12, 13, 11, 12, 13})
	r := Analyze(uniform)
	if got := r.FlagCount(); got != 1 {
		t.Fatalf("expected 1 flag (uniform sentences, distinct vocabulary), got %d", got)
	}
	if r := Analyze(""); r.FlagCount() != 0 {
		t.Fatal("expected no flags on empty input")
	}
}
