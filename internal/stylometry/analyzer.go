// Package stylometry computes the two statistical markers of machine prose:
// unusually uniform sentence lengths and low vocabulary diversity. Both
// statistics report nil below their minimum sample size instead of flagging.
package stylometry

import (
	"regexp"
	"strings"

	"github.com/montanaflynn/stats"
)

const (
	// Natural prose is expected to exceed this much sentence-length spread.
	stdDevFloor  = 8.0
	minSentences = 3

	ttrFloor  = 0.45
	ttrWindow = 100
	minTokens = 50
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

type SentenceStats struct {
	SentenceCount int     `json:"sentenceCount"`
	MeanLength    float64 `json:"meanLength"`
	StdDev        float64 `json:"stdDev"`
	Flagged       bool    `json:"flagged"`
}

type VocabularyStats struct {
	TTR       float64 `json:"ttr"`
	WordCount int     `json:"wordCount"`
	Flagged   bool    `json:"flagged"`
}

type Report struct {
	Sentences  *SentenceStats   `json:"sentences"`
	Vocabulary *VocabularyStats `json:"vocabulary"`
}

// FlagCount is the number of raised stylometric flags, 0 to 2. Insufficient
// data never counts as a flag.
func (r Report) FlagCount() int {
	count := 0
	if r.Sentences != nil && r.Sentences.Flagged {
		count++
	}
	if r.Vocabulary != nil && r.Vocabulary.Flagged {
		count++
	}
	return count
}

// Analyze runs both statistics in one pass over the document.
func Analyze(text string) Report {
	return Report{
		Sentences:  SentenceVariance(text),
		Vocabulary: VocabularyDiversity(text),
	}
}

// SentenceVariance splits on sentence-terminal punctuation and computes the
// mean and population standard deviation of per-sentence word counts.
// Returns nil when fewer than three sentences carry words.
func SentenceVariance(text string) *SentenceStats {
	lengths := sentenceLengths(text)
	if len(lengths) < minSentences {
		return nil
	}

	mean, err := stats.Mean(lengths)
	if err != nil {
		return nil
	}
	sd, err := stats.StandardDeviationPopulation(lengths)
	if err != nil {
		return nil
	}

	return &SentenceStats{
		SentenceCount: len(lengths),
		MeanLength:    mean,
		StdDev:        sd,
		Flagged:       sd < stdDevFloor,
	}
}

// VocabularyDiversity computes a windowed type-token ratio: unique over
// total tokens inside non-overlapping 100-token windows, averaged. With at
// least 50 tokens but no full window, a single global ratio is used.
// Returns nil below 50 tokens.
func VocabularyDiversity(text string) *VocabularyStats {
	tokens := tokenize(text)
	if len(tokens) < minTokens {
		return nil
	}

	ratio := 0.0
	if len(tokens) < ttrWindow {
		ratio = typeTokenRatio(tokens)
	} else {
		sum := 0.0
		windows := 0
		for start := 0; start+ttrWindow <= len(tokens); start += ttrWindow {
			sum += typeTokenRatio(tokens[start : start+ttrWindow])
			windows++
		}
		ratio = sum / float64(windows)
	}

	return &VocabularyStats{
		TTR:       ratio,
		WordCount: len(tokens),
		Flagged:   ratio < ttrFloor,
	}
}

func sentenceLengths(text string) []float64 {
	sentences := sentenceEnd.Split(text, -1)
	lengths := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		if count := len(tokenize(s)); count > 0 {
			lengths = append(lengths, float64(count))
		}
	}
	return lengths
}

func typeTokenRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	return float64(len(seen)) / float64(len(tokens))
}

func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
