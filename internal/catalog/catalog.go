// Package catalog holds the phrase catalogs the lexical matcher scans for.
// The catalogs are configuration data: loaded once from an embedded file,
// ordered, and never mutated at runtime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed patterns.json
var patternsJSON []byte

type Category string

const (
	GenericBooster     Category = "genericBooster"
	Buzzword           Category = "buzzword"
	FillerPhrase       Category = "fillerPhrase"
	Hedge              Category = "hedge"
	Sycophantic        Category = "sycophantic"
	TransitionalFiller Category = "transitionalFiller"
)

// Categories returns every category in its canonical order. Detection output
// and offender assembly both depend on this order staying fixed.
func Categories() []Category {
	return []Category{
		GenericBooster,
		Buzzword,
		FillerPhrase,
		Hedge,
		Sycophantic,
		TransitionalFiller,
	}
}

type Catalog struct {
	entries map[Category][]string
}

type patternFile struct {
	GenericBooster     []string `json:"genericBooster"`
	Buzzword           []string `json:"buzzword"`
	FillerPhrase       []string `json:"fillerPhrase"`
	Hedge              []string `json:"hedge"`
	Sycophantic        []string `json:"sycophantic"`
	TransitionalFiller []string `json:"transitionalFiller"`
}

var defaultCatalog = mustLoad(patternsJSON)

// Default returns the embedded catalog shared by all callers.
func Default() *Catalog {
	return defaultCatalog
}

func mustLoad(raw []byte) *Catalog {
	var pf patternFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		panic(fmt.Sprintf("catalog: embedded patterns.json is invalid: %v", err))
	}
	return &Catalog{entries: map[Category][]string{
		GenericBooster:     pf.GenericBooster,
		Buzzword:           pf.Buzzword,
		FillerPhrase:       pf.FillerPhrase,
		Hedge:              pf.Hedge,
		Sycophantic:        pf.Sycophantic,
		TransitionalFiller: pf.TransitionalFiller,
	}}
}

// Entries returns the catalog phrases for one category in catalog order.
// The returned slice is a copy; callers may not reach the backing data.
func (c *Catalog) Entries(cat Category) []string {
	src := c.entries[cat]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Size reports the total number of phrases across all categories.
func (c *Catalog) Size() int {
	total := 0
	for _, cat := range Categories() {
		total += len(c.entries[cat])
	}
	return total
}
