package domain

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// canonicalBrands maps a trimmed, lowercased brand to its display form.
// Covers the retailers currently publishing feeds under the UK price
// transparency scheme.
var canonicalBrands = map[string]string{
	"applegreen":     "Applegreen",
	"asda express":   "ASDA Express",
	"asda":           "ASDA",
	"bp":             "BP",
	"coop":           "Co Op",
	"essar":          "Essar",
	"esso":           "Esso",
	"gulf":           "Gulf",
	"harvest energy": "Harvest Energy",
	"jet":            "JET",
	"morrisons":      "Morrisons",
	"murco":          "Murco",
	"sainsbury's":    "Sainsbury's",
	"shell":          "Shell",
	"tesco":          "Tesco",
	"texaco":         "Texaco",
}

// BrandTable maps free-form retailer brand strings to canonical display
// names. A table is built once at startup and never mutated afterwards, so it
// is safe to share across goroutines.
type BrandTable struct {
	entries map[string]string
}

// NewBrandTable returns the built-in canonical table merged with extra
// entries. Extra keys are trimmed and lowercased; they may override
// built-ins.
func NewBrandTable(extra map[string]string) *BrandTable {
	entries := make(map[string]string, len(canonicalBrands)+len(extra))
	for k, v := range canonicalBrands {
		entries[k] = v
	}
	for k, v := range extra {
		entries[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &BrandTable{entries: entries}
}

// Canonical returns the display name for a raw brand string, matching on the
// trimmed, lowercased input. Unknown brands are returned exactly as given,
// original casing and whitespace intact, so novel retailer names are never
// silently lost. Canonical never fails.
func (t *BrandTable) Canonical(brand string) string {
	if v, ok := t.entries[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return v
	}
	return brand
}

// LoadBrandExtensions reads extra brand table entries from a YAML file of
// "key: Display Name" pairs, for retailers added after this build.
func LoadBrandExtensions(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read brand table: %w", err)
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse brand table: %w", err)
	}
	return entries, nil
}
