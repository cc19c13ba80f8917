package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandTable_Canonical(t *testing.T) {
	table := NewBrandTable(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase known brand", "bp", "BP"},
		{"uppercase known brand", "SHELL", "Shell"},
		{"surrounding whitespace", "  Sainsbury's  ", "Sainsbury's"},
		{"multi-word brand", "harvest energy", "Harvest Energy"},
		{"longer key wins", "asda express", "ASDA Express"},
		{"shorter sibling key", "asda", "ASDA"},
		{"coop display form", "coop", "Co Op"},
		{"unknown brand passes through exactly", "  Rontec ", "  Rontec "},
		{"unknown casing preserved", "MoTo Services", "MoTo Services"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Canonical(tt.input))
		})
	}
}

func TestBrandTable_CanonicalIsIdempotent(t *testing.T) {
	table := NewBrandTable(nil)

	for _, canonical := range []string{"BP", "ASDA Express", "Sainsbury's", "Co Op", "JET"} {
		assert.Equal(t, canonical, table.Canonical(canonical), "canonicalizing %q twice should be stable", canonical)
	}
}

func TestNewBrandTable_Extensions(t *testing.T) {
	table := NewBrandTable(map[string]string{
		" Rontec ": "Rontec",
		"bp":       "BP plc", // extensions may override built-ins
	})

	assert.Equal(t, "Rontec", table.Canonical("rontec"))
	assert.Equal(t, "BP plc", table.Canonical("BP"))
	// Untouched built-ins still resolve.
	assert.Equal(t, "Tesco", table.Canonical("tesco"))
}

func TestLoadBrandExtensions(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "brands.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rontec: Rontec\nmfg: MFG\n"), 0o644))

		entries, err := LoadBrandExtensions(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"rontec": "Rontec", "mfg": "MFG"}, entries)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBrandExtensions(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read brand table")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "brands.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

		_, err := LoadBrandExtensions(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse brand table")
	})
}
