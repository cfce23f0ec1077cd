// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestDefaultAbbreviate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Physical Review Letters", "Phys. Rev. Lett."},
		{"physical review letters", "Phys. Rev. Lett."},
		{"Physical Review B", "Phys. Rev. B"},
		{"Nature", "Nature"},
		{"Journal of Applied Physics", "J. Appl. Phys."},
		{"Journal of Applied Biophysics", "J. Appl. Biophys."},
		{"Annals of Physics: Theory and Practice", "Ann. Phys.: Theory Practice"},
		{"Solid-State Communications", "Solid-State Commun."},
		{"Journal of Physics: Condensed Matter", "J. Phys.: Condens. Matter"},
		{"Journal of Physics A: Mathematical and Theoretical", "J. Phys. A: Math. Theor."},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Default().Abbreviate(tt.input))
		})
	}
}

func TestBundledDictionary(t *testing.T) {
	var d Dictionary
	require.NoError(t, yaml.Unmarshal(bundledDictionary, &d))

	assert.NotEmpty(t, d.Journals)
	assert.NotEmpty(t, d.Replacements)
	assert.NotEmpty(t, d.Prefixes)
	assert.NotEmpty(t, d.Suffixes)
	for key, abbr := range d.Journals {
		assert.NotEmpty(t, abbr, key)
	}
}

func TestAbbreviateWordTiers(t *testing.T) {
	a := New(Dictionary{
		Replacements: map[string]string{"journal": "j.", "nature": "nature."},
		Prefixes:     map[string]string{"ph": "ph.", "phys": "phys."},
		Suffixes:     map[string]string{"ology": "ol.", "biology": "biol."},
		Infixes:      map[string]string{"chem": "chem.", "ab": "X", "abc": "Y"},
	})

	tests := []struct {
		name   string
		word   string
		want   string
		wantOK bool
	}{
		{"full replacement", "Journal", "j.", true},
		{"longest prefix", "physics", "phys.", true},
		{"longest suffix", "microbiology", "microbiol.", true},
		{"shorter suffix", "anthropology", "anthropol.", true},
		{"infix", "biochemistry", "biochem.", true},
		{"longest infix first", "zabcd", "zY", true},
		{"infix nearest end", "abzab", "abzX", true},
		{"replacement equal to word keeps word", "Nature", "Nature", true},
		{"no entry", "of", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.abbreviateWord(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAbbreviateKeepsFirstAndLastWords(t *testing.T) {
	a := New(Dictionary{Replacements: map[string]string{"journal": "j."}})

	tests := []struct {
		input string
		want  string
	}{
		{"Journal of Stuff Things", "J. Things"},
		{"Big Journal of Things", "Big J. Things"},
		{"Journal: Big Journal Things", "J.: J. Things"},
		{"Journal-Big Stuff Things", "J.-Things"},
		{"big", "Big"},
		{"Journal:", "J."},
		{"Journal: : Things", "J.: Things"},
		{": Big Journal Things", "Big J. Things"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Abbreviate(tt.input))
		})
	}
}

func TestJournalKeysNormalized(t *testing.T) {
	a := New(Dictionary{Journals: map[string]string{"Physical Review Letters": "PRL"}})
	assert.Equal(t, "PRL", a.Abbreviate("physical-review, letters"))
}

func TestLoad(t *testing.T) {
	a, err := Load(strings.NewReader("journals:\n  fooletters: Foo Lett.\nreplacements:\n  bar: b.\n"))
	require.NoError(t, err)
	assert.Equal(t, "Foo Lett.", a.Abbreviate("Foo Letters"))
	assert.Equal(t, "B. Baz", a.Abbreviate("Bar Baz"))

	empty, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "Foo", empty.Abbreviate("foo"))

	_, err = Load(strings.NewReader("journals: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("replacements:\n  physics: phys.\n"), 0o644))

	a, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Phys.", a.Abbreviate("Physics"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
