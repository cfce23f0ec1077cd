// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal abbreviates journal titles using a known-journal table and
// a layered word dictionary (whole word, prefix, suffix, infix).
package journal

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"go.yaml.in/yaml/v3"
)

//go:embed data/abbreviations.yaml
var bundledDictionary []byte

// Dictionary holds the abbreviation tables. Keys are lower case. Journals
// keys additionally have every non-word character removed.
type Dictionary struct {
	Journals     map[string]string `yaml:"journals"`
	Replacements map[string]string `yaml:"replacements"`
	Prefixes     map[string]string `yaml:"prefixes"`
	Suffixes     map[string]string `yaml:"suffixes"`
	Infixes      map[string]string `yaml:"infixes"`
}

// Abbreviator reduces journal titles to their abbreviated form. It is safe
// for concurrent use; the tables are never modified after construction.
type Abbreviator struct {
	dict Dictionary
}

// New returns an Abbreviator over a copy of d. Journal keys are normalized so
// callers may supply them in display form.
func New(d Dictionary) *Abbreviator {
	return &Abbreviator{dict: Dictionary{
		Journals:     normalizeKeys(d.Journals, journalKey),
		Replacements: normalizeKeys(d.Replacements, strings.ToLower),
		Prefixes:     normalizeKeys(d.Prefixes, strings.ToLower),
		Suffixes:     normalizeKeys(d.Suffixes, strings.ToLower),
		Infixes:      normalizeKeys(d.Infixes, strings.ToLower),
	}}
}

// Load parses a YAML dictionary from r.
func Load(r io.Reader) (*Abbreviator, error) {
	var d Dictionary
	if err := yaml.NewDecoder(r).Decode(&d); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing abbreviation dictionary: %w", err)
	}
	return New(d), nil
}

// LoadFile parses a YAML dictionary from path.
func LoadFile(path string) (*Abbreviator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening abbreviation dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var defaultAbbreviator = sync.OnceValue(func() *Abbreviator {
	a, err := Load(bytes.NewReader(bundledDictionary))
	if err != nil {
		panic(err)
	}
	return a
})

// Default returns the Abbreviator built from the bundled dictionary. The
// bundle is parsed on first use.
func Default() *Abbreviator {
	return defaultAbbreviator()
}

// Abbreviate returns the abbreviated form of a journal title. A title found
// in the known-journal table returns its canonical abbreviation. Otherwise
// each non-blank ":" segment and each "-" part is abbreviated word by word;
// words with no abbreviation are dropped except the first word of the title
// and the last word of each part.
func (a *Abbreviator) Abbreviate(name string) string {
	if abbr, ok := a.lookupJournal(name); ok {
		return abbr
	}

	var out []string
	for _, seg := range strings.Split(name, ":") {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		if abbr := a.abbreviateSegment(seg, len(out) == 0); abbr != "" {
			out = append(out, abbr)
		}
	}
	return strings.Join(out, ": ")
}

func (a *Abbreviator) lookupJournal(name string) (string, bool) {
	abbr, ok := a.dict.Journals[journalKey(name)]
	return abbr, ok
}

// abbreviateSegment abbreviates one subtitle segment. The first segment is
// checked against the known-journal table again and keeps its first word.
func (a *Abbreviator) abbreviateSegment(segment string, first bool) string {
	if first {
		if abbr, ok := a.lookupJournal(segment); ok {
			return abbr
		}
	}
	parts := strings.Split(segment, "-")
	for i, p := range parts {
		parts[i] = a.abbreviatePart(p, first && i == 0)
	}
	return strings.Join(parts, "-")
}

func (a *Abbreviator) abbreviatePart(part string, keepFirst bool) string {
	words := strings.Fields(part)
	res := make([]string, 0, len(words))
	for i, w := range words {
		if abbr, ok := a.abbreviateWord(w); ok {
			res = append(res, titleCase(abbr))
			continue
		}
		if i == len(words)-1 || (keepFirst && i == 0) {
			res = append(res, titleCase(w))
		}
	}
	return strings.Join(res, " ")
}

// abbreviateWord looks a word up in the full, prefix, suffix, and infix
// tables, in that order. A replacement that only adds trailing periods to
// the word leaves the word unchanged.
func (a *Abbreviator) abbreviateWord(word string) (string, bool) {
	lower := strings.ToLower(word)
	res, ok := a.dict.Replacements[lower]
	if !ok {
		res, ok = a.prefixReplacement(lower)
	}
	if !ok {
		res, ok = a.suffixReplacement(lower)
	}
	if !ok {
		res, ok = a.infixReplacement(lower)
	}
	if !ok {
		return "", false
	}
	if strings.TrimRight(res, ".") == lower {
		return word, true
	}
	return res, true
}

// prefixReplacement matches the longest key that starts the word and returns
// its replacement.
func (a *Abbreviator) prefixReplacement(word string) (string, bool) {
	for i := len(word); i > 0; i-- {
		if repl, ok := a.dict.Prefixes[word[:i]]; ok {
			return repl, true
		}
	}
	return "", false
}

// suffixReplacement matches the longest key that ends the word and replaces
// that key.
func (a *Abbreviator) suffixReplacement(word string) (string, bool) {
	for i := 0; i < len(word); i++ {
		if repl, ok := a.dict.Suffixes[word[i:]]; ok {
			return word[:i] + repl, true
		}
	}
	return "", false
}

// infixReplacement matches the longest key contained in the word, preferring
// the occurrence nearest the end, and replaces the key and everything after
// it.
func (a *Abbreviator) infixReplacement(word string) (string, bool) {
	for n := len(word); n > 0; n-- {
		for j := len(word) - n; j >= 0; j-- {
			if repl, ok := a.dict.Infixes[word[j:j+n]]; ok {
				return word[:j] + repl, true
			}
		}
	}
	return "", false
}

// journalKey lower-cases name and drops every character that is not a
// letter, digit, or underscore.
func journalKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if isWordRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func normalizeKeys(m map[string]string, key func(string) string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[key(k)] = v
	}
	return out
}

// titleCase upper-cases each letter that follows a non-letter and lower-cases
// the rest.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
