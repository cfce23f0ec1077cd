// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names normalizes person names for citation display: hyphen-aware
// capitalization, initials, family-first ordering, and splitting a free-text
// full name into given and family parts.
package names

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrAmbiguousSplit is returned when a three-or-more word name has no
// abbreviation boundary between its given and family parts.
var ErrAmbiguousSplit = errors.New("ambiguous name split")

// FormatName composes a display name as "Given Family" or, when familyFirst
// is set, "Family, Given". An empty given name yields the family name alone.
func FormatName(given, family string, abbreviate, familyFirst bool) string {
	g := FormatGivenName(given, abbreviate)
	f := FormatFamilyName(family)
	switch {
	case g == "":
		return f
	case f == "":
		return g
	case familyFirst:
		return f + ", " + g
	default:
		return g + " " + f
	}
}

// FormatGivenName capitalizes each word and hyphen part of a given name. When
// abbreviate is set every part is reduced to its initial followed by a
// period, so "jean-paul" becomes "J.-P." and "J.R.R." becomes "J. R. R.".
func FormatGivenName(name string, abbreviate bool) string {
	capitalized := capitalize(name, false)
	capitalized = strings.Join(strings.Fields(strings.ReplaceAll(capitalized, ".", ". ")), " ")
	if !abbreviate {
		return capitalized
	}
	return initials(capitalized)
}

// FormatFamilyName capitalizes each word and hyphen part of a family name,
// honoring Mc/Mac prefixes and apostrophes ("McDonald", "MacArthur", "O'Brien").
func FormatFamilyName(name string) string {
	return capitalize(name, true)
}

// capitalize re-cases every whitespace word and hyphen part that carries no
// case information (entirely upper or entirely lower case). Mixed-case parts
// are assumed to be correct already and are left alone.
func capitalize(name string, family bool) string {
	words := strings.Fields(name)
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			if !uniformCase(p) {
				continue
			}
			if family {
				parts[j] = familyCase(p)
			} else {
				parts[j] = titleCase(p)
			}
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}

// uniformCase reports whether s has at least one cased letter and all cased
// letters share the same case.
func uniformCase(s string) bool {
	var upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	return upper != lower
}

// familyCase applies the family name rules to one hyphen part.
func familyCase(s string) string {
	segments := strings.Split(strings.ToLower(s), "'")
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, "mc") && len(seg) > len("mc"):
			segments[i] = "Mc" + titleCase(seg[len("mc"):])
		case strings.HasPrefix(seg, "mac") && len(seg) > len("mac"):
			segments[i] = "Mac" + titleCase(seg[len("mac"):])
		default:
			segments[i] = titleCase(seg)
		}
	}
	return strings.Join(segments, "'")
}

// titleCase upper-cases each letter that follows a non-letter and lower-cases
// each letter that follows a letter.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// initials reduces every period-separated fragment of every hyphen part to
// its first character and a period.
func initials(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			var out []string
			for _, frag := range strings.Split(p, ".") {
				if frag == "" {
					continue
				}
				r, _ := utf8.DecodeRuneInString(frag)
				out = append(out, string(r)+".")
			}
			parts[j] = strings.Join(out, " ")
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}
