// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package identifier recognizes DOI, ISBN, and arXiv identifiers embedded in
// free-running text such as a pasted citation. Every extractor validates the
// characters around a candidate match so that identifier-shaped substrings
// inside longer tokens are not reported.
package identifier

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// ErrNotFound is returned when the text holds no valid identifier of the
// requested kind. Callers treat it as a signal to try the next strategy.
var ErrNotFound = errors.New("identifier not found")

// Type classifies an extracted identifier.
type Type int

const (
	TypeUnknown Type = iota
	TypeDOI
	TypeArxiv
	TypeISBN
)

func (t Type) String() string {
	switch t {
	case TypeDOI:
		return "doi"
	case TypeArxiv:
		return "arxiv"
	case TypeISBN:
		return "isbn"
	default:
		return "unknown"
	}
}

// Detect returns the first identifier found in text, trying DOI, then arXiv,
// then ISBN. It returns TypeUnknown and an empty string when none match.
func Detect(text string) (Type, string) {
	if doi, err := ExtractDOI(text); err == nil {
		return TypeDOI, doi
	}
	if id, err := ExtractArxivID(text); err == nil {
		return TypeArxiv, id
	}
	if isbn, err := ExtractISBN(text); err == nil {
		return TypeISBN, isbn
	}
	return TypeUnknown, ""
}

// isWordRune reports whether r is a letter, digit, or underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// validStart reports whether the match beginning at byte offset start is not
// glued to a preceding word character.
func validStart(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(r)
}

// validEnd reports whether the match ending at byte offset end is not glued
// to a following word character.
func validEnd(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}
