// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata defines the canonical bibliographic record, its
// normalization pass, and its renderings as citation text, CSL-YAML, and
// record files.
package metadata

import (
	"fmt"
	"strings"

	"github.com/pdiddy/refkit/internal/names"
)

// PersonName is an author or editor. A name with an empty Family is not a
// valid person.
type PersonName struct {
	Given  string `json:"given,omitempty" yaml:"given,omitempty"`
	Family string `json:"family" yaml:"family"`
}

// Valid reports whether the name has a family part.
func (p PersonName) Valid() bool {
	return p.Family != ""
}

// Record holds everything known about a referenced work. Empty strings mean
// the field is absent.
type Record struct {
	DOI       string       `json:"doi,omitempty" yaml:"doi,omitempty"`
	ISBN      string       `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	ISSN      string       `json:"issn,omitempty" yaml:"issn,omitempty"`
	URL       string       `json:"url,omitempty" yaml:"url,omitempty"`
	Publisher string       `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Title     string       `json:"title,omitempty" yaml:"title,omitempty"`
	Edition   string       `json:"edition,omitempty" yaml:"edition,omitempty"`
	Journal   string       `json:"journal,omitempty" yaml:"journal,omitempty"`
	Volume    string       `json:"volume,omitempty" yaml:"volume,omitempty"`
	Issue     string       `json:"issue,omitempty" yaml:"issue,omitempty"`
	Year      string       `json:"year,omitempty" yaml:"year,omitempty"`
	PageStart string       `json:"page_start,omitempty" yaml:"page_start,omitempty"`
	PageEnd   string       `json:"page_end,omitempty" yaml:"page_end,omitempty"`
	Authors   []PersonName `json:"authors,omitempty" yaml:"authors,omitempty"`
	Editors   []PersonName `json:"editors,omitempty" yaml:"editors,omitempty"`
}

// FromFields builds a record from a loosely typed mapping such as decoded
// JSON or user input. Recognized keys are the record field names in
// camelCase or snake_case; "author" and "editor" are accepted as aliases of
// "authors" and "editors". Unknown keys are ignored.
func FromFields(fields map[string]any) Record {
	var r Record
	for key, value := range fields {
		switch key {
		case "doi", "DOI":
			r.DOI = text(value)
		case "isbn", "ISBN":
			r.ISBN = text(value)
		case "issn", "ISSN":
			r.ISSN = text(value)
		case "url", "URL":
			r.URL = text(value)
		case "publisher":
			r.Publisher = text(value)
		case "title":
			r.Title = text(value)
		case "edition":
			r.Edition = text(value)
		case "journal":
			r.Journal = text(value)
		case "volume":
			r.Volume = text(value)
		case "issue":
			r.Issue = text(value)
		case "year":
			r.Year = text(value)
		case "pageStart", "page_start":
			r.PageStart = text(value)
		case "pageEnd", "page_end":
			r.PageEnd = text(value)
		case "authors", "author":
			r.Authors = people(value)
		case "editors", "editor":
			r.Editors = people(value)
		}
	}
	return r
}

func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case []any:
		if len(v) == 0 {
			return ""
		}
		return text(v[0])
	default:
		return fmt.Sprint(v)
	}
}

// people converts a list of names in any of the supported shapes: PersonName
// values, maps with given/family (or givenName/familyName) keys, or full name
// strings. Entries without a family name are dropped.
func people(v any) []PersonName {
	var items []any
	switch v := v.(type) {
	case []PersonName:
		for _, p := range v {
			items = append(items, p)
		}
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	case []any:
		items = v
	default:
		items = []any{v}
	}

	var out []PersonName
	for _, item := range items {
		var p PersonName
		switch item := item.(type) {
		case PersonName:
			p = item
		case map[string]any:
			p.Given = text(anyKey(item, "given", "givenName", "given_name"))
			p.Family = text(anyKey(item, "family", "familyName", "family_name"))
		case map[string]string:
			p.Given = firstNonEmpty(item["given"], item["givenName"], item["given_name"])
			p.Family = firstNonEmpty(item["family"], item["familyName"], item["family_name"])
		case string:
			p.Given, p.Family = names.Split(item)
		}
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}

func anyKey(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Tidy collapses whitespace runs (newlines included) to single spaces and
// trims every text field, including names, then backfills fields that some
// publishers only encode in the DOI. Names left without a family part are
// dropped. Tidy is idempotent.
func (r *Record) Tidy() {
	for _, f := range r.textFields() {
		*f = tidyText(*f)
	}
	r.Authors = tidyPeople(r.Authors)
	r.Editors = tidyPeople(r.Editors)
	r.applyPublisherBackfill()
}

func (r *Record) textFields() []*string {
	return []*string{
		&r.DOI, &r.ISBN, &r.ISSN, &r.URL, &r.Publisher, &r.Title, &r.Edition,
		&r.Journal, &r.Volume, &r.Issue, &r.Year, &r.PageStart, &r.PageEnd,
	}
}

func tidyPeople(people []PersonName) []PersonName {
	var out []PersonName
	for _, p := range people {
		tidyName(&p)
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}

func tidyName(p *PersonName) {
	p.Given = tidyText(p.Given)
	p.Family = tidyText(p.Family)
}

func tidyText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
