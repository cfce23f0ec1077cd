// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"strings"

	"github.com/pdiddy/refkit/internal/identifier"
	"github.com/pdiddy/refkit/internal/names"
	"github.com/pdiddy/refkit/pkg/types"
)

// JournalAbbreviator shortens journal titles for rendering.
type JournalAbbreviator interface {
	Abbreviate(journal string) string
}

// Style identifies the citation layout used for a record.
type Style string

const (
	StyleJournal Style = "journal"
	StyleArxiv   Style = "arxiv"
	StyleGeneric Style = "generic"
)

// Style returns the layout Render uses: journal when a journal is set, arXiv
// when the URL carries an arXiv identifier, generic otherwise.
func (r Record) Style() Style {
	if r.Journal != "" {
		return StyleJournal
	}
	if _, err := identifier.ExtractArxivID(r.URL); err == nil {
		return StyleArxiv
	}
	return StyleGeneric
}

// Render formats the record as a one-line citation. abbr may be nil, in
// which case journal titles are printed in full.
func (r Record) Render(cfg types.RenderConfig, abbr JournalAbbreviator) string {
	switch r.Style() {
	case StyleJournal:
		return r.renderJournal(cfg, abbr)
	case StyleArxiv:
		id, _ := identifier.ExtractArxivID(r.URL)
		return r.renderArxiv(cfg, id)
	default:
		return r.renderGeneric(cfg)
	}
}

// renderJournal: names, [title,] journal [volume,] [pages] [(year)]
func (r Record) renderJournal(cfg types.RenderConfig, abbr JournalAbbreviator) string {
	res := r.authorList(cfg)
	if cfg.ForceTitle && r.Title != "" {
		res = append(res, r.Title+",")
	}
	journal := r.Journal
	if cfg.AbbreviateJournal && abbr != nil {
		journal = abbr.Abbreviate(journal)
	}
	res = append(res, journal)
	if r.Volume != "" {
		res = append(res, r.Volume+",")
	}
	if pages := r.pages(cfg.FirstPageOnly); pages != "" {
		res = append(res, pages)
	}
	return strings.Join(r.appendYear(res), " ")
}

// renderArxiv: names, [title,] arXiv:id [(year)]
func (r Record) renderArxiv(cfg types.RenderConfig, id string) string {
	res := r.authorList(cfg)
	if cfg.ForceTitle && r.Title != "" {
		res = append(res, r.Title+",")
	}
	res = append(res, "arXiv:"+id)
	return strings.Join(r.appendYear(res), " ")
}

// renderGeneric: authors or editors, title, editors when authors were
// printed, publisher, (year)
func (r Record) renderGeneric(cfg types.RenderConfig) string {
	var res []string
	if len(r.Authors) > 0 {
		res = append(res, r.authorList(cfg)...)
	} else {
		res = append(res, r.editorList(cfg)...)
	}
	if r.Title != "" {
		res = append(res, r.Title+",")
	}
	if len(r.Authors) > 0 {
		res = append(res, r.editorList(cfg)...)
	}
	if r.Publisher != "" {
		res = append(res, r.Publisher)
	}
	return strings.Join(r.appendYear(res), " ")
}

func (r Record) appendYear(res []string) []string {
	if r.Year != "" {
		res = append(res, "("+r.Year+")")
	}
	return res
}

func (r Record) authorList(cfg types.RenderConfig) []string {
	if len(r.Authors) == 0 {
		return nil
	}
	return []string{formatNames(r.Authors, cfg) + ","}
}

func (r Record) editorList(cfg types.RenderConfig) []string {
	switch len(r.Editors) {
	case 0:
		return nil
	case 1:
		return []string{formatNames(r.Editors, cfg) + " (Ed.),"}
	default:
		return []string{formatNames(r.Editors, cfg) + " (Eds.),"}
	}
}

// formatNames joins the formatted names with ", ". When cfg.MaxNames is 2 or
// more and the list is longer, only MaxNames-1 names are printed, followed
// by "et al.".
func formatNames(people []PersonName, cfg types.RenderConfig) string {
	res := make([]string, 0, len(people))
	for i, p := range people {
		if cfg.MaxNames > 1 && i == cfg.MaxNames-1 && i < len(people)-1 {
			res = append(res, "et al.")
			break
		}
		res = append(res, names.FormatName(p.Given, p.Family, cfg.AbbreviateNames, cfg.FamilyNameFirst))
	}
	return strings.Join(res, ", ")
}

func (r Record) pages(firstOnly bool) string {
	switch {
	case firstOnly && r.PageStart != "":
		return r.PageStart
	case r.PageStart != "" && r.PageEnd != "":
		return r.PageStart + "-" + r.PageEnd
	case r.PageStart != "":
		return r.PageStart
	default:
		return r.PageEnd
	}
}

// SearchableString joins every populated field into one comma-separated
// string, suitable as a free-text query for another provider.
func (r Record) SearchableString() string {
	var res []string
	for _, v := range []string{
		r.DOI, r.ISBN, r.ISSN, r.URL, r.Publisher, r.Title, r.Edition,
		r.Journal, r.Volume, r.Issue, r.Year,
	} {
		if v != "" {
			res = append(res, v)
		}
	}
	for _, group := range [][]PersonName{r.Authors, r.Editors} {
		for _, p := range group {
			res = append(res, strings.TrimSpace(p.Given+" "+p.Family))
		}
	}
	if pages := r.pages(false); pages != "" {
		res = append(res, pages)
	}
	return strings.Join(res, ", ")
}
