// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/refkit/internal/httputil"
	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/internal/names"
	"github.com/pdiddy/refkit/pkg/types"
)

// DefaultArxivBase is the arXiv API query endpoint.
const DefaultArxivBase = "https://export.arxiv.org/api/query"

// arxivPublisher is recorded as the publisher of every arXiv record.
const arxivPublisher = "arXiv.org"

// Arxiv queries the arXiv Atom API by identifier.
type Arxiv struct {
	client *httputil.Client
	base   string
	log    zerolog.Logger
}

// NewArxiv returns an arXiv client. An empty cfg.ArxivBase uses DefaultArxivBase.
func NewArxiv(client *httputil.Client, cfg types.ProvidersConfig, log zerolog.Logger) *Arxiv {
	base := cfg.ArxivBase
	if base == "" {
		base = DefaultArxivBase
	}
	return &Arxiv{client: client, base: base, log: log.With().Str("provider", "arxiv").Logger()}
}

// QueryByID fetches the record for an arXiv identifier. A feed with more
// than one entry returns ErrAmbiguousResult; an empty feed or an API error
// entry returns ErrNotFound.
func (a *Arxiv) QueryByID(ctx context.Context, id string) (metadata.Record, error) {
	u := fmt.Sprintf("%s?id_list=%s&start=0&max_results=2", a.base, url.QueryEscape(id))
	a.log.Debug().Str("id", id).Str("url", u).Msg("querying arXiv")

	body, err := a.client.Get(ctx, u, "application/atom+xml")
	if err != nil {
		return metadata.Record{}, serviceError("arxiv", err)
	}

	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return metadata.Record{}, fmt.Errorf("arxiv: %w: parsing response: %w", ErrServiceError, err)
	}

	switch len(feed.Entries) {
	case 0:
		return metadata.Record{}, fmt.Errorf("arxiv %s: %w", id, ErrNotFound)
	case 1:
	default:
		return metadata.Record{}, fmt.Errorf("arxiv %s: %w (%d entries)", id, ErrAmbiguousResult, len(feed.Entries))
	}

	entry := feed.Entries[0]
	if strings.Contains(entry.ID, "/api/errors") || strings.TrimSpace(entry.ID) == "" {
		return metadata.Record{}, fmt.Errorf("arxiv %s: %w: %s", id, ErrNotFound, strings.TrimSpace(entry.Summary))
	}
	return entry.record(), nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID      string        `xml:"id"`
	Title   string        `xml:"title"`
	Summary string        `xml:"summary"`
	Updated string        `xml:"updated"`
	DOI     string        `xml:"doi"`
	Authors []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// record converts the entry. The year is taken from the last update.
func (e arxivEntry) record() metadata.Record {
	r := metadata.Record{
		Publisher: arxivPublisher,
		Title:     e.Title,
		URL:       e.ID,
		DOI:       e.DOI,
	}
	if year, _, ok := strings.Cut(strings.TrimSpace(e.Updated), "-"); ok {
		r.Year = year
	}
	for _, a := range e.Authors {
		given, family := names.Split(a.Name)
		p := metadata.PersonName{Given: given, Family: family}
		if p.Valid() {
			r.Authors = append(r.Authors, p)
		}
	}
	r.Tidy()
	return r
}
