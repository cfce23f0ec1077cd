// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/refkit/internal/httputil"
	"github.com/pdiddy/refkit/internal/identifier"
	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/pkg/types"
)

// DefaultCrossRefBase is the CrossRef REST API base URL.
const DefaultCrossRefBase = "https://api.crossref.org"

const defaultCrossRefRows = 10

// CrossRef queries the CrossRef works API by DOI, by ISBN, and by free text.
type CrossRef struct {
	client *httputil.Client
	base   string
	rows   int
	mailto string
	log    zerolog.Logger
}

// NewCrossRef returns a CrossRef client. Empty settings fall back to
// DefaultCrossRefBase and ten rows per search.
func NewCrossRef(client *httputil.Client, cfg types.ProvidersConfig, log zerolog.Logger) *CrossRef {
	c := &CrossRef{
		client: client,
		base:   strings.TrimRight(cfg.CrossRefBase, "/"),
		rows:   cfg.CrossRefRows,
		mailto: cfg.Mailto,
		log:    log.With().Str("provider", "crossref").Logger(),
	}
	if c.base == "" {
		c.base = DefaultCrossRefBase
	}
	if c.rows <= 0 {
		c.rows = defaultCrossRefRows
	}
	return c
}

// QueryByDOI fetches the work registered under doi.
func (c *CrossRef) QueryByDOI(ctx context.Context, doi string) (metadata.Record, error) {
	u := c.base + "/works/" + url.PathEscape(doi) + c.query(nil)
	c.log.Debug().Str("doi", doi).Str("url", u).Msg("querying CrossRef by DOI")

	var resp crossrefWorkResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return metadata.Record{}, err
	}
	if resp.Message == nil {
		return metadata.Record{}, fmt.Errorf("crossref doi %s: %w", doi, ErrNotFound)
	}
	return resp.Message.record(), nil
}

// QueryByISBN fetches the single work carrying isbn. More than one match
// returns ErrAmbiguousResult.
func (c *CrossRef) QueryByISBN(ctx context.Context, isbn string) (metadata.Record, error) {
	u := c.base + "/works" + c.query(url.Values{"filter": {"isbn:" + isbn}, "rows": {"2"}})
	c.log.Debug().Str("isbn", isbn).Str("url", u).Msg("querying CrossRef by ISBN")

	var resp crossrefListResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return metadata.Record{}, err
	}
	switch len(resp.Message.Items) {
	case 0:
		return metadata.Record{}, fmt.Errorf("crossref isbn %s: %w", isbn, ErrNotFound)
	case 1:
		return resp.Message.Items[0].record(), nil
	default:
		return metadata.Record{}, fmt.Errorf("crossref isbn %s: %w", isbn, ErrAmbiguousResult)
	}
}

// QueryByText runs a bibliographic free-text search and returns the hits in
// CrossRef's relevance order.
func (c *CrossRef) QueryByText(ctx context.Context, text string) ([]Candidate, error) {
	u := c.base + "/works" + c.query(url.Values{
		"query.bibliographic": {strings.ToLower(text)},
		"rows":                {strconv.Itoa(c.rows)},
	})
	c.log.Debug().Str("lookup", text).Str("url", u).Msg("searching CrossRef")

	var resp crossrefListResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(resp.Message.Items))
	for _, item := range resp.Message.Items {
		r := item.record()
		candidates = append(candidates, Candidate{Citation: r.SearchableString(), Record: r})
	}
	return candidates, nil
}

// query encodes v plus the polite-pool contact address.
func (c *CrossRef) query(v url.Values) string {
	if v == nil {
		v = url.Values{}
	}
	if c.mailto != "" {
		v.Set("mailto", c.mailto)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *CrossRef) getJSON(ctx context.Context, u string, out any) error {
	body, err := c.client.Get(ctx, u, "application/json")
	if err != nil {
		return serviceError("crossref", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("crossref: %w: parsing response: %w", ErrServiceError, err)
	}
	return nil
}

// CrossRef JSON structures (only the fields refkit reads).
type crossrefWorkResponse struct {
	Message *crossrefWork `json:"message"`
}

type crossrefListResponse struct {
	Message struct {
		Items []crossrefWork `json:"items"`
	} `json:"message"`
}

type crossrefWork struct {
	DOI            string           `json:"DOI"`
	URL            string           `json:"URL"`
	Title          []string         `json:"title"`
	Subtitle       []string         `json:"subtitle"`
	ContainerTitle []string         `json:"container-title"`
	Publisher      string           `json:"publisher"`
	Volume         string           `json:"volume"`
	Issue          string           `json:"issue"`
	Page           string           `json:"page"`
	ISSN           []string         `json:"ISSN"`
	ISBN           []string         `json:"ISBN"`
	Issued         crossrefDate     `json:"issued"`
	Author         []crossrefPerson `json:"author"`
	Editor         []crossrefPerson `json:"editor"`
}

type crossrefDate struct {
	DateParts [][]*int `json:"date-parts"`
}

type crossrefPerson struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// record converts the work. The longest container title is kept as the
// journal and title and subtitle are joined with ": ".
func (w crossrefWork) record() metadata.Record {
	r := metadata.Record{
		DOI:       w.DOI,
		URL:       w.URL,
		Publisher: w.Publisher,
		Volume:    w.Volume,
		Issue:     w.Issue,
	}
	if len(w.ISSN) > 0 {
		r.ISSN = w.ISSN[0]
	}
	for _, candidate := range w.ISBN {
		if isbn, err := identifier.ExtractISBN(candidate); err == nil {
			r.ISBN = isbn
			break
		}
	}
	if len(w.Issued.DateParts) > 0 && len(w.Issued.DateParts[0]) > 0 && w.Issued.DateParts[0][0] != nil {
		r.Year = strconv.Itoa(*w.Issued.DateParts[0][0])
	}
	if len(w.Title) > 0 {
		r.Title = w.Title[0]
		if len(w.Subtitle) > 0 && w.Subtitle[0] != "" {
			r.Title += ": " + w.Subtitle[0]
		}
	}
	if w.Page != "" {
		start, end, _ := strings.Cut(w.Page, "-")
		r.PageStart, r.PageEnd = start, end
	}
	for _, j := range w.ContainerTitle {
		if len(j) > len(r.Journal) {
			r.Journal = j
		}
	}
	r.Authors = people(w.Author)
	r.Editors = people(w.Editor)
	r.Tidy()
	return r
}

func people(in []crossrefPerson) []metadata.PersonName {
	var out []metadata.PersonName
	for _, p := range in {
		name := metadata.PersonName{Given: p.Given, Family: p.Family}
		if name.Valid() {
			out = append(out, name)
		}
	}
	return out
}
