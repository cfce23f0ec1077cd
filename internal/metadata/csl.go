package metadata

import (
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/refkit/internal/identifier"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	Editor         []CSLName `yaml:"editor,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Edition        string    `yaml:"edition,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	ISBN           string    `yaml:"ISBN,omitempty"`
	ISSN           string    `yaml:"ISSN,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family string `yaml:"family,omitempty"`
	Given  string `yaml:"given,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []Record, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = r.CSL(i + 1)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// CSL converts the record to a CSL item. The item ID is the DOI, arXiv
// identifier, or ISBN when available, and "ref<n>" otherwise.
func (r Record) CSL(n int) CSLItem {
	item := CSLItem{
		ID:             r.cslID(n),
		Type:           r.cslType(),
		Title:          r.Title,
		ContainerTitle: r.Journal,
		Volume:         r.Volume,
		Issue:          r.Issue,
		Page:           r.pages(false),
		Edition:        r.Edition,
		Publisher:      r.Publisher,
		DOI:            r.DOI,
		ISBN:           r.ISBN,
		ISSN:           r.ISSN,
		URL:            r.URL,
	}
	for _, a := range r.Authors {
		item.Author = append(item.Author, CSLName{Family: a.Family, Given: a.Given})
	}
	for _, e := range r.Editors {
		item.Editor = append(item.Editor, CSLName{Family: e.Family, Given: e.Given})
	}
	if year, err := strconv.Atoi(r.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{year}}}
	}
	return item
}

func (r Record) cslID(n int) string {
	switch {
	case r.DOI != "":
		return r.DOI
	case r.Style() == StyleArxiv:
		id, _ := identifier.ExtractArxivID(r.URL)
		return "arXiv:" + id
	case r.ISBN != "":
		return "isbn:" + r.ISBN
	default:
		return fmt.Sprintf("ref%d", n)
	}
}

func (r Record) cslType() string {
	switch {
	case r.Journal != "":
		return "article-journal"
	case r.Style() == StyleArxiv:
		return "article"
	case r.ISBN != "":
		return "book"
	default:
		return "document"
	}
}
