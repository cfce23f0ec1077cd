package metadata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestCSLTypesAndIDs(t *testing.T) {
	tests := []struct {
		name     string
		r        Record
		wantID   string
		wantType string
	}{
		{"journal article", Record{DOI: "10.1103/X.1.2", Journal: "Phys. Rev."}, "10.1103/X.1.2", "article-journal"},
		{"arxiv preprint", Record{URL: "http://arxiv.org/abs/1501.00001v1"}, "arXiv:1501.00001", "article"},
		{"book", Record{ISBN: "9780306406157", Title: "Book"}, "isbn:9780306406157", "book"},
		{"anything else", Record{Title: "Report"}, "ref3", "document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.r.CSL(3)
			assert.Equal(t, tt.wantID, item.ID)
			assert.Equal(t, tt.wantType, item.Type)
		})
	}
}

func TestCSLFields(t *testing.T) {
	r := prlRecord()
	r.PageEnd = "123460"
	r.Editors = []PersonName{{Given: "Ann", Family: "Lee"}}

	item := r.CSL(1)
	assert.Equal(t, "Physical Review Letters", item.ContainerTitle)
	assert.Equal(t, "123456-123460", item.Page)
	assert.Equal(t, []CSLName{{Family: "doe", Given: "jane"}}, item.Author)
	assert.Equal(t, []CSLName{{Family: "Lee", Given: "Ann"}}, item.Editor)
	require.NotNil(t, item.Issued)
	assert.Equal(t, [][]int{{2013}}, item.Issued.DateParts)

	r.Year = "n.d."
	assert.Nil(t, r.CSL(1).Issued)
}

func TestFormatCSL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSL([]Record{prlRecord(), {Title: "Other"}}, &buf))

	var items []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "article-journal", items[0]["type"])
	assert.Equal(t, "Physical Review Letters", items[0]["container-title"])
	assert.Equal(t, "ref2", items[1]["id"])
	assert.NotContains(t, items[1], "DOI")
}
