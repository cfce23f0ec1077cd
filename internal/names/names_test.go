// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGivenName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		abbreviate bool
		want       string
	}{
		{"lowercase is title cased", "jane", false, "Jane"},
		{"uppercase is title cased", "JOHN", false, "John"},
		{"mixed case preserved", "DeAnn", false, "DeAnn"},
		{"hyphen parts cased separately", "jean-paul", false, "Jean-Paul"},
		{"periods get a following space", "J.R.R.", false, "J. R. R."},
		{"whitespace collapsed", "  mary   ann ", false, "Mary Ann"},
		{"abbreviated single", "jane", true, "J."},
		{"abbreviated hyphenated", "jean-paul", true, "J.-P."},
		{"abbreviated multiple words", "John Ronald", true, "J. R."},
		{"abbreviated initials unchanged", "J. R. R.", true, "J. R. R."},
		{"abbreviated non-ascii", "émile", true, "É."},
		{"empty", "", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGivenName(tt.input, tt.abbreviate))
		})
	}
}

func TestFormatFamilyName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mcdonald", "McDonald"},
		{"MCDONALD", "McDonald"},
		{"macarthur", "MacArthur"},
		{"o'brien", "O'Brien"},
		{"smith-jones", "Smith-Jones"},
		{"van der berg", "Van Der Berg"},
		{"McDonald", "McDonald"},
		{"de la Cruz", "De La Cruz"},
		{"mc", "Mc"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFamilyName(tt.input))
		})
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		name        string
		given       string
		family      string
		abbreviate  bool
		familyFirst bool
		want        string
	}{
		{"given first", "jane", "doe", false, false, "Jane Doe"},
		{"family first abbreviated", "jean-paul", "mcdonald", true, true, "McDonald, J.-P."},
		{"abbreviated given first", "John", "Smith", true, false, "J. Smith"},
		{"no given name", "", "Einstein", true, true, "Einstein"},
		{"no family name", "Plato", "", false, false, "Plato"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatName(tt.given, tt.family, tt.abbreviate, tt.familyFirst))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input      string
		wantGiven  string
		wantFamily string
	}{
		{"Smith, John", "John", "Smith"},
		{"van der Berg, Anna Maria", "Anna Maria", "van der Berg"},
		{"J. R. R. Tolkien", "J. R. R.", "Tolkien"},
		{"J R R Tolkien", "J R R", "Tolkien"},
		{"J. van Dyke", "J.", "van Dyke"},
		{"Mary Ann Evans", "Mary Ann", "Evans"},
		{"Jane Doe", "Jane", "Doe"},
		{"Einstein", "", "Einstein"},
		{"   ", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			given, family := Split(tt.input)
			assert.Equal(t, tt.wantGiven, given)
			assert.Equal(t, tt.wantFamily, family)
		})
	}
}

func TestSplitByInitials(t *testing.T) {
	_, _, err := splitByInitials([]string{"Mary", "Ann", "Evans"})
	require.ErrorIs(t, err, ErrAmbiguousSplit)

	_, _, err = splitByInitials([]string{"J.", "R.", "R."})
	require.ErrorIs(t, err, ErrAmbiguousSplit)

	given, family, err := splitByInitials([]string{"A.", "B.", "Clarke", "Jr"})
	require.NoError(t, err)
	assert.Equal(t, "A. B.", given)
	assert.Equal(t, "Clarke Jr", family)
}
