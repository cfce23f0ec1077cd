// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identifier

import (
	"regexp"
	"strings"
)

// doiPattern matches "10." followed by digits and dots, a slash, and any run
// of non-space characters: "10.1103/PhysRevLett.110.123456".
var doiPattern = regexp.MustCompile(`10\.[0-9.]+/\S+`)

// ExtractDOI returns the first DOI in text whose match is not preceded by a
// word character. Trailing '-', '.', and '/' characters are trimmed from the
// result, as are trailing commas and semicolons left by citation lists.
func ExtractDOI(text string) (string, error) {
	for _, loc := range doiPattern.FindAllStringIndex(text, -1) {
		if !validStart(text, loc[0]) {
			continue
		}
		doi := strings.TrimRight(text[loc[0]:loc[1]], "-./,;")
		if doi == "" {
			continue
		}
		return doi, nil
	}
	return "", ErrNotFound
}
