// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identifier

import (
	"regexp"
	"strings"
)

// isbnPattern prefers a 13 digit run over a 10 digit run at the same offset.
var isbnPattern = regexp.MustCompile(`[0-9]{13}|[0-9]{10}`)

// ExtractISBN removes hyphens from text and returns the first run of exactly
// 13 or exactly 10 digits bounded by non-word characters or the string edges.
func ExtractISBN(text string) (string, error) {
	value := strings.ReplaceAll(text, "-", "")
	for _, loc := range isbnPattern.FindAllStringIndex(value, -1) {
		if validStart(value, loc[0]) && validEnd(value, loc[1]) {
			return value[loc[0]:loc[1]], nil
		}
	}
	return "", ErrNotFound
}
