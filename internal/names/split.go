// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import "strings"

// Split breaks a full name into given and family parts.
//
// "Family, Given" is split at the first comma. Otherwise the name is split
// on whitespace: a single word is the family name, two words are given then
// family, and longer names are partitioned after a leading run of initials
// ("J. R. R. Tolkien"). When no such run exists the last word is the family
// name and the rest is the given name.
func Split(fullName string) (given, family string) {
	if family, given, ok := splitAtComma(fullName); ok {
		return given, family
	}

	words := strings.Fields(fullName)
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return "", words[0]
	case 2:
		return words[0], words[1]
	}

	if given, family, err := splitByInitials(words); err == nil {
		return given, family
	}
	return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
}

// splitAtComma returns the trimmed text before and after the first comma when
// both are non-empty.
func splitAtComma(name string) (before, after string, ok bool) {
	before, after, found := strings.Cut(name, ",")
	if !found {
		return "", "", false
	}
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	if before == "" || after == "" {
		return "", "", false
	}
	return before, after, true
}

// splitByInitials splits words after a leading run of single-letter or
// period-terminated tokens. The family name starts at the first later token
// longer than one character that does not end with a period.
func splitByInitials(words []string) (given, family string, err error) {
	if !isInitial(words[0]) {
		return "", "", ErrAmbiguousSplit
	}
	for i := 1; i < len(words); i++ {
		if len([]rune(words[i])) > 1 && !strings.HasSuffix(words[i], ".") {
			return strings.Join(words[:i], " "), strings.Join(words[i:], " "), nil
		}
	}
	return "", "", ErrAmbiguousSplit
}

func isInitial(word string) bool {
	return len([]rune(word)) == 1 || strings.HasSuffix(word, ".")
}
