// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ranking scores free-text search candidates against a lookup string
// by word overlap and decides whether the best candidate can be accepted
// without asking the user.
package ranking

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Default thresholds.
const (
	DefaultAutoMin = 0.99
	DefaultAutoMax = 0.7
)

// Thresholds controls automatic acceptance. AutoMin is the minimum overlap
// score the best candidate needs. AutoMax is the maximum ratio of the
// runner-up score to the best score.
type Thresholds struct {
	AutoMin float64
	AutoMax float64
}

// DefaultThresholds returns AutoMin 0.99 and AutoMax 0.7.
func DefaultThresholds() Thresholds {
	return Thresholds{AutoMin: DefaultAutoMin, AutoMax: DefaultAutoMax}
}

// Validate checks that AutoMin lies in (0, 1] and AutoMax in [0, 1].
func (t Thresholds) Validate() error {
	if t.AutoMin <= 0 || t.AutoMin > 1 {
		return fmt.Errorf("auto_min %v outside (0, 1]", t.AutoMin)
	}
	if t.AutoMax < 0 || t.AutoMax > 1 {
		return fmt.Errorf("auto_max %v outside [0, 1]", t.AutoMax)
	}
	return nil
}

// Outcome is the result of classifying a ranked candidate list.
type Outcome int

const (
	// Empty means there were no candidates.
	Empty Outcome = iota
	// Accept means the best candidate may be used without confirmation.
	Accept
	// Ambiguous means a person has to choose among the ranked candidates.
	Ambiguous
)

func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Ambiguous:
		return "ambiguous"
	default:
		return "empty"
	}
}

// Scored pairs a candidate's position in the caller's list with its citation
// text and overlap score.
type Scored struct {
	Index int
	Text  string
	Score float64
}

// Decision is the outcome of Classify. Ranked is sorted by descending score;
// when Outcome is Accept, Ranked[0] is the accepted candidate.
type Decision struct {
	Outcome Outcome
	Ranked  []Scored
}

// Best returns the top-ranked candidate, if any.
func (d Decision) Best() (Scored, bool) {
	if len(d.Ranked) == 0 {
		return Scored{}, false
	}
	return d.Ranked[0], true
}

// Overlap returns the fraction of lookup words that appear anywhere in
// candidate. Words are runs of letters, digits, and underscores compared
// case-insensitively. An empty lookup scores 0.
func Overlap(lookup, candidate string) float64 {
	want := tokenize(lookup)
	if len(want) == 0 {
		return 0
	}
	have := make(map[string]struct{})
	for _, w := range tokenize(candidate) {
		have[w] = struct{}{}
	}
	matched := 0
	for _, w := range want {
		if _, ok := have[w]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(want))
}

// Rank scores every candidate text against lookup and sorts the result by
// descending score. Equal scores keep their original order.
func Rank(lookup string, candidates []string) []Scored {
	ranked := make([]Scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = Scored{Index: i, Text: c, Score: Overlap(lookup, c)}
	}
	slices.SortStableFunc(ranked, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// Classify ranks candidates against lookup and decides the outcome.
func Classify(lookup string, candidates []string, t Thresholds) Decision {
	return Decide(Rank(lookup, candidates), t)
}

// Decide applies the acceptance rules to an already ranked list:
//
//   - a single candidate is accepted when its score reaches AutoMin;
//   - the best of several is accepted when its score reaches AutoMin and the
//     runner-up to best ratio is below AutoMax;
//   - any other non-empty list is ambiguous.
func Decide(ranked []Scored, t Thresholds) Decision {
	d := Decision{Outcome: Ambiguous, Ranked: ranked}
	switch {
	case len(ranked) == 0:
		d.Outcome = Empty
	case len(ranked) == 1:
		if ranked[0].Score >= t.AutoMin {
			d.Outcome = Accept
		}
	default:
		best, second := ranked[0].Score, ranked[1].Score
		if best > 0 && best >= t.AutoMin && second/best < t.AutoMax {
			d.Outcome = Accept
		}
	}
	return d
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
