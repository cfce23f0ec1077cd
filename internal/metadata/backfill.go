// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import "strings"

// publisherRule fills fields a publisher encodes only inside its DOIs.
type publisherRule struct {
	// key is matched against the publisher lower-cased with spaces removed.
	key  string
	fill func(r *Record)
}

var publisherRules = []publisherRule{
	{key: "americanphysicalsociety", fill: backfillAPS},
	{key: "naturepublishing", fill: backfillNature},
}

// applyPublisherBackfill runs the first rule whose key appears in the
// publisher name. Only empty fields are filled; unparseable DOIs are ignored.
func (r *Record) applyPublisherBackfill() {
	lookup := strings.ToLower(strings.ReplaceAll(r.Publisher, " ", ""))
	for _, rule := range publisherRules {
		if strings.Contains(lookup, rule.key) {
			rule.fill(r)
			return
		}
	}
}

// backfillAPS reads volume and start page from the second and third
// dot-separated segments of the DOI suffix (10.1103/PhysRevLett.110.123456).
func backfillAPS(r *Record) {
	if r.DOI == "" || (r.Volume != "" && r.PageStart != "") {
		return
	}
	_, suffix, ok := strings.Cut(r.DOI, "/")
	if !ok {
		return
	}
	segments := strings.Split(suffix, ".")
	if r.Volume == "" && len(segments) > 1 {
		r.Volume = tidyText(segments[1])
	}
	if r.PageStart == "" && len(segments) > 2 {
		r.PageStart = tidyText(segments[2])
	}
}

// backfillNature reads the article number that follows "/srep" in Scientific
// Reports DOIs (10.1038/srep01234).
func backfillNature(r *Record) {
	if r.PageStart != "" {
		return
	}
	_, after, ok := strings.Cut(r.DOI, "/srep")
	if !ok {
		return
	}
	if i := strings.Index(after, "/srep"); i >= 0 {
		after = after[:i]
	}
	if after == "" || strings.Trim(after, "0123456789") != "" {
		return
	}
	r.PageStart = after
}
