// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identifier

import (
	"regexp"
	"strings"
)

var (
	// arxivNewPattern matches post-2007 identifiers: "0704.0001", "1501.00001".
	arxivNewPattern = regexp.MustCompile(`[0-9]{4}\.[0-9]{4,5}`)

	// arxivOldPattern matches subject-prefixed identifiers: "hep-th/9901001".
	arxivOldPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z.\-]+/[0-9]{7}`)

	// arxivVersionPattern matches a version suffix directly after an identifier.
	arxivVersionPattern = regexp.MustCompile(`^[vV][0-9]`)
)

// ExtractArxivID returns the first arXiv identifier in text. The new numeric
// format is tried before the old subject/number format. A version suffix such
// as "v2" may follow the identifier but is not part of the result.
func ExtractArxivID(text string) (string, error) {
	if id, ok := extractArxivNew(text); ok {
		return id, nil
	}
	if id, ok := extractArxivOld(text); ok {
		return id, nil
	}
	return "", ErrNotFound
}

func extractArxivNew(text string) (string, bool) {
	for _, loc := range arxivNewPattern.FindAllStringIndex(text, -1) {
		if validStart(text, loc[0]) && validArxivEnd(text, loc[1]) {
			return text[loc[0]:loc[1]], true
		}
	}
	return "", false
}

func extractArxivOld(text string) (string, bool) {
	for _, loc := range arxivOldPattern.FindAllStringIndex(text, -1) {
		id := text[loc[0]:loc[1]]
		subject, _, _ := strings.Cut(id, "/")
		if !arxivSubjects[subject] {
			continue
		}
		if validStart(text, loc[0]) && validArxivEnd(text, loc[1]) {
			return id, true
		}
	}
	return "", false
}

// validArxivEnd accepts a following word character only when it begins a
// version suffix.
func validArxivEnd(text string, end int) bool {
	if validEnd(text, end) {
		return true
	}
	return arxivVersionPattern.MatchString(text[end:])
}

// IsArxivSubject reports whether code is a recognized arXiv subject class.
func IsArxivSubject(code string) bool {
	return arxivSubjects[code]
}

// arxivSubjects lists the subject classes accepted as old-format prefixes.
// Matching is case-sensitive.
var arxivSubjects = map[string]bool{
	"stat": true, "stat.AP": true, "stat.CO": true, "stat.ML": true, "stat.ME": true, "stat.TH": true,
	"q-bio": true, "q-bio.BM": true, "q-bio.CB": true, "q-bio.GN": true, "q-bio.MN": true, "q-bio.NC": true,
	"q-bio.OT": true, "q-bio.PE": true, "q-bio.QM": true, "q-bio.SC": true, "q-bio.TO": true,
	"cs": true, "cs.AR": true, "cs.AI": true, "cs.CL": true, "cs.CC": true, "cs.CE": true, "cs.CG": true,
	"cs.GT": true, "cs.CV": true, "cs.CY": true, "cs.CR": true, "cs.DS": true, "cs.DB": true, "cs.DL": true,
	"cs.DM": true, "cs.DC": true, "cs.GL": true, "cs.GR": true, "cs.HC": true, "cs.IR": true, "cs.IT": true,
	"cs.LG": true, "cs.LO": true, "cs.MS": true, "cs.MA": true, "cs.MM": true, "cs.NI": true, "cs.NE": true,
	"cs.NA": true, "cs.OS": true, "cs.OH": true, "cs.PF": true, "cs.PL": true, "cs.RO": true, "cs.SE": true,
	"cs.SD": true, "cs.SC": true,
	"nlin": true, "nlin.AO": true, "nlin.CG": true, "nlin.CD": true, "nlin.SI": true, "nlin.PS": true,
	"math": true, "math.AG": true, "math.AT": true, "math.AP": true, "math.CT": true, "math.CA": true,
	"math.CO": true, "math.AC": true, "math.CV": true, "math.DG": true, "math.DS": true, "math.FA": true,
	"math.GM": true, "math.GN": true, "math.GT": true, "math.GR": true, "math.HO": true, "math.IT": true,
	"math.KT": true, "math.LO": true, "math.MP": true, "math.MG": true, "math.NT": true, "math.NA": true,
	"math.OA": true, "math.OC": true, "math.PR": true, "math.QA": true, "math.RT": true, "math.RA": true,
	"math.SP": true, "math.ST": true, "math.SG": true,
	"astro-ph": true,
	"cond-mat": true, "cond-mat.dis-nn": true, "cond-mat.mes-hall": true, "cond-mat.mtrl-sci": true,
	"cond-mat.other": true, "cond-mat.soft": true, "cond-mat.stat-mech": true, "cond-mat.str-el": true,
	"cond-mat.supr-con": true,
	"gr-qc": true, "hep-ex": true, "hep-lat": true, "hep-ph": true, "hep-th": true, "math-ph": true,
	"nucl-ex": true, "nucl-th": true,
	"physics": true, "physics.acc-ph": true, "physics.ao-ph": true, "physics.atom-ph": true,
	"physics.atm-clus": true, "physics.bio-ph": true, "physics.chem-ph": true, "physics.class-ph": true,
	"physics.comp-ph": true, "physics.data-an": true, "physics.flu-dyn": true, "physics.gen-ph": true,
	"physics.geo-ph": true, "physics.hist-ph": true, "physics.ins-det": true, "physics.med-ph": true,
	"physics.optics": true, "physics.ed-ph": true, "physics.soc-ph": true, "physics.plasm-ph": true,
	"physics.pop-ph": true, "physics.space-ph": true,
	"quant-ph": true,
}
