// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation decides whether a free-text author affiliation denotes
// a commercial entity and, when it does, extracts a clean company name. The
// classification is a pure function over the affiliation string; the two
// keyword tables in keywords.go are the only state.
package affiliation

import (
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// punctToSpace maps sentence punctuation to spaces so keywords can be
// matched space-bounded ("Inc.," matches "inc").
var punctToSpace = strings.NewReplacer(".", " ", ",", " ", ";", " ", ":", " ", "(", " ", ")", " ")

// normalize lower-cases text and pads punctuation with spaces for bounded
// keyword matching.
func normalize(text string) string {
	return " " + punctToSpace.Replace(strings.ToLower(text)) + " "
}

// containsKeyword reports whether any keyword from the table occurs in the
// normalized text as a whole token or space-bounded phrase.
func containsKeyword(norm string, table []string) bool {
	for _, kw := range table {
		if strings.Contains(norm, " "+kw+" ") {
			return true
		}
	}
	return false
}

// earliestKeyword returns the smallest offset in norm at which a keyword
// occurs as a whole token or space-bounded phrase, or -1 when none matches.
// Affiliation strings list the most specific organization first, so the
// offset is what resolves mixed academic/commercial strings. Matching
// bounded here keeps the position consistent with containsKeyword: "ag"
// never borrows an offset from inside a word like "Magnetic".
func earliestKeyword(norm string, table []string) int {
	earliest := -1
	for _, kw := range table {
		if pos := strings.Index(norm, " "+kw+" "); pos >= 0 && (earliest < 0 || pos < earliest) {
			earliest = pos
		}
	}
	return earliest
}

// Classify reports whether the affiliation text denotes a non-academic
// (commercial) entity and, if so, the extracted company name. Empty or blank
// input is academic by definition. When both academic and company keywords
// occur, whichever class appears first in the text wins.
//
// The company name can come back empty for a non-academic affiliation whose
// comma segments were all filtered as noise; callers must tolerate that.
func Classify(text string) (nonAcademic bool, company string) {
	if strings.TrimSpace(text) == "" {
		return false, ""
	}

	norm := normalize(text)

	hasAcademic := containsKeyword(norm, academicKeywords)
	hasCompany := containsKeyword(norm, companyKeywords)

	switch {
	case hasCompany && hasAcademic:
		nonAcademic = earliestKeyword(norm, companyKeywords) < earliestKeyword(norm, academicKeywords)
	case hasCompany:
		nonAcademic = true
	default:
		// Academic keywords only, or no keywords at all.
		nonAcademic = false
	}

	if !nonAcademic {
		return false, ""
	}
	return true, extractCompany(text)
}

// extractCompany picks the comma segment of a non-academic affiliation that
// best names the company. Segments naming organizational units or contact
// details are discarded unless they also contain a company keyword, so
// "Novartis Institutes for BioMedical Research" survives its "Research"
// despite the noise table.
func extractCompany(text string) string {
	var kept []string
	for _, seg := range strings.Split(text, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segNorm := normalize(seg)
		if isNoise(strings.ToLower(seg)) && !containsKeyword(segNorm, companyKeywords) {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return ""
	}

	// Prefer the first segment that itself names a company.
	for _, seg := range kept {
		if containsKeyword(normalize(seg), companyKeywords) {
			return cleanCompany(seg)
		}
	}
	return cleanCompany(kept[0])
}

func isNoise(lowerSeg string) bool {
	for _, w := range noiseWords {
		if strings.Contains(lowerSeg, w) {
			return true
		}
	}
	return false
}

// cleanCompany strips trailing punctuation and drops any token carrying a
// stray email fragment.
func cleanCompany(seg string) string {
	seg = strings.Trim(seg, " .,;")
	if strings.Contains(seg, "@") {
		var words []string
		for _, w := range strings.Fields(seg) {
			if !strings.Contains(w, "@") {
				words = append(words, w)
			}
		}
		seg = strings.Trim(strings.Join(words, " "), " .,;")
	}
	return seg
}

// NewAuthor builds a types.Author from a raw source record, computing the
// derived fields exactly once. An email embedded in the affiliation text is
// extracted and removed before classification. The author counts as
// corresponding when the source flagged it, an email was found, or the
// affiliation mentions correspondence.
func NewAuthor(name, affiliationText, email string, corresponding bool) types.Author {
	remaining := strings.TrimSpace(affiliationText)
	if email == "" {
		email, remaining = ExtractEmail(remaining)
	}

	isCorresponding := corresponding || email != "" ||
		strings.Contains(strings.ToLower(remaining), "correspond")

	nonAcademic, company := Classify(remaining)

	return types.Author{
		Name:            name,
		Affiliation:     remaining,
		Email:           email,
		IsCorresponding: isCorresponding,
		IsNonAcademic:   nonAcademic,
		CompanyName:     company,
	}
}
