// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline.
package types

import (
	"sort"
	"time"
)

// Author is one author of a fetched paper. IsNonAcademic and CompanyName are
// derived from the affiliation text when the Author is constructed and are
// never mutated afterwards.
//
// When IsNonAcademic is false, CompanyName is always empty. The converse does
// not hold: a commercial affiliation whose comma segments are all filtered as
// organizational noise yields IsNonAcademic true with an empty CompanyName.
// Consumers must tolerate that combination.
type Author struct {
	// Name is the author's display name (e.g. "Jane Doe").
	Name string `json:"name" yaml:"name"`

	// Affiliation is the free-text affiliation with any embedded email removed.
	// Empty when the source record carried none.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// Email is the address extracted from the affiliation text, lower-cased.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// IsCorresponding marks the author as the paper's contact author.
	IsCorresponding bool `json:"is_corresponding" yaml:"is_corresponding"`

	// IsNonAcademic reports whether the affiliation was classified as a
	// commercial entity rather than a university/hospital/institute.
	IsNonAcademic bool `json:"is_non_academic" yaml:"is_non_academic"`

	// CompanyName is the company extracted from a non-academic affiliation.
	CompanyName string `json:"company_name,omitempty" yaml:"company_name,omitempty"`
}

// Paper holds the metadata of one PubMed record together with its authors in
// source order.
type Paper struct {
	// PubmedID is the PMID as returned by the E-utilities API.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Date is the publication date. Records with an unparseable or missing
	// date carry the sentinel 1900-01-01.
	Date time.Time `json:"date" yaml:"date"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Abstract is the article abstract, possibly empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// NonAcademicAuthors returns the authors classified as commercially
// affiliated, in source order.
func (p *Paper) NonAcademicAuthors() []Author {
	var out []Author
	for _, a := range p.Authors {
		if a.IsNonAcademic {
			out = append(out, a)
		}
	}
	return out
}

// CompanyAffiliations returns the sorted, de-duplicated company names among
// the non-academic authors. Authors whose company name could not be
// extracted contribute nothing.
func (p *Paper) CompanyAffiliations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range p.Authors {
		if !a.IsNonAcademic || a.CompanyName == "" || seen[a.CompanyName] {
			continue
		}
		seen[a.CompanyName] = true
		out = append(out, a.CompanyName)
	}
	sort.Strings(out)
	return out
}

// CorrespondingAuthorEmail returns the best-guess contact address: the first
// corresponding author with an email, else the first author with any email,
// else the empty string.
func (p *Paper) CorrespondingAuthorEmail() string {
	for _, a := range p.Authors {
		if a.IsCorresponding && a.Email != "" {
			return a.Email
		}
	}
	for _, a := range p.Authors {
		if a.Email != "" {
			return a.Email
		}
	}
	return ""
}
