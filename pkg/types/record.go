// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is a raw paper record as produced by the PubMed client, before
// dates are parsed and authors are classified. Records are what the local
// cache persists, so classifier changes take effect without re-fetching.
type Record struct {
	// ID is the PMID.
	ID string `json:"id" yaml:"id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date text, "YYYY-MM-DD" or "YYYY-Mon-DD".
	// May be empty or partial; assembly falls back to 1900-01-01.
	PubDate string `json:"pubdate" yaml:"pubdate"`

	// Authors are the raw author records in source order.
	Authors []RecordAuthor `json:"authors" yaml:"authors"`

	// Abstract is the article abstract, possibly empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// RecordAuthor is one raw author record from the data source.
type RecordAuthor struct {
	// Name is the author display name.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the free-text affiliation, possibly with an embedded
	// email address.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// Email is a structured address when the source supplied one separately.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// IsCorresponding is set when the source explicitly flagged the author.
	IsCorresponding bool `json:"is_corresponding,omitempty" yaml:"is_corresponding,omitempty"`
}
