// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders classified papers as tabular output.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// csvHeader lists the output columns in order.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// Entry is one output row. JSON and YAML exports emit entries with list
// fields intact; CSV joins them with "; ".
type Entry struct {
	PubmedID                 string   `json:"pubmed_id" yaml:"pubmed_id"`
	Title                    string   `json:"title" yaml:"title"`
	PublicationDate          string   `json:"publication_date" yaml:"publication_date"`
	NonAcademicAuthors       []string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations      []string `json:"company_affiliations" yaml:"company_affiliations"`
	CorrespondingAuthorEmail string   `json:"corresponding_author_email,omitempty" yaml:"corresponding_author_email,omitempty"`
}

// Entries flattens papers into output rows, one per paper, in input order.
func Entries(papers []types.Paper) []Entry {
	entries := make([]Entry, len(papers))
	for i, p := range papers {
		var names []string
		for _, a := range p.NonAcademicAuthors() {
			names = append(names, a.Name)
		}
		entries[i] = Entry{
			PubmedID:                 p.PubmedID,
			Title:                    p.Title,
			PublicationDate:          p.Date.Format("2006-01-02"),
			NonAcademicAuthors:       names,
			CompanyAffiliations:      p.CompanyAffiliations(),
			CorrespondingAuthorEmail: p.CorrespondingAuthorEmail(),
		}
	}
	return entries
}

// Write renders the papers to w in the requested format. An unknown format
// is an error; an empty paper list still produces the CSV header so the
// output stays machine-readable.
func Write(w io.Writer, papers []types.Paper, format types.ExportFormat) error {
	entries := Entries(papers)

	switch format {
	case types.FormatCSV, "":
		return writeCSV(w, entries)
	case types.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case types.FormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown export format %q (want csv, json, or yaml)", format)
	}
}

func writeCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.PubmedID,
			e.Title,
			e.PublicationDate,
			strings.Join(e.NonAcademicAuthors, "; "),
			strings.Join(e.CompanyAffiliations, "; "),
			e.CorrespondingAuthorEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for PMID %s: %w", e.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
