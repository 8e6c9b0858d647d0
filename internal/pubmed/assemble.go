// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/pharma-papers/internal/affiliation"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// defaultDate is the sentinel for records whose publication date is missing
// or unparseable.
var defaultDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order. "2006-1-2" accepts both zero-padded and
// bare numeric month/day; "2006-Jan-2" accepts PubMed's abbreviated months.
var dateLayouts = []string{"2006-1-2", "2006-Jan-2"}

// parseDate turns a record's pubdate text into a time. Unparseable text
// falls back to the 1900-01-01 sentinel rather than failing the record.
func parseDate(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return defaultDate, false
}

// AssemblePaper builds a classified Paper from a raw record. It fails only
// when the record is missing its PMID or title; everything else degrades:
// a bad date becomes the sentinel with a warning, and authors are classified
// independently of each other.
func AssemblePaper(rec types.Record, w io.Writer) (types.Paper, error) {
	if rec.ID == "" || rec.Title == "" {
		return types.Paper{}, fmt.Errorf("record missing PMID or title (pmid=%q)", rec.ID)
	}

	date := defaultDate
	if rec.PubDate != "" {
		var ok bool
		if date, ok = parseDate(rec.PubDate); !ok {
			fmt.Fprintf(w, "warning: could not parse date %q for PMID %s, using %s\n",
				rec.PubDate, rec.ID, defaultDate.Format("2006-01-02"))
		}
	}

	paper := types.Paper{
		PubmedID: rec.ID,
		Title:    rec.Title,
		Date:     date,
		Abstract: rec.Abstract,
	}

	for _, a := range rec.Authors {
		if a.Name == "" {
			fmt.Fprintf(w, "warning: skipping unnamed author on PMID %s\n", rec.ID)
			continue
		}
		paper.Authors = append(paper.Authors, affiliation.NewAuthor(a.Name, a.Affiliation, a.Email, a.IsCorresponding))
	}

	return paper, nil
}

// AssemblePapers builds papers from a batch of raw records. Malformed
// records are dropped with a warning; the batch never fails as a whole.
func AssemblePapers(recs []types.Record, w io.Writer) []types.Paper {
	papers := make([]types.Paper, 0, len(recs))
	for _, rec := range recs {
		paper, err := AssemblePaper(rec, w)
		if err != nil {
			fmt.Fprintf(w, "warning: dropping record: %v\n", err)
			continue
		}
		papers = append(papers, paper)
	}
	return papers
}
