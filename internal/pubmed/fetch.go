// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// efetch XML shapes. Only the fields the pipeline consumes are declared;
// the decoder skips the rest of the PubMed DTD.
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID     string         `xml:"MedlineCitation>PMID"`
	Title    string         `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate  pubDate        `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Authors  []pubmedAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
	Abstract []string       `xml:"MedlineCitation>Article>Abstract>AbstractText"`
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type pubmedAuthor struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}

// Fetch retrieves full records for the given PMIDs via efetch. The returned
// records are raw: dates unparsed, affiliations unclassified. An empty PMID
// list yields no records and no request.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]types.Record, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
		"rettype": {"abstract"},
	}

	resp, err := c.get(ctx, efetchBase, params)
	if err != nil {
		return nil, fmt.Errorf("fetching paper details: %w", err)
	}
	defer resp.Body.Close()

	var set articleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	records := make([]types.Record, 0, len(set.Articles))
	for _, art := range set.Articles {
		records = append(records, recordFromArticle(art))
	}
	return records, nil
}

// recordFromArticle maps one PubmedArticle element onto a raw record.
func recordFromArticle(art pubmedArticle) types.Record {
	rec := types.Record{
		ID:       strings.TrimSpace(art.PMID),
		Title:    strings.TrimSpace(art.Title),
		PubDate:  formatPubDate(art.PubDate),
		Abstract: joinAbstract(art.Abstract),
	}

	for _, a := range art.Authors {
		name := authorName(a)
		if name == "" {
			continue
		}
		rec.Authors = append(rec.Authors, types.RecordAuthor{
			Name:        name,
			Affiliation: joinAffiliations(a.Affiliations),
		})
	}
	return rec
}

// authorName renders "ForeName LastName", falling back to the bare last name
// or a collective (consortium) name. Authors with no usable name are dropped.
func authorName(a pubmedAuthor) string {
	last := strings.TrimSpace(a.LastName)
	fore := strings.TrimSpace(a.ForeName)
	switch {
	case last != "" && fore != "":
		return fore + " " + last
	case last != "":
		return last
	default:
		return strings.TrimSpace(a.CollectiveName)
	}
}

// formatPubDate renders the PubDate element as "Year-Month-Day" text. PubMed
// emits months both numeric ("3") and abbreviated ("Mar"); missing month or
// day default to "1". A record with no year gets empty text and the assembly
// stage's 1900-01-01 fallback.
func formatPubDate(d pubDate) string {
	year := strings.TrimSpace(d.Year)
	if year == "" {
		return ""
	}
	month := strings.TrimSpace(d.Month)
	if month == "" {
		month = "1"
	}
	day := strings.TrimSpace(d.Day)
	if day == "" {
		day = "1"
	}
	return year + "-" + month + "-" + day
}

func joinAbstract(parts []string) string {
	var trimmed []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return strings.Join(trimmed, " ")
}

func joinAffiliations(affiliations []string) string {
	var trimmed []string
	for _, a := range affiliations {
		if a = strings.TrimSpace(a); a != "" {
			trimmed = append(trimmed, a)
		}
	}
	return strings.Join(trimmed, "; ")
}
