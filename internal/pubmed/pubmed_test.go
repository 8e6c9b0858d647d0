// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

func testCfg() types.PubMedConfig {
	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		Tool:       "pharma-papers-test",
		MaxResults: 10,
	}
}

// --- Search ---

func TestSearch(t *testing.T) {
	var gotParams map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = map[string]string{
			"db":      r.URL.Query().Get("db"),
			"term":    r.URL.Query().Get("term"),
			"retmax":  r.URL.Query().Get("retmax"),
			"tool":    r.URL.Query().Get("tool"),
			"retmode": r.URL.Query().Get("retmode"),
		}
		fmt.Fprint(w, `{"esearchresult":{"count":"3","idlist":["40053389","40053387","40053353"]}}`)
	}))
	defer ts.Close()

	orig := esearchBase
	esearchBase = ts.URL
	defer func() { esearchBase = orig }()

	c := NewClient(testCfg())
	ids, err := c.Search(context.Background(), "cancer immunotherapy")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if len(ids) != 3 || ids[0] != "40053389" {
		t.Errorf("Search() = %v, want three PMIDs starting with 40053389", ids)
	}
	if gotParams["db"] != "pubmed" || gotParams["term"] != "cancer immunotherapy" {
		t.Errorf("query params = %v", gotParams)
	}
	if gotParams["retmax"] != "10" || gotParams["retmode"] != "json" {
		t.Errorf("query params = %v", gotParams)
	}
	if gotParams["tool"] != "pharma-papers-test" {
		t.Errorf("tool param = %q", gotParams["tool"])
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := NewClient(testCfg())
	if _, err := c.Search(context.Background(), ""); err == nil {
		t.Error("Search(\"\") should fail")
	}
}

func TestSearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	orig := esearchBase
	esearchBase = ts.URL
	defer func() { esearchBase = orig }()

	c := NewClient(testCfg())
	if _, err := c.Search(context.Background(), "anything"); err == nil {
		t.Error("Search() should surface HTTP 500 as an error")
	}
}

// --- Fetch ---

const efetchSample = `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">40053389</PMID>
      <Article>
        <Journal><JournalIssue><PubDate><Year>2024</Year><Month>Mar</Month><Day>5</Day></PubDate></JournalIssue></Journal>
        <ArticleTitle>A trial of something.</ArticleTitle>
        <Abstract>
          <AbstractText Label="BACKGROUND">Part one.</AbstractText>
          <AbstractText Label="RESULTS">Part two.</AbstractText>
        </Abstract>
        <AuthorList>
          <Author>
            <LastName>Doe</LastName>
            <ForeName>Jane</ForeName>
            <AffiliationInfo><Affiliation>Pfizer Inc., New York, NY. jane.doe@pfizer.example.</Affiliation></AffiliationInfo>
          </Author>
          <Author>
            <LastName>Smith</LastName>
            <ForeName>John</ForeName>
            <AffiliationInfo><Affiliation>University of Science.</Affiliation></AffiliationInfo>
            <AffiliationInfo><Affiliation>Department of Biology.</Affiliation></AffiliationInfo>
          </Author>
          <Author><CollectiveName>IMPACT Study Group</CollectiveName></Author>
          <Author><ForeName>Orphaned</ForeName></Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>40053390</PMID>
      <Article>
        <Journal><JournalIssue><PubDate><Year>2023</Year></PubDate></JournalIssue></Journal>
        <ArticleTitle>Another trial.</ArticleTitle>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "40053389,40053390" {
			t.Errorf("id param = %q", got)
		}
		if got := r.URL.Query().Get("retmode"); got != "xml" {
			t.Errorf("retmode param = %q", got)
		}
		fmt.Fprint(w, efetchSample)
	}))
	defer ts.Close()

	orig := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = orig }()

	c := NewClient(testCfg())
	recs, err := c.Fetch(context.Background(), []string{"40053389", "40053390"})
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}

	r := recs[0]
	if r.ID != "40053389" || r.Title != "A trial of something." {
		t.Errorf("record = %+v", r)
	}
	if r.PubDate != "2024-Mar-5" {
		t.Errorf("PubDate = %q, want 2024-Mar-5", r.PubDate)
	}
	if r.Abstract != "Part one. Part two." {
		t.Errorf("Abstract = %q", r.Abstract)
	}
	// The author with neither a last name nor a collective name is dropped.
	if len(r.Authors) != 3 {
		t.Fatalf("len(Authors) = %d, want 3", len(r.Authors))
	}
	if r.Authors[0].Name != "Jane Doe" {
		t.Errorf("Authors[0].Name = %q", r.Authors[0].Name)
	}
	if !strings.Contains(r.Authors[0].Affiliation, "jane.doe@pfizer.example") {
		t.Errorf("raw affiliation should keep the embedded email, got %q", r.Authors[0].Affiliation)
	}
	if r.Authors[1].Affiliation != "University of Science.; Department of Biology." {
		t.Errorf("Authors[1].Affiliation = %q", r.Authors[1].Affiliation)
	}
	if r.Authors[2].Name != "IMPACT Study Group" {
		t.Errorf("Authors[2].Name = %q", r.Authors[2].Name)
	}

	// Day and month default to 1 when absent.
	if recs[1].PubDate != "2023-1-1" {
		t.Errorf("recs[1].PubDate = %q, want 2023-1-1", recs[1].PubDate)
	}
	if len(recs[1].Authors) != 0 {
		t.Errorf("recs[1] should have no authors, got %v", recs[1].Authors)
	}
}

func TestFetchNoPMIDs(t *testing.T) {
	c := NewClient(testCfg())
	recs, err := c.Fetch(context.Background(), nil)
	if err != nil {
		t.Fatalf("Fetch(nil) error: %v", err)
	}
	if recs != nil {
		t.Errorf("Fetch(nil) = %v, want nil", recs)
	}
}

// --- Date parsing ---

func TestParseDate(t *testing.T) {
	tests := []struct {
		text   string
		want   time.Time
		wantOK bool
	}{
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"2024-3-5", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"2024-Mar-5", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true},
		{"2023-1-1", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"Winter 2024", defaultDate, false},
		{"", defaultDate, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseDate(tt.text)
			if ok != tt.wantOK || !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// --- Assembly ---

func TestAssemblePaper(t *testing.T) {
	rec := types.Record{
		ID:      "40053389",
		Title:   "A trial of something.",
		PubDate: "2024-Mar-5",
		Authors: []types.RecordAuthor{
			{Name: "Jane Doe", Affiliation: "Pfizer Inc., New York, NY. jane.doe@pfizer.example."},
			{Name: "John Smith", Affiliation: "University of Science, Department of Biology"},
		},
		Abstract: "Some abstract.",
	}

	var warnings bytes.Buffer
	paper, err := AssemblePaper(rec, &warnings)
	if err != nil {
		t.Fatalf("AssemblePaper() error: %v", err)
	}

	if !paper.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", paper.Date)
	}
	if len(paper.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(paper.Authors))
	}

	jane := paper.Authors[0]
	if !jane.IsNonAcademic || jane.CompanyName != "Pfizer Inc" {
		t.Errorf("Jane = %+v, want non-academic at Pfizer Inc", jane)
	}
	if jane.Email != "jane.doe@pfizer.example" || !jane.IsCorresponding {
		t.Errorf("Jane = %+v, want corresponding with extracted email", jane)
	}

	john := paper.Authors[1]
	if john.IsNonAcademic || john.CompanyName != "" {
		t.Errorf("John = %+v, want academic", john)
	}

	if got := paper.CorrespondingAuthorEmail(); got != "jane.doe@pfizer.example" {
		t.Errorf("CorrespondingAuthorEmail() = %q", got)
	}
	if warnings.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warnings.String())
	}
}

func TestAssemblePaperBadDate(t *testing.T) {
	rec := types.Record{ID: "1", Title: "T", PubDate: "Winter 2024"}

	var warnings bytes.Buffer
	paper, err := AssemblePaper(rec, &warnings)
	if err != nil {
		t.Fatalf("AssemblePaper() error: %v", err)
	}
	if !paper.Date.Equal(defaultDate) {
		t.Errorf("Date = %v, want sentinel %v", paper.Date, defaultDate)
	}
	if !strings.Contains(warnings.String(), "could not parse date") {
		t.Errorf("expected a date warning, got %q", warnings.String())
	}
}

func TestAssemblePapersPartialFailure(t *testing.T) {
	recs := []types.Record{
		{ID: "1", Title: "Good", PubDate: "2024-01-02"},
		{ID: "", Title: "No PMID"},
		{ID: "3", Title: ""},
		{ID: "4", Title: "Also good"},
	}

	var warnings bytes.Buffer
	papers := AssemblePapers(recs, &warnings)

	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}
	if papers[0].PubmedID != "1" || papers[1].PubmedID != "4" {
		t.Errorf("papers = %v", papers)
	}
	if got := strings.Count(warnings.String(), "dropping record"); got != 2 {
		t.Errorf("warning count = %d, want 2: %s", got, warnings.String())
	}
}
