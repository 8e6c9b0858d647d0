// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"reflect"
	"testing"
)

func TestPaperViews(t *testing.T) {
	p := &Paper{
		PubmedID: "12345",
		Title:    "A Study",
		Authors: []Author{
			{Name: "Alice Prof"},
			{Name: "Jane Doe", IsNonAcademic: true, CompanyName: "Pfizer Inc", Email: "jane@pfizer.example", IsCorresponding: true},
			{Name: "Bob Worker", IsNonAcademic: true, CompanyName: "AstraZeneca"},
		},
	}

	nonAcademic := p.NonAcademicAuthors()
	if len(nonAcademic) != 2 {
		t.Fatalf("len(NonAcademicAuthors()) = %d, want 2", len(nonAcademic))
	}
	if nonAcademic[0].Name != "Jane Doe" || nonAcademic[1].Name != "Bob Worker" {
		t.Errorf("NonAcademicAuthors() out of source order: %v", nonAcademic)
	}

	want := []string{"AstraZeneca", "Pfizer Inc"}
	if got := p.CompanyAffiliations(); !reflect.DeepEqual(got, want) {
		t.Errorf("CompanyAffiliations() = %v, want %v", got, want)
	}

	if got := p.CorrespondingAuthorEmail(); got != "jane@pfizer.example" {
		t.Errorf("CorrespondingAuthorEmail() = %q, want %q", got, "jane@pfizer.example")
	}
}

func TestCompanyAffiliationsDeduplicated(t *testing.T) {
	p := &Paper{
		Authors: []Author{
			{Name: "A", IsNonAcademic: true, CompanyName: "Roche"},
			{Name: "B", IsNonAcademic: true, CompanyName: "Roche"},
			// Extraction can fail even for a non-academic author; the empty
			// name must not appear in the list.
			{Name: "C", IsNonAcademic: true},
		},
	}
	want := []string{"Roche"}
	if got := p.CompanyAffiliations(); !reflect.DeepEqual(got, want) {
		t.Errorf("CompanyAffiliations() = %v, want %v", got, want)
	}
}

func TestCorrespondingAuthorEmailFallback(t *testing.T) {
	// No corresponding author has an email: fall back to the first author
	// with any email.
	p := &Paper{
		Authors: []Author{
			{Name: "A", IsCorresponding: true},
			{Name: "B", Email: "b@uni.example"},
			{Name: "C", Email: "c@uni.example"},
		},
	}
	if got := p.CorrespondingAuthorEmail(); got != "b@uni.example" {
		t.Errorf("CorrespondingAuthorEmail() = %q, want %q", got, "b@uni.example")
	}

	empty := &Paper{Authors: []Author{{Name: "A"}}}
	if got := empty.CorrespondingAuthorEmail(); got != "" {
		t.Errorf("CorrespondingAuthorEmail() = %q, want empty", got)
	}
}
