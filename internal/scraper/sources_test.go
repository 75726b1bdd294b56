package scraper

import (
	"strings"
	"testing"
	"time"

	"career-connect/internal/domain/opportunity"
	"career-connect/internal/domain/student"
)

func TestCompanyOpportunitiesCoversEveryBranch(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := CompanyOpportunities(now)

	want := 0
	for _, links := range companyLinks {
		want += len(links)
	}
	if len(items) != want {
		t.Fatalf("expected %d items, got %d", want, len(items))
	}

	seen := map[string]bool{}
	for _, it := range items {
		if it.Source != SourceCompanies {
			t.Fatalf("expected source %q, got %q", SourceCompanies, it.Source)
		}
		if !it.ScrapedAt.Equal(now) {
			t.Fatalf("expected scrape time %v, got %v", now, it.ScrapedAt)
		}
		if it.URL == "" || it.Company == "" || it.Title == "" {
			t.Fatalf("incomplete item: %+v", it)
		}
		seen[it.Category] = true
	}

	for _, b := range []student.Branch{
		student.BranchComputerScience,
		student.BranchElectricalEngineering,
		student.BranchCivilEngineering,
		student.BranchMechanicalEngineering,
	} {
		if !seen[string(b)] {
			t.Fatalf("no items for branch %q", b)
		}
	}
}

func TestGovernmentOpportunities(t *testing.T) {
	now := time.Now().UTC()
	items := GovernmentOpportunities(now)

	if len(items) != len(governmentLinks) {
		t.Fatalf("expected %d items, got %d", len(governmentLinks), len(items))
	}
	for _, it := range items {
		if it.Source != SourceGovernment {
			t.Fatalf("expected source %q, got %q", SourceGovernment, it.Source)
		}
		if it.Stipend != "Government Rates" {
			t.Fatalf("unexpected stipend %q", it.Stipend)
		}
	}
}

func TestPlatformOpportunitiesPerSkill(t *testing.T) {
	now := time.Now().UTC()
	items := PlatformOpportunities([]string{"Machine Learning", "", "  "}, now)

	// Five platforms per non-empty skill, blanks skipped.
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	var sawSlug bool
	for _, it := range items {
		if it.Title != "Machine Learning Internship Opportunities" {
			t.Fatalf("unexpected title %q", it.Title)
		}
		if it.Category != "machine learning" {
			t.Fatalf("unexpected category %q", it.Category)
		}
		if strings.Contains(it.URL, "machine-learning-internship") {
			sawSlug = true
		}
	}
	if !sawSlug {
		t.Fatal("expected at least one slugged listing URL")
	}
}

func TestDedupeByURLKeepsFirst(t *testing.T) {
	items := []opportunity.Opportunity{
		{Title: "first", URL: "https://example.com/a"},
		{Title: "dup", URL: "https://example.com/a"},
		{Title: "second", URL: "https://example.com/b"},
		{Title: "no-url"},
	}

	got := dedupeByURL(items)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Fatalf("unexpected order: %q, %q", got[0].Title, got[1].Title)
	}
}
