package catalog

import (
	"testing"

	"career-connect/internal/domain/student"
)

func TestFilterByBranch_StrictContainment(t *testing.T) {
	c := New()

	branches := []student.Branch{
		student.BranchComputerScience,
		student.BranchElectricalEngineering,
		student.BranchCivilEngineering,
		student.BranchMechanicalEngineering,
	}

	for _, b := range branches {
		jobs := c.FilterByBranch(b)
		if len(jobs) == 0 {
			t.Fatalf("branch %q: expected jobs, got none", b)
		}

		allowed := make(map[string]struct{})
		for _, cat := range branchCategories[b] {
			allowed[cat] = struct{}{}
		}
		for _, j := range jobs {
			if _, ok := allowed[j.Category]; ok {
				continue
			}
			if j.BranchAffinity != b {
				t.Fatalf("branch %q: job %q (category %q, affinity %q) leaked through filter",
					b, j.ID, j.Category, j.BranchAffinity)
			}
		}
	}
}

func TestFilterByBranch_NoCrossBranchLeak(t *testing.T) {
	c := New()

	for _, j := range c.FilterByBranch(student.BranchCivilEngineering) {
		if j.BranchAffinity != student.BranchCivilEngineering {
			t.Fatalf("civil filter returned %q with affinity %q", j.ID, j.BranchAffinity)
		}
	}
}

func TestFilterByBranch_UnknownBranchFallsBackToCS(t *testing.T) {
	c := New()

	unknown := c.FilterByBranch(student.Branch("Aerospace Engineering"))
	if len(unknown) == 0 {
		t.Fatalf("unknown branch must fall back, got no jobs")
	}

	csCategories := make(map[string]struct{})
	for _, cat := range branchCategories[student.BranchComputerScience] {
		csCategories[cat] = struct{}{}
	}
	for _, j := range unknown {
		if _, ok := csCategories[j.Category]; !ok {
			t.Fatalf("unknown-branch fallback returned non-CS category %q", j.Category)
		}
	}
}

func TestFilterByBranch_PreservesCatalogOrder(t *testing.T) {
	c := New()

	jobs := c.FilterByBranch(student.BranchComputerScience)
	pos := make(map[string]int, c.Len())
	for i, j := range c.All() {
		pos[j.ID] = i
	}
	last := -1
	for _, j := range jobs {
		if pos[j.ID] < last {
			t.Fatalf("filter reordered catalog: job %q out of order", j.ID)
		}
		last = pos[j.ID]
	}
}

func TestFilterByBranch_AffinityRescuesUnlistedCategory(t *testing.T) {
	// database_admin_1 has category "Database", which is not in the CS
	// allowed set; its branch affinity must still surface it.
	c := New()

	found := false
	for _, j := range c.FilterByBranch(student.BranchComputerScience) {
		if j.ID == "database_admin_1" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected affinity to include database_admin_1 for CS")
	}
}
