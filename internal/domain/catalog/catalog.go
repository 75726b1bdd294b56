package catalog

import (
	"strings"

	"career-connect/internal/domain/student"
)

// Job is a static descriptor from the built-in catalog. Metadata fields
// (salary, location, growth) are descriptive only and never feed scoring.
type Job struct {
	ID              string
	Title           string
	Company         string
	Location        string
	Category        string
	RequiredSkills  []string
	ExperienceLevel string
	SalaryRange     string
	JobType         string
	Description     string
	GrowthPotential string
	BranchAffinity  student.Branch
}

// branchCategories maps each branch to the job categories it may see. The
// filter is strict: a job outside the allowed set is never returned for the
// branch, however well its skills would match.
var branchCategories = map[student.Branch][]string{
	student.BranchComputerScience: {
		"Web Development", "Software Engineering", "Data Science",
		"Artificial Intelligence", "DevOps", "Machine Learning",
		"Cloud Computing", "Cybersecurity", "Mobile Development",
	},
	student.BranchElectricalEngineering: {
		"Electrical Engineering", "VLSI", "Embedded Systems",
		"Power Engineering", "Control Systems", "IoT",
	},
	student.BranchCivilEngineering: {
		"Civil Engineering", "Structural Engineering", "Project Management",
		"Geotechnical Engineering", "Transportation Engineering", "Construction Management",
	},
	student.BranchMechanicalEngineering: {
		"Mechanical Engineering", "Automotive", "Manufacturing", "Robotics", "HVAC",
	},
}

var defaultCategories = []string{"Software Engineering"}

// Catalog is an immutable, in-memory job catalog loaded once at
// construction. Safe for concurrent reads.
type Catalog struct {
	jobs []Job
}

func New() *Catalog {
	return &Catalog{jobs: defaultJobs()}
}

// NewWithJobs builds a catalog over the given descriptors, mainly for tests.
func NewWithJobs(jobs []Job) *Catalog {
	return &Catalog{jobs: jobs}
}

func (c *Catalog) All() []Job {
	if c == nil {
		return nil
	}
	return c.jobs
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.jobs)
}

// FilterByBranch returns the jobs a branch may see, in catalog order. A job
// qualifies when its category is in the branch's allowed set or its branch
// affinity equals the requested branch. Unknown branches see the Computer
// Science set; an empty allowed set falls back to Software Engineering.
// Never fails: the worst case is an empty slice.
func (c *Catalog) FilterByBranch(branch student.Branch) []Job {
	if c == nil {
		return nil
	}

	allowed, ok := branchCategories[branch]
	if !ok {
		allowed = branchCategories[student.BranchComputerScience]
	}
	if len(allowed) == 0 {
		allowed = defaultCategories
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, cat := range allowed {
		allowedSet[cat] = struct{}{}
	}

	out := make([]Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		if _, ok := allowedSet[j.Category]; ok {
			out = append(out, j)
			continue
		}
		if strings.EqualFold(string(j.BranchAffinity), string(branch)) {
			out = append(out, j)
		}
	}
	return out
}
