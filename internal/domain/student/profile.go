package student

import (
	"strings"

	"github.com/google/uuid"
)

type Branch string

const (
	BranchComputerScience       Branch = "Computer Science"
	BranchElectricalEngineering Branch = "Electrical Engineering"
	BranchCivilEngineering      Branch = "Civil Engineering"
	BranchMechanicalEngineering Branch = "Mechanical Engineering"
)

// DefaultCGPA replaces absent or out-of-range CGPA values at construction
// time, so downstream scoring never sees an invalid grade.
const DefaultCGPA = 6.0

// Profile is the recommendation core's read-only view of a student. Skills
// are stored as trimmed, lower-cased tokens; projects and interests keep
// their original casing. The core never mutates a profile.
type Profile struct {
	UserID    uuid.UUID
	Branch    Branch
	Skills    []string
	CGPA      float64
	Projects  []string
	Interests []string
}

// NewProfile builds a Profile from the comma-separated free text the web
// layer stores. Missing or malformed fields resolve to documented defaults
// here rather than at every access site.
func NewProfile(userID uuid.UUID, branch string, skills string, cgpa float64, projects string, interests string) Profile {
	if cgpa <= 0 || cgpa > 10 {
		cgpa = DefaultCGPA
	}

	return Profile{
		UserID:    userID,
		Branch:    Branch(strings.TrimSpace(branch)),
		Skills:    SplitSkills(skills),
		CGPA:      cgpa,
		Projects:  splitList(projects),
		Interests: splitList(interests),
	}
}

// SplitSkills tokenizes a comma-separated skill string into trimmed,
// lower-cased tokens. Tokens are not deduplicated; the source data is free
// text and order is preserved for deterministic matching.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
