package skillgap

import (
	"fmt"
	"log"
	"sort"

	"career-connect/internal/domain/matching"
	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/student"
)

type Priority string

const (
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

const maxGaps = 5

type Resource struct {
	Name     string
	Platform string
	Free     bool
	URL      string
}

type Gap struct {
	Skill         string
	Priority      Priority
	PriorityScore int
	LearningPath  []string
	Duration      string
	Resources     []Resource
	Projects      []string
	Reason        string
}

// Analyzer aggregates missing skills across a recommendation set and turns
// them into a prioritized, actionable gap list. Stateless.
type Analyzer struct {
	logger *log.Logger
}

func NewAnalyzer(logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze returns at most five gaps, highest priority first. Frequency
// counts cover both the required and the missing skill lists of every
// recommendation; each candidate is re-verified against the student's
// skills before it is reported, since recommendations may carry a stale
// profile snapshot. An empty recommendation set falls back to a canned
// two-item list so the caller always has something actionable.
func (a *Analyzer) Analyze(p student.Profile, recs []recommend.Recommendation) []Gap {
	if len(recs) == 0 {
		a.logger.Printf("SkillGap | recommendations=0, using fallback gaps")
		return fallbackGaps()
	}

	// Insertion-ordered frequency counter: map iteration order would make
	// equal-score ties nondeterministic.
	freq := make(map[string]int)
	order := make([]string, 0, 32)
	count := func(raw string) {
		skill := matching.Normalize(raw)
		if skill == "" {
			return
		}
		if _, seen := freq[skill]; !seen {
			order = append(order, skill)
		}
		freq[skill]++
	}

	for _, rec := range recs {
		for _, s := range rec.Job.RequiredSkills {
			count(s)
		}
		for _, s := range rec.MissingSkills {
			count(s)
		}
	}

	gaps := make([]Gap, 0, len(order))
	for _, skill := range order {
		if len(skill) <= 2 {
			continue
		}
		if studentHasSkill(p.Skills, skill) {
			continue
		}

		n := freq[skill]
		score := n * 25
		if score > 100 {
			score = 100
		}

		gaps = append(gaps, Gap{
			Skill:         matching.TitleCase(skill),
			Priority:      priorityFor(score),
			PriorityScore: score,
			LearningPath:  learningPathFor(skill),
			Duration:      durationFor(skill),
			Resources:     resourcesFor(skill),
			Projects:      projectIdeasFor(skill),
			Reason:        fmt.Sprintf("Essential for %d recommended career paths", n),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].PriorityScore > gaps[j].PriorityScore
	})

	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}

	a.logger.Printf("SkillGap | recommendations=%d gaps=%d", len(recs), len(gaps))
	return gaps
}

func priorityFor(score int) Priority {
	switch {
	case score > 80:
		return PriorityCritical
	case score > 60:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

func studentHasSkill(studentSkills []string, skill string) bool {
	for _, ss := range studentSkills {
		if matching.Matches(ss, skill) {
			return true
		}
	}
	return false
}
