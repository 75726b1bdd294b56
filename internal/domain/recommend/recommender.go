package recommend

import (
	"fmt"
	"log"
	"sort"

	"career-connect/internal/domain/catalog"
	"career-connect/internal/domain/matching"
	"career-connect/internal/domain/student"
)

const (
	DefaultTopN = 20
	MaxTopN     = 50
)

// Recommendation is ephemeral: recomputed on every call, never cached or
// persisted. The score is always inside [25,95].
type Recommendation struct {
	Job                catalog.Job
	CompatibilityScore int
	MatchedSkills      []string
	MissingSkills      []string
	MatchType          string
}

// Recommender ranks catalog jobs for a student. Stateless between calls and
// safe for concurrent use; dependencies are injected at construction.
type Recommender struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

func NewRecommender(c *catalog.Catalog, logger *log.Logger) *Recommender {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommender{catalog: c, logger: logger}
}

// Recommend returns the student's top-N jobs, highest compatibility first.
// Ties keep catalog order (stable sort) so equal-score output is
// deterministic. An empty candidate set yields an empty slice, never an
// error.
func (r *Recommender) Recommend(p student.Profile, topN int) []Recommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}

	candidates := r.catalog.FilterByBranch(p.Branch)
	if len(candidates) == 0 {
		r.logger.Printf("Recommend | branch=%q candidates=0", p.Branch)
		return []Recommendation{}
	}

	out := make([]Recommendation, 0, len(candidates))
	for _, job := range candidates {
		res := matching.Calculate(p.Skills, p.Branch, jobSkillTokens(job))
		out = append(out, Recommendation{
			Job:                job,
			CompatibilityScore: res.Score,
			MatchedSkills:      res.MatchedSkills,
			MissingSkills:      res.MissingSkills,
			MatchType:          fmt.Sprintf("%s Specialist", p.Branch),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompatibilityScore > out[j].CompatibilityScore
	})

	if len(out) > topN {
		out = out[:topN]
	}

	r.logger.Printf("Recommend | branch=%q candidates=%d returned=%d", p.Branch, len(candidates), len(out))
	return out
}

func jobSkillTokens(job catalog.Job) []string {
	out := make([]string, 0, len(job.RequiredSkills))
	for _, s := range job.RequiredSkills {
		if n := matching.Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
