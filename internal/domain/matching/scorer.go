package matching

import (
	"math"

	"career-connect/internal/domain/student"
)

const (
	// Compatibility scores are clamped away from both extremes: a floor of
	// 25 avoids demoralizing zero scores, a ceiling of 95 avoids implausible
	// perfect matches.
	MinScore = 25
	MaxScore = 95

	maxMatchedSkills = 4
	maxMissingSkills = 3
)

// Per-branch base score added before skill overlap is considered.
var branchBaseScores = map[student.Branch]int{
	student.BranchComputerScience:       10,
	student.BranchElectricalEngineering: 15,
	student.BranchCivilEngineering:      10,
	student.BranchMechanicalEngineering: 15,
}

const defaultBaseScore = 20

type Result struct {
	Score         int
	MatchedSkills []string
	MissingSkills []string
}

// Calculate scores how well a student's skills cover a job's required
// skills. Deterministic given its inputs: iteration follows input list
// order and each student skill counts at most once (first match wins).
func Calculate(studentSkills []string, branch student.Branch, jobSkills []string) Result {
	base, ok := branchBaseScores[branch]
	if !ok {
		base = defaultBaseScore
	}

	matchCount := 0
	for _, ss := range studentSkills {
		for _, js := range jobSkills {
			if Matches(ss, js) {
				matchCount++
				break
			}
		}
	}

	raw := float64(base)
	if len(jobSkills) > 0 {
		ratio := float64(matchCount) / float64(len(jobSkills))
		raw += ratio * 50
	}

	score := int(math.Round(raw))
	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}

	return Result{
		Score:         score,
		MatchedSkills: matchedSkills(studentSkills, jobSkills),
		MissingSkills: missingSkills(studentSkills, jobSkills),
	}
}

// matchedSkills records, for each student skill with a match, the job-side
// skill text it first matched, title-cased and deduplicated. When nothing
// matches but the job lists skills, the first three job skills are returned
// so the caller never renders an empty list against a non-empty job.
func matchedSkills(studentSkills, jobSkills []string) []string {
	matched := make([]string, 0, maxMatchedSkills)
	seen := make(map[string]struct{}, maxMatchedSkills)

	for _, ss := range studentSkills {
		for _, js := range jobSkills {
			if !Matches(ss, js) {
				continue
			}
			title := TitleCase(Normalize(js))
			if _, dup := seen[title]; !dup {
				seen[title] = struct{}{}
				matched = append(matched, title)
			}
			break
		}
	}

	if len(matched) == 0 && len(jobSkills) > 0 {
		for _, js := range jobSkills {
			matched = append(matched, TitleCase(Normalize(js)))
			if len(matched) == 3 {
				break
			}
		}
	}

	if len(matched) > maxMatchedSkills {
		matched = matched[:maxMatchedSkills]
	}
	return matched
}

func missingSkills(studentSkills, jobSkills []string) []string {
	missing := make([]string, 0, maxMissingSkills)
	for _, js := range jobSkills {
		found := false
		for _, ss := range studentSkills {
			if Matches(ss, js) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, TitleCase(Normalize(js)))
			if len(missing) == maxMissingSkills {
				break
			}
		}
	}
	return missing
}
