// Package readiness computes the Career Readiness Score (CRS): a 0-100
// integer composite of academic performance (30%), skill relevance (40%),
// project experience (20%) and learning activity (10%).
package readiness

import (
	"strings"

	"career-connect/internal/domain/student"
)

const (
	// UnknownActivityCount tells Calculate no activity data is available;
	// the component falls back to its default instead of scoring zero.
	UnknownActivityCount = -1

	defaultAcademicScore  = 50
	defaultSkillsScore    = 30
	defaultProjectsScore  = 20
	defaultActivitiesScore = 30
)

// Skills that count double toward the skills component.
var highDemandSkills = []string{
	"python", "java", "javascript", "react", "node", "sql", "aws", "docker", "git",
}

// Calculate is total: any missing component resolves to its documented
// default, and the result is always in [0,100].
func Calculate(p student.Profile, activityCount int) int {
	score := float64(AcademicScore(p.CGPA))*0.3 +
		float64(SkillsScore(p.Skills))*0.4 +
		float64(ProjectsScore(p.Projects))*0.2 +
		float64(ActivitiesScore(activityCount))*0.1

	total := int(score)
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return total
}

func AcademicScore(cgpa float64) int {
	switch {
	case cgpa <= 0:
		return defaultAcademicScore
	case cgpa >= 9.0:
		return 100
	case cgpa >= 8.0:
		return 85
	case cgpa >= 7.0:
		return 70
	case cgpa >= 6.0:
		return 60
	default:
		return 40
	}
}

// SkillsScore rewards quantity with a bonus for high-demand skills,
// normalized against a full high-demand portfolio.
func SkillsScore(skills []string) int {
	if len(skills) == 0 {
		return defaultSkillsScore
	}

	relevant := 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		demand := false
		for _, hs := range highDemandSkills {
			if strings.Contains(lower, hs) {
				demand = true
				break
			}
		}
		if demand {
			relevant += 2
		} else {
			relevant++
		}
	}

	maxPossible := len(highDemandSkills) * 2
	score := float64(relevant) / float64(maxPossible) * 100
	if score > 100 {
		score = 100
	}
	return int(score)
}

func ProjectsScore(projects []string) int {
	n := len(projects)
	switch {
	case n == 0:
		return defaultProjectsScore
	case n >= 5:
		return 100
	case n >= 3:
		return 75
	case n >= 2:
		return 50
	default:
		return 30
	}
}

func ActivitiesScore(count int) int {
	if count < 0 {
		return defaultActivitiesScore
	}
	score := count * 10
	if score > 100 {
		score = 100
	}
	return score
}
