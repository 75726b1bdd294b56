package dto

import "career-connect/internal/domain/skillgap"

type SkillGapResource struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Free     bool   `json:"free"`
	URL      string `json:"url"`
}

type SkillGapItem struct {
	Skill         string             `json:"skill"`
	Priority      string             `json:"priority"`
	PriorityScore int                `json:"priority_score"`
	LearningPath  []string           `json:"learning_path"`
	Duration      string             `json:"duration"`
	Resources     []SkillGapResource `json:"resources"`
	Projects      []string           `json:"projects"`
	Reason        string             `json:"reason"`
}

type SkillGapResponse struct {
	Gaps  []SkillGapItem `json:"gaps"`
	Total int            `json:"total"`
}

func NewSkillGapResponse(gaps []skillgap.Gap) SkillGapResponse {
	items := make([]SkillGapItem, 0, len(gaps))
	for _, g := range gaps {
		resources := make([]SkillGapResource, 0, len(g.Resources))
		for _, r := range g.Resources {
			resources = append(resources, SkillGapResource{
				Name:     r.Name,
				Platform: r.Platform,
				Free:     r.Free,
				URL:      r.URL,
			})
		}
		items = append(items, SkillGapItem{
			Skill:         g.Skill,
			Priority:      string(g.Priority),
			PriorityScore: g.PriorityScore,
			LearningPath:  g.LearningPath,
			Duration:      g.Duration,
			Resources:     resources,
			Projects:      g.Projects,
			Reason:        g.Reason,
		})
	}
	return SkillGapResponse{Gaps: items, Total: len(items)}
}
