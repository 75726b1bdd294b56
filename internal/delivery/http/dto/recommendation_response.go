package dto

import "career-connect/internal/domain/recommend"

type RecommendationItem struct {
	JobID              string   `json:"job_id"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	Category           string   `json:"category"`
	RequiredSkills     []string `json:"required_skills"`
	ExperienceLevel    string   `json:"experience_level"`
	SalaryRange        string   `json:"salary_range"`
	JobType            string   `json:"job_type"`
	Description        string   `json:"description"`
	GrowthPotential    string   `json:"growth_potential"`
	CompatibilityScore int      `json:"compatibility_score"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	MatchType          string   `json:"match_type"`
}

type RecommendationListResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	Total           int                  `json:"total"`
}

func NewRecommendationListResponse(recs []recommend.Recommendation) RecommendationListResponse {
	items := make([]RecommendationItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, RecommendationItem{
			JobID:              r.Job.ID,
			Title:              r.Job.Title,
			Company:            r.Job.Company,
			Location:           r.Job.Location,
			Category:           r.Job.Category,
			RequiredSkills:     r.Job.RequiredSkills,
			ExperienceLevel:    r.Job.ExperienceLevel,
			SalaryRange:        r.Job.SalaryRange,
			JobType:            r.Job.JobType,
			Description:        r.Job.Description,
			GrowthPotential:    r.Job.GrowthPotential,
			CompatibilityScore: r.CompatibilityScore,
			MatchedSkills:      r.MatchedSkills,
			MissingSkills:      r.MissingSkills,
			MatchType:          r.MatchType,
		})
	}
	return RecommendationListResponse{Recommendations: items, Total: len(items)}
}
