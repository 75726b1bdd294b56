package dto

import "career-connect/internal/domain/roadmap"

type RoadmapResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Free bool   `json:"free"`
}

type RoadmapStep struct {
	Step                   int               `json:"step"`
	Title                  string            `json:"title"`
	Duration               string            `json:"duration"`
	FocusAreas             []string          `json:"focus_areas"`
	CompletionMetrics      []string          `json:"completion_metrics"`
	Resources              []RoadmapResource `json:"resources"`
	ExpectedCRSImprovement string            `json:"expected_crs_improvement"`
}

type RoadmapResponse struct {
	Steps         []RoadmapStep `json:"steps"`
	TotalTimeline string        `json:"total_timeline"`
	CurrentCRS    int           `json:"current_crs"`
}

func NewRoadmapResponse(plan roadmap.Plan) RoadmapResponse {
	steps := make([]RoadmapStep, 0, len(plan.Steps))
	for _, s := range plan.Steps {
		resources := make([]RoadmapResource, 0, len(s.Resources))
		for _, r := range s.Resources {
			resources = append(resources, RoadmapResource{Name: r.Name, URL: r.URL, Free: r.Free})
		}
		steps = append(steps, RoadmapStep{
			Step:                   s.Step,
			Title:                  s.Title,
			Duration:               s.Duration,
			FocusAreas:             s.FocusAreas,
			CompletionMetrics:      s.CompletionMetrics,
			Resources:              resources,
			ExpectedCRSImprovement: s.ExpectedCRSImprovement,
		})
	}
	return RoadmapResponse{
		Steps:         steps,
		TotalTimeline: plan.TotalTimeline,
		CurrentCRS:    plan.CurrentCRS,
	}
}
