package dto

import (
	"career-connect/internal/domain/student"
	"career-connect/internal/usecase"

	"github.com/google/uuid"
)

type ProfileRequest struct {
	Branch    string  `json:"branch"`
	Skills    string  `json:"skills"`
	CGPA      float64 `json:"cgpa"`
	Projects  string  `json:"projects"`
	Interests string  `json:"interests"`
}

type ProfileResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Branch    string    `json:"branch"`
	Skills    []string  `json:"skills"`
	CGPA      float64   `json:"cgpa"`
	Projects  []string  `json:"projects"`
	Interests []string  `json:"interests"`
}

func NewProfileResponse(p student.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		Branch:    string(p.Branch),
		Skills:    p.Skills,
		CGPA:      p.CGPA,
		Projects:  p.Projects,
		Interests: p.Interests,
	}
}

type ReadinessResponse struct {
	Total      int `json:"total"`
	Academic   int `json:"academic"`
	Skills     int `json:"skills"`
	Projects   int `json:"projects"`
	Activities int `json:"activities"`
}

func NewReadinessResponse(b usecase.ReadinessBreakdown) ReadinessResponse {
	return ReadinessResponse{
		Total:      b.Total,
		Academic:   b.Academic,
		Skills:     b.Skills,
		Projects:   b.Projects,
		Activities: b.Activities,
	}
}
