package usecase

import (
	"context"
	"errors"

	"career-connect/internal/domain/readiness"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

// ReadinessBreakdown carries the composite score plus its weighted
// components so the client can render the per-area bars.
type ReadinessBreakdown struct {
	Total      int
	Academic   int
	Skills     int
	Projects   int
	Activities int
}

type ReadinessUsecase interface {
	GetReadiness(ctx context.Context, userID uuid.UUID) (ReadinessBreakdown, error)
}

type Readiness struct {
	students student.Repository
}

func NewReadinessUsecase(students student.Repository) *Readiness {
	return &Readiness{students: students}
}

func (r *Readiness) GetReadiness(ctx context.Context, userID uuid.UUID) (ReadinessBreakdown, error) {
	prof, err := r.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			return ReadinessBreakdown{}, ErrProfileNotFound
		}
		return ReadinessBreakdown{}, ErrInternal
	}

	activities := readiness.UnknownActivityCount
	if n, err := r.students.CountActivities(ctx, userID); err == nil {
		activities = n
	}

	return ReadinessBreakdown{
		Total:      readiness.Calculate(prof, activities),
		Academic:   readiness.AcademicScore(prof.CGPA),
		Skills:     readiness.SkillsScore(prof.Skills),
		Projects:   readiness.ProjectsScore(prof.Projects),
		Activities: readiness.ActivitiesScore(activities),
	}, nil
}
