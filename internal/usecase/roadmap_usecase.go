package usecase

import (
	"context"
	"errors"

	"career-connect/internal/domain/readiness"
	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/roadmap"
	"career-connect/internal/domain/skillgap"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

type RoadmapUsecase interface {
	GetRoadmap(ctx context.Context, userID uuid.UUID) (roadmap.Plan, error)
}

// Roadmap chains the whole analysis: profile -> recommendations -> gaps ->
// readiness -> plan. Everything downstream of the profile load is pure, so
// a successful load always yields a plan.
type Roadmap struct {
	students    student.Repository
	recommender *recommend.Recommender
	analyzer    *skillgap.Analyzer
	generator   *roadmap.Generator
}

func NewRoadmapUsecase(
	students student.Repository,
	recommender *recommend.Recommender,
	analyzer *skillgap.Analyzer,
	generator *roadmap.Generator,
) *Roadmap {
	return &Roadmap{
		students:    students,
		recommender: recommender,
		analyzer:    analyzer,
		generator:   generator,
	}
}

func (r *Roadmap) GetRoadmap(ctx context.Context, userID uuid.UUID) (roadmap.Plan, error) {
	prof, err := r.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			return roadmap.Plan{}, ErrProfileNotFound
		}
		return roadmap.Plan{}, ErrInternal
	}

	activities := readiness.UnknownActivityCount
	if n, err := r.students.CountActivities(ctx, userID); err == nil {
		activities = n
	}

	recs := r.recommender.Recommend(prof, 0)
	gaps := r.analyzer.Analyze(prof, recs)
	crs := readiness.Calculate(prof, activities)

	return r.generator.Generate(prof, crs, gaps), nil
}
