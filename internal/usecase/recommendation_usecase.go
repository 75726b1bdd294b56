package usecase

import (
	"context"
	"errors"

	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, topN int) ([]recommend.Recommendation, error)
}

type Recommendation struct {
	students    student.Repository
	recommender *recommend.Recommender
}

func NewRecommendationUsecase(students student.Repository, recommender *recommend.Recommender) *Recommendation {
	return &Recommendation{students: students, recommender: recommender}
}

func (r *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, topN int) ([]recommend.Recommendation, error) {
	prof, err := r.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	return r.recommender.Recommend(prof, topN), nil
}
