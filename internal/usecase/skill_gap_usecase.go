package usecase

import (
	"context"
	"errors"

	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/skillgap"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

type SkillGapUsecase interface {
	AnalyzeGaps(ctx context.Context, userID uuid.UUID) ([]skillgap.Gap, error)
}

// SkillGap recomputes recommendations on every call; gaps are derived from
// the same ranking the student just saw, never a cached one.
type SkillGap struct {
	students    student.Repository
	recommender *recommend.Recommender
	analyzer    *skillgap.Analyzer
}

func NewSkillGapUsecase(students student.Repository, recommender *recommend.Recommender, analyzer *skillgap.Analyzer) *SkillGap {
	return &SkillGap{students: students, recommender: recommender, analyzer: analyzer}
}

func (s *SkillGap) AnalyzeGaps(ctx context.Context, userID uuid.UUID) ([]skillgap.Gap, error) {
	prof, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	recs := s.recommender.Recommend(prof, 0)
	return s.analyzer.Analyze(prof, recs), nil
}
