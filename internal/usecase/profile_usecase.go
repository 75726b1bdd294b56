package usecase

import (
	"context"
	"errors"
	"strings"

	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type ProfileInput struct {
	Branch    string
	Skills    string
	CGPA      float64
	Projects  string
	Interests string
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (student.Profile, error)
	Save(ctx context.Context, userID uuid.UUID, in ProfileInput) (student.Profile, error)
	LogActivity(ctx context.Context, userID uuid.UUID, activity string) error
}

type Profile struct {
	students student.Repository
}

func NewProfileUsecase(students student.Repository) *Profile {
	return &Profile{students: students}
}

func (p *Profile) Get(ctx context.Context, userID uuid.UUID) (student.Profile, error) {
	prof, err := p.students.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, student.ErrProfileNotFound) {
			return student.Profile{}, ErrProfileNotFound
		}
		return student.Profile{}, ErrInternal
	}
	return prof, nil
}

func (p *Profile) Save(ctx context.Context, userID uuid.UUID, in ProfileInput) (student.Profile, error) {
	if strings.TrimSpace(in.Branch) == "" {
		return student.Profile{}, ErrInvalidProfile
	}

	prof := student.NewProfile(userID, in.Branch, in.Skills, in.CGPA, in.Projects, in.Interests)
	if err := p.students.Save(ctx, prof); err != nil {
		return student.Profile{}, ErrInternal
	}
	return prof, nil
}

func (p *Profile) LogActivity(ctx context.Context, userID uuid.UUID, activity string) error {
	if strings.TrimSpace(activity) == "" {
		return ErrInvalidProfile
	}
	if err := p.students.LogActivity(ctx, userID, activity); err != nil {
		return ErrInternal
	}
	return nil
}
