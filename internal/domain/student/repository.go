package student

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("student profile not found")

// Repository persists profiles and the learning-activity log that feeds
// the readiness score's activity component.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Save(ctx context.Context, p Profile) error

	LogActivity(ctx context.Context, userID uuid.UUID, activity string) error
	CountActivities(ctx context.Context, userID uuid.UUID) (int, error)
}
