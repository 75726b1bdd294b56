package seeder

import (
	"context"

	"career-connect/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
