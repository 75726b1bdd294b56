package opportunity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("opportunity not found")

// Opportunity is a scraped internship or entry-level opening. Rows are
// replaced wholesale per source on each scraper run; URL is the natural
// key within a source.
type Opportunity struct {
	ID        uuid.UUID
	Source    string
	Title     string
	Company   string
	Location  string
	Category  string
	URL       string
	Stipend   string
	PostedAt  *time.Time
	ScrapedAt time.Time
}

type ListFilter struct {
	Source   string
	Category string
	Limit    int
	Offset   int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Opportunity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Opportunity, error)
	ReplaceSource(ctx context.Context, source string, items []Opportunity) error
}
