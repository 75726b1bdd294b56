package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-connect/internal/domain/opportunity"

	"github.com/google/uuid"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

// ListingCache is the slice of the Redis cache the listing path needs;
// a nil cache disables caching entirely.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type OpportunityUsecase interface {
	List(ctx context.Context, f opportunity.ListFilter) ([]opportunity.Opportunity, error)
	Get(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error)
}

type Opportunity struct {
	repo   opportunity.Repository
	cache  ListingCache
	ttl    time.Duration
	logger *log.Logger
}

func NewOpportunityUsecase(repo opportunity.Repository, cache ListingCache, ttl time.Duration, logger *log.Logger) *Opportunity {
	if logger == nil {
		logger = log.Default()
	}
	return &Opportunity{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

func (o *Opportunity) List(ctx context.Context, f opportunity.ListFilter) ([]opportunity.Opportunity, error) {
	key := listingCacheKey(f)

	if o.cache != nil {
		var cached []opportunity.Opportunity
		if hit, err := o.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := o.repo.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}

	if o.cache != nil {
		if err := o.cache.SetJSON(ctx, key, items, o.ttl); err != nil {
			o.logger.Printf("Opportunities | cache set failed key=%s err=%v", key, err)
		}
	}

	return items, nil
}

func (o *Opportunity) Get(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	item, err := o.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, opportunity.ErrNotFound) {
			return opportunity.Opportunity{}, ErrOpportunityNotFound
		}
		return opportunity.Opportunity{}, ErrInternal
	}
	return item, nil
}

func listingCacheKey(f opportunity.ListFilter) string {
	return fmt.Sprintf("opportunities:list:%s:%s:%d:%d", f.Source, f.Category, f.Limit, f.Offset)
}
