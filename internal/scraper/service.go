package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-connect/internal/domain/opportunity"
)

// ListingInvalidator drops cached listing pages after a refresh.
type ListingInvalidator interface {
	InvalidateListings(ctx context.Context) error
}

// Refresher rebuilds the opportunity catalog from every source. Each
// source is replaced atomically and independently; one source failing
// leaves the others' fresh rows in place.
type Refresher struct {
	repo     opportunity.Repository
	live     *InternshalaScraper
	cache    ListingInvalidator
	notify   func(source string, count int)
	logger   *log.Logger
	maxPages int
}

// Skills the platform search pages are prebuilt for; students searching
// beyond these land on the per-skill platform URLs built at request time.
var defaultPlatformSkills = []string{
	"python", "web development", "data science", "machine learning", "java", "sql",
}

func NewRefresher(
	repo opportunity.Repository,
	live *InternshalaScraper,
	cache ListingInvalidator,
	notify func(source string, count int),
	logger *log.Logger,
	maxPages int,
) *Refresher {
	if logger == nil {
		logger = log.Default()
	}
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Refresher{
		repo:     repo,
		live:     live,
		cache:    cache,
		notify:   notify,
		logger:   logger,
		maxPages: maxPages,
	}
}

func (r *Refresher) Refresh(ctx context.Context) error {
	now := time.Now().UTC()

	pool := NewWorkerPool(3, 8)
	pool.SetRateLimit(2)
	results := pool.Run(ctx)

	pool.Submit(func(ctx context.Context) error {
		return r.replace(ctx, SourceCompanies, CompanyOpportunities(now))
	})
	pool.Submit(func(ctx context.Context) error {
		return r.replace(ctx, SourceGovernment, GovernmentOpportunities(now))
	})
	pool.Submit(func(ctx context.Context) error {
		return r.replace(ctx, SourcePlatforms, PlatformOpportunities(defaultPlatformSkills, now))
	})
	if r.live != nil {
		pool.Submit(func(ctx context.Context) error {
			return r.refreshLive(ctx)
		})
	}

	pool.Close()

	var firstErr error
	for res := range results {
		if res.Err != nil {
			r.logger.Printf("Scrape | source refresh failed err=%v", res.Err)
			if firstErr == nil {
				firstErr = res.Err
			}
		}
	}

	if r.cache != nil {
		if err := r.cache.InvalidateListings(ctx); err != nil {
			r.logger.Printf("Scrape | listing cache invalidation failed err=%v", err)
		}
	}

	return firstErr
}

func (r *Refresher) refreshLive(ctx context.Context) error {
	all := make([]opportunity.Opportunity, 0, 64)
	for _, category := range internshalaCategories {
		if err := ctx.Err(); err != nil {
			return err
		}
		items, err := r.live.ScrapeCategory(category, r.maxPages)
		if err != nil {
			r.logger.Printf("Scrape | internshala category=%s err=%v", category, err)
			continue
		}
		all = append(all, items...)
	}
	if len(all) == 0 {
		return fmt.Errorf("internshala: no items scraped")
	}
	return r.replace(ctx, SourceInternshala, dedupeByURL(all))
}

func (r *Refresher) replace(ctx context.Context, source string, items []opportunity.Opportunity) error {
	if err := r.repo.ReplaceSource(ctx, source, items); err != nil {
		return fmt.Errorf("replace %s: %w", source, err)
	}
	r.logger.Printf("Scrape | source=%s stored=%d", source, len(items))
	if r.notify != nil {
		r.notify(source, len(items))
	}
	return nil
}
