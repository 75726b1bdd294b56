package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"career-connect/internal/domain/opportunity"

	"github.com/google/uuid"
)

type mockOpportunityRepo struct {
	items     []opportunity.Opportunity
	listErr   error
	listCalls int
	byID      map[uuid.UUID]opportunity.Opportunity
}

func (m *mockOpportunityRepo) List(ctx context.Context, f opportunity.ListFilter) ([]opportunity.Opportunity, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockOpportunityRepo) GetByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	it, ok := m.byID[id]
	if !ok {
		return opportunity.Opportunity{}, opportunity.ErrNotFound
	}
	return it, nil
}

func (m *mockOpportunityRepo) ReplaceSource(ctx context.Context, source string, items []opportunity.Opportunity) error {
	return nil
}

type mockListingCache struct {
	store    map[string][]byte
	getCalls int
	setCalls int
	setErr   error
}

func newMockListingCache() *mockListingCache {
	return &mockListingCache{store: make(map[string][]byte)}
}

func (m *mockListingCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	m.getCalls++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockListingCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func TestOpportunityListCacheMissThenHit(t *testing.T) {
	repo := &mockOpportunityRepo{items: []opportunity.Opportunity{
		{ID: uuid.New(), Source: "internshala", Title: "Web Development Intern"},
		{ID: uuid.New(), Source: "internshala", Title: "Python Intern"},
	}}
	cache := newMockListingCache()
	uc := NewOpportunityUsecase(repo, cache, time.Minute, nil)

	filter := opportunity.ListFilter{Source: "internshala", Limit: 50}

	first, err := uc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 items, got %d", len(first))
	}
	if repo.listCalls != 1 || cache.setCalls != 1 {
		t.Fatalf("expected one repo call and one cache set, got %d/%d", repo.listCalls, cache.setCalls)
	}

	second, err := uc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("expected 2 cached items, got %d", len(second))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cache hit to skip the repo, got %d calls", repo.listCalls)
	}
}

func TestOpportunityListWorksWithoutCache(t *testing.T) {
	repo := &mockOpportunityRepo{items: []opportunity.Opportunity{{Title: "Intern"}}}
	uc := NewOpportunityUsecase(repo, nil, time.Minute, nil)

	got, err := uc.List(context.Background(), opportunity.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
}

func TestOpportunityListCacheSetFailureIsNotFatal(t *testing.T) {
	repo := &mockOpportunityRepo{items: []opportunity.Opportunity{{Title: "Intern"}}}
	cache := newMockListingCache()
	cache.setErr = errors.New("redis down")
	uc := NewOpportunityUsecase(repo, cache, time.Minute, nil)

	got, err := uc.List(context.Background(), opportunity.ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
}

func TestOpportunityListRepoFailure(t *testing.T) {
	repo := &mockOpportunityRepo{listErr: errors.New("boom")}
	uc := NewOpportunityUsecase(repo, nil, time.Minute, nil)

	if _, err := uc.List(context.Background(), opportunity.ListFilter{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestOpportunityGetMapsNotFound(t *testing.T) {
	id := uuid.New()
	repo := &mockOpportunityRepo{byID: map[uuid.UUID]opportunity.Opportunity{
		id: {ID: id, Title: "Intern"},
	}}
	uc := NewOpportunityUsecase(repo, nil, time.Minute, nil)

	got, err := uc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Intern" {
		t.Fatalf("unexpected item %+v", got)
	}

	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}
