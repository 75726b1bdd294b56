package dto

import (
	"time"

	"career-connect/internal/domain/opportunity"

	"github.com/google/uuid"
)

type OpportunityItem struct {
	ID        uuid.UUID  `json:"id"`
	Source    string     `json:"source"`
	Title     string     `json:"title"`
	Company   string     `json:"company"`
	Location  string     `json:"location"`
	Category  string     `json:"category"`
	URL       string     `json:"url"`
	Stipend   string     `json:"stipend"`
	PostedAt  *time.Time `json:"posted_at"`
	ScrapedAt time.Time  `json:"scraped_at"`
}

type OpportunityListResponse struct {
	Opportunities []OpportunityItem `json:"opportunities"`
	Total         int               `json:"total"`
}

func NewOpportunityItem(o opportunity.Opportunity) OpportunityItem {
	return OpportunityItem{
		ID:        o.ID,
		Source:    o.Source,
		Title:     o.Title,
		Company:   o.Company,
		Location:  o.Location,
		Category:  o.Category,
		URL:       o.URL,
		Stipend:   o.Stipend,
		PostedAt:  o.PostedAt,
		ScrapedAt: o.ScrapedAt,
	}
}

func NewOpportunityListResponse(items []opportunity.Opportunity) OpportunityListResponse {
	out := make([]OpportunityItem, 0, len(items))
	for _, o := range items {
		out = append(out, NewOpportunityItem(o))
	}
	return OpportunityListResponse{Opportunities: out, Total: len(out)}
}
