package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// OpportunitiesUpdatedEvent is pushed to every connected client after a
// scraper run replaces a source's listings.
type OpportunitiesUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyOpportunitiesUpdated(source string, count int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		return
	}

	evt := OpportunitiesUpdatedEvent{
		Type:      "opportunities_updated",
		Source:    source,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
