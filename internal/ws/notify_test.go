package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNotifyOpportunitiesUpdatedReachesClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)

	SetDefaultHub(hub)
	defer SetDefaultHub(nil)

	NotifyOpportunitiesUpdated("  Internshala ", 42)

	select {
	case msg := <-client.send:
		var evt OpportunitiesUpdatedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("invalid event payload: %v", err)
		}
		if evt.Type != "opportunities_updated" {
			t.Fatalf("unexpected event type %q", evt.Type)
		}
		if evt.Source != "internshala" {
			t.Fatalf("expected normalized source, got %q", evt.Source)
		}
		if evt.Count != 42 {
			t.Fatalf("expected count 42, got %d", evt.Count)
		}
		if evt.Timestamp == "" {
			t.Fatal("expected a timestamp")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}
}

func TestNotifyOpportunitiesUpdatedWithoutHub(t *testing.T) {
	SetDefaultHub(nil)

	// Must not panic or block.
	NotifyOpportunitiesUpdated("internshala", 1)
}

func TestNotifyOpportunitiesUpdatedEmptySource(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)

	SetDefaultHub(hub)
	defer SetDefaultHub(nil)

	NotifyOpportunitiesUpdated("   ", 7)

	select {
	case msg := <-client.send:
		t.Fatalf("expected no event, got %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
