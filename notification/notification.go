// Package notification turns product change events into availability
// alerts. Browsers hold an SSE connection to the hub; the watcher
// bridges the redis change channel into hub broadcasts and keeps the
// store collection cache fresh.
package notification

import (
	"context"
	"log"
	"sync"

	"github.com/choco-radar/site/redis"
	"github.com/choco-radar/site/store"
)

// Event is delivered to connected browsers when a store they watch
// becomes available again.
type Event struct {
	StoreID    int    `json:"store_id"`
	StoreName  string `json:"store_name"`
	Status     string `json:"status"`
	StockCount int    `json:"stock_count"`
}

// Hub fans availability events out to connected SSE clients.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Subscribe registers a client. The returned cancel func must be
// called when the client disconnects.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers an event to every subscriber. Slow clients get
// dropped events rather than blocking the watcher.
func (h *Hub) Broadcast(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- e:
		default:
		}
	}
}

// SubscriberCount reports the number of connected clients.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Watcher consumes redis product change events. Every event
// invalidates the store collection cache; transitions into the
// available status additionally become hub broadcasts.
type Watcher struct {
	hub *Hub

	mu         sync.Mutex
	lastStatus map[int]string
}

func NewWatcher(hub *Hub) *Watcher {
	return &Watcher{hub: hub, lastStatus: make(map[int]string)}
}

// Start subscribes to the change channel. It returns once the
// subscription is established; event handling continues in the
// background until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	return redis.SubscribeProductChanges(ctx, w.handle)
}

func (w *Watcher) handle(change redis.ProductChange) {
	store.InvalidateCollection()

	w.mu.Lock()
	prev := w.lastStatus[change.StoreID]
	w.lastStatus[change.StoreID] = change.Status
	w.mu.Unlock()

	// Only a transition into availability is news; repeated count
	// updates while already available are not.
	if change.Status != store.StatusAvailable || prev == store.StatusAvailable {
		return
	}

	name := ""
	if s, err := store.GetStore(change.StoreID); err == nil {
		name = s.Name
	} else {
		log.Printf("[notification] store %d lookup failed: %v", change.StoreID, err)
	}

	w.hub.Broadcast(Event{
		StoreID:    change.StoreID,
		StoreName:  name,
		Status:     change.Status,
		StockCount: change.StockCount,
	})
}
