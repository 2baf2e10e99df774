package realtime

import (
	"context"
	"sync"
	"time"
)

// Change tells subscribers that a collection has new data.
type Change struct {
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
}

// Hub fans change notifications out to in-process subscribers. A subscriber
// that is not keeping up misses notifications instead of blocking writers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan Change]struct{}
	buffer int
}

func NewHub() *Hub {
	return &Hub{
		subs:   make(map[string]map[chan Change]struct{}),
		buffer: 8,
	}
}

// Subscribe registers interest in a collection. The returned cancel func
// unregisters and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(collection string) (<-chan Change, func()) {
	ch := make(chan Change, h.buffer)

	h.mu.Lock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[chan Change]struct{})
	}
	h.subs[collection][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[collection], ch)
			if len(h.subs[collection]) == 0 {
				delete(h.subs, collection)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Notify delivers a change to every current subscriber of collection.
func (h *Hub) Notify(ctx context.Context, collection string) error {
	change := Change{Collection: collection, At: time.Now().UTC()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[collection] {
		select {
		case ch <- change:
		default:
		}
	}
	return nil
}

// Subscribers returns the number of live subscriptions for collection.
func (h *Hub) Subscribers(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[collection])
}
