package testutil

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrMiss = errors.New("cache miss")

// MemoryCache ignores TTLs.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	return data, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *MemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// RecordingNotifier remembers which collections were reported as changed.
type RecordingNotifier struct {
	mu          sync.Mutex
	Collections []string
}

func (n *RecordingNotifier) Notify(ctx context.Context, collection string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Collections = append(n.Collections, collection)
	return nil
}

func (n *RecordingNotifier) Notified() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.Collections))
	copy(out, n.Collections)
	return out
}
