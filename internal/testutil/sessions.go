package testutil

import (
	"context"
	"sync"
	"time"
)

// MemorySessions ignores TTLs.
type MemorySessions struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{ids: make(map[string]struct{})}
}

func (s *MemorySessions) Create(ctx context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
	return nil
}

func (s *MemorySessions) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok, nil
}

func (s *MemorySessions) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
	return nil
}

func (s *MemorySessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// MemoryGuard is an in-process submit guard. Held keys can be preloaded to
// simulate a submission already in flight.
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]bool)}
}

func (g *MemoryGuard) Acquire(ctx context.Context, key string) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[key] {
		return nil, false, nil
	}
	g.held[key] = true
	release := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.held, key)
	}
	return release, true, nil
}

func (g *MemoryGuard) Hold(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.held[key] = true
}

func (g *MemoryGuard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held[key]
}
