package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	models "io.winapps.portfolio/internal/models/portfolio"
)

// Store reads and writes portfolio records. Reads of whole collections go
// through the cache; every write drops the collection's cache entry and
// notifies subscribers.
type Store struct {
	backend  Backend
	cache    Cache
	notifier Notifier
	cacheTTL time.Duration
	logger   *zap.SugaredLogger
}

// NewStore creates a store. cache and notifier may be nil.
func NewStore(backend Backend, cache Cache, notifier Notifier, cacheTTL time.Duration, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{
		backend:  backend,
		cache:    cache,
		notifier: notifier,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// SaveProject overwrites projects/<id> with p.
func (s *Store) SaveProject(ctx context.Context, id string, p models.Project) error {
	if id == "" {
		return ErrEmptyKey
	}
	p.ID = ""
	if err := s.backend.Set(ctx, CollectionProjects+"/"+id, p); err != nil {
		return fmt.Errorf("failed to save project %s: %w", id, err)
	}
	s.changed(ctx, CollectionProjects)
	return nil
}

func (s *Store) AddExperience(ctx context.Context, e models.Experience) (string, error) {
	e.ID = ""
	return s.push(ctx, CollectionExperience, e)
}

func (s *Store) AddEducation(ctx context.Context, e models.Education) (string, error) {
	e.ID = ""
	return s.push(ctx, CollectionEducation, e)
}

func (s *Store) AddHobby(ctx context.Context, h models.Hobby) (string, error) {
	h.ID = ""
	return s.push(ctx, CollectionHobbies, h)
}

func (s *Store) push(ctx context.Context, collection string, v interface{}) (string, error) {
	key, err := s.backend.Push(ctx, collection, v)
	if err != nil {
		return "", fmt.Errorf("failed to append to %s: %w", collection, err)
	}
	s.changed(ctx, collection)
	return key, nil
}

// GetProjectByID returns nil, nil when no project is stored under id.
func (s *Store) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	if id == "" {
		return nil, nil
	}
	var p *models.Project
	if err := s.backend.Get(ctx, CollectionProjects+"/"+id, &p); err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	if p != nil {
		p.ID = id
	}
	return p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	return list(ctx, s, CollectionProjects, true, func(p *models.Project, id string) { p.ID = id })
}

func (s *Store) ListExperience(ctx context.Context) ([]models.Experience, error) {
	return list(ctx, s, CollectionExperience, true, func(e *models.Experience, id string) { e.ID = id })
}

func (s *Store) ListEducation(ctx context.Context) ([]models.Education, error) {
	return list(ctx, s, CollectionEducation, true, func(e *models.Education, id string) { e.ID = id })
}

func (s *Store) ListHobbies(ctx context.Context) ([]models.Hobby, error) {
	return list(ctx, s, CollectionHobbies, true, func(h *models.Hobby, id string) { h.ID = id })
}

// Snapshot returns the current list for a named collection.
func (s *Store) Snapshot(ctx context.Context, collection string) (interface{}, error) {
	return s.snapshot(ctx, collection, true)
}

// Reload reads a collection straight from the backend and refreshes the
// cached copy.
func (s *Store) Reload(ctx context.Context, collection string) (interface{}, error) {
	return s.snapshot(ctx, collection, false)
}

func (s *Store) snapshot(ctx context.Context, collection string, cached bool) (interface{}, error) {
	switch collection {
	case CollectionProjects:
		return list(ctx, s, collection, cached, func(p *models.Project, id string) { p.ID = id })
	case CollectionExperience:
		return list(ctx, s, collection, cached, func(e *models.Experience, id string) { e.ID = id })
	case CollectionEducation:
		return list(ctx, s, collection, cached, func(e *models.Education, id string) { e.ID = id })
	case CollectionHobbies:
		return list(ctx, s, collection, cached, func(h *models.Hobby, id string) { h.ID = id })
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
}

// list maps the keyed snapshot of a collection into a slice ordered by key.
func list[T any](ctx context.Context, s *Store, collection string, cached bool, setID func(*T, string)) ([]T, error) {
	cacheKey := collectionCacheKey(collection)
	if cached && s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var items []T
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
		}
	}

	var raw json.RawMessage
	if err := s.backend.Get(ctx, collection, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}
	byKey, err := decodeChildren[T](raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}

	keys := sortedKeys(byKey)
	items := make([]T, 0, len(keys))
	for _, k := range keys {
		item := byKey[k]
		setID(&item, k)
		items = append(items, item)
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
				s.logger.Warnw("failed to cache collection", "collection", collection, "error", err)
			}
		}
	}
	return items, nil
}

// Invalidate drops the cached copy of a collection.
func (s *Store) Invalidate(ctx context.Context, collection string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, collectionCacheKey(collection)); err != nil {
		s.logger.Warnw("failed to invalidate cache", "collection", collection, "error", err)
	}
}

func (s *Store) changed(ctx context.Context, collection string) {
	s.Invalidate(ctx, collection)
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, collection); err != nil {
		s.logger.Warnw("failed to notify subscribers", "collection", collection, "error", err)
	}
}
