package content

import (
	"context"
	"time"
)

const (
	CollectionProjects   = "projects"
	CollectionExperience = "experience"
	CollectionEducation  = "education"
	CollectionHobbies    = "hobbies"
)

// Collections lists every top-level location the site reads and writes.
var Collections = []string{
	CollectionProjects,
	CollectionExperience,
	CollectionEducation,
	CollectionHobbies,
}

// Backend is the subset of the realtime database the site needs. Set
// overwrites the whole value at path, Push appends under a generated key,
// and Get decodes the value at path into v (leaving v untouched when the
// location is empty).
type Backend interface {
	Set(ctx context.Context, path string, v interface{}) error
	Push(ctx context.Context, path string, v interface{}) (string, error)
	Get(ctx context.Context, path string, v interface{}) error
}

// Cache holds serialized collection snapshots. Any error from Get is a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Notifier is told whenever a collection changes.
type Notifier interface {
	Notify(ctx context.Context, collection string) error
}

func collectionCacheKey(collection string) string {
	return "collection:" + collection
}

// IsCollection reports whether name is one of the known collections.
func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
