package firebase

import (
	"context"

	"firebase.google.com/go/v4/db"
)

// RealtimeDB adapts the Realtime Database client to the content backend.
type RealtimeDB struct {
	client *db.Client
}

func NewRealtimeDB(client *db.Client) *RealtimeDB {
	return &RealtimeDB{client: client}
}

func (r *RealtimeDB) Set(ctx context.Context, path string, v interface{}) error {
	return r.client.NewRef(path).Set(ctx, v)
}

// Push appends v under a generated, chronologically ordered key.
func (r *RealtimeDB) Push(ctx context.Context, path string, v interface{}) (string, error) {
	ref, err := r.client.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (r *RealtimeDB) Get(ctx context.Context, path string, v interface{}) error {
	return r.client.NewRef(path).Get(ctx, v)
}
