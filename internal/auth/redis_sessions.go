package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessions keeps one key per open admin session.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func sessionKey(id string) string {
	return "admin_session:" + id
}

func (s *RedisSessions) Create(ctx context.Context, id string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(id), time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

func (s *RedisSessions) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessions) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
