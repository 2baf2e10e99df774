package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const submitGuardPrefix = "admin_submit:"

// releaseIfOwner deletes the guard only while it still holds our token.
var releaseIfOwner = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard allows a single in-flight admin submission per key across all
// server instances. Guards expire after ttl in case release never runs.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRedisGuard(client *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *RedisGuard {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RedisGuard{client: client, ttl: ttl, logger: logger}
}

// Acquire reports false when another submission holds key.
func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), bool, error) {
	redisKey := submitGuardPrefix + key
	token := uuid.New().String()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseIfOwner.Run(ctx, g.client, []string{redisKey}, token).Err(); err != nil {
			g.logger.Warnw("failed to release submit guard", "key", key, "error", err)
		}
	}
	return release, true, nil
}
