package db

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis, which backs the collection cache, admin
// sessions, submit guards and change fan-out between instances. REDIS_URL
// wins over the individual REDIS_* variables.
func InitRedis(ctx context.Context) (*redis.Client, error) {
	var opts *redis.Options
	if url := os.Getenv("REDIS_URL"); url != "" {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		host := getEnvOrDefault("REDIS_HOST", "localhost")
		port := getEnvOrDefault("REDIS_PORT", "6379")
		db, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		opts = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", host, port),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}
	}

	opts.DialTimeout = 10 * time.Second
	opts.ReadTimeout = 30 * time.Second
	opts.WriteTimeout = 30 * time.Second
	opts.PoolSize = 10
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
