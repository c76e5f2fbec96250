package redisclient

import (
	"context"
	"fmt"
	"time"

	"content-studio/internal/config"

	"github.com/redis/go-redis/v9"
)

// ClientName tags connections so workers and submitters show up in CLIENT LIST.
const ClientName = "content-studio"

// New creates a Redis client for the job queue from configuration.
func New(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		ClientName: ClientName,
		Username:   cfg.Username,
		Password:   cfg.Password,
		DB:         cfg.DB,
	})
}

// Check pings rdb, bounded by timeout, and names the address on failure.
func Check(ctx context.Context, rdb *redis.Client, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		return "", fmt.Errorf("redis %s unreachable: %w", rdb.Options().Addr, err)
	}
	return res, nil
}
