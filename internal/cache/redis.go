package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/config"
)

// Redis is an optional Store backend for deployments running more than one
// dashboard instance. Expiry uses native Redis TTLs, so the ttl passed to
// Get is ignored.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis, or returns (nil, nil) when no host is
// configured so callers can fall back to the in-memory cache.
func NewRedis(cfg config.RedisConfig) (*Redis, error) {
	if cfg.Host == "" {
		return nil, nil // Redis is optional
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string, _ time.Duration) ([]byte, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	r.client.Set(ctx, key, data, ttl)
}

func (r *Redis) Has(ctx context.Context, key string, _ time.Duration) bool {
	n, err := r.client.Exists(ctx, key).Result()
	return err == nil && n > 0
}

func (r *Redis) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return nil
}
