// Package redis provides a Redis client wrapper used for rate limiter
// storage and reconciliation projection caching.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/arogyahq/arogya_backend/config"
)

// Client wraps the go-redis client
type Client struct {
	*redis.Client
	config Config
}

// NewRedis creates a new Redis client with the given configuration
func NewRedis(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout())
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{
		Client: rdb,
		config: cfg,
	}, nil
}

// NewRedisFromCentral creates a Redis client from the central configuration
func NewRedisFromCentral(c config.RedisConfig) (*Client, error) {
	return NewRedis(FromCentralConfig(c))
}

// Close closes the underlying Redis connection
func (c *Client) Close() error {
	return c.Client.Close()
}

// Healthy reports whether the Redis connection is responsive
func (c *Client) Healthy(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
