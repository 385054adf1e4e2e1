// Package rediskv implements kv.Store on Redis
package rediskv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// Store keeps each value as a plain Redis string
type Store struct {
	client redisclient.Client
}

// Config holds the configuration for the Redis store
type Config struct {
	Client redisclient.Client
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

// New creates a Redis-backed store
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Store{client: cfg.Client}, nil
}

var _ kv.Store = (*Store)(nil)

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("key %s not found", key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to get %s", key))
	}
	return value, nil
}

// Set stores a value without expiry
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to set %s", key))
	}
	return nil
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to delete %s", key))
	}
	return nil
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}
