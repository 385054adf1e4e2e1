// Package kv defines the byte-level key/value store the persistence gateway
// writes through, plus an in-memory implementation.
package kv

//go:generate mockgen -destination=mock/mock_store.go -package=kvmock github.com/KirkDiggler/rpg-sheet/internal/kv Store

import (
	"context"
)

// Store is a flat key/value store. Every Set overwrites the whole value.
type Store interface {
	// Get returns the stored bytes.
	// Returns errors.NotFound if the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources
	Close() error
}

// Driver names accepted by configuration
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Drivers lists every supported driver
var Drivers = []string{DriverMemory, DriverSQLite, DriverRedis}
