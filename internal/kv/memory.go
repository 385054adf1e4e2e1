package kv

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Memory is a process-local Store. Contents are lost on exit.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

var _ Store = (*Memory)(nil)

// Get returns a copy of the stored bytes
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context done")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return nil, errors.NotFoundf("key %s not found", key)
	}
	return append([]byte(nil), value...), nil
}

// Set stores a copy of value
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context done")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key
func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context done")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
