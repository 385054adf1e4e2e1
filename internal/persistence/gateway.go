// Package persistence stores whole domain values as JSON in a kv.Store.
//
// Reads never fail on bad data: an absent or undecodable value yields the
// caller's default and the corruption is logged. Only store failures are
// returned as errors. Writes replace the whole value; last writer wins.
package persistence

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
)

// Gateway reads and writes JSON documents by key
type Gateway interface {
	// LoadInto decodes the value at key into dst.
	// found is false when the key is absent or the stored bytes do not decode;
	// dst must then be ignored.
	LoadInto(ctx context.Context, key string, dst any) (found bool, err error)

	// Save encodes value and overwrites key
	Save(ctx context.Context, key string, value any) error

	// Delete removes key
	Delete(ctx context.Context, key string) error
}

// Config configures the gateway
type Config struct {
	Store  kv.Store
	Logger *slog.Logger
}

// Validate ensures the config is usable
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Store == nil {
		vb.RequiredField("Store")
	}
	return vb.Build()
}

type gateway struct {
	store  kv.Store
	logger *slog.Logger
}

// New creates a gateway over cfg.Store
func New(cfg *Config) (Gateway, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &gateway{store: cfg.Store, logger: logger}, nil
}

func (g *gateway) LoadInto(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := g.store.Get(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to load %s", key)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		g.logger.Warn("Discarding corrupt stored value",
			"key", key,
			"bytes", len(raw),
			"error", err)
		return false, nil
	}

	return true, nil
}

func (g *gateway) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	if err := g.store.Set(ctx, key, data); err != nil {
		return errors.Wrapf(err, "failed to save %s", key)
	}
	return nil
}

func (g *gateway) Delete(ctx context.Context, key string) error {
	if err := g.store.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}

// Load returns the value at key, or def when the key is absent or corrupt.
func Load[T any](ctx context.Context, gw Gateway, key string, def T) (T, error) {
	var value T
	found, err := gw.LoadInto(ctx, key, &value)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return value, nil
}
