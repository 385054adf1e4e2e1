package collection

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
)

const errProfileIDEmpty = "profile ID cannot be empty"

// Config holds the configuration for a list repository
type Config struct {
	Gateway persistence.Gateway
	Record  sheet.Record
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Gateway == nil {
		vb.RequiredField("Gateway")
	}
	if c.Record == "" {
		vb.RequiredField("Record")
	}
	return vb.Build()
}

type gatewayRepository[T any] struct {
	gateway persistence.Gateway
	record  sheet.Record
}

// NewRepository creates a list repository stored under cfg.Record
func NewRepository[T any](cfg *Config) (Repository[T], error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &gatewayRepository[T]{gateway: cfg.Gateway, record: cfg.Record}, nil
}

func (r *gatewayRepository[T]) List(ctx context.Context, input ListInput) (*ListOutput[T], error) {
	items, err := r.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}
	return &ListOutput[T]{Items: items}, nil
}

func (r *gatewayRepository[T]) Add(ctx context.Context, input AddInput[T]) (*ListOutput[T], error) {
	items, err := r.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	items = append(items, input.Item)
	if err := r.save(ctx, input.Profile, items); err != nil {
		return nil, err
	}
	return &ListOutput[T]{Items: items}, nil
}

func (r *gatewayRepository[T]) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput[T], error) {
	items, err := r.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}
	if input.Index < 0 || input.Index >= len(items) {
		return nil, errors.NotFoundf("no %s item at index %d", r.record, input.Index)
	}

	removed := items[input.Index]
	remaining := make([]T, 0, len(items)-1)
	remaining = append(remaining, items[:input.Index]...)
	remaining = append(remaining, items[input.Index+1:]...)

	if err := r.save(ctx, input.Profile, remaining); err != nil {
		return nil, err
	}
	return &RemoveOutput[T]{Removed: removed, Items: remaining}, nil
}

func (r *gatewayRepository[T]) Replace(ctx context.Context, input ReplaceInput[T]) (*ListOutput[T], error) {
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	items := input.Items
	if items == nil {
		items = []T{}
	}
	if err := r.save(ctx, input.Profile, items); err != nil {
		return nil, err
	}
	return &ListOutput[T]{Items: items}, nil
}

func (r *gatewayRepository[T]) load(ctx context.Context, profile sheet.Profile) ([]T, error) {
	if profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	items, err := persistence.Load(ctx, r.gateway, sheet.Key(profile, r.record), []T{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.record)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *gatewayRepository[T]) save(ctx context.Context, profile sheet.Profile, items []T) error {
	if err := r.gateway.Save(ctx, sheet.Key(profile, r.record), items); err != nil {
		return errors.Wrapf(err, "failed to save %s", r.record)
	}
	return nil
}
