package notebook

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
)

const errProfileIDEmpty = "profile ID cannot be empty"

// Config holds the configuration for the repository
type Config struct {
	Gateway persistence.Gateway
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Gateway == nil {
		return errors.InvalidArgument("persistence gateway is required")
	}
	return nil
}

type gatewayRepository struct {
	gateway persistence.Gateway
}

// NewRepository creates a notebook repository over the persistence gateway
func NewRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &gatewayRepository{gateway: cfg.Gateway}, nil
}

var _ Repository = (*gatewayRepository)(nil)

func (r *gatewayRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	text, err := persistence.Load(ctx, r.gateway, sheet.Key(input.Profile, sheet.RecordNotebook), "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get notebook")
	}
	return &GetOutput{Text: text}, nil
}

func (r *gatewayRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	if err := r.gateway.Save(ctx, sheet.Key(input.Profile, sheet.RecordNotebook), input.Text); err != nil {
		return nil, errors.Wrap(err, "failed to save notebook")
	}
	return &SaveOutput{}, nil
}
