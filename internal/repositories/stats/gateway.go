package stats

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
)

const (
	errProfileIDEmpty = "profile ID cannot be empty"
	errBlockNil       = "stat block cannot be nil"
)

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

// NewRepository creates a stat block repository over the persistence gateway
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

	block, err := persistence.Load(ctx, r.gateway, sheet.Key(input.Profile, sheet.RecordStats), sheet.DefaultStatBlock())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stat block")
	}
	if block == nil {
		block = sheet.DefaultStatBlock()
	}

	return &GetOutput{Block: fillMissing(block)}, nil
}

func (r *gatewayRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.Block == nil {
		return nil, errors.InvalidArgument(errBlockNil)
	}

	if err := r.gateway.Save(ctx, sheet.Key(input.Profile, sheet.RecordStats), input.Block); err != nil {
		return nil, errors.Wrap(err, "failed to save stat block")
	}
	return &SaveOutput{}, nil
}

func (r *gatewayRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	block := sheet.DefaultStatBlock()
	if _, err := r.Save(ctx, SaveInput{Profile: input.Profile, Block: block}); err != nil {
		return nil, err
	}
	return &ResetOutput{Block: block}, nil
}

// fillMissing gives stored blocks written before a key existed the default
// base for that key.
func fillMissing(block *sheet.StatBlock) *sheet.StatBlock {
	defaults := sheet.DefaultStatBlock()
	if block.Base == nil {
		block.Base = defaults.Base
		return block
	}
	for _, k := range sheet.StatKeys {
		if _, ok := block.Base[k]; !ok {
			block.Base[k] = defaults.Base[k]
		}
	}
	return block
}
