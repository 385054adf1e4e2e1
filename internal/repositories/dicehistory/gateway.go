package dicehistory

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
)

const (
	errProfileIDEmpty = "profile ID cannot be empty"
	errRollIDEmpty    = "roll ID cannot be empty"
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

// NewRepository creates a dice history repository over the persistence gateway
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

	rolls, err := r.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Rolls: rolls}, nil
}

func (r *gatewayRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.Roll.RollID == "" {
		return nil, errors.InvalidArgument(errRollIDEmpty)
	}

	capacity := input.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	rolls, err := r.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	rolls = append(rolls, input.Roll)

	var dropped int32
	if len(rolls) > capacity {
		// nolint:gosec // bounded by capacity
		dropped = int32(len(rolls) - capacity)
		rolls = append([]sheet.DiceRollRecord(nil), rolls[len(rolls)-capacity:]...)
	}

	if err := r.gateway.Save(ctx, sheet.Key(input.Profile, sheet.RecordDiceHistory), rolls); err != nil {
		return nil, errors.Wrap(err, "failed to append roll")
	}

	return &AppendOutput{Rolls: rolls, Dropped: dropped}, nil
}

func (r *gatewayRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	rolls, err := r.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	if err := r.gateway.Save(ctx, sheet.Key(input.Profile, sheet.RecordDiceHistory), []sheet.DiceRollRecord{}); err != nil {
		return nil, errors.Wrap(err, "failed to clear history")
	}

	// nolint:gosec // history is capacity bounded
	return &ClearOutput{RollsDeleted: int32(len(rolls))}, nil
}

func (r *gatewayRepository) load(ctx context.Context, profile sheet.Profile) ([]sheet.DiceRollRecord, error) {
	rolls, err := persistence.Load(ctx, r.gateway, sheet.Key(profile, sheet.RecordDiceHistory), []sheet.DiceRollRecord{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get history")
	}
	if rolls == nil {
		rolls = []sheet.DiceRollRecord{}
	}
	return rolls, nil
}
