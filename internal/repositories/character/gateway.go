package character

import (
	"context"
	"strings"

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

// NewRepository creates a character info repository over the persistence gateway
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

	info, err := persistence.Load(ctx, r.gateway, sheet.Key(input.Profile, sheet.RecordCharacterInfo), &sheet.CharacterInfo{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character info")
	}
	if info == nil {
		info = &sheet.CharacterInfo{}
	}
	return &GetOutput{Info: info}, nil
}

func (r *gatewayRepository) UpdateField(ctx context.Context, input UpdateFieldInput) (*UpdateFieldOutput, error) {
	field := strings.ToLower(strings.TrimSpace(input.Field))
	if field != sheet.InfoFieldName && field != sheet.InfoFieldClass {
		return nil, errors.InvalidArgumentf("unknown character field %q", input.Field)
	}

	got, err := r.Get(ctx, GetInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}

	info := got.Info
	switch field {
	case sheet.InfoFieldName:
		info.Name = input.Value
	case sheet.InfoFieldClass:
		info.Class = input.Value
	}

	if err := r.gateway.Save(ctx, sheet.Key(input.Profile, sheet.RecordCharacterInfo), info); err != nil {
		return nil, errors.Wrap(err, "failed to save character info")
	}
	return &UpdateFieldOutput{Info: info}, nil
}
