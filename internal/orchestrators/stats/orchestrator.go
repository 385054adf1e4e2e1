// Package stats implements the stat orchestrator: it loads a profile's stat
// block and equipment, runs the engine rules and persists every change.
package stats

//go:generate mockgen -destination=mock/mock_service.go -package=statsmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/collection"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
)

// Service defines the interface for stat operations
type Service interface {
	// GetStats recomputes the sheet, persisting only if clamping changed it
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// UpdateBase sets one base stat; CHA increases may carry current luck up
	UpdateBase(ctx context.Context, input *UpdateBaseInput) (*UpdateBaseOutput, error)

	// UpdateHP sets current HP, clamped to [0, maxHP]
	UpdateHP(ctx context.Context, input *UpdateHPInput) (*UpdateHPOutput, error)

	// RefreshFromEquipment recomputes after an equipment change
	RefreshFromEquipment(ctx context.Context, input *RefreshFromEquipmentInput) (*RefreshFromEquipmentOutput, error)

	// ConsumeLuck spends one point of current luck when any is left
	ConsumeLuck(ctx context.Context, input *ConsumeLuckInput) (*ConsumeLuckOutput, error)

	// Reset restores the default stat block
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Config holds the dependencies for the stats orchestrator
type Config struct {
	StatsRepo     statsrepo.Repository
	EquipmentRepo collection.Repository[sheet.EquipmentItem]
	Engine        engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StatsRepo == nil {
		vb.RequiredField("StatsRepo")
	}
	if c.EquipmentRepo == nil {
		vb.RequiredField("EquipmentRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	statsRepo     statsrepo.Repository
	equipmentRepo collection.Repository[sheet.EquipmentItem]
	engine        engine.Engine
}

// NewOrchestrator creates a new stats orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		statsRepo:     cfg.StatsRepo,
		equipmentRepo: cfg.EquipmentRepo,
		engine:        cfg.Engine,
	}, nil
}

// load reads the stat block and equipment and normalizes them together
func (o *orchestrator) load(ctx context.Context, profile sheet.Profile) (*engine.NormalizeOutput, []sheet.EquipmentItem, error) {
	statsOut, err := o.statsRepo.Get(ctx, statsrepo.GetInput{Profile: profile})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load stats")
	}

	equipmentOut, err := o.equipmentRepo.List(ctx, collection.ListInput{Profile: profile})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load equipment")
	}

	norm := o.engine.Normalize(&engine.NormalizeInput{
		Block: statsOut.Block,
		Items: equipmentOut.Items,
	})
	return norm, equipmentOut.Items, nil
}

func (o *orchestrator) save(ctx context.Context, profile sheet.Profile, block *sheet.StatBlock) error {
	if _, err := o.statsRepo.Save(ctx, statsrepo.SaveInput{Profile: profile, Block: block}); err != nil {
		return errors.Wrap(err, "failed to save stats")
	}
	return nil
}

func (o *orchestrator) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	norm, _, err := o.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	if norm.Changed {
		if err := o.save(ctx, input.Profile, norm.Block); err != nil {
			return nil, err
		}
	}

	return &GetStatsOutput{Sheet: newSheet(norm)}, nil
}

func (o *orchestrator) UpdateBase(ctx context.Context, input *UpdateBaseInput) (*UpdateBaseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Key.Valid() {
		return nil, errors.InvalidArgumentf("unknown stat %q", input.Key)
	}

	current, items, err := o.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	value := engine.ParseInt(input.Raw)
	norm := o.engine.ApplyBaseChange(&engine.ApplyBaseChangeInput{
		Block: current.Block,
		Items: items,
		Key:   input.Key,
		Value: value,
	})

	if err := o.save(ctx, input.Profile, norm.Block); err != nil {
		return nil, err
	}

	slog.Info("Base stat updated",
		"profile", input.Profile.ID,
		"stat", input.Key,
		"value", value,
		"total", norm.Totals.Total[input.Key],
		"current_luck", norm.Block.Luck(norm.Totals.MaxLuck))

	return &UpdateBaseOutput{Sheet: newSheet(norm)}, nil
}

func (o *orchestrator) UpdateHP(ctx context.Context, input *UpdateHPInput) (*UpdateHPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	norm, _, err := o.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	requested := engine.ParseInt(input.Raw)
	norm.Block.CurrentHP = o.engine.ClampHP(requested, norm.Totals.MaxHP)

	if err := o.save(ctx, input.Profile, norm.Block); err != nil {
		return nil, err
	}

	if norm.Block.CurrentHP != requested {
		slog.Debug("Current HP clamped",
			"profile", input.Profile.ID,
			"requested", requested,
			"stored", norm.Block.CurrentHP,
			"max_hp", norm.Totals.MaxHP)
	}

	return &UpdateHPOutput{Sheet: newSheet(norm)}, nil
}

func (o *orchestrator) RefreshFromEquipment(
	ctx context.Context, input *RefreshFromEquipmentInput,
) (*RefreshFromEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	norm, items, err := o.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	if err := o.save(ctx, input.Profile, norm.Block); err != nil {
		return nil, err
	}

	if norm.Totals.IgnoredSegments > 0 {
		slog.Warn("Ignored unreadable equipment bonuses",
			"profile", input.Profile.ID,
			"segments", norm.Totals.IgnoredSegments)
	}
	slog.Debug("Stats refreshed from equipment",
		"profile", input.Profile.ID,
		"items", len(items),
		"max_hp", norm.Totals.MaxHP,
		"max_luck", norm.Totals.MaxLuck)

	return &RefreshFromEquipmentOutput{Sheet: newSheet(norm)}, nil
}

func (o *orchestrator) ConsumeLuck(ctx context.Context, input *ConsumeLuckInput) (*ConsumeLuckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	norm, _, err := o.load(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	luck := norm.Block.Luck(norm.Totals.MaxLuck)
	if luck <= 0 {
		if norm.Changed {
			if err := o.save(ctx, input.Profile, norm.Block); err != nil {
				return nil, err
			}
		}
		return &ConsumeLuckOutput{Consumed: false, Sheet: newSheet(norm)}, nil
	}

	norm.Block.SetLuck(luck - 1)
	if err := o.save(ctx, input.Profile, norm.Block); err != nil {
		return nil, err
	}

	return &ConsumeLuckOutput{
		Consumed:     true,
		PreviousLuck: luck,
		Sheet:        newSheet(norm),
	}, nil
}

func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.statsRepo.Reset(ctx, statsrepo.ResetInput{Profile: input.Profile}); err != nil {
		return nil, errors.Wrap(err, "failed to reset stats")
	}

	out, err := o.GetStats(ctx, &GetStatsInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}

	slog.Info("Stats reset", "profile", input.Profile.ID)

	return &ResetOutput{Sheet: out.Sheet}, nil
}
