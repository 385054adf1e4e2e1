// Package app wires storage, repositories and orchestrators into a ready
// character sheet for one profile.
package app

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
	"github.com/KirkDiggler/rpg-sheet/internal/kv/rediskv"
	"github.com/KirkDiggler/rpg-sheet/internal/kv/sqlitekv"
	dicesvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	statssvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/collection"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/dicehistory"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/notebook"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
)

// Options overrides runtime collaborators. Zero values use the real ones.
type Options struct {
	Logger    *slog.Logger
	Store     kv.Store
	Roller    dice.Roller
	Scheduler dicesvc.Scheduler
	Clock     clock.Clock
	IDs       idgen.Generator
}

// App is a wired character sheet
type App struct {
	Profile sheet.Profile
	Config  config.Config

	Stats statssvc.Service
	Dice  dicesvc.Service
	Sheet sheetsvc.Service

	store kv.Store
}

// OpenStore opens the key/value backend selected by cfg.
func OpenStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case kv.DriverMemory:
		return kv.NewMemory(), nil
	case kv.DriverSQLite:
		store, err := sqlitekv.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open sqlite store %s", cfg.Storage.SQLitePath)
		}
		return store, nil
	case kv.DriverRedis:
		client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			return nil, errors.InvalidArgumentf("redis client: %v", err)
		}
		if err := redis.Check(ctx, client); err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, err
		}
		store, err := rediskv.New(&rediskv.Config{Client: client})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.InvalidArgumentf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// New builds the sheet for cfg.Profile. The caller owns the returned App and
// must Close it.
func New(ctx context.Context, cfg config.Config, opts *Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := opts.Store
	if store == nil {
		var err error
		store, err = OpenStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	a, err := wire(cfg, store, logger, opts)
	if err != nil {
		_ = store.Close() // nolint:errcheck // already failing
		return nil, err
	}

	slog.Debug("Sheet opened",
		"profile", cfg.Profile,
		"driver", cfg.Storage.Driver)

	return a, nil
}

func wire(cfg config.Config, store kv.Store, logger *slog.Logger, opts *Options) (*App, error) {
	gateway, err := persistence.New(&persistence.Config{Store: store, Logger: logger})
	if err != nil {
		return nil, err
	}

	statsRepo, err := statsrepo.NewRepository(&statsrepo.Config{Gateway: gateway})
	if err != nil {
		return nil, err
	}
	historyRepo, err := dicehistory.NewRepository(&dicehistory.Config{Gateway: gateway})
	if err != nil {
		return nil, err
	}
	equipmentRepo, err := collection.NewRepository[sheet.EquipmentItem](&collection.Config{
		Gateway: gateway,
		Record:  sheet.RecordEquipment,
	})
	if err != nil {
		return nil, err
	}
	inventoryRepo, err := collection.NewRepository[sheet.InventoryItem](&collection.Config{
		Gateway: gateway,
		Record:  sheet.RecordInventory,
	})
	if err != nil {
		return nil, err
	}
	npcRepo, err := collection.NewRepository[sheet.NPC](&collection.Config{
		Gateway: gateway,
		Record:  sheet.RecordNPCs,
	})
	if err != nil {
		return nil, err
	}
	characterRepo, err := character.NewRepository(&character.Config{Gateway: gateway})
	if err != nil {
		return nil, err
	}
	notebookRepo, err := notebook.NewRepository(&notebook.Config{Gateway: gateway})
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, err
	}

	stats, err := statssvc.NewOrchestrator(&statssvc.Config{
		StatsRepo:     statsRepo,
		EquipmentRepo: equipmentRepo,
		Engine:        eng,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stats orchestrator")
	}

	roller := opts.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = dicesvc.NewTimerScheduler()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	ids := opts.IDs
	if ids == nil {
		ids = idgen.NewUUID("roll")
	}

	diceService, err := dicesvc.NewOrchestrator(&dicesvc.Config{
		HistoryRepo:  historyRepo,
		Stats:        stats,
		Roller:       roller,
		IDGenerator:  ids,
		Clock:        clk,
		Scheduler:    scheduler,
		RollDelay:    cfg.Dice.RollDelay,
		Capacity:     cfg.Dice.HistoryCapacity,
		DisplayLimit: cfg.Dice.DisplayLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice orchestrator")
	}

	sheetService, err := sheetsvc.NewOrchestrator(&sheetsvc.Config{
		EquipmentRepo: equipmentRepo,
		InventoryRepo: inventoryRepo,
		NPCRepo:       npcRepo,
		CharacterRepo: characterRepo,
		NotebookRepo:  notebookRepo,
		HistoryRepo:   historyRepo,
		Stats:         stats,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet orchestrator")
	}

	return &App{
		Profile: cfg.SheetProfile(),
		Config:  cfg,
		Stats:   stats,
		Dice:    diceService,
		Sheet:   sheetService,
		store:   store,
	}, nil
}

// Close releases the store
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}
