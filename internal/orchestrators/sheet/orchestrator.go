// Package sheet implements the list, identity and notebook parts of a
// character sheet, plus the full-sheet export.
package sheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/collection"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/dicehistory"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/notebook"
)

// Service defines the interface for sheet record operations
type Service interface {
	ListEquipment(ctx context.Context, input *ProfileInput) (*EquipmentOutput, error)
	AddEquipment(ctx context.Context, input *AddEquipmentInput) (*EquipmentOutput, error)
	RemoveEquipment(ctx context.Context, input *RemoveInput) (*RemoveEquipmentOutput, error)

	ListInventory(ctx context.Context, input *ProfileInput) (*InventoryOutput, error)
	AddInventory(ctx context.Context, input *AddInventoryInput) (*InventoryOutput, error)
	RemoveInventory(ctx context.Context, input *RemoveInput) (*InventoryOutput, error)

	ListNPCs(ctx context.Context, input *ProfileInput) (*NPCOutput, error)
	AddNPC(ctx context.Context, input *AddNPCInput) (*NPCOutput, error)
	RemoveNPC(ctx context.Context, input *RemoveInput) (*NPCOutput, error)

	GetInfo(ctx context.Context, input *ProfileInput) (*InfoOutput, error)
	UpdateInfo(ctx context.Context, input *UpdateInfoInput) (*InfoOutput, error)

	GetNotebook(ctx context.Context, input *ProfileInput) (*NotebookOutput, error)
	SaveNotebook(ctx context.Context, input *SaveNotebookInput) (*NotebookOutput, error)

	// Export encodes the whole sheet of a profile
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	EquipmentRepo collection.Repository[entities.EquipmentItem]
	InventoryRepo collection.Repository[entities.InventoryItem]
	NPCRepo       collection.Repository[entities.NPC]
	CharacterRepo character.Repository
	NotebookRepo  notebook.Repository
	HistoryRepo   dicehistory.Repository
	Stats         stats.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EquipmentRepo == nil {
		vb.RequiredField("EquipmentRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.NPCRepo == nil {
		vb.RequiredField("NPCRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.NotebookRepo == nil {
		vb.RequiredField("NotebookRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.Stats == nil {
		vb.RequiredField("Stats")
	}

	return vb.Build()
}

type orchestrator struct {
	equipmentRepo collection.Repository[entities.EquipmentItem]
	inventoryRepo collection.Repository[entities.InventoryItem]
	npcRepo       collection.Repository[entities.NPC]
	characterRepo character.Repository
	notebookRepo  notebook.Repository
	historyRepo   dicehistory.Repository
	stats         stats.Service
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		equipmentRepo: cfg.EquipmentRepo,
		inventoryRepo: cfg.InventoryRepo,
		npcRepo:       cfg.NPCRepo,
		characterRepo: cfg.CharacterRepo,
		notebookRepo:  cfg.NotebookRepo,
		historyRepo:   cfg.HistoryRepo,
		stats:         cfg.Stats,
	}, nil
}

// parseQuantity coerces a typed quantity; lists never hold negatives
func parseQuantity(raw string) int32 {
	return max(engine.ParseInt(raw), 0)
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.InvalidArgument("name is required")
	}
	return name, nil
}

func (o *orchestrator) ListEquipment(ctx context.Context, input *ProfileInput) (*EquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.equipmentRepo.List(ctx, collection.ListInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}
	statsOut, err := o.stats.GetStats(ctx, &stats.GetStatsInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}
	return &EquipmentOutput{Items: out.Items, Sheet: statsOut.Sheet}, nil
}

func (o *orchestrator) AddEquipment(ctx context.Context, input *AddEquipmentInput) (*EquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	item := entities.EquipmentItem{
		Name:     name,
		Quantity: parseQuantity(input.Quantity),
		Bonus:    strings.TrimSpace(input.Bonus),
	}
	out, err := o.equipmentRepo.Add(ctx, collection.AddInput[entities.EquipmentItem]{Profile: input.Profile, Item: item})
	if err != nil {
		return nil, err
	}

	refreshed, err := o.stats.RefreshFromEquipment(ctx, &stats.RefreshFromEquipmentInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}

	slog.Info("Equipment added",
		"profile", input.Profile.ID,
		"name", item.Name,
		"quantity", item.Quantity,
		"bonus", item.Bonus)

	return &EquipmentOutput{Items: out.Items, Sheet: refreshed.Sheet}, nil
}

func (o *orchestrator) RemoveEquipment(ctx context.Context, input *RemoveInput) (*RemoveEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.equipmentRepo.Remove(ctx, collection.RemoveInput{Profile: input.Profile, Index: input.Index})
	if err != nil {
		return nil, err
	}

	refreshed, err := o.stats.RefreshFromEquipment(ctx, &stats.RefreshFromEquipmentInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}

	slog.Info("Equipment removed", "profile", input.Profile.ID, "name", out.Removed.Name)

	return &RemoveEquipmentOutput{Removed: out.Removed, Items: out.Items, Sheet: refreshed.Sheet}, nil
}

func (o *orchestrator) ListInventory(ctx context.Context, input *ProfileInput) (*InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.inventoryRepo.List(ctx, collection.ListInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}
	return &InventoryOutput{Items: out.Items}, nil
}

func (o *orchestrator) AddInventory(ctx context.Context, input *AddInventoryInput) (*InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	out, err := o.inventoryRepo.Add(ctx, collection.AddInput[entities.InventoryItem]{
		Profile: input.Profile,
		Item: entities.InventoryItem{
			Name:        name,
			Quantity:    parseQuantity(input.Quantity),
			Description: input.Description,
		},
	})
	if err != nil {
		return nil, err
	}
	return &InventoryOutput{Items: out.Items}, nil
}

func (o *orchestrator) RemoveInventory(ctx context.Context, input *RemoveInput) (*InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.inventoryRepo.Remove(ctx, collection.RemoveInput{Profile: input.Profile, Index: input.Index})
	if err != nil {
		return nil, err
	}
	return &InventoryOutput{Items: out.Items}, nil
}

func (o *orchestrator) ListNPCs(ctx context.Context, input *ProfileInput) (*NPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.npcRepo.List(ctx, collection.ListInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}
	return &NPCOutput{NPCs: out.Items}, nil
}

func (o *orchestrator) AddNPC(ctx context.Context, input *AddNPCInput) (*NPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	out, err := o.npcRepo.Add(ctx, collection.AddInput[entities.NPC]{
		Profile: input.Profile,
		Item:    entities.NPC{Name: name, Description: input.Description},
	})
	if err != nil {
		return nil, err
	}
	return &NPCOutput{NPCs: out.Items}, nil
}

func (o *orchestrator) RemoveNPC(ctx context.Context, input *RemoveInput) (*NPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.npcRepo.Remove(ctx, collection.RemoveInput{Profile: input.Profile, Index: input.Index})
	if err != nil {
		return nil, err
	}
	return &NPCOutput{NPCs: out.Items}, nil
}

func (o *orchestrator) GetInfo(ctx context.Context, input *ProfileInput) (*InfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.Get(ctx, character.GetInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}
	return &InfoOutput{Info: out.Info}, nil
}

func (o *orchestrator) UpdateInfo(ctx context.Context, input *UpdateInfoInput) (*InfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.UpdateField(ctx, character.UpdateFieldInput{
		Profile: input.Profile,
		Field:   input.Field,
		Value:   input.Value,
	})
	if err != nil {
		return nil, err
	}
	return &InfoOutput{Info: out.Info}, nil
}

func (o *orchestrator) GetNotebook(ctx context.Context, input *ProfileInput) (*NotebookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.notebookRepo.Get(ctx, notebook.GetInput{Profile: input.Profile})
	if err != nil {
		return nil, err
	}
	return &NotebookOutput{Text: out.Text}, nil
}

func (o *orchestrator) SaveNotebook(ctx context.Context, input *SaveNotebookInput) (*NotebookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.notebookRepo.Save(ctx, notebook.SaveInput{Profile: input.Profile, Text: input.Text}); err != nil {
		return nil, err
	}
	return &NotebookOutput{Text: input.Text}, nil
}

func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatYAML
	}
	if format != FormatYAML && format != FormatJSON {
		return nil, errors.InvalidArgumentf("unsupported export format %q", input.Format)
	}

	snapshot, err := o.snapshot(ctx, input.Profile)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(snapshot, "", "  ")
	default:
		data, err = yaml.Marshal(snapshot)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s export", format)
	}

	return &ExportOutput{Format: format, Data: data, Snapshot: snapshot}, nil
}

func (o *orchestrator) snapshot(ctx context.Context, profile entities.Profile) (*Snapshot, error) {
	statsOut, err := o.stats.GetStats(ctx, &stats.GetStatsInput{Profile: profile})
	if err != nil {
		return nil, err
	}
	info, err := o.characterRepo.Get(ctx, character.GetInput{Profile: profile})
	if err != nil {
		return nil, err
	}
	equipment, err := o.equipmentRepo.List(ctx, collection.ListInput{Profile: profile})
	if err != nil {
		return nil, err
	}
	inventory, err := o.inventoryRepo.List(ctx, collection.ListInput{Profile: profile})
	if err != nil {
		return nil, err
	}
	npcs, err := o.npcRepo.List(ctx, collection.ListInput{Profile: profile})
	if err != nil {
		return nil, err
	}
	history, err := o.historyRepo.Get(ctx, dicehistory.GetInput{Profile: profile})
	if err != nil {
		return nil, err
	}
	note, err := o.notebookRepo.Get(ctx, notebook.GetInput{Profile: profile})
	if err != nil {
		return nil, err
	}

	s := statsOut.Sheet
	return &Snapshot{
		Profile:   profile.ID,
		Character: *info.Info,
		Stats: StatsSnapshot{
			Base:        s.Base,
			Bonus:       s.Bonus,
			Total:       s.Total,
			CurrentHP:   s.CurrentHP,
			MaxHP:       s.MaxHP,
			CurrentLuck: s.CurrentLuck,
			MaxLuck:     s.MaxLuck,
		},
		Equipment: equipment.Items,
		Inventory: inventory.Items,
		NPCs:      npcs.Items,
		History:   history.Rolls,
		Notebook:  note.Text,
	}, nil
}
