package sheet

import (
	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
)

// Export formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ProfileInput names the profile an operation reads
type ProfileInput struct {
	Profile entities.Profile
}

// AddEquipmentInput contains an equipment item as typed by the user
type AddEquipmentInput struct {
	Profile entities.Profile
	Name    string

	// Quantity is coerced like any numeric field; negatives become 0
	Quantity string
	Bonus    string
}

// EquipmentOutput holds the equipment list and the stats it produces
type EquipmentOutput struct {
	Items []entities.EquipmentItem
	Sheet *stats.Sheet
}

// RemoveInput selects a list entry by position
type RemoveInput struct {
	Profile entities.Profile
	Index   int
}

// RemoveEquipmentOutput holds the removed item and the refreshed stats
type RemoveEquipmentOutput struct {
	Removed entities.EquipmentItem
	Items   []entities.EquipmentItem
	Sheet   *stats.Sheet
}

// AddInventoryInput contains an inventory item as typed by the user
type AddInventoryInput struct {
	Profile     entities.Profile
	Name        string
	Quantity    string
	Description string
}

// InventoryOutput holds the inventory list
type InventoryOutput struct {
	Items []entities.InventoryItem
}

// AddNPCInput contains an NPC card
type AddNPCInput struct {
	Profile     entities.Profile
	Name        string
	Description string
}

// NPCOutput holds the NPC list
type NPCOutput struct {
	NPCs []entities.NPC
}

// UpdateInfoInput sets one character info field
type UpdateInfoInput struct {
	Profile entities.Profile
	Field   string
	Value   string
}

// InfoOutput holds the character info
type InfoOutput struct {
	Info *entities.CharacterInfo
}

// SaveNotebookInput replaces the note text
type SaveNotebookInput struct {
	Profile entities.Profile
	Text    string
}

// NotebookOutput holds the note text
type NotebookOutput struct {
	Text string
}

// ExportInput selects the profile and output format
type ExportInput struct {
	Profile entities.Profile

	// Format is FormatYAML or FormatJSON; empty means YAML
	Format string
}

// ExportOutput holds the encoded snapshot
type ExportOutput struct {
	Format   string
	Data     []byte
	Snapshot *Snapshot
}

// Snapshot is everything stored for one profile, with derived stats
type Snapshot struct {
	Profile   string                    `json:"profile" yaml:"profile"`
	Character entities.CharacterInfo    `json:"character" yaml:"character"`
	Stats     StatsSnapshot             `json:"stats" yaml:"stats"`
	Equipment []entities.EquipmentItem  `json:"equipment" yaml:"equipment"`
	Inventory []entities.InventoryItem  `json:"inventory" yaml:"inventory"`
	NPCs      []entities.NPC            `json:"npcs" yaml:"npcs"`
	History   []entities.DiceRollRecord `json:"dice_history" yaml:"dice_history"`
	Notebook  string                    `json:"notebook" yaml:"notebook"`
}

// StatsSnapshot is the exported form of stats.Sheet
type StatsSnapshot struct {
	Base        entities.StatMap `json:"base" yaml:"base"`
	Bonus       entities.StatMap `json:"bonus" yaml:"bonus"`
	Total       entities.StatMap `json:"total" yaml:"total"`
	CurrentHP   int32            `json:"current_hp" yaml:"current_hp"`
	MaxHP       int32            `json:"max_hp" yaml:"max_hp"`
	CurrentLuck int32            `json:"current_luck" yaml:"current_luck"`
	MaxLuck     int32            `json:"max_luck" yaml:"max_luck"`
}
