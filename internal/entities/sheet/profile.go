package sheet

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type of a character sheet
const EntityType = "sheet"

// DefaultProfileID is used when no profile is configured
const DefaultProfileID = "default"

// Profile identifies one character sheet inside a store.
type Profile struct {
	ID string
}

var _ core.Entity = Profile{}

// GetID returns the profile ID
func (p Profile) GetID() string {
	return p.ID
}

// GetType returns the entity type
func (p Profile) GetType() string {
	return EntityType
}

// Record names the stored records of a sheet
type Record string

// Sheet records
const (
	RecordStats         Record = "stats"
	RecordDiceHistory   Record = "dice_history"
	RecordEquipment     Record = "equipment"
	RecordInventory     Record = "inventory"
	RecordNPCs          Record = "npcs"
	RecordCharacterInfo Record = "character_info"
	RecordNotebook      Record = "notebook"
)

// Key builds the storage key of a record owned by entity, in the form
// {type}:{id}:{record}.
func Key(entity core.Entity, record Record) string {
	return fmt.Sprintf("%s:%s:%s", entity.GetType(), entity.GetID(), record)
}
