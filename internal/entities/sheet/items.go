package sheet

// EquipmentItem is a worn or carried item whose bonus text modifies stats,
// e.g. "+2 HAB, -1 ARM".
type EquipmentItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int32  `json:"quantity" yaml:"quantity"`
	Bonus    string `json:"bonus" yaml:"bonus"`
}

// InventoryItem is a carried item without stat effects
type InventoryItem struct {
	Name        string `json:"name" yaml:"name"`
	Quantity    int32  `json:"quantity" yaml:"quantity"`
	Description string `json:"description" yaml:"description"`
}

// NPC is a non-player character note card
type NPC struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// CharacterInfo holds the free-text identity fields of the sheet
type CharacterInfo struct {
	Name  string `json:"name" yaml:"name"`
	Class string `json:"class" yaml:"class"`
}

// Character info field names accepted by updates
const (
	InfoFieldName  = "name"
	InfoFieldClass = "class"
)
