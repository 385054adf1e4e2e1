package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// BonusParse is the result of parsing equipment bonus text.
type BonusParse struct {
	// Bonuses holds all six keys; keys nothing contributed to are zero
	Bonuses sheet.StatMap

	// Ignored counts segments that did not parse or named an unknown key
	Ignored int
}

// RecomputeInput holds the inputs of a full recompute
type RecomputeInput struct {
	Base  sheet.StatMap
	Items []sheet.EquipmentItem

	// PreviousLuck is nil when current luck was never defined
	PreviousLuck *int32
}

// Totals holds every derived quantity of a stat block
type Totals struct {
	Bonus       sheet.StatMap
	Total       sheet.StatMap
	MaxHP       int32
	MaxLuck     int32
	CurrentLuck int32

	// IgnoredSegments is the number of bonus segments that were skipped
	IgnoredSegments int
}

// NormalizeInput holds a persisted block and the equipment it is read against
type NormalizeInput struct {
	Block *sheet.StatBlock
	Items []sheet.EquipmentItem
}

// NormalizeOutput holds the clamped block and its derived totals
type NormalizeOutput struct {
	Block  *sheet.StatBlock
	Totals *Totals

	// Changed reports whether the clamps altered the stored values
	Changed bool
}

// ApplyBaseChangeInput describes a base stat edit
type ApplyBaseChangeInput struct {
	Block *sheet.StatBlock
	Items []sheet.EquipmentItem
	Key   sheet.StatKey
	Value int32
}
