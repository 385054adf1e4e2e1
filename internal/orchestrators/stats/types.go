package stats

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Sheet is a derived snapshot of the stat block after a recompute
type Sheet struct {
	Base  sheet.StatMap
	Bonus sheet.StatMap
	Total sheet.StatMap

	CurrentHP   int32
	MaxHP       int32
	CurrentLuck int32
	MaxLuck     int32

	// IgnoredBonusSegments counts equipment bonus fragments that could not be read
	IgnoredBonusSegments int
}

func newSheet(norm *engine.NormalizeOutput) *Sheet {
	return &Sheet{
		Base:                 norm.Block.Base.Clone(),
		Bonus:                norm.Totals.Bonus,
		Total:                norm.Totals.Total,
		CurrentHP:            norm.Block.CurrentHP,
		MaxHP:                norm.Totals.MaxHP,
		CurrentLuck:          norm.Block.Luck(norm.Totals.MaxLuck),
		MaxLuck:              norm.Totals.MaxLuck,
		IgnoredBonusSegments: norm.Totals.IgnoredSegments,
	}
}

// GetStatsInput contains the profile to read
type GetStatsInput struct {
	Profile sheet.Profile
}

// GetStatsOutput contains the recomputed sheet
type GetStatsOutput struct {
	Sheet *Sheet
}

// UpdateBaseInput contains a base stat edit as typed by the user
type UpdateBaseInput struct {
	Profile sheet.Profile
	Key     sheet.StatKey

	// Raw is coerced with engine.ParseInt; unreadable input becomes 0
	Raw string
}

// UpdateBaseOutput contains the sheet after the edit
type UpdateBaseOutput struct {
	Sheet *Sheet
}

// UpdateHPInput contains a current HP edit as typed by the user
type UpdateHPInput struct {
	Profile sheet.Profile
	Raw     string
}

// UpdateHPOutput contains the sheet after the edit
type UpdateHPOutput struct {
	Sheet *Sheet
}

// RefreshFromEquipmentInput names the profile whose equipment changed
type RefreshFromEquipmentInput struct {
	Profile sheet.Profile
}

// RefreshFromEquipmentOutput contains the recomputed sheet
type RefreshFromEquipmentOutput struct {
	Sheet *Sheet
}

// ConsumeLuckInput names the profile spending luck
type ConsumeLuckInput struct {
	Profile sheet.Profile
}

// ConsumeLuckOutput reports whether a point of luck was spent
type ConsumeLuckOutput struct {
	Consumed bool

	// PreviousLuck is the current luck before the decrement
	PreviousLuck int32

	Sheet *Sheet
}

// ResetInput names the profile to reset
type ResetInput struct {
	Profile sheet.Profile
}

// ResetOutput contains the default sheet
type ResetOutput struct {
	Sheet *Sheet
}
