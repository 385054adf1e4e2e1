// Package engine implements the character sheet stat rules: equipment
// bonuses, derived totals, max HP, and the current HP and luck clamps.
package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Engine provides the stat rules. All methods are pure: they never mutate
// their arguments and never fail, whatever the input.
type Engine interface {
	// ParseBonus parses the bonus text of a single item at quantity 1
	ParseBonus(text string) *BonusParse

	// ComputeBonuses sums the bonuses of every item, multiplied by quantity
	ComputeBonuses(items []sheet.EquipmentItem) *BonusParse

	// Recompute derives totals, max HP, max luck and the clamped current luck
	Recompute(input *RecomputeInput) *Totals

	// Normalize recomputes a block against the equipment and re-applies both clamps
	Normalize(input *NormalizeInput) *NormalizeOutput

	// ApplyBaseChange sets a base stat and applies the CHA grow-follows rule
	ApplyBaseChange(input *ApplyBaseChangeInput) *NormalizeOutput

	// ClampHP bounds a requested current HP to [0, maxHP]
	ClampHP(value, maxHP int32) int32
}
