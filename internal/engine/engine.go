package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// bonusSegmentRegex matches a signed amount followed by a stat key, anywhere
// in an upper-cased segment: "+2 HAB", "-1ARM", "RING +3 CHA".
var bonusSegmentRegex = regexp.MustCompile(`([+-]\d+)\s*([A-Z]+)`)

type engine struct{}

// Config configures the engine. There is nothing to configure yet.
type Config struct{}

// Validate ensures the config is usable
func (cfg *Config) Validate() error {
	return nil
}

// New creates the stat rules engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

var _ Engine = (*engine)(nil)

func (e *engine) ParseBonus(text string) *BonusParse {
	out := &BonusParse{Bonuses: sheet.NewStatMap()}
	e.accumulate(out, text, 1)
	return out
}

func (e *engine) ComputeBonuses(items []sheet.EquipmentItem) *BonusParse {
	out := &BonusParse{Bonuses: sheet.NewStatMap()}
	for _, item := range items {
		if item.Bonus == "" {
			continue
		}
		e.accumulate(out, item.Bonus, item.Quantity)
	}
	return out
}

// accumulate adds every parseable segment of text, times quantity, into out.
// Segments that do not match, overflow, or name an unknown key are counted
// and skipped.
func (e *engine) accumulate(out *BonusParse, text string, quantity int32) {
	for _, part := range strings.Split(strings.ToUpper(text), ",") {
		match := bonusSegmentRegex.FindStringSubmatch(strings.TrimSpace(part))
		if match == nil {
			out.Ignored++
			continue
		}

		amount, err := strconv.ParseInt(match[1], 10, 32)
		if err != nil {
			out.Ignored++
			continue
		}

		key := sheet.StatKey(match[2])
		if !key.Valid() {
			out.Ignored++
			continue
		}

		out.Bonuses[key] = saturate(int64(out.Bonuses[key]) + amount*int64(quantity))
	}
}

// saturate clamps v into the int32 range instead of wrapping
func saturate(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

func (e *engine) Recompute(input *RecomputeInput) *Totals {
	bonus := e.ComputeBonuses(input.Items)

	total := sheet.NewStatMap()
	for _, k := range sheet.StatKeys {
		total[k] = saturate(int64(input.Base[k]) + int64(bonus.Bonuses[k]))
	}

	// Totals may go negative; the maxima floor at 0
	maxLuck := max(total[sheet.CHA], 0)
	maxHP := max(saturate(int64(total[sheet.END])*int64(sheet.HPPerEndurance)), 0)

	return &Totals{
		Bonus:           bonus.Bonuses,
		Total:           total,
		MaxHP:           maxHP,
		MaxLuck:         maxLuck,
		CurrentLuck:     clampLuck(input.PreviousLuck, maxLuck),
		IgnoredSegments: bonus.Ignored,
	}
}

// clampLuck follows an undefined luck up to max and pulls a luck above max
// down to it. A defined luck below max is left alone, so a growing max never
// drags current luck up on its own.
func clampLuck(previous *int32, maxLuck int32) int32 {
	luck := maxLuck
	if previous != nil && *previous <= maxLuck {
		luck = *previous
	}
	if luck < 0 {
		return 0
	}
	return luck
}

func (e *engine) Normalize(input *NormalizeInput) *NormalizeOutput {
	block := input.Block.Clone()

	totals := e.Recompute(&RecomputeInput{
		Base:         block.Base,
		Items:        input.Items,
		PreviousLuck: block.CurrentLuck,
	})

	hp := e.ClampHP(block.CurrentHP, totals.MaxHP)

	changed := hp != block.CurrentHP ||
		block.CurrentLuck == nil ||
		*block.CurrentLuck != totals.CurrentLuck ||
		block.MaxLuck != totals.MaxLuck

	block.CurrentHP = hp
	block.SetLuck(totals.CurrentLuck)
	block.MaxLuck = totals.MaxLuck

	return &NormalizeOutput{
		Block:   block,
		Totals:  totals,
		Changed: changed,
	}
}

// ApplyBaseChange raises current luck to a new CHA total only when luck was
// undefined or pinned at the old max and the new total exceeds that max.
// Every other case falls through to the normal clamp.
func (e *engine) ApplyBaseChange(input *ApplyBaseChangeInput) *NormalizeOutput {
	block := input.Block.Clone()
	block.Base[input.Key] = input.Value

	if input.Key == sheet.CHA {
		newMax := saturate(int64(input.Value) + int64(e.ComputeBonuses(input.Items).Bonuses[sheet.CHA]))
		pinned := block.CurrentLuck == nil || *block.CurrentLuck == input.Block.MaxLuck
		if pinned && newMax > input.Block.MaxLuck {
			block.SetLuck(newMax)
		}
	}

	out := e.Normalize(&NormalizeInput{Block: block, Items: input.Items})
	out.Changed = true
	return out
}

func (e *engine) ClampHP(value, maxHP int32) int32 {
	if value > maxHP {
		value = maxHP
	}
	if value < 0 {
		return 0
	}
	return value
}

// leadingIntRegex takes the integer prefix of an input: "12", "-3", "7 pts".
var leadingIntRegex = regexp.MustCompile(`^[+-]?\d+`)

// ParseInt reads a user-entered integer from its leading digits. Input with
// no leading integer, or one that overflows, is 0.
func ParseInt(raw string) int32 {
	digits := leadingIntRegex.FindString(strings.TrimSpace(raw))
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
