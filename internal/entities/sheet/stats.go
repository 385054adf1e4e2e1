// Package sheet holds the character sheet entities shared by the engine,
// the repositories and the orchestrators.
package sheet

import "strings"

// StatKey identifies one of the six character statistics.
type StatKey string

// Stat keys, in display order.
const (
	HAB StatKey = "HAB"
	END StatKey = "END"
	ARM StatKey = "ARM"
	ADR StatKey = "ADR"
	CHA StatKey = "CHA"
	CRI StatKey = "CRI"
)

// StatKeys lists every stat key in display order.
var StatKeys = []StatKey{HAB, END, ARM, ADR, CHA, CRI}

const (
	// DefaultBaseValue is the starting base for every stat except ARM and CRI
	DefaultBaseValue int32 = 5

	// DefaultCurrentHP is the starting current HP of a fresh sheet
	DefaultCurrentHP int32 = 15

	// HPPerEndurance converts total END into max HP
	HPPerEndurance int32 = 3
)

// ParseStatKey resolves user input such as "cha" to a StatKey.
func ParseStatKey(s string) (StatKey, bool) {
	key := StatKey(strings.ToUpper(strings.TrimSpace(s)))
	return key, key.Valid()
}

// Valid reports whether k is one of the six known keys
func (k StatKey) Valid() bool {
	switch k {
	case HAB, END, ARM, ADR, CHA, CRI:
		return true
	}
	return false
}

// SuggestedMinimum is the input floor offered to the user. It is advisory
// only and never enforced.
func (k StatKey) SuggestedMinimum() int32 {
	if k == ARM || k == CRI {
		return 0
	}
	return 1
}

// StatMap maps each stat key to a value.
type StatMap map[StatKey]int32

// NewStatMap returns a map holding all six keys at zero.
func NewStatMap() StatMap {
	m := make(StatMap, len(StatKeys))
	for _, k := range StatKeys {
		m[k] = 0
	}
	return m
}

// Clone copies the map, filling missing keys with zero.
func (m StatMap) Clone() StatMap {
	out := NewStatMap()
	for k, v := range m {
		out[k] = v
	}
	return out
}

// StatBlock is the persisted statistics record. Bonus, total and max HP are
// never stored; they are derived from the equipment list on every read.
type StatBlock struct {
	Base      StatMap `json:"base" yaml:"base"`
	CurrentHP int32   `json:"current_hp" yaml:"current_hp"`

	// CurrentLuck is nil until the first recompute pins it to MaxLuck.
	CurrentLuck *int32 `json:"current_luck,omitempty" yaml:"current_luck,omitempty"`

	// MaxLuck is the max luck seen by the last recompute. Base edits compare
	// against it to decide whether current luck follows a CHA increase.
	MaxLuck int32 `json:"max_luck" yaml:"max_luck"`
}

// DefaultStatBlock returns the block of a brand new character.
func DefaultStatBlock() *StatBlock {
	base := NewStatMap()
	for _, k := range StatKeys {
		base[k] = DefaultBaseValue
	}
	base[ARM] = 0
	base[CRI] = 0

	return &StatBlock{
		Base:      base,
		CurrentHP: DefaultCurrentHP,
		MaxLuck:   DefaultBaseValue,
	}
}

// Clone returns a deep copy of the block
func (b *StatBlock) Clone() *StatBlock {
	out := &StatBlock{
		Base:      b.Base.Clone(),
		CurrentHP: b.CurrentHP,
		MaxLuck:   b.MaxLuck,
	}
	if b.CurrentLuck != nil {
		luck := *b.CurrentLuck
		out.CurrentLuck = &luck
	}
	return out
}

// Luck returns the current luck, or def when it is still undefined.
func (b *StatBlock) Luck(def int32) int32 {
	if b.CurrentLuck == nil {
		return def
	}
	return *b.CurrentLuck
}

// SetLuck stores a defined current luck value
func (b *StatBlock) SetLuck(v int32) {
	b.CurrentLuck = &v
}
