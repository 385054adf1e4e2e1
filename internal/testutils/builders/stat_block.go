// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// StatBlockBuilder provides a fluent interface for building test StatBlock instances
type StatBlockBuilder struct {
	block *sheet.StatBlock
}

// NewStatBlockBuilder starts from the default sheet
func NewStatBlockBuilder() *StatBlockBuilder {
	return &StatBlockBuilder{block: sheet.DefaultStatBlock()}
}

// WithBase sets one base stat
func (b *StatBlockBuilder) WithBase(key sheet.StatKey, value int32) *StatBlockBuilder {
	b.block.Base[key] = value
	return b
}

// WithHP sets current HP
func (b *StatBlockBuilder) WithHP(hp int32) *StatBlockBuilder {
	b.block.CurrentHP = hp
	return b
}

// WithLuck sets current and max luck
func (b *StatBlockBuilder) WithLuck(current, maxLuck int32) *StatBlockBuilder {
	b.block.SetLuck(current)
	b.block.MaxLuck = maxLuck
	return b
}

// WithUndefinedLuck clears current luck, as on a fresh sheet
func (b *StatBlockBuilder) WithUndefinedLuck() *StatBlockBuilder {
	b.block.CurrentLuck = nil
	return b
}

// Build returns a copy so the builder can be reused
func (b *StatBlockBuilder) Build() *sheet.StatBlock {
	return b.block.Clone()
}
