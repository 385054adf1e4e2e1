// Package dicehistory provides repository interface and types for the dice roll log
package dicehistory

//go:generate mockgen -destination=mock/mock_repository.go -package=dicehistorymock github.com/KirkDiggler/rpg-sheet/internal/repositories/dicehistory Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// DefaultCapacity is how many rolls the log keeps
const DefaultCapacity = 50

// Repository defines the interface for dice history storage operations
type Repository interface {
	// Get returns the whole log, oldest first
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Append adds a roll and drops the oldest entries beyond capacity
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Clear empties the log
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// GetInput contains parameters for reading the log
type GetInput struct {
	Profile sheet.Profile
}

// GetOutput contains the log, oldest first
type GetOutput struct {
	Rolls []sheet.DiceRollRecord
}

// AppendInput contains parameters for appending a roll
type AppendInput struct {
	Profile sheet.Profile
	Roll    sheet.DiceRollRecord

	// Capacity bounds the stored log; zero means DefaultCapacity
	Capacity int
}

// AppendOutput contains the log after the append
type AppendOutput struct {
	Rolls []sheet.DiceRollRecord

	// Dropped counts entries evicted by the capacity bound
	Dropped int32
}

// ClearInput contains parameters for clearing the log
type ClearInput struct {
	Profile sheet.Profile
}

// ClearOutput contains the result of clearing the log
type ClearOutput struct {
	RollsDeleted int32
}
