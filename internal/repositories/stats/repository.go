// Package stats provides the repository for a sheet's stat block
package stats

//go:generate mockgen -destination=mock/mock_repository.go -package=statsmock github.com/KirkDiggler/rpg-sheet/internal/repositories/stats Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Repository defines the interface for stat block persistence
type Repository interface {
	// Get retrieves the stat block of a profile.
	// A profile with nothing stored (or unreadable data) gets the default block.
	// Returns errors.InvalidArgument for an empty profile ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save overwrites the stored stat block
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Reset stores and returns the default stat block
	Reset(ctx context.Context, input ResetInput) (*ResetOutput, error)
}

// GetInput defines the input for getting a stat block
type GetInput struct {
	Profile sheet.Profile
}

// GetOutput defines the output for getting a stat block
type GetOutput struct {
	Block *sheet.StatBlock
}

// SaveInput defines the input for saving a stat block
type SaveInput struct {
	Profile sheet.Profile
	Block   *sheet.StatBlock
}

// SaveOutput defines the output for saving a stat block
type SaveOutput struct{}

// ResetInput defines the input for resetting a stat block
type ResetInput struct {
	Profile sheet.Profile
}

// ResetOutput defines the output for resetting a stat block
type ResetOutput struct {
	Block *sheet.StatBlock
}
