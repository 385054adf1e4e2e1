// Package character provides the interface for character identity persistence
package character

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Repository defines the interface for character info persistence
type Repository interface {
	// Get retrieves the character info of a profile; empty fields when unset
	// Returns errors.InvalidArgument for an empty profile ID
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateField sets one named field and stores the whole record
	// Returns errors.InvalidArgument for an unknown field
	// Returns errors.Internal for storage failures
	UpdateField(ctx context.Context, input UpdateFieldInput) (*UpdateFieldOutput, error)
}

// GetInput defines the input for getting character info
type GetInput struct {
	Profile sheet.Profile
}

// GetOutput defines the output for getting character info
type GetOutput struct {
	Info *sheet.CharacterInfo
}

// UpdateFieldInput defines the input for updating a field
type UpdateFieldInput struct {
	Profile sheet.Profile
	Field   string
	Value   string
}

// UpdateFieldOutput defines the output for updating a field
type UpdateFieldOutput struct {
	Info *sheet.CharacterInfo
}
