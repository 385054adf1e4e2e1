// Package notebook provides persistence for the free-text note pad
package notebook

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Repository defines the interface for notebook persistence
type Repository interface {
	// Get returns the note text; empty when nothing was saved
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save overwrites the note text
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for reading the notebook
type GetInput struct {
	Profile sheet.Profile
}

// GetOutput defines the output for reading the notebook
type GetOutput struct {
	Text string
}

// SaveInput defines the input for saving the notebook
type SaveInput struct {
	Profile sheet.Profile
	Text    string
}

// SaveOutput defines the output for saving the notebook
type SaveOutput struct{}
