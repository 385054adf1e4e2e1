// Package collection provides an ordered list repository shared by the
// equipment, inventory and NPC records of a sheet
package collection

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Repository stores one ordered list of T per profile
type Repository[T any] interface {
	// List returns the items in insertion order
	List(ctx context.Context, input ListInput) (*ListOutput[T], error)

	// Add appends an item
	Add(ctx context.Context, input AddInput[T]) (*ListOutput[T], error)

	// Remove deletes the item at Index.
	// Returns errors.NotFound if Index is out of range
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput[T], error)

	// Replace overwrites the whole list
	Replace(ctx context.Context, input ReplaceInput[T]) (*ListOutput[T], error)
}

// ListInput selects the profile whose list is read
type ListInput struct {
	Profile sheet.Profile
}

// ListOutput holds a list snapshot
type ListOutput[T any] struct {
	Items []T
}

// AddInput defines the input for adding an item
type AddInput[T any] struct {
	Profile sheet.Profile
	Item    T
}

// RemoveInput defines the input for removing an item
type RemoveInput struct {
	Profile sheet.Profile
	Index   int
}

// RemoveOutput holds the removed item and the remaining list
type RemoveOutput[T any] struct {
	Removed T
	Items   []T
}

// ReplaceInput defines the input for overwriting a list
type ReplaceInput[T any] struct {
	Profile sheet.Profile
	Items   []T
}
