// Package character provides persistence for character stat blocks
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/ie-chargen/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/ie-chargen/internal/entities/ie"
)

// Repository defines the interface for stat block persistence
type Repository interface {
	// Create stores a new stat block
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a block with the same ID exists
	// Storage failures satisfy errors.IsInternal
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a stat block by character ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the block doesn't exist
	// Storage failures satisfy errors.IsInternal
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing stat block
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the block doesn't exist
	// Storage failures satisfy errors.IsInternal
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a stat block
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the block doesn't exist
	// Storage failures satisfy errors.IsInternal
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of every stored stat block
	// Storage failures satisfy errors.IsInternal
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a stat block
type CreateInput struct {
	Block *ie.StatBlock
}

// CreateOutput defines the output for creating a stat block
type CreateOutput struct {
	Block *ie.StatBlock
}

// GetInput defines the input for getting a stat block
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a stat block
type GetOutput struct {
	Block *ie.StatBlock
}

// UpdateInput defines the input for updating a stat block
type UpdateInput struct {
	Block *ie.StatBlock
}

// UpdateOutput defines the output for updating a stat block
type UpdateOutput struct {
	Block *ie.StatBlock
}

// DeleteInput defines the input for deleting a stat block
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a stat block
type DeleteOutput struct{}

// ListInput defines the input for listing stat blocks
type ListInput struct{}

// ListOutput defines the output for listing stat blocks
type ListOutput struct {
	IDs []string
}
