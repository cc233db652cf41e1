// Package library provides persistence for saved creator entities: the
// per-user library plus the shared public library.
package library

//go:generate mockgen -destination=mock/mock_repository.go -package=librarymock github.com/forgelight/creator-api/internal/repositories/library Repository

import (
	"context"

	"github.com/forgelight/creator-api/internal/entities"
)

// Repository defines the interface for library persistence
type Repository interface {
	// Create saves a new entity
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an entity with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an entity by ID
	// Returns errors.NotFound if the entity doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing entity
	// Returns errors.NotFound if the entity doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes an entity by ID
	// Returns errors.NotFound if the entity doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwnerID retrieves all entities saved by an owner
	ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error)

	// ListPublic retrieves all entities published to the public library
	ListPublic(ctx context.Context, input ListPublicInput) (*ListPublicOutput, error)
}

// CreateInput defines the input for saving an entity
type CreateInput struct {
	Entity *entities.Entity
}

// CreateOutput defines the output for saving an entity
type CreateOutput struct {
	Entity *entities.Entity
}

// GetInput defines the input for getting an entity
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an entity
type GetOutput struct {
	Entity *entities.Entity
}

// UpdateInput defines the input for updating an entity
type UpdateInput struct {
	Entity *entities.Entity
}

// UpdateOutput defines the output for updating an entity
type UpdateOutput struct {
	Entity *entities.Entity
}

// DeleteInput defines the input for deleting an entity
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an entity
type DeleteOutput struct{}

// ListByOwnerIDInput defines the input for listing an owner's entities
type ListByOwnerIDInput struct {
	OwnerID string
}

// ListByOwnerIDOutput defines the output for listing an owner's entities
type ListByOwnerIDOutput struct {
	Entities []*entities.Entity
}

// ListPublicInput defines the input for listing public entities
type ListPublicInput struct{}

// ListPublicOutput defines the output for listing public entities
type ListPublicOutput struct {
	Entities []*entities.Entity
}
