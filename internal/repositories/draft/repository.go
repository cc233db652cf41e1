// Package draft provides persistence for working creator drafts: one
// in-progress entity per owner and kind, expiring after the staleness
// window so abandoned drafts reset to defaults.
package draft

//go:generate mockgen -destination=mock/mock_repository.go -package=draftmock github.com/forgelight/creator-api/internal/repositories/draft Repository

import (
	"context"

	"github.com/forgelight/creator-api/internal/entities"
)

// Draft is a cached working copy of an entity with its save timestamp, used
// to enforce the staleness window.
type Draft struct {
	Entity  *entities.Entity `json:"entity"`
	SavedAt int64            `json:"saved_at"`
}

// Repository defines the interface for draft persistence
type Repository interface {
	// Put stores the working draft for an owner and kind, replacing any
	// previous draft and restarting the staleness window
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the working draft for an owner and kind
	// Returns errors.NotFound if there is no draft or it has gone stale
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete discards the working draft for an owner and kind
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing a draft
type PutInput struct {
	Entity *entities.Entity
}

// PutOutput defines the output for storing a draft
type PutOutput struct {
	Draft *Draft
}

// GetInput defines the input for getting a draft
type GetInput struct {
	OwnerID string
	Kind    entities.Kind
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *Draft
}

// DeleteInput defines the input for discarding a draft
type DeleteInput struct {
	OwnerID string
	Kind    entities.Kind
}

// DeleteOutput defines the output for discarding a draft
type DeleteOutput struct{}
