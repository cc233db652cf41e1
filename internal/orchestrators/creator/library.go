package creator

import (
	"context"
	"log/slog"

	"github.com/forgelight/creator-api/internal/errors"
	draftrepo "github.com/forgelight/creator-api/internal/repositories/draft"
	libraryrepo "github.com/forgelight/creator-api/internal/repositories/library"
	"github.com/forgelight/creator-api/internal/services/creator"
)

// Library operations

// SaveToLibrary finalizes the working draft into the owner's library and
// discards the draft. Re-saving an entity that already exists in the library
// overwrites it in place.
func (o *Orchestrator) SaveToLibrary(ctx context.Context, input *creator.SaveToLibraryInput) (*creator.SaveToLibraryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Saving finalizes existing work; it never fabricates an entity from
	// the missing-draft default fallback.
	if _, err := o.draftRepo.Get(ctx, draftrepo.GetInput{
		OwnerID: input.OwnerID,
		Kind:    input.Kind,
	}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPrecondition("no working draft to save")
		}
		return nil, errors.Wrap(err, "failed to load draft")
	}

	entity, _, err := o.withDraft(ctx, input.OwnerID, input.Kind, nil)
	if err != nil {
		return nil, err
	}
	entity.Public = input.Public

	saved := entity
	createOut, err := o.libraryRepo.Create(ctx, libraryrepo.CreateInput{Entity: entity})
	switch {
	case err == nil:
		saved = createOut.Entity
	case errors.IsAlreadyExists(err):
		updateOut, uerr := o.libraryRepo.Update(ctx, libraryrepo.UpdateInput{Entity: entity})
		if uerr != nil {
			return nil, errors.Wrap(uerr, "failed to update library entity")
		}
		saved = updateOut.Entity
	default:
		return nil, errors.Wrap(err, "failed to save entity to library")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{
		OwnerID: input.OwnerID,
		Kind:    input.Kind,
	}); err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to discard draft after save",
			"owner_id", input.OwnerID,
			"kind", input.Kind,
			"error", err)
	}

	slog.InfoContext(ctx, "saved entity to library",
		"entity_id", saved.ID,
		"owner_id", saved.OwnerID,
		"public", saved.Public)

	return &creator.SaveToLibraryOutput{Entity: saved}, nil
}

// GetEntity loads a saved entity and its current stat projection. Stats are
// recomputed against the live catalog, so a catalog revision after the save
// is reflected immediately.
func (o *Orchestrator) GetEntity(ctx context.Context, input *creator.GetEntityInput) (*creator.GetEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	getOut, err := o.libraryRepo.Get(ctx, libraryrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get entity").
			WithMeta("entity_id", input.ID)
	}

	snap, err := o.catalog.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot")
	}

	stats, err := o.compute(ctx, getOut.Entity, snap)
	if err != nil {
		return nil, err
	}

	return &creator.GetEntityOutput{Entity: getOut.Entity, Stats: stats}, nil
}

// ListLibrary lists every entity an owner has saved.
func (o *Orchestrator) ListLibrary(ctx context.Context, input *creator.ListLibraryInput) (*creator.ListLibraryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("ownerID is required")
	}

	listOut, err := o.libraryRepo.ListByOwnerID(ctx, libraryrepo.ListByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list library")
	}
	return &creator.ListLibraryOutput{Entities: listOut.Entities}, nil
}

// ListPublic lists every entity published to the shared library.
func (o *Orchestrator) ListPublic(ctx context.Context, input *creator.ListPublicInput) (*creator.ListPublicOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOut, err := o.libraryRepo.ListPublic(ctx, libraryrepo.ListPublicInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public library")
	}
	return &creator.ListPublicOutput{Entities: listOut.Entities}, nil
}

// DeleteEntity removes a saved entity from the library.
func (o *Orchestrator) DeleteEntity(ctx context.Context, input *creator.DeleteEntityInput) (*creator.DeleteEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	if _, err := o.libraryRepo.Delete(ctx, libraryrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete entity").
			WithMeta("entity_id", input.ID)
	}

	slog.InfoContext(ctx, "deleted library entity", "entity_id", input.ID)
	return &creator.DeleteEntityOutput{}, nil
}
