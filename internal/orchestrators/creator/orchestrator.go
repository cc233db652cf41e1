// Package creator implements the creator orchestrator
package creator

import (
	"context"
	"log/slog"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/engine"
	"github.com/forgelight/creator-api/internal/entities"
	"github.com/forgelight/creator-api/internal/errors"
	"github.com/forgelight/creator-api/internal/pkg/idgen"
	draftrepo "github.com/forgelight/creator-api/internal/repositories/draft"
	libraryrepo "github.com/forgelight/creator-api/internal/repositories/library"
	"github.com/forgelight/creator-api/internal/services/creator"
)

// Config holds the dependencies for the creator orchestrator
type Config struct {
	LibraryRepo libraryrepo.Repository
	DraftRepo   draftrepo.Repository
	Engine      engine.Engine
	Catalog     catalog.Provider
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.LibraryRepo == nil {
		vb.RequiredField("LibraryRepo")
	}
	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// Orchestrator implements the creator.Service interface. It is the only
// writer of entity state: every allocation flows through one of its update
// operations, and each operation ends with one full derived-stat
// recomputation against the current catalog snapshot.
type Orchestrator struct {
	libraryRepo libraryrepo.Repository
	draftRepo   draftrepo.Repository
	engine      engine.Engine
	catalog     catalog.Provider
	idgen       idgen.Generator
}

// New creates a new creator orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("entity")
	}

	return &Orchestrator{
		libraryRepo: cfg.LibraryRepo,
		draftRepo:   cfg.DraftRepo,
		engine:      cfg.Engine,
		catalog:     cfg.Catalog,
		idgen:       gen,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ creator.Service = (*Orchestrator)(nil)

// defaultEntity is the state a fresh or expired draft resets to.
func (o *Orchestrator) defaultEntity(ownerID string, kind entities.Kind, name string) *entities.Entity {
	return &entities.Entity{
		ID:      o.idgen.Generate(),
		OwnerID: ownerID,
		Kind:    kind,
		Name:    name,
		Level:   1,
		Size:    entities.SizeMedium,
	}
}

// compute projects derived stats for an entity against the current
// snapshot. Selected part references inside embedded items were resolved
// when the items were saved; entity-level derivation needs no resolution
// pass.
func (o *Orchestrator) compute(
	ctx context.Context,
	entity *entities.Entity,
	snap *catalog.Snapshot,
) (*engine.DerivedStats, error) {
	out, err := o.engine.ComputeDerivedStats(ctx, &engine.ComputeDerivedStatsInput{
		Entity:   entity,
		Snapshot: snap,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute derived stats")
	}
	return out.Stats, nil
}

// withDraft loads the working draft, applies mutate, recomputes stats as a
// single atomic projection, and persists the updated draft.
func (o *Orchestrator) withDraft(
	ctx context.Context,
	ownerID string,
	kind entities.Kind,
	mutate func(e *entities.Entity, snap *catalog.Snapshot) error,
) (*entities.Entity, *engine.DerivedStats, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", ownerID, vb)
	if kind == "" {
		vb.RequiredField("kind")
	}
	if err := vb.Build(); err != nil {
		return nil, nil, err
	}

	// A missing, stale, or discarded draft falls back to defaults rather
	// than surfacing an error: the draft is a cache of in-progress work,
	// and losing it resets the creator, it never breaks it.
	var entity *entities.Entity
	getOut, err := o.draftRepo.Get(ctx, draftrepo.GetInput{OwnerID: ownerID, Kind: kind})
	switch {
	case err == nil:
		entity = getOut.Draft.Entity
	case errors.IsNotFound(err):
		slog.WarnContext(ctx, "no usable draft, starting from defaults",
			"owner_id", ownerID,
			"kind", kind)
		entity = o.defaultEntity(ownerID, kind, "")
	default:
		return nil, nil, errors.Wrapf(err, "failed to load draft").
			WithMeta("owner_id", ownerID)
	}

	snap, err := o.catalog.Snapshot(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load catalog snapshot")
	}

	if mutate != nil {
		if err := mutate(entity, snap); err != nil {
			return nil, nil, err
		}
	}

	stats, err := o.compute(ctx, entity, snap)
	if err != nil {
		return nil, nil, err
	}

	if _, err := o.draftRepo.Put(ctx, draftrepo.PutInput{Entity: entity}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to persist draft")
	}

	return entity, stats, nil
}

// Draft lifecycle

// CreateDraft starts a fresh working draft, replacing any existing one.
func (o *Orchestrator) CreateDraft(ctx context.Context, input *creator.CreateDraftInput) (*creator.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if input.Kind == "" {
		vb.RequiredField("kind")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entity := o.defaultEntity(input.OwnerID, input.Kind, input.Name)

	snap, err := o.catalog.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot")
	}

	stats, err := o.compute(ctx, entity, snap)
	if err != nil {
		return nil, err
	}

	if _, err := o.draftRepo.Put(ctx, draftrepo.PutInput{Entity: entity}); err != nil {
		return nil, errors.Wrap(err, "failed to persist draft")
	}

	slog.InfoContext(ctx, "created draft",
		"owner_id", input.OwnerID,
		"kind", input.Kind,
		"entity_id", entity.ID)

	return &creator.CreateDraftOutput{Entity: entity, Stats: stats}, nil
}

// GetDraft loads the working draft and its current stat projection.
func (o *Orchestrator) GetDraft(ctx context.Context, input *creator.GetDraftInput) (*creator.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, nil)
	if err != nil {
		return nil, err
	}
	return &creator.GetDraftOutput{Entity: entity, Stats: stats}, nil
}

// DiscardDraft drops the working draft.
func (o *Orchestrator) DiscardDraft(ctx context.Context, input *creator.DiscardDraftInput) (*creator.DiscardDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{
		OwnerID: input.OwnerID,
		Kind:    input.Kind,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to discard draft")
	}
	return &creator.DiscardDraftOutput{}, nil
}

// Section updates

// UpdateProfile sets the draft's identity fields.
func (o *Orchestrator) UpdateProfile(ctx context.Context, input *creator.UpdateProfileInput) (*creator.UpdateProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		if input.Name != nil {
			e.Name = *input.Name
		}
		if input.Level != nil {
			e.Level = *input.Level
		}
		if input.Type != nil {
			e.Type = *input.Type
		}
		if input.Size != nil {
			e.Size = *input.Size
		}
		if input.NPC != nil {
			e.NPC = *input.NPC
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.UpdateProfileOutput{Entity: entity, Stats: stats}, nil
}

// UpdateAbilities sets all six ability scores.
func (o *Orchestrator) UpdateAbilities(ctx context.Context, input *creator.UpdateAbilitiesInput) (*creator.UpdateAbilitiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		e.Abilities = input.Abilities
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.UpdateAbilitiesOutput{Entity: entity, Stats: stats}, nil
}

// UpdateDefenses sets the bonus defense allocations.
func (o *Orchestrator) UpdateDefenses(ctx context.Context, input *creator.UpdateDefensesInput) (*creator.UpdateDefensesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		e.Defenses = input.Defenses
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.UpdateDefensesOutput{Entity: entity, Stats: stats}, nil
}

// UpdatePoolAllocation allocates the shared HP/EN pool.
func (o *Orchestrator) UpdatePoolAllocation(ctx context.Context, input *creator.UpdatePoolAllocationInput) (*creator.UpdatePoolAllocationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("hitPoints", input.HitPoints, vb)
	errors.ValidateNonNegative("energyPoints", input.EnergyPoints, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		e.HitPoints = input.HitPoints
		e.EnergyPoints = input.EnergyPoints
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.UpdatePoolAllocationOutput{Entity: entity, Stats: stats}, nil
}

// UpdateProficiencies allocates proficiency points between the power and
// martial tracks.
func (o *Orchestrator) UpdateProficiencies(ctx context.Context, input *creator.UpdateProficienciesInput) (*creator.UpdateProficienciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("power", input.Power, vb)
	errors.ValidateNonNegative("martial", input.Martial, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		e.PowerProficiency = input.Power
		e.MartialProficiency = input.Martial
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.UpdateProficienciesOutput{Entity: entity, Stats: stats}, nil
}

// UpdateSkill adds or updates a skill under the kind's proficiency policy.
func (o *Orchestrator) UpdateSkill(ctx context.Context, input *creator.UpdateSkillInput) (*creator.UpdateSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("skill.name", input.Skill.Name, vb)
	errors.ValidateNonNegative("skill.rank", input.Skill.Rank, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var applied entities.SkillEntry
	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		applied = o.engine.Profile(input.Kind).ApplySkillUpdate(e, input.Skill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.UpdateSkillOutput{Entity: entity, Stats: stats, Applied: applied}, nil
}

// RemoveSkill removes a skill entry entirely.
func (o *Orchestrator) RemoveSkill(ctx context.Context, input *creator.RemoveSkillInput) (*creator.RemoveSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		o.engine.Profile(input.Kind).RemoveSkill(e, input.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.RemoveSkillOutput{Entity: entity, Stats: stats}, nil
}

// AddTrait adds an entry to one of the trait lists. Lists have set
// semantics; adding a present entry is a no-op.
func (o *Orchestrator) AddTrait(ctx context.Context, input *creator.AddTraitInput) (*creator.AddTraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("value", input.Value, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		list, err := traitListFor(e, input.List)
		if err != nil {
			return err
		}
		for _, v := range *list {
			if v == input.Value {
				return nil
			}
		}
		*list = append(*list, input.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.AddTraitOutput{Entity: entity, Stats: stats}, nil
}

// RemoveTrait removes an entry from one of the trait lists.
func (o *Orchestrator) RemoveTrait(ctx context.Context, input *creator.RemoveTraitInput) (*creator.RemoveTraitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		list, err := traitListFor(e, input.List)
		if err != nil {
			return err
		}
		for i, v := range *list {
			if v == input.Value {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.RemoveTraitOutput{Entity: entity, Stats: stats}, nil
}

// AddFeat adds a manually chosen feat.
func (o *Orchestrator) AddFeat(ctx context.Context, input *creator.AddFeatInput) (*creator.AddFeatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("feat.id", input.Feat.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		for _, f := range e.Feats {
			if f.ID == input.Feat.ID {
				return errors.AlreadyExistsf("feat %s already taken", input.Feat.ID)
			}
		}
		e.Feats = append(e.Feats, input.Feat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.AddFeatOutput{Entity: entity, Stats: stats}, nil
}

// RemoveFeat removes a manually chosen feat.
func (o *Orchestrator) RemoveFeat(ctx context.Context, input *creator.RemoveFeatInput) (*creator.RemoveFeatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entity, stats, err := o.withDraft(ctx, input.OwnerID, input.Kind, func(e *entities.Entity, _ *catalog.Snapshot) error {
		for i, f := range e.Feats {
			if f.ID == input.FeatID {
				e.Feats = append(e.Feats[:i], e.Feats[i+1:]...)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &creator.RemoveFeatOutput{Entity: entity, Stats: stats}, nil
}

func traitListFor(e *entities.Entity, list creator.TraitList) (*[]string, error) {
	switch list {
	case creator.ListResistances:
		return &e.Resistances, nil
	case creator.ListWeaknesses:
		return &e.Weaknesses, nil
	case creator.ListImmunities:
		return &e.Immunities, nil
	case creator.ListConditionImmunities:
		return &e.ConditionImmunities, nil
	case creator.ListSenses:
		return &e.Senses, nil
	case creator.ListMovementTypes:
		return &e.MovementTypes, nil
	case creator.ListLanguages:
		return &e.Languages, nil
	default:
		return nil, errors.InvalidArgumentf("unknown trait list %q", list)
	}
}
