// Package creator defines the interface for creator operations
package creator

//go:generate mockgen -destination=mock/mock_service.go -package=creatormock github.com/forgelight/creator-api/internal/services/creator Service

import (
	"context"

	"github.com/forgelight/creator-api/internal/engine"
	"github.com/forgelight/creator-api/internal/entities"
)

// TraitList names the list-valued entity fields the trait operations act on.
type TraitList string

// Trait lists
const (
	ListResistances         TraitList = "resistances"
	ListWeaknesses          TraitList = "weaknesses"
	ListImmunities          TraitList = "immunities"
	ListConditionImmunities TraitList = "condition_immunities"
	ListSenses              TraitList = "senses"
	ListMovementTypes       TraitList = "movement_types"
	ListLanguages           TraitList = "languages"
)

// Service defines the interface for creator operations. Every state-changing
// operation returns the updated entity together with a freshly computed
// derived stat projection; callers never mutate entity state directly.
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	DiscardDraft(ctx context.Context, input *DiscardDraftInput) (*DiscardDraftOutput, error)

	// Section-based updates
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)
	UpdateAbilities(ctx context.Context, input *UpdateAbilitiesInput) (*UpdateAbilitiesOutput, error)
	UpdateDefenses(ctx context.Context, input *UpdateDefensesInput) (*UpdateDefensesOutput, error)
	UpdatePoolAllocation(ctx context.Context, input *UpdatePoolAllocationInput) (*UpdatePoolAllocationOutput, error)
	UpdateProficiencies(ctx context.Context, input *UpdateProficienciesInput) (*UpdateProficienciesOutput, error)
	UpdateSkill(ctx context.Context, input *UpdateSkillInput) (*UpdateSkillOutput, error)
	RemoveSkill(ctx context.Context, input *RemoveSkillInput) (*RemoveSkillOutput, error)
	AddTrait(ctx context.Context, input *AddTraitInput) (*AddTraitOutput, error)
	RemoveTrait(ctx context.Context, input *RemoveTraitInput) (*RemoveTraitOutput, error)
	AddFeat(ctx context.Context, input *AddFeatInput) (*AddFeatOutput, error)
	RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*RemoveFeatOutput, error)

	// Power derivation
	DerivePower(ctx context.Context, input *DerivePowerInput) (*DerivePowerOutput, error)
	UpdatePowerDuration(ctx context.Context, input *UpdatePowerDurationInput) (*UpdatePowerDurationOutput, error)

	// Library operations
	SaveToLibrary(ctx context.Context, input *SaveToLibraryInput) (*SaveToLibraryOutput, error)
	GetEntity(ctx context.Context, input *GetEntityInput) (*GetEntityOutput, error)
	ListLibrary(ctx context.Context, input *ListLibraryInput) (*ListLibraryOutput, error)
	ListPublic(ctx context.Context, input *ListPublicInput) (*ListPublicOutput, error)
	DeleteEntity(ctx context.Context, input *DeleteEntityInput) (*DeleteEntityOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for starting a fresh draft
type CreateDraftInput struct {
	OwnerID string
	Kind    entities.Kind
	Name    string // Optional
}

// CreateDraftOutput defines the response for starting a fresh draft
type CreateDraftOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// GetDraftInput defines the request for loading the working draft
type GetDraftInput struct {
	OwnerID string
	Kind    entities.Kind
}

// GetDraftOutput defines the response for loading the working draft
type GetDraftOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// DiscardDraftInput defines the request for discarding the working draft
type DiscardDraftInput struct {
	OwnerID string
	Kind    entities.Kind
}

// DiscardDraftOutput defines the response for discarding the working draft
type DiscardDraftOutput struct{}

// Section update types

// UpdateProfileInput defines the request for updating draft identity fields
type UpdateProfileInput struct {
	OwnerID string
	Kind    entities.Kind

	Name  *string
	Level *float64
	Type  *string
	Size  *entities.Size
	NPC   *bool
}

// UpdateProfileOutput defines the response for updating draft identity fields
type UpdateProfileOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// UpdateAbilitiesInput defines the request for setting ability scores
type UpdateAbilitiesInput struct {
	OwnerID   string
	Kind      entities.Kind
	Abilities entities.Abilities
}

// UpdateAbilitiesOutput defines the response for setting ability scores
type UpdateAbilitiesOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// UpdateDefensesInput defines the request for setting bonus defenses
type UpdateDefensesInput struct {
	OwnerID  string
	Kind     entities.Kind
	Defenses entities.Defenses
}

// UpdateDefensesOutput defines the response for setting bonus defenses
type UpdateDefensesOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// UpdatePoolAllocationInput defines the request for allocating the shared
// HP/EN pool
type UpdatePoolAllocationInput struct {
	OwnerID      string
	Kind         entities.Kind
	HitPoints    int
	EnergyPoints int
}

// UpdatePoolAllocationOutput defines the response for allocating the shared
// HP/EN pool
type UpdatePoolAllocationOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// UpdateProficienciesInput defines the request for allocating proficiency
// points between the power and martial tracks
type UpdateProficienciesInput struct {
	OwnerID string
	Kind    entities.Kind
	Power   int
	Martial int
}

// UpdateProficienciesOutput defines the response for allocating proficiency
// points
type UpdateProficienciesOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// UpdateSkillInput defines the request for adding or updating a skill
type UpdateSkillInput struct {
	OwnerID string
	Kind    entities.Kind
	Skill   entities.SkillEntry
}

// UpdateSkillOutput defines the response for adding or updating a skill.
// Applied is the entry after the kind's proficiency policy ran; it may
// differ from the requested entry.
type UpdateSkillOutput struct {
	Entity  *entities.Entity
	Stats   *engine.DerivedStats
	Applied entities.SkillEntry
}

// RemoveSkillInput defines the request for removing a skill
type RemoveSkillInput struct {
	OwnerID string
	Kind    entities.Kind
	Name    string
}

// RemoveSkillOutput defines the response for removing a skill
type RemoveSkillOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// AddTraitInput defines the request for adding a trait list entry
type AddTraitInput struct {
	OwnerID string
	Kind    entities.Kind
	List    TraitList
	Value   string
}

// AddTraitOutput defines the response for adding a trait list entry
type AddTraitOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// RemoveTraitInput defines the request for removing a trait list entry
type RemoveTraitInput struct {
	OwnerID string
	Kind    entities.Kind
	List    TraitList
	Value   string
}

// RemoveTraitOutput defines the response for removing a trait list entry
type RemoveTraitOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// AddFeatInput defines the request for adding a manual feat
type AddFeatInput struct {
	OwnerID string
	Kind    entities.Kind
	Feat    entities.FeatEntry
}

// AddFeatOutput defines the response for adding a manual feat
type AddFeatOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// RemoveFeatInput defines the request for removing a manual feat
type RemoveFeatInput struct {
	OwnerID string
	Kind    entities.Kind
	FeatID  string
}

// RemoveFeatOutput defines the response for removing a manual feat
type RemoveFeatOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// Power derivation types

// DerivePowerInput defines the request for costing a power from its
// selected parts and structured mechanic configuration
type DerivePowerInput struct {
	Config entities.MechanicConfig
	Parts  []entities.SelectedPart
}

// DerivePowerOutput defines the response for costing a power
type DerivePowerOutput struct {
	TotalEnergy int
	TotalTP     int
	TPBreakdown []engine.CostEntry
	Display     *engine.DeriveMechanicDisplayOutput
}

// DurationModifiers bundles the four duration modifier settings.
type DurationModifiers struct {
	Focus            bool
	NoHarm           bool
	EndsOnActivation bool
	Sustain          int
}

// UpdatePowerDurationInput defines the request for transitioning a power's
/// duration configuration. Exactly the set fields are applied, in order:
// type, then value, then modifiers.
type UpdatePowerDurationInput struct {
	Duration entities.DurationConfig

	SetType      *string
	SetValue     *int
	SetModifiers *DurationModifiers
}

// UpdatePowerDurationOutput defines the response for a duration transition.
// The returned configuration always satisfies the modifier invariant.
type UpdatePowerDurationOutput struct {
	Duration entities.DurationConfig
}

// Library types

// SaveToLibraryInput defines the request for saving the working draft to
// the owner's library
type SaveToLibraryInput struct {
	OwnerID string
	Kind    entities.Kind
	Public  bool
}

// SaveToLibraryOutput defines the response for saving to the library
type SaveToLibraryOutput struct {
	Entity *entities.Entity
}

// GetEntityInput defines the request for loading a saved entity
type GetEntityInput struct {
	ID string
}

// GetEntityOutput defines the response for loading a saved entity
type GetEntityOutput struct {
	Entity *entities.Entity
	Stats  *engine.DerivedStats
}

// ListLibraryInput defines the request for listing an owner's library
type ListLibraryInput struct {
	OwnerID string
}

// ListLibraryOutput defines the response for listing an owner's library
type ListLibraryOutput struct {
	Entities []*entities.Entity
}

// ListPublicInput defines the request for listing the public library
type ListPublicInput struct{}

// ListPublicOutput defines the response for listing the public library
type ListPublicOutput struct {
	Entities []*entities.Entity
}

// DeleteEntityInput defines the request for deleting a saved entity
type DeleteEntityInput struct {
	ID string
}

// DeleteEntityOutput defines the response for deleting a saved entity
type DeleteEntityOutput struct{}
