package engine

import (
	"context"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
	"github.com/forgelight/creator-api/internal/errors"
)

// Config holds the dependencies for the calculator
type Config struct {
	// Profiles overrides the per-kind policies. Nil uses the built-in
	// creature and character profiles.
	Profiles map[entities.Kind]*KindProfile
}

// Validate validates the Config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

type calculator struct {
	profiles map[entities.Kind]*KindProfile
}

// New creates the calculation engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	profiles := cfg.Profiles
	if profiles == nil {
		profiles = DefaultProfiles()
	}

	return &calculator{profiles: profiles}, nil
}

// Profile returns the policy for a kind. Unknown kinds fall back to the
// character profile so derivation stays total.
func (c *calculator) Profile(kind entities.Kind) *KindProfile {
	if p, ok := c.profiles[kind]; ok {
		return p
	}
	return CharacterProfile()
}

func (c *calculator) ComputeDerivedStats(
	_ context.Context,
	input *ComputeDerivedStatsInput,
) (*ComputeDerivedStatsOutput, error) {
	if input == nil || input.Entity == nil {
		return nil, errors.InvalidArgument("entity is required")
	}

	snap := input.Snapshot
	if snap == nil {
		snap = catalog.NewSnapshot(nil, nil, nil, nil, nil)
	}

	stats := computeDerivedStats(input.Entity, snap, c.Profile(input.Entity.Kind))
	return &ComputeDerivedStatsOutput{Stats: stats}, nil
}

func (c *calculator) AggregateCosts(
	_ context.Context,
	input *AggregateCostsInput,
) (*AggregateCostsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap := input.Snapshot
	if snap == nil {
		snap = catalog.NewSnapshot(nil, nil, nil, nil, nil)
	}

	out := aggregateCosts(input.Parts, snap)
	return &out, nil
}

func (c *calculator) BuildMechanicParts(
	_ context.Context,
	input *BuildMechanicPartsInput,
) (*BuildMechanicPartsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap := input.Snapshot
	if snap == nil {
		snap = catalog.NewSnapshot(nil, nil, nil, nil, nil)
	}

	return &BuildMechanicPartsOutput{Parts: buildMechanicParts(input.Config, snap)}, nil
}

func (c *calculator) DeriveMechanicDisplay(
	_ context.Context,
	input *DeriveMechanicDisplayInput,
) (*DeriveMechanicDisplayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cfg := input.Config
	return &DeriveMechanicDisplayOutput{
		ActionType: ActionTypeDisplay(cfg.ActionType, cfg.IsReaction),
		Range:      RangeDisplay(cfg.RangeSteps),
		Area:       AreaDisplay(cfg.Area),
		Duration:   DurationDisplay(cfg.Duration),
		Damage:     DamageDisplay(cfg.Damage),
	}, nil
}

func (c *calculator) SkillBonus(
	name string,
	rank int,
	proficient bool,
	abilities entities.Abilities,
	snap *catalog.Snapshot,
) int {
	return skillBonus(name, rank, proficient, abilities, snap)
}
