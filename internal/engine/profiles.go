package engine

import (
	"github.com/forgelight/creator-api/internal/entities"
)

// TraitCategory classifies the list-valued traits that generate mechanical
// feat points.
type TraitCategory string

// Trait categories
const (
	TraitResistance        TraitCategory = "resistance"
	TraitImmunity          TraitCategory = "immunity"
	TraitWeakness          TraitCategory = "weakness"
	TraitConditionImmunity TraitCategory = "condition_immunity"
)

// Well-known feat ids the mechanical feat cost lookups key on. The catalog
// may override the cost; the fallback applies when the lookup misses.
const (
	FeatIDResistance        = "feat_resistance"
	FeatIDImmunity          = "feat_immunity"
	FeatIDWeakness          = "feat_weakness"
	FeatIDConditionImmunity = "feat_condition_immunity"
)

// Fallback per-entry costs when the catalog carries no override. Weakness is
// negative: taking a weakness refunds a feat point.
var traitCostFallbacks = map[TraitCategory]int{
	TraitResistance:        1,
	TraitImmunity:          2,
	TraitWeakness:          -1,
	TraitConditionImmunity: 1,
}

var traitFeatIDs = map[TraitCategory]string{
	TraitResistance:        FeatIDResistance,
	TraitImmunity:          FeatIDImmunity,
	TraitWeakness:          FeatIDWeakness,
	TraitConditionImmunity: FeatIDConditionImmunity,
}

// senseFeatIDs maps sense names to the feat whose catalog cost each entry
// charges. Senses outside the table cost nothing.
var senseFeatIDs = map[string]string{
	"darkvision":  "feat_darkvision",
	"blindsight":  "feat_blindsight",
	"tremorsense": "feat_tremorsense",
	"truesight":   "feat_truesight",
}

// movementFeatIDs maps movement types to their costing feat.
var movementFeatIDs = map[string]string{
	"fly":    "feat_flight",
	"swim":   "feat_swimmer",
	"burrow": "feat_burrower",
	"climb":  "feat_climber",
}

// KindProfile parameterizes the budget engine per entity kind. The creature
// and character calculators share their formulas; what differs is policy,
// captured here instead of in copy-pasted per-kind calculators.
type KindProfile struct {
	Kind entities.Kind

	// SkillProficiencyLocked makes skill proficiency permanent: skills are
	// added proficient, and an attempt to clear proficiency on an existing
	// skill forces it back on and resets the rank to zero.
	SkillProficiencyLocked bool

	// TraitCategories lists which trait lists generate mechanical feat
	// points for this kind.
	TraitCategories []TraitCategory

	TraitFeatIDs    map[TraitCategory]string
	TraitFallbacks  map[TraitCategory]int
	SenseFeatIDs    map[string]string
	MovementFeatIDs map[string]string
}

// CreatureProfile returns the creature kind policy.
func CreatureProfile() *KindProfile {
	return &KindProfile{
		Kind:                   entities.KindCreature,
		SkillProficiencyLocked: true,
		TraitCategories: []TraitCategory{
			TraitResistance, TraitImmunity, TraitWeakness, TraitConditionImmunity,
		},
		TraitFeatIDs:    traitFeatIDs,
		TraitFallbacks:  traitCostFallbacks,
		SenseFeatIDs:    senseFeatIDs,
		MovementFeatIDs: movementFeatIDs,
	}
}

// CharacterProfile returns the character kind policy. Characters may untrain
// skill proficiency; the trait cost tables are shared with creatures.
func CharacterProfile() *KindProfile {
	p := CreatureProfile()
	p.Kind = entities.KindCharacter
	p.SkillProficiencyLocked = false
	return p
}

// DefaultProfiles returns the built-in kind profiles keyed by kind.
func DefaultProfiles() map[entities.Kind]*KindProfile {
	return map[entities.Kind]*KindProfile{
		entities.KindCreature:  CreatureProfile(),
		entities.KindCharacter: CharacterProfile(),
	}
}

// NormalizeSkillEntry applies this profile's proficiency policy to a
// requested skill update. existing is nil when the skill is being added.
func (p *KindProfile) NormalizeSkillEntry(existing *entities.SkillEntry, requested entities.SkillEntry) entities.SkillEntry {
	if !p.SkillProficiencyLocked {
		return requested
	}

	if requested.Proficient {
		return requested
	}

	// Attempted to clear proficiency under the lock policy.
	if existing != nil && existing.Proficient {
		return entities.SkillEntry{Name: requested.Name, Rank: 0, Proficient: true}
	}

	requested.Proficient = true
	return requested
}
