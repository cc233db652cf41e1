package engine

import (
	"math"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

// Base combat constants.
const (
	baseHealth  = 8
	baseSpeed   = 6
	baseEvasion = 10
)

// levelScale clamps a level to at least 1 for the stat scaling factors.
// Quarter-level entities scale as level 1.
func levelScale(level float64) float64 {
	return math.Max(1, level)
}

// highestNonVitality returns the highest ability score excluding vitality,
// floored at zero.
func highestNonVitality(a entities.Abilities) int {
	highest := 0
	for _, v := range []int{a.Strength, a.Agility, a.Acuity, a.Intelligence, a.Charisma} {
		if v > highest {
			highest = v
		}
	}
	return highest
}

// maxProficiency is the level-derived cap on combined power and martial
// proficiency. Below level 1 it ramps in quarter steps.
func maxProficiency(level float64) int {
	if level < 1 {
		return int(math.Ceil(2 * level))
	}
	return 2 + int(math.Floor(level/5))
}

// mechanicalFeatPoints sums the feat-budget deltas generated automatically
// from trait lists, senses, and movement types. Each trait category charges
// its well-known feat's catalog cost per entry, with documented fallbacks
// when the lookup misses; senses and movement types map through fixed
// name-to-feat tables and cost nothing when unmapped.
func mechanicalFeatPoints(e *entities.Entity, snap *catalog.Snapshot, profile *KindProfile) int {
	total := 0

	traitLists := map[TraitCategory][]string{
		TraitResistance:        e.Resistances,
		TraitImmunity:          e.Immunities,
		TraitWeakness:          e.Weaknesses,
		TraitConditionImmunity: e.ConditionImmunities,
	}

	for _, category := range profile.TraitCategories {
		entries := traitLists[category]
		if len(entries) == 0 {
			continue
		}
		cost := snap.FeatPoints(profile.TraitFeatIDs[category], profile.TraitFallbacks[category])
		total += cost * len(entries)
	}

	for _, sense := range e.Senses {
		if featID, ok := profile.SenseFeatIDs[sense]; ok {
			total += snap.FeatPoints(featID, 0)
		}
	}
	for _, movement := range e.MovementTypes {
		if featID, ok := profile.MovementFeatIDs[movement]; ok {
			total += snap.FeatPoints(featID, 0)
		}
	}

	return total
}

// computeDerivedStats is the single atomic projection from entity state to
// derived stats. Every edit triggers one full recomputation; there is no
// incremental update path.
func computeDerivedStats(e *entities.Entity, snap *catalog.Snapshot, profile *KindProfile) *DerivedStats {
	prog := snap.Progression
	highest := highestNonVitality(e.Abilities)
	kind := string(e.Kind)

	stats := &DerivedStats{
		TrainingPoints:     prog.TrainingPoints(e.Level, highest),
		Currency:           prog.Currency(e.Level),
		HPEnPool:           prog.HPEnPool(e.Level, kind, e.NPC),
		ProficiencyBudget:  prog.ProficiencyBudget(e.Level, e.NPC),
		AbilityPointBudget: prog.AbilityPointBudget(e.Level, e.NPC),
		SkillPointBudget:   prog.SkillPointBudget(e.Level, kind),
	}

	stats.ProficiencyMax = maxProficiency(e.Level)
	stats.ProficiencySpent = e.PowerProficiency + e.MartialProficiency
	stats.ProficiencyRemaining = stats.ProficiencyMax - stats.ProficiencySpent

	stats.MechanicalFeatPoints = mechanicalFeatPoints(e, snap, profile)
	for _, feat := range e.Feats {
		stats.FeatPointsSpent += feat.Cost()
	}
	stats.FeatPointsSpent += stats.MechanicalFeatPoints
	stats.FeatPointBudget = prog.FeatPointBudget(e.Level, e.MartialProficiency)
	stats.FeatPointsRemaining = stats.FeatPointBudget - stats.FeatPointsSpent

	// Positive vitality scales with level; negative vitality is a one-time
	// penalty. A creature below level 1 with a negative score is not
	// penalized more than once.
	vitality := e.Abilities.Vitality
	vitalityContribution := vitality
	if vitality >= 0 {
		vitalityContribution = int(float64(vitality) * levelScale(e.Level))
	}
	stats.MaxHealth = baseHealth + vitalityContribution + e.HitPoints

	stats.MinEnergy = int(float64(highest) * levelScale(e.Level))
	stats.MaxEnergy = stats.MinEnergy + e.EnergyPoints

	stats.Speed = baseSpeed + int(math.Ceil(float64(e.Abilities.Agility)/2)) + e.Size.SpeedModifier()
	stats.Evasion = baseEvasion + e.Abilities.Agility

	stats.AbilityPointsSpent = e.Abilities.Sum()
	stats.AbilityPointsRemaining = stats.AbilityPointBudget - stats.AbilityPointsSpent

	stats.HPEnSpent = e.HitPoints + e.EnergyPoints
	stats.HPEnRemaining = stats.HPEnPool - stats.HPEnSpent

	for _, skill := range e.Skills {
		stats.SkillPointsSpent += skill.Rank
		if skill.Proficient {
			stats.SkillPointsSpent++
		}
	}
	// Each point of bonus defense costs two points from the skill budget;
	// defenses and skills share one pool.
	stats.DefensePointsSpent = e.Defenses.Sum() * 2
	stats.SkillPointsRemaining = stats.SkillPointBudget - stats.SkillPointsSpent - stats.DefensePointsSpent

	return stats
}
