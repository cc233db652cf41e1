package engine

import (
	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

// DerivedStats is the display-ready projection recomputed from entity state
// on every change. It has no identity and is never stored.
type DerivedStats struct {
	TrainingPoints     int `json:"training_points"`
	Currency           int `json:"currency"`
	HPEnPool           int `json:"hp_en_pool"`
	ProficiencyBudget  int `json:"proficiency_budget"`
	AbilityPointBudget int `json:"ability_point_budget"`
	SkillPointBudget   int `json:"skill_point_budget"`

	FeatPointBudget      int `json:"feat_point_budget"`
	FeatPointsSpent      int `json:"feat_points_spent"`
	FeatPointsRemaining  int `json:"feat_points_remaining"`
	MechanicalFeatPoints int `json:"mechanical_feat_points"`

	MaxHealth int `json:"max_health"`
	MinEnergy int `json:"min_energy"`
	MaxEnergy int `json:"max_energy"`
	Speed     int `json:"speed"`
	Evasion   int `json:"evasion"`

	AbilityPointsSpent     int `json:"ability_points_spent"`
	AbilityPointsRemaining int `json:"ability_points_remaining"`

	HPEnSpent     int `json:"hp_en_spent"`
	HPEnRemaining int `json:"hp_en_remaining"`

	SkillPointsSpent     int `json:"skill_points_spent"`
	SkillPointsRemaining int `json:"skill_points_remaining"`
	DefensePointsSpent   int `json:"defense_points_spent"`

	ProficiencyMax       int `json:"proficiency_max"`
	ProficiencySpent     int `json:"proficiency_spent"`
	ProficiencyRemaining int `json:"proficiency_remaining"`
}

// ComputeDerivedStatsInput contains the entity and catalog snapshot to
// project stats from
type ComputeDerivedStatsInput struct {
	Entity   *entities.Entity
	Snapshot *catalog.Snapshot
}

// ComputeDerivedStatsOutput contains the derived stat projection
type ComputeDerivedStatsOutput struct {
	Stats *DerivedStats
}

// CostEntry is one part's training point contribution, for UI transparency.
type CostEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// AggregateCostsInput contains the selected parts to cost
type AggregateCostsInput struct {
	Parts    []entities.SelectedPart
	Snapshot *catalog.Snapshot
}

// AggregateCostsOutput contains summed costs and the per-part breakdown
type AggregateCostsOutput struct {
	TotalEnergy int
	TotalTP     int
	TPBreakdown []CostEntry
}

// BuildMechanicPartsInput contains the power configuration to synthesize
// mechanic parts from
type BuildMechanicPartsInput struct {
	Config   entities.MechanicConfig
	Snapshot *catalog.Snapshot
}

// BuildMechanicPartsOutput contains the synthesized mechanic parts
type BuildMechanicPartsOutput struct {
	Parts []entities.SelectedPart
}

// DeriveMechanicDisplayInput contains the power configuration to render
type DeriveMechanicDisplayInput struct {
	Config entities.MechanicConfig
}

// DeriveMechanicDisplayOutput contains the rendered display strings. Damage
// is empty when the configuration produces no damage entry.
type DeriveMechanicDisplayOutput struct {
	ActionType string
	Range      string
	Area       string
	Duration   string
	Damage     string
}
