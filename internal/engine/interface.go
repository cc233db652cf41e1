// Package engine implements the point-budget and derived-stat calculation
// engine: pure, synchronous functions from entity state plus a catalog
// snapshot to costs, remaining budgets, and display-ready derived values.
//
// The engine is total over all reachable entity states. Missing catalog
// references degrade to documented zero/default costs; the only errors its
// methods return are nil-input guards.
package engine

import (
	"context"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/forgelight/creator-api/internal/engine Engine

// Engine provides the creator calculations
type Engine interface {
	// ComputeDerivedStats projects an entity's full budget and combat
	// stat set from its current state and the catalog snapshot.
	ComputeDerivedStats(ctx context.Context, input *ComputeDerivedStatsInput) (*ComputeDerivedStatsOutput, error)

	// AggregateCosts sums energy and training point costs over selected
	// parts, including per-part TP breakdown entries in input order.
	AggregateCosts(ctx context.Context, input *AggregateCostsInput) (*AggregateCostsOutput, error)

	// BuildMechanicParts synthesizes the mechanic parts implied by a
	// power's structured configuration for injection into cost
	// aggregation. Synthesized parts are never persisted.
	BuildMechanicParts(ctx context.Context, input *BuildMechanicPartsInput) (*BuildMechanicPartsOutput, error)

	// DeriveMechanicDisplay renders the display strings for a power's
	// structured configuration.
	DeriveMechanicDisplay(ctx context.Context, input *DeriveMechanicDisplayInput) (*DeriveMechanicDisplayOutput, error)

	// Utility methods
	SkillBonus(name string, rank int, proficient bool, abilities entities.Abilities, snap *catalog.Snapshot) int
	Profile(kind entities.Kind) *KindProfile
}
