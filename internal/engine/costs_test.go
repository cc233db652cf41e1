package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/engine"
	"github.com/forgelight/creator-api/internal/entities"
)

func costTestSnapshot() *catalog.Snapshot {
	parts := []catalog.Part{
		{
			ID: "part_bolt", Name: "Bolt", Category: catalog.CategoryEffect,
			BaseEN: 2, BaseTP: 4,
			Options: [3]catalog.PartOption{
				{Description: "More dice", EnergyPerLevel: 1, TPPerLevel: 2},
				{Description: "Bigger dice", EnergyPerLevel: 2, TPPerLevel: 3},
			},
		},
		{
			ID: "part_shield", Name: "Shield", Category: catalog.CategoryEffect,
			BaseEN: 1, BaseTP: 3,
		},
		{
			// Third option slot disabled: no description, no cost deltas.
			ID: "part_haste", Name: "Haste", Category: catalog.CategoryEnhancement,
			BaseEN: 0, BaseTP: 5,
			Options: [3]catalog.PartOption{
				{EnergyPerLevel: 1},
			},
		},
	}
	return catalog.NewSnapshot(parts, nil, nil, nil, nil)
}

func aggregate(t *testing.T, eng engine.Engine, parts []entities.SelectedPart, snap *catalog.Snapshot) *engine.AggregateCostsOutput {
	t.Helper()
	out, err := eng.AggregateCosts(context.Background(), &engine.AggregateCostsInput{
		Parts:    parts,
		Snapshot: snap,
	})
	require.NoError(t, err)
	return out
}

func TestAggregateCosts_BaseCostOnly(t *testing.T) {
	eng := newTestEngine(t)
	snap := costTestSnapshot()

	out := aggregate(t, eng, []entities.SelectedPart{
		{PartID: "part_shield", Category: catalog.CategoryEffect},
	}, snap)

	assert.Equal(t, 1, out.TotalEnergy)
	assert.Equal(t, 3, out.TotalTP)
	assert.Equal(t, []engine.CostEntry{{Label: "Shield", Value: 3}}, out.TPBreakdown)
}

func TestAggregateCosts_OptionLevelsScaleCost(t *testing.T) {
	eng := newTestEngine(t)
	snap := costTestSnapshot()

	out := aggregate(t, eng, []entities.SelectedPart{
		{PartID: "part_bolt", Category: catalog.CategoryEffect, OptionLevels: [3]int{3, 1, 0}},
	}, snap)

	// base 2 + 3*1 + 1*2 energy; base 4 + 3*2 + 1*3 tp
	assert.Equal(t, 7, out.TotalEnergy)
	assert.Equal(t, 13, out.TotalTP)
}

func TestAggregateCosts_DisabledOptionNeverScales(t *testing.T) {
	eng := newTestEngine(t)
	snap := costTestSnapshot()

	out := aggregate(t, eng, []entities.SelectedPart{
		{PartID: "part_haste", Category: catalog.CategoryEnhancement, OptionLevels: [3]int{2, 5, 9}},
	}, snap)

	// Only the first option is enabled; levels on disabled slots are inert.
	assert.Equal(t, 2, out.TotalEnergy)
	assert.Equal(t, 5, out.TotalTP)
}

func TestAggregateCosts_MissingPartContributesNothing(t *testing.T) {
	eng := newTestEngine(t)
	snap := costTestSnapshot()

	out := aggregate(t, eng, []entities.SelectedPart{
		{PartID: "part_gone", Category: catalog.CategoryEffect, OptionLevels: [3]int{4, 4, 4}},
		{PartID: "part_shield", Category: catalog.CategoryEffect},
	}, snap)

	assert.Equal(t, 1, out.TotalEnergy)
	assert.Equal(t, 3, out.TotalTP)
	assert.Len(t, out.TPBreakdown, 1, "missing parts get no breakdown entry")
}

func TestAggregateCosts_BreakdownPreservesInputOrder(t *testing.T) {
	eng := newTestEngine(t)
	snap := costTestSnapshot()

	out := aggregate(t, eng, []entities.SelectedPart{
		{PartID: "part_haste"},
		{PartID: "part_bolt"},
		{PartID: "part_shield"},
	}, snap)

	labels := make([]string, 0, len(out.TPBreakdown))
	for _, entry := range out.TPBreakdown {
		labels = append(labels, entry.Label)
	}
	assert.Equal(t, []string{"Haste", "Bolt", "Shield"}, labels)
}

func TestAggregateCosts_EmptyAndNil(t *testing.T) {
	eng := newTestEngine(t)

	out := aggregate(t, eng, nil, costTestSnapshot())
	assert.Equal(t, 0, out.TotalEnergy)
	assert.Equal(t, 0, out.TotalTP)
	assert.Empty(t, out.TPBreakdown)

	_, err := eng.AggregateCosts(context.Background(), nil)
	require.Error(t, err)
}

func TestResolveParts(t *testing.T) {
	snap := costTestSnapshot()

	parts := []entities.SelectedPart{
		{PartID: "part_bolt"},
		{PartID: "part_removed"},
		{PartID: "part_shield"},
	}

	resolved := engine.ResolveParts(parts, snap)
	require.Len(t, resolved, 2)
	assert.Equal(t, "part_bolt", resolved[0].PartID)
	assert.Equal(t, "part_shield", resolved[1].PartID)
}
