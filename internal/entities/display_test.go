package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

func TestDisplayPart(t *testing.T) {
	p := catalog.Part{
		ID: "part_bolt", Name: "Bolt", Category: catalog.CategoryEffect,
		BaseEN: 2, BaseTP: 4,
	}

	d := entities.DisplayPart(p)
	assert.Equal(t, "part_bolt", d.ID)
	assert.Equal(t, "Bolt", d.Name)
	require.NotNil(t, d.Cost)
	assert.Equal(t, 4, *d.Cost)
	assert.Equal(t, []entities.StatColumn{
		{Label: "Category", Value: "effect"},
		{Label: "EN", Value: "2"},
		{Label: "TP", Value: "4"},
	}, d.StatColumns)
}

func TestDisplayFeat(t *testing.T) {
	f := catalog.Feat{ID: "feat_alert", Name: "Alert", Description: "Act first.", Points: 2}

	d := entities.DisplayFeat(f)
	assert.Equal(t, "Alert", d.Name)
	assert.Equal(t, "Act first.", d.Description)
	require.NotNil(t, d.Cost)
	assert.Equal(t, 2, *d.Cost)
}

func TestDisplayRoundTrip(t *testing.T) {
	t.Run("part", func(t *testing.T) {
		p := catalog.Part{ID: "part_bolt", Name: "Bolt", Category: catalog.CategoryEffect, BaseTP: 4}
		d := entities.DisplayPart(p)

		recovered, ok := entities.FromDisplay[catalog.Part](d)
		require.True(t, ok)
		assert.Equal(t, p, recovered)
		assert.Equal(t, d, entities.DisplayPart(recovered), "converting the recovered source is identity")
	})

	t.Run("feat", func(t *testing.T) {
		f := catalog.Feat{ID: "feat_alert", Name: "Alert", Points: 2}
		d := entities.DisplayFeat(f)

		recovered, ok := entities.FromDisplay[catalog.Feat](d)
		require.True(t, ok)
		assert.Equal(t, f, recovered)
		assert.Equal(t, d, entities.DisplayFeat(recovered))
	})

	t.Run("property", func(t *testing.T) {
		p := catalog.Property{ID: "prop_keen", Name: "Keen", TPCost: 3}
		d := entities.DisplayProperty(p)

		recovered, ok := entities.FromDisplay[catalog.Property](d)
		require.True(t, ok)
		assert.Equal(t, p, recovered)
	})

	t.Run("embedded item", func(t *testing.T) {
		item := entities.EmbeddedItem{ID: "power_1", Name: "Firebolt", Energy: 3, TrainingPoints: 8}
		d := entities.DisplayEmbedded(item)

		recovered, ok := entities.FromDisplay[entities.EmbeddedItem](d)
		require.True(t, ok)
		assert.Equal(t, item, recovered)
		assert.Equal(t, d, entities.DisplayEmbedded(recovered))
	})

	t.Run("wrong type recovery fails cleanly", func(t *testing.T) {
		d := entities.DisplayFeat(catalog.Feat{ID: "feat_alert"})
		_, ok := entities.FromDisplay[catalog.Part](d)
		assert.False(t, ok)
	})
}
