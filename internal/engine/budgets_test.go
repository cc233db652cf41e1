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

func newTestEngine(t *testing.T) engine.Engine {
	t.Helper()
	eng, err := engine.New(&engine.Config{})
	require.NoError(t, err)
	return eng
}

func emptySnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot(nil, nil, nil, nil, nil)
}

func computeStats(t *testing.T, eng engine.Engine, e *entities.Entity, snap *catalog.Snapshot) *engine.DerivedStats {
	t.Helper()
	out, err := eng.ComputeDerivedStats(context.Background(), &engine.ComputeDerivedStatsInput{
		Entity:   e,
		Snapshot: snap,
	})
	require.NoError(t, err)
	return out.Stats
}

func TestComputeDerivedStats_LevelOneBaseline(t *testing.T) {
	eng := newTestEngine(t)

	stats := computeStats(t, eng, &entities.Entity{
		Kind:  entities.KindCharacter,
		Level: 1,
		Size:  entities.SizeMedium,
	}, emptySnapshot())

	assert.Equal(t, 8, stats.MaxHealth)
	assert.Equal(t, 6, stats.Speed)
	assert.Equal(t, 10, stats.Evasion)
	assert.Equal(t, 0, stats.MinEnergy)
	assert.Equal(t, 0, stats.MaxEnergy)
	assert.Equal(t, 2, stats.ProficiencyMax)
}

func TestComputeDerivedStats_VitalityContribution(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name      string
		level     float64
		vitality  int
		maxHealth int
	}{
		{"positive vitality scales with level", 5, 3, 8 + 15},
		{"negative vitality is a one-time penalty", 5, -2, 8 - 2},
		{"positive vitality below level one scales as level one", 0.5, 3, 8 + 3},
		{"negative vitality below level one", 0.25, -2, 8 - 2},
		{"zero vitality", 10, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := computeStats(t, eng, &entities.Entity{
				Kind:      entities.KindCreature,
				Level:     tt.level,
				Size:      entities.SizeMedium,
				Abilities: entities.Abilities{Vitality: tt.vitality},
			}, emptySnapshot())
			assert.Equal(t, tt.maxHealth, stats.MaxHealth)
		})
	}
}

func TestComputeDerivedStats_EnergyFromHighestAbility(t *testing.T) {
	eng := newTestEngine(t)

	e := &entities.Entity{
		Kind:  entities.KindCharacter,
		Level: 4,
		Size:  entities.SizeMedium,
		Abilities: entities.Abilities{
			Intelligence: 5,
			Strength:     2,
			// Vitality never feeds the energy floor.
			Vitality: 7,
		},
		EnergyPoints: 3,
	}

	stats := computeStats(t, eng, e, emptySnapshot())
	assert.Equal(t, 20, stats.MinEnergy)
	assert.Equal(t, 23, stats.MaxEnergy)
}

func TestComputeDerivedStats_NegativeAbilitiesFloorAtZero(t *testing.T) {
	eng := newTestEngine(t)

	stats := computeStats(t, eng, &entities.Entity{
		Kind:  entities.KindCharacter,
		Level: 3,
		Size:  entities.SizeMedium,
		Abilities: entities.Abilities{
			Strength: -2, Agility: -1, Acuity: -3, Intelligence: -1, Charisma: -4,
		},
	}, emptySnapshot())

	assert.Equal(t, 0, stats.MinEnergy, "highest non-vitality ability floors at zero")
}

func TestComputeDerivedStats_SpeedAndEvasion(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name    string
		agility int
		size    entities.Size
		speed   int
		evasion int
	}{
		{"medium with even agility", 4, entities.SizeMedium, 8, 14},
		{"odd agility rounds up", 3, entities.SizeMedium, 8, 13},
		{"tiny size penalty", 0, entities.SizeTiny, 4, 10},
		{"huge size bonus", 2, entities.SizeHuge, 9, 12},
		{"negative agility slows and lowers evasion", -2, entities.SizeMedium, 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := computeStats(t, eng, &entities.Entity{
				Kind:      entities.KindCreature,
				Level:     1,
				Size:      tt.size,
				Abilities: entities.Abilities{Agility: tt.agility},
			}, emptySnapshot())
			assert.Equal(t, tt.speed, stats.Speed)
			assert.Equal(t, tt.evasion, stats.Evasion)
		})
	}
}

func TestComputeDerivedStats_ProficiencyMax(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		level float64
		max   int
	}{
		{0.25, 1},
		{0.5, 1},
		{0.75, 2},
		{1, 2},
		{4, 2},
		{5, 3},
		{14, 4},
		{30, 8},
	}

	for _, tt := range tests {
		stats := computeStats(t, eng, &entities.Entity{
			Kind:  entities.KindCharacter,
			Level: tt.level,
			Size:  entities.SizeMedium,
		}, emptySnapshot())
		assert.Equalf(t, tt.max, stats.ProficiencyMax, "level %v", tt.level)
	}
}

func TestComputeDerivedStats_ProficiencySpend(t *testing.T) {
	eng := newTestEngine(t)

	stats := computeStats(t, eng, &entities.Entity{
		Kind:             entities.KindCharacter,
		Level:            10,
		Size:             entities.SizeMedium,
		PowerProficiency: 3, MartialProficiency: 1,
	}, emptySnapshot())

	assert.Equal(t, 4, stats.ProficiencyMax)
	assert.Equal(t, 4, stats.ProficiencySpent)
	assert.Equal(t, 0, stats.ProficiencyRemaining)
}

func TestComputeDerivedStats_DefensesShareSkillPool(t *testing.T) {
	eng := newTestEngine(t)

	prog := catalog.NewProgression([]catalog.ProgressionRow{{
		Level:       3,
		SkillPoints: map[string]int{"character": 10},
	}})
	snap := catalog.NewSnapshot(nil, nil, nil, nil, prog)

	e := &entities.Entity{
		Kind:  entities.KindCharacter,
		Level: 3,
		Size:  entities.SizeMedium,
		Skills: []entities.SkillEntry{
			{Name: "athletics", Rank: 2, Proficient: true},
			{Name: "stealth", Rank: 1},
		},
		Defenses: entities.Defenses{Strength: 1, Agility: 1},
	}

	stats := computeStats(t, eng, e, snap)
	assert.Equal(t, 10, stats.SkillPointBudget)
	assert.Equal(t, 4, stats.SkillPointsSpent, "rank points plus one per proficiency")
	assert.Equal(t, 4, stats.DefensePointsSpent, "each defense point costs two")
	assert.Equal(t, 2, stats.SkillPointsRemaining)
}

func TestComputeDerivedStats_BudgetsFromProgression(t *testing.T) {
	eng := newTestEngine(t)

	prog := catalog.NewProgression([]catalog.ProgressionRow{{
		Level:                6,
		TrainingPoints:       40,
		TPPerAbility:         2,
		Currency:             500,
		HPEnPool:             map[string]int{"character": 12},
		HPEnPoolNPC:          map[string]int{"character": 6},
		Proficiency:          3,
		AbilityPoints:        14,
		SkillPoints:          map[string]int{"character": 9},
		FeatPoints:           4,
		FeatPointsPerMartial: 1,
	}})
	snap := catalog.NewSnapshot(nil, nil, nil, nil, prog)

	e := &entities.Entity{
		Kind:               entities.KindCharacter,
		Level:              6,
		Size:               entities.SizeMedium,
		Abilities:          entities.Abilities{Acuity: 5},
		MartialProficiency: 2,
		HitPoints:          7,
		EnergyPoints:       3,
	}

	stats := computeStats(t, eng, e, snap)
	assert.Equal(t, 50, stats.TrainingPoints, "base plus per-ability bonus from highest")
	assert.Equal(t, 500, stats.Currency)
	assert.Equal(t, 12, stats.HPEnPool)
	assert.Equal(t, 10, stats.HPEnSpent)
	assert.Equal(t, 2, stats.HPEnRemaining)
	assert.Equal(t, 3, stats.ProficiencyBudget)
	assert.Equal(t, 14, stats.AbilityPointBudget)
	assert.Equal(t, 9, stats.SkillPointBudget)
	assert.Equal(t, 6, stats.FeatPointBudget, "base plus per-martial bonus")
}

func TestComputeDerivedStats_NPCVariantsUsed(t *testing.T) {
	eng := newTestEngine(t)

	prog := catalog.NewProgression([]catalog.ProgressionRow{{
		Level:            2,
		HPEnPool:         map[string]int{"creature": 10},
		HPEnPoolNPC:      map[string]int{"creature": 4},
		Proficiency:      3,
		ProficiencyNPC:   1,
		AbilityPoints:    12,
		AbilityPointsNPC: 8,
	}})
	snap := catalog.NewSnapshot(nil, nil, nil, nil, prog)

	e := &entities.Entity{
		Kind:  entities.KindCreature,
		Level: 2,
		Size:  entities.SizeMedium,
		NPC:   true,
	}

	stats := computeStats(t, eng, e, snap)
	assert.Equal(t, 4, stats.HPEnPool)
	assert.Equal(t, 1, stats.ProficiencyBudget)
	assert.Equal(t, 8, stats.AbilityPointBudget)
}

func TestComputeDerivedStats_UnknownLevelDegradesToZeroBudgets(t *testing.T) {
	eng := newTestEngine(t)

	stats := computeStats(t, eng, &entities.Entity{
		Kind:  entities.KindCharacter,
		Level: 17,
		Size:  entities.SizeMedium,
	}, emptySnapshot())

	assert.Equal(t, 0, stats.TrainingPoints)
	assert.Equal(t, 0, stats.Currency)
	assert.Equal(t, 0, stats.HPEnPool)
	assert.Equal(t, 0, stats.SkillPointBudget)
}

func TestComputeDerivedStats_MechanicalFeatPoints(t *testing.T) {
	eng := newTestEngine(t)

	t.Run("fallback costs", func(t *testing.T) {
		e := &entities.Entity{
			Kind:        entities.KindCreature,
			Level:       1,
			Size:        entities.SizeMedium,
			Resistances: []string{"fire"},
			Immunities:  []string{"poison"},
		}
		stats := computeStats(t, eng, e, emptySnapshot())
		assert.Equal(t, 3, stats.MechanicalFeatPoints)
	})

	t.Run("weakness refunds a point", func(t *testing.T) {
		e := &entities.Entity{
			Kind:       entities.KindCreature,
			Level:      1,
			Size:       entities.SizeMedium,
			Weaknesses: []string{"cold", "radiant"},
		}
		stats := computeStats(t, eng, e, emptySnapshot())
		assert.Equal(t, -2, stats.MechanicalFeatPoints)
	})

	t.Run("catalog override wins over fallback", func(t *testing.T) {
		feats := []catalog.Feat{{ID: engine.FeatIDResistance, Name: "Resistance", Points: 3}}
		snap := catalog.NewSnapshot(nil, feats, nil, nil, nil)
		e := &entities.Entity{
			Kind:        entities.KindCreature,
			Level:       1,
			Size:        entities.SizeMedium,
			Resistances: []string{"fire", "cold"},
		}
		stats := computeStats(t, eng, e, snap)
		assert.Equal(t, 6, stats.MechanicalFeatPoints)
	})

	t.Run("mapped senses and movement charge their feat cost", func(t *testing.T) {
		feats := []catalog.Feat{
			{ID: "feat_darkvision", Name: "Darkvision", Points: 1},
			{ID: "feat_flight", Name: "Flight", Points: 2},
		}
		snap := catalog.NewSnapshot(nil, feats, nil, nil, nil)
		e := &entities.Entity{
			Kind:          entities.KindCreature,
			Level:         1,
			Size:          entities.SizeMedium,
			Senses:        []string{"darkvision", "keen smell"},
			MovementTypes: []string{"fly", "walk"},
		}
		stats := computeStats(t, eng, e, snap)
		assert.Equal(t, 3, stats.MechanicalFeatPoints, "unmapped entries cost nothing")
	})

	t.Run("mechanical points count against the feat budget", func(t *testing.T) {
		points := 2
		e := &entities.Entity{
			Kind:        entities.KindCreature,
			Level:       1,
			Size:        entities.SizeMedium,
			Resistances: []string{"fire"},
			Feats: []entities.FeatEntry{
				{ID: "feat_tough", Name: "Tough", Points: &points},
				{ID: "feat_alert", Name: "Alert"},
			},
		}
		stats := computeStats(t, eng, e, emptySnapshot())
		assert.Equal(t, 1, stats.MechanicalFeatPoints)
		assert.Equal(t, 4, stats.FeatPointsSpent, "explicit cost, default cost, and mechanical points")
	})
}

func TestComputeDerivedStats_NilEntity(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.ComputeDerivedStats(context.Background(), &engine.ComputeDerivedStatsInput{})
	require.Error(t, err)

	_, err = eng.ComputeDerivedStats(context.Background(), nil)
	require.Error(t, err)
}
