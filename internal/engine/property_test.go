package engine_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/engine"
	"github.com/forgelight/creator-api/internal/entities"
)

func drawLevel(t *rapid.T) float64 {
	return rapid.SampledFrom([]float64{
		0.25, 0.5, 0.75, 1, 2, 3, 5, 10, 20, 30,
	}).Draw(t, "level")
}

func drawAbilities(t *rapid.T) entities.Abilities {
	score := rapid.IntRange(-4, 7)
	return entities.Abilities{
		Strength:     score.Draw(t, "strength"),
		Vitality:     score.Draw(t, "vitality"),
		Agility:      score.Draw(t, "agility"),
		Acuity:       score.Draw(t, "acuity"),
		Intelligence: score.Draw(t, "intelligence"),
		Charisma:     score.Draw(t, "charisma"),
	}
}

func drawEntity(t *rapid.T) *entities.Entity {
	return &entities.Entity{
		Kind:               rapid.SampledFrom([]entities.Kind{entities.KindCreature, entities.KindCharacter}).Draw(t, "kind"),
		Level:              drawLevel(t),
		Size:               rapid.SampledFrom([]entities.Size{entities.SizeTiny, entities.SizeSmall, entities.SizeMedium, entities.SizeLarge, entities.SizeHuge}).Draw(t, "size"),
		NPC:                rapid.Bool().Draw(t, "npc"),
		Abilities:          drawAbilities(t),
		HitPoints:          rapid.IntRange(0, 30).Draw(t, "hit_points"),
		EnergyPoints:       rapid.IntRange(0, 30).Draw(t, "energy_points"),
		PowerProficiency:   rapid.IntRange(0, 8).Draw(t, "power_proficiency"),
		MartialProficiency: rapid.IntRange(0, 8).Draw(t, "martial_proficiency"),
		Resistances:        rapid.SliceOfN(rapid.StringMatching(`[a-z]{3,8}`), 0, 4).Draw(t, "resistances"),
		Weaknesses:         rapid.SliceOfN(rapid.StringMatching(`[a-z]{3,8}`), 0, 4).Draw(t, "weaknesses"),
	}
}

// Derivation is a pure function of entity state and snapshot: computing
// twice yields identical projections.
func TestPropertyDerivationIsDeterministic(t *testing.T) {
	eng := newTestEngine(t)
	snap := emptySnapshot()
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		e := drawEntity(t)

		first, err := eng.ComputeDerivedStats(ctx, &engine.ComputeDerivedStatsInput{Entity: e, Snapshot: snap})
		if err != nil {
			t.Fatalf("compute failed: %v", err)
		}
		second, err := eng.ComputeDerivedStats(ctx, &engine.ComputeDerivedStatsInput{Entity: e, Snapshot: snap})
		if err != nil {
			t.Fatalf("recompute failed: %v", err)
		}
		if *first.Stats != *second.Stats {
			t.Fatalf("recomputation diverged: %+v vs %+v", first.Stats, second.Stats)
		}
	})
}

func TestPropertySpentPlusRemainingEqualsBudget(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		e := drawEntity(t)

		prog := catalog.NewProgression([]catalog.ProgressionRow{{
			Level:         e.Level,
			HPEnPool:      map[string]int{string(e.Kind): rapid.IntRange(0, 60).Draw(t, "pool")},
			HPEnPoolNPC:   map[string]int{string(e.Kind): rapid.IntRange(0, 60).Draw(t, "pool_npc")},
			AbilityPoints: rapid.IntRange(0, 40).Draw(t, "ability_budget"),
			SkillPoints:   map[string]int{string(e.Kind): rapid.IntRange(0, 20).Draw(t, "skill_budget")},
			FeatPoints:    rapid.IntRange(0, 10).Draw(t, "feat_budget"),
		}})
		snap := catalog.NewSnapshot(nil, nil, nil, nil, prog)

		out, err := eng.ComputeDerivedStats(ctx, &engine.ComputeDerivedStatsInput{Entity: e, Snapshot: snap})
		if err != nil {
			t.Fatalf("compute failed: %v", err)
		}
		stats := out.Stats

		if stats.HPEnSpent+stats.HPEnRemaining != stats.HPEnPool {
			t.Fatalf("pool conservation violated: %d + %d != %d", stats.HPEnSpent, stats.HPEnRemaining, stats.HPEnPool)
		}
		if stats.AbilityPointsSpent+stats.AbilityPointsRemaining != stats.AbilityPointBudget {
			t.Fatalf("ability conservation violated")
		}
		if stats.SkillPointsSpent+stats.DefensePointsSpent+stats.SkillPointsRemaining != stats.SkillPointBudget {
			t.Fatalf("skill pool conservation violated")
		}
		if stats.FeatPointsSpent+stats.FeatPointsRemaining != stats.FeatPointBudget {
			t.Fatalf("feat conservation violated")
		}
		if stats.ProficiencySpent+stats.ProficiencyRemaining != stats.ProficiencyMax {
			t.Fatalf("proficiency conservation violated")
		}
	})
}

// The proficiency cap never decreases as levels rise.
func TestPropertyProficiencyCapMonotonic(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()
	levels := []float64{0.25, 0.5, 0.75}
	for l := 1; l <= 30; l++ {
		levels = append(levels, float64(l))
	}

	prev := 0
	for _, level := range levels {
		out, err := eng.ComputeDerivedStats(ctx, &engine.ComputeDerivedStatsInput{
			Entity: &entities.Entity{Kind: entities.KindCharacter, Level: level, Size: entities.SizeMedium},
		})
		if err != nil {
			t.Fatalf("compute failed at level %v: %v", level, err)
		}
		if out.Stats.ProficiencyMax < prev {
			t.Fatalf("proficiency cap dropped at level %v: %d < %d", level, out.Stats.ProficiencyMax, prev)
		}
		prev = out.Stats.ProficiencyMax
	}
}

// No sequence of duration transitions can leave modifiers on a duration
// under two effective rounds.
func TestPropertyDurationModifierInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := entities.DurationConfig{}

		steps := rapid.IntRange(1, 12).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				dt := rapid.SampledFrom([]string{
					entities.DurationInstant, entities.DurationRounds, entities.DurationPermanent,
				}).Draw(t, "type")
				d = engine.SetDurationType(d, dt)
			case 1:
				d = engine.SetDurationValue(d, rapid.IntRange(0, 10).Draw(t, "value"))
			case 2:
				d = engine.SetDurationModifiers(d,
					rapid.Bool().Draw(t, "focus"),
					rapid.Bool().Draw(t, "no_harm"),
					rapid.Bool().Draw(t, "ends_on_activation"),
					rapid.IntRange(0, 5).Draw(t, "sustain"))
			}

			short := d.Type != entities.DurationPermanent &&
				!(d.Type == entities.DurationRounds && d.Value >= 2)
			hasModifiers := d.Focus || d.NoHarm || d.EndsOnActivation || d.Sustain != 0
			if short && hasModifiers {
				t.Fatalf("modifiers survived on a short duration: %+v", d)
			}
		}
	})
}

// Under the creature lock policy, no sequence of skill updates can leave a
// listed skill non-proficient, and a clear attempt on an existing skill
// zeroes its rank.
func TestPropertySkillProficiencyLockMonotonic(t *testing.T) {
	profile := engine.CreatureProfile()
	names := []string{"Athletics", "Stealth", "Arcana"}

	rapid.Check(t, func(t *rapid.T) {
		e := &entities.Entity{Kind: entities.KindCreature, Level: 1}

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			name := rapid.SampledFrom(names).Draw(t, "name")

			if rapid.Bool().Draw(t, "remove") {
				profile.RemoveSkill(e, name)
			} else {
				requested := entities.SkillEntry{
					Name:       name,
					Rank:       rapid.IntRange(0, 5).Draw(t, "rank"),
					Proficient: rapid.Bool().Draw(t, "proficient"),
				}
				existed := e.FindSkill(name) >= 0

				applied := profile.ApplySkillUpdate(e, requested)
				if !applied.Proficient {
					t.Fatalf("creature skill %q applied without proficiency: %+v", name, applied)
				}
				if existed && !requested.Proficient && applied.Rank != 0 {
					t.Fatalf("clear attempt on %q kept rank %d", name, applied.Rank)
				}
			}

			for _, entry := range e.Skills {
				if !entry.Proficient {
					t.Fatalf("listed skill %q lost proficiency after %d steps", entry.Name, i+1)
				}
			}
		}
	})
}

// Aggregating two disjoint part lists equals aggregating their
// concatenation.
func TestPropertyAggregationIsAdditive(t *testing.T) {
	eng := newTestEngine(t)
	snap := costTestSnapshot()
	ctx := context.Background()

	partIDs := []string{"part_bolt", "part_shield", "part_haste", "part_missing"}

	drawParts := func(t *rapid.T, label string) []entities.SelectedPart {
		n := rapid.IntRange(0, 5).Draw(t, label+"_len")
		parts := make([]entities.SelectedPart, 0, n)
		for i := 0; i < n; i++ {
			parts = append(parts, entities.SelectedPart{
				PartID: rapid.SampledFrom(partIDs).Draw(t, label+"_id"),
				OptionLevels: [3]int{
					rapid.IntRange(0, 5).Draw(t, label+"_l0"),
					rapid.IntRange(0, 5).Draw(t, label+"_l1"),
					rapid.IntRange(0, 5).Draw(t, label+"_l2"),
				},
			})
		}
		return parts
	}

	rapid.Check(t, func(t *rapid.T) {
		a := drawParts(t, "a")
		b := drawParts(t, "b")

		outA, err := eng.AggregateCosts(ctx, &engine.AggregateCostsInput{Parts: a, Snapshot: snap})
		if err != nil {
			t.Fatalf("aggregate a failed: %v", err)
		}
		outB, err := eng.AggregateCosts(ctx, &engine.AggregateCostsInput{Parts: b, Snapshot: snap})
		if err != nil {
			t.Fatalf("aggregate b failed: %v", err)
		}
		outAB, err := eng.AggregateCosts(ctx, &engine.AggregateCostsInput{Parts: append(append([]entities.SelectedPart{}, a...), b...), Snapshot: snap})
		if err != nil {
			t.Fatalf("aggregate a+b failed: %v", err)
		}

		if outAB.TotalEnergy != outA.TotalEnergy+outB.TotalEnergy {
			t.Fatalf("energy not additive: %d != %d + %d", outAB.TotalEnergy, outA.TotalEnergy, outB.TotalEnergy)
		}
		if outAB.TotalTP != outA.TotalTP+outB.TotalTP {
			t.Fatalf("tp not additive: %d != %d + %d", outAB.TotalTP, outA.TotalTP, outB.TotalTP)
		}
	})
}
