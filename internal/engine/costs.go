package engine

import (
	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

// partCost returns the energy and training point cost of one selected part:
// base cost plus each enabled option's per-level delta times its chosen
// level. Disabled options never scale cost regardless of their level.
func partCost(ref *catalog.Part, selected entities.SelectedPart) (energy, tp int) {
	energy = ref.BaseEN
	tp = ref.BaseTP

	for n := 0; n < len(ref.Options); n++ {
		if !ref.HasOption(n) {
			continue
		}
		level := selected.OptionLevels[n]
		energy += ref.Options[n].EnergyPerLevel * level
		tp += ref.Options[n].TPPerLevel * level
	}
	return energy, tp
}

// aggregateCosts sums costs across selected parts. Parts whose catalog
// reference no longer resolves contribute zero cost and no breakdown entry,
// so a stale or partially loaded catalog degrades budgets instead of
// crashing a computation. Aggregation is additive over disjoint part lists.
func aggregateCosts(parts []entities.SelectedPart, snap *catalog.Snapshot) AggregateCostsOutput {
	out := AggregateCostsOutput{
		TPBreakdown: make([]CostEntry, 0, len(parts)),
	}

	for _, selected := range parts {
		ref := snap.PartByID(selected.PartID)
		if ref == nil {
			continue
		}

		energy, tp := partCost(ref, selected)
		out.TotalEnergy += energy
		out.TotalTP += tp
		out.TPBreakdown = append(out.TPBreakdown, CostEntry{Label: ref.Name, Value: tp})
	}

	return out
}

// ResolveParts re-resolves selected parts against the current snapshot by
// stable id, dropping selections whose part no longer exists. Called at the
// start of a computation after any catalog refresh so calculators never see
// a mix of old and new catalog shapes.
func ResolveParts(parts []entities.SelectedPart, snap *catalog.Snapshot) []entities.SelectedPart {
	resolved := make([]entities.SelectedPart, 0, len(parts))
	for _, p := range parts {
		if snap.PartByID(p.PartID) == nil {
			continue
		}
		resolved = append(resolved, p)
	}
	return resolved
}
