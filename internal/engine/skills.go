package engine

import (
	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

// skillBonus combines the governing ability score, the rank, and the
// proficiency flag into a skill's final bonus. Skills the catalog does not
// map to an ability use a neutral zero modifier.
func skillBonus(name string, rank int, proficient bool, abilities entities.Abilities, snap *catalog.Snapshot) int {
	bonus := abilities.Get(snap.SkillAbility(name)) + rank
	if proficient {
		bonus++
	}
	return bonus
}

// ApplySkillUpdate adds or updates a skill entry on an entity under the
// profile's proficiency policy and returns the entry as applied. This is
// the only path skill entries change through, so the lock policy cannot be
// bypassed.
func (p *KindProfile) ApplySkillUpdate(e *entities.Entity, requested entities.SkillEntry) entities.SkillEntry {
	idx := e.FindSkill(requested.Name)

	var existing *entities.SkillEntry
	if idx >= 0 {
		existing = &e.Skills[idx]
	}

	applied := p.NormalizeSkillEntry(existing, requested)
	if idx >= 0 {
		e.Skills[idx] = applied
	} else {
		e.Skills = append(e.Skills, applied)
	}
	return applied
}

// RemoveSkill removes a skill entry entirely. Removal is always allowed;
// the lock policy constrains only in-place proficiency clearing.
func (p *KindProfile) RemoveSkill(e *entities.Entity, name string) bool {
	idx := e.FindSkill(name)
	if idx < 0 {
		return false
	}
	e.Skills = append(e.Skills[:idx], e.Skills[idx+1:]...)
	return true
}
