// Package catalog holds the reference data every creator computation reads:
// parts, feats, skills, item properties, and the level progression tables.
// A loaded catalog is exposed as an immutable Snapshot for the duration of
// one computation.
package catalog

// Part categories. Mechanic categories are populated by the engine from
// structured power configuration rather than picked directly by users.
const (
	CategoryEffect      = "effect"
	CategoryEnhancement = "enhancement"
	CategoryRestriction = "restriction"
	CategoryAction      = "action"
	CategoryRange       = "range"
	CategoryArea        = "area"
	CategoryDuration    = "duration"
)

// PartOption is one of up to three per-part option dials. An option is
// enabled only when it has a description or a non-zero per-level cost delta.
type PartOption struct {
	Description    string `json:"description"`
	EnergyPerLevel int    `json:"energy_per_level"`
	TPPerLevel     int    `json:"tp_per_level"`
}

// Enabled reports whether this option participates in level-scaled costing.
// Disabled options may still carry a cosmetic level in saved selections.
func (o PartOption) Enabled() bool {
	return o.Description != "" || o.EnergyPerLevel != 0 || o.TPPerLevel != 0
}

// Part is a reference catalog part. Immutable once loaded.
type Part struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Mechanic bool          `json:"mechanic"`
	BaseEN   int           `json:"base_en"`
	BaseTP   int           `json:"base_tp"`
	Options  [3]PartOption `json:"options"`
}

// HasOption reports whether option n (0-indexed) is enabled.
func (p *Part) HasOption(n int) bool {
	if n < 0 || n >= len(p.Options) {
		return false
	}
	return p.Options[n].Enabled()
}

// Feat is a reference catalog feat. Points is the feat-budget cost charged
// when the feat is taken, directly or through a mechanical trait.
type Feat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// Skill is a reference catalog skill. Ability names the governing ability;
// BaseSkillID is set on sub-skills that specialize a broader skill.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Ability     string `json:"ability"`
	BaseSkillID string `json:"base_skill_id"`
}

// Property is a reference armament property.
type Property struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TPCost      int    `json:"tp_cost"`
}
