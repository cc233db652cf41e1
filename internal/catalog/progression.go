package catalog

// ProgressionRow is one level's worth of budget formula data. The budget
// formulas are game content shipped with the catalog, not engine logic; the
// engine looks them up and never re-derives them.
type ProgressionRow struct {
	Level float64 `yaml:"level" json:"level"`

	// Training points: base plus a per-point bonus from the highest
	// non-vitality ability.
	TrainingPoints int `yaml:"training_points" json:"training_points"`
	TPPerAbility   int `yaml:"tp_per_ability" json:"tp_per_ability"`

	Currency int `yaml:"currency" json:"currency"`

	// Shared HP/EN allocation pool, keyed by entity kind, with an NPC variant.
	HPEnPool    map[string]int `yaml:"hp_en_pool" json:"hp_en_pool"`
	HPEnPoolNPC map[string]int `yaml:"hp_en_pool_npc" json:"hp_en_pool_npc"`

	Proficiency    int `yaml:"proficiency" json:"proficiency"`
	ProficiencyNPC int `yaml:"proficiency_npc" json:"proficiency_npc"`

	AbilityPoints    int `yaml:"ability_points" json:"ability_points"`
	AbilityPointsNPC int `yaml:"ability_points_npc" json:"ability_points_npc"`

	SkillPoints map[string]int `yaml:"skill_points" json:"skill_points"`

	FeatPoints           int `yaml:"feat_points" json:"feat_points"`
	FeatPointsPerMartial int `yaml:"feat_points_per_martial" json:"feat_points_per_martial"`
}

// Progression is the per-level budget table. Lookups for levels the table
// does not carry return the zero row, degrading budgets to zero rather than
// failing a computation.
type Progression struct {
	rows map[float64]ProgressionRow
}

// NewProgression builds a progression table from rows.
func NewProgression(rows []ProgressionRow) *Progression {
	p := &Progression{rows: make(map[float64]ProgressionRow, len(rows))}
	for _, r := range rows {
		p.rows[r.Level] = r
	}
	return p
}

// Len returns the number of levels the table carries.
func (p *Progression) Len() int {
	if p == nil {
		return 0
	}
	return len(p.rows)
}

func (p *Progression) row(level float64) ProgressionRow {
	if p == nil || p.rows == nil {
		return ProgressionRow{}
	}
	return p.rows[level]
}

// TrainingPoints returns the training point budget for a level given the
// highest non-vitality ability score.
func (p *Progression) TrainingPoints(level float64, highestAbility int) int {
	r := p.row(level)
	return r.TrainingPoints + r.TPPerAbility*highestAbility
}

// Currency returns the starting currency for a level.
func (p *Progression) Currency(level float64) int {
	return p.row(level).Currency
}

// HPEnPool returns the shared hit point / energy point allocation pool for a
// level, entity kind, and NPC status.
func (p *Progression) HPEnPool(level float64, kind string, npc bool) int {
	r := p.row(level)
	if npc {
		return r.HPEnPoolNPC[kind]
	}
	return r.HPEnPool[kind]
}

// ProficiencyBudget returns the proficiency point budget for a level.
func (p *Progression) ProficiencyBudget(level float64, npc bool) int {
	r := p.row(level)
	if npc {
		return r.ProficiencyNPC
	}
	return r.Proficiency
}

// AbilityPointBudget returns the ability point budget for a level.
func (p *Progression) AbilityPointBudget(level float64, npc bool) int {
	r := p.row(level)
	if npc {
		return r.AbilityPointsNPC
	}
	return r.AbilityPoints
}

// SkillPointBudget returns the skill point budget for a level and entity kind.
func (p *Progression) SkillPointBudget(level float64, kind string) int {
	return p.row(level).SkillPoints[kind]
}

// FeatPointBudget returns the feat point budget for a level given the
// entity's martial proficiency allocation.
func (p *Progression) FeatPointBudget(level float64, martialProficiency int) int {
	r := p.row(level)
	return r.FeatPoints + r.FeatPointsPerMartial*martialProficiency
}
