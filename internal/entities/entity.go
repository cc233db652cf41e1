// Package entities defines the data-only domain types for the creator
// service. All derivation (budgets, max health, speed, evasion) is done by
// the engine; nothing here computes.
package entities

// Kind discriminates the entity variants the budget engine knows how to
// derive stats for.
type Kind string

// Entity kinds
const (
	KindCreature  Kind = "creature"
	KindCharacter Kind = "character"
)

// Size is an entity size class.
type Size string

// Entity sizes
const (
	SizeTiny   Size = "tiny"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeHuge   Size = "huge"
)

// SpeedModifier returns the size adjustment applied to base speed.
func (s Size) SpeedModifier() int {
	switch s {
	case SizeTiny:
		return -2
	case SizeSmall:
		return -1
	case SizeLarge:
		return 1
	case SizeHuge:
		return 2
	default:
		return 0
	}
}

// Ability names
const (
	AbilityStrength     = "strength"
	AbilityVitality     = "vitality"
	AbilityAgility      = "agility"
	AbilityAcuity       = "acuity"
	AbilityIntelligence = "intelligence"
	AbilityCharisma     = "charisma"
)

// Abilities holds the six ability scores. Scores are typically in [-4, 7];
// range enforcement happens at the input boundary, not here.
type Abilities struct {
	Strength     int `json:"strength"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Acuity       int `json:"acuity"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for a named ability. Unknown names resolve to 0 so
// an unmapped skill contributes a neutral modifier.
func (a Abilities) Get(name string) int {
	switch name {
	case AbilityStrength:
		return a.Strength
	case AbilityVitality:
		return a.Vitality
	case AbilityAgility:
		return a.Agility
	case AbilityAcuity:
		return a.Acuity
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Sum returns the raw total of all six scores. Negative scores reduce the
// total, refunding ability points.
func (a Abilities) Sum() int {
	return a.Strength + a.Vitality + a.Agility + a.Acuity + a.Intelligence + a.Charisma
}

// Defenses holds the six bonus defense allocations, one per ability track.
// Each point here costs two skill-budget points.
type Defenses struct {
	Strength     int `json:"strength"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Acuity       int `json:"acuity"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
}

// Sum returns the total bonus defense points allocated.
func (d Defenses) Sum() int {
	return d.Strength + d.Vitality + d.Agility + d.Acuity + d.Intelligence + d.Charisma
}

// SkillEntry is one trained skill on an entity.
type SkillEntry struct {
	Name       string `json:"name"`
	Rank       int    `json:"rank"`
	Proficient bool   `json:"proficient"`
}

// FeatEntry is a manually chosen feat. Points overrides the catalog cost
// when set; an unset value charges the default of one point.
type FeatEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points *int   `json:"points,omitempty"`
}

// Cost returns the feat point cost of this entry.
func (f FeatEntry) Cost() int {
	if f.Points != nil {
		return *f.Points
	}
	return 1
}

// EmbeddedItem is a power, technique, or armament saved on an entity with
// its derived display costs baked in at save time.
type EmbeddedItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Energy         int    `json:"energy"`
	TrainingPoints int    `json:"training_points"`
}

// Entity is the full creator state for one creature or character. It is a
// JSON-serializable snapshot suitable for round-tripping through the draft
// cache and the library store.
//
// Allocations (abilities, proficiencies, skills, bonus points) change only
// through the orchestrator's update operations so spent and remaining
// budgets stay consistent after every transition.
type Entity struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Public  bool   `json:"public"`

	// Level supports quarter increments 0.25, 0.5, 0.75, then whole
	// levels 1 through 30.
	Level float64 `json:"level"`
	Type  string  `json:"type"`
	Size  Size    `json:"size"`
	NPC   bool    `json:"npc"`

	Abilities Abilities `json:"abilities"`
	Defenses  Defenses  `json:"defenses"`

	// Bonus allocations from the shared HP/EN pool.
	HitPoints    int `json:"hit_points"`
	EnergyPoints int `json:"energy_points"`

	PowerProficiency   int `json:"power_proficiency"`
	MartialProficiency int `json:"martial_proficiency"`

	Resistances         []string `json:"resistances"`
	Weaknesses          []string `json:"weaknesses"`
	Immunities          []string `json:"immunities"`
	ConditionImmunities []string `json:"condition_immunities"`
	Senses              []string `json:"senses"`
	MovementTypes       []string `json:"movement_types"`
	Languages           []string `json:"languages"`

	Skills []SkillEntry `json:"skills"`
	Feats  []FeatEntry  `json:"feats"`

	Powers     []EmbeddedItem `json:"powers"`
	Techniques []EmbeddedItem `json:"techniques"`
	Armaments  []EmbeddedItem `json:"armaments"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// FindSkill returns the index of the named skill, or -1.
func (e *Entity) FindSkill(name string) int {
	for i := range e.Skills {
		if e.Skills[i].Name == name {
			return i
		}
	}
	return -1
}
