package entities

// SelectedPart is one catalog part chosen on a power, technique, or
// armament, with per-option levels. Parts are persisted by catalog id and
// re-resolved against the current snapshot before every computation; a
// SelectedPart never retains a pointer into the catalog.
type SelectedPart struct {
	PartID   string `json:"part_id"`
	Category string `json:"category"`

	// OptionLevels holds the chosen level per option dial. Levels on
	// disabled options are cosmetic and never scale cost.
	OptionLevels [3]int `json:"option_levels"`

	// ApplyDuration gates this part's cost by the power's duration
	// multiplier.
	ApplyDuration bool `json:"apply_duration"`
}

// Action types for the mechanic configuration.
const (
	ActionBasic = "basic"
	ActionBonus = "bonus"
	ActionFull  = "full"
)

// Duration types. Rounds is the only type with a variable value.
const (
	DurationInstant   = "instant"
	DurationRounds    = "rounds"
	DurationPermanent = "permanent"
)

// AreaNone is the area type that contributes no mechanic part.
const AreaNone = "none"

// DamageNone is the damage type meaning "no damage".
const DamageNone = "none"

// AreaConfig configures a power's area of effect.
type AreaConfig struct {
	Type          string `json:"type"`
	Level         int    `json:"level"`
	ApplyDuration bool   `json:"apply_duration"`
}

// DurationConfig configures a power's duration. The four modifiers are only
// meaningful when the effective duration is at least two rounds; the engine's
// duration transitions force them back to inert values otherwise.
type DurationConfig struct {
	Type          string `json:"type"`
	Value         int    `json:"value"`
	ApplyDuration bool   `json:"apply_duration"`

	Focus            bool `json:"focus"`
	NoHarm           bool `json:"no_harm"`
	EndsOnActivation bool `json:"ends_on_activation"`
	Sustain          int  `json:"sustain"`
}

// DamageConfig configures a power's damage dice. Type "none" or a
// non-positive amount means no damage; no entry is persisted or displayed.
type DamageConfig struct {
	Amount int    `json:"amount"`
	Size   int    `json:"size"`
	Type   string `json:"type"`
}

// None reports whether this configuration produces no damage entry.
func (d DamageConfig) None() bool {
	return d.Type == "" || d.Type == DamageNone || d.Amount <= 0
}

// MechanicConfig is the structured configuration a power's synthetic
// mechanic parts are derived from. It is what gets persisted; the parts are
// re-synthesized on load.
type MechanicConfig struct {
	ActionType string `json:"action_type"`
	IsReaction bool   `json:"is_reaction"`

	// RangeSteps of 0 means melee, one space. Each step beyond that is a
	// fixed three spaces.
	RangeSteps int `json:"range_steps"`

	Area     AreaConfig     `json:"area"`
	Duration DurationConfig `json:"duration"`
	Damage   DamageConfig   `json:"damage"`
}
