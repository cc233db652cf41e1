package engine

import (
	"fmt"
	"strings"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/entities"
)

// spacesPerRangeStep is the game-rule scaling constant: each range step
// beyond melee is three spaces.
const spacesPerRangeStep = 3

// meleeRangeDisplay is the display string for a zero-step range.
const meleeRangeDisplay = "(1 Space / Melee)"

var actionTypeLabels = map[string]string{
	entities.ActionBasic: "Basic Action",
	entities.ActionBonus: "Bonus Action",
	entities.ActionFull:  "Full Action",
}

// ActionTypeDisplay renders an action type, appending the reaction marker
// when set.
func ActionTypeDisplay(actionType string, isReaction bool) string {
	label, ok := actionTypeLabels[actionType]
	if !ok {
		label = titleWord(actionType)
	}
	if isReaction {
		return label + " (Reaction)"
	}
	return label
}

// RangeDisplay renders a range step count. Zero steps is melee.
func RangeDisplay(steps int) string {
	if steps <= 0 {
		return meleeRangeDisplay
	}
	return fmt.Sprintf("%d spaces", steps*spacesPerRangeStep)
}

// AreaDisplay renders an area configuration.
func AreaDisplay(area entities.AreaConfig) string {
	if area.Type == "" || area.Type == entities.AreaNone {
		return "None"
	}
	return fmt.Sprintf("%s %d", titleWord(area.Type), area.Level)
}

// DurationDisplay renders a duration configuration with its active
// modifiers, e.g. "3 rounds (Focus)".
func DurationDisplay(d entities.DurationConfig) string {
	var base string
	switch d.Type {
	case entities.DurationInstant, "":
		return "Instant"
	case entities.DurationPermanent:
		base = "Permanent"
	case entities.DurationRounds:
		if d.Value == 1 {
			base = "1 round"
		} else {
			base = fmt.Sprintf("%d rounds", d.Value)
		}
	default:
		base = titleWord(d.Type)
	}

	var mods []string
	if d.Focus {
		mods = append(mods, "Focus")
	}
	if d.NoHarm {
		mods = append(mods, "No Harm")
	}
	if d.EndsOnActivation {
		mods = append(mods, "Ends on Activation")
	}
	if d.Sustain > 0 {
		mods = append(mods, fmt.Sprintf("Sustain %d", d.Sustain))
	}

	if len(mods) == 0 {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, strings.Join(mods, ", "))
}

// DamageDisplay renders damage dice as "AdS type", or empty for no damage.
func DamageDisplay(d entities.DamageConfig) string {
	if d.None() {
		return ""
	}
	return fmt.Sprintf("%dd%d %s", d.Amount, d.Size, d.Type)
}

// effectiveRounds is the duration length the modifier rules key on.
// Permanent counts as unbounded; unknown types count as zero.
func effectiveRounds(d entities.DurationConfig) int {
	switch d.Type {
	case entities.DurationRounds:
		return d.Value
	case entities.DurationPermanent:
		return int(^uint(0) >> 1)
	default:
		return 0
	}
}

// normalizeDuration force-resets the four duration modifiers to inert
// values whenever the effective duration is under two rounds. Modifiers on
// an instant or one-round effect are an inconsistent state.
func normalizeDuration(d entities.DurationConfig) entities.DurationConfig {
	if effectiveRounds(d) < 2 {
		d.Focus = false
		d.NoHarm = false
		d.EndsOnActivation = false
		d.Sustain = 0
	}
	return d
}

// firstAllowedDurationValue is the value a duration resets to when its type
// changes.
func firstAllowedDurationValue(durationType string) int {
	if durationType == entities.DurationRounds {
		return 1
	}
	return 0
}

// SetDurationType changes a duration's type, resetting the value to the
// type's first allowed value and clearing modifiers that the new effective
// duration no longer permits. The reset is atomic: callers never observe
// modifiers on a short duration.
func SetDurationType(d entities.DurationConfig, durationType string) entities.DurationConfig {
	d.Type = durationType
	d.Value = firstAllowedDurationValue(durationType)
	return normalizeDuration(d)
}

// SetDurationValue changes a rounds-duration's value. Dropping to a single
// round clears the modifiers; other value changes leave them untouched.
func SetDurationValue(d entities.DurationConfig, value int) entities.DurationConfig {
	if d.Type != entities.DurationRounds {
		return normalizeDuration(d)
	}
	d.Value = value
	return normalizeDuration(d)
}

// SetDurationModifiers applies the modifier flags, which only stick when the
// effective duration is at least two rounds.
func SetDurationModifiers(d entities.DurationConfig, focus, noHarm, endsOnActivation bool, sustain int) entities.DurationConfig {
	d.Focus = focus
	d.NoHarm = noHarm
	d.EndsOnActivation = endsOnActivation
	d.Sustain = sustain
	return normalizeDuration(d)
}

// buildMechanicParts synthesizes the mechanic parts a power configuration
// implies: the action part, a range part when beyond melee, an area part
// when an area is set, and a duration part when not instant. Each resolves
// a mechanic-flagged catalog part by category and name; a missing catalog
// part synthesizes nothing and so costs nothing.
func buildMechanicParts(cfg entities.MechanicConfig, snap *catalog.Snapshot) []entities.SelectedPart {
	var parts []entities.SelectedPart

	appendPart := func(category, name string, level int, applyDuration bool) {
		ref := snap.MechanicPart(category, name)
		if ref == nil {
			return
		}
		parts = append(parts, entities.SelectedPart{
			PartID:        ref.ID,
			Category:      category,
			OptionLevels:  [3]int{level},
			ApplyDuration: applyDuration,
		})
	}

	if cfg.ActionType != "" {
		appendPart(catalog.CategoryAction, cfg.ActionType, 0, false)
	}
	if cfg.IsReaction {
		appendPart(catalog.CategoryAction, "reaction", 0, false)
	}
	if cfg.RangeSteps > 0 {
		appendPart(catalog.CategoryRange, "range", cfg.RangeSteps, false)
	}
	if cfg.Area.Type != "" && cfg.Area.Type != entities.AreaNone {
		appendPart(catalog.CategoryArea, cfg.Area.Type, cfg.Area.Level, cfg.Area.ApplyDuration)
	}
	if cfg.Duration.Type != "" && cfg.Duration.Type != entities.DurationInstant {
		appendPart(catalog.CategoryDuration, cfg.Duration.Type, cfg.Duration.Value, cfg.Duration.ApplyDuration)
	}

	return parts
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
