package catalog

import (
	"context"
	"strings"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=catalogmock github.com/forgelight/creator-api/internal/catalog Provider

// Snapshot is an immutable view of the loaded catalog with lookup maps built
// once. Every calculator takes a Snapshot argument instead of reaching for
// ambient state, so one computation never sees a mix of old and new catalog
// shapes.
type Snapshot struct {
	Parts       []Part
	Feats       []Feat
	Skills      []Skill
	Properties  []Property
	Progression *Progression

	partsByID     map[string]*Part
	mechanicParts map[string]*Part
	featsByID     map[string]*Feat
	skillsByName  map[string]*Skill
	propsByID     map[string]*Property
}

// NewSnapshot builds a snapshot and its lookup maps from reference records.
// A nil progression is replaced with an empty table, keeping lookups total.
func NewSnapshot(parts []Part, feats []Feat, skills []Skill, props []Property, prog *Progression) *Snapshot {
	if prog == nil {
		prog = &Progression{}
	}

	s := &Snapshot{
		Parts:       parts,
		Feats:       feats,
		Skills:      skills,
		Properties:  props,
		Progression: prog,

		partsByID:     make(map[string]*Part, len(parts)),
		mechanicParts: make(map[string]*Part),
		featsByID:     make(map[string]*Feat, len(feats)),
		skillsByName:  make(map[string]*Skill, len(skills)),
		propsByID:     make(map[string]*Property, len(props)),
	}

	for i := range parts {
		p := &parts[i]
		s.partsByID[p.ID] = p
		if p.Mechanic {
			s.mechanicParts[mechanicKey(p.Category, p.Name)] = p
		}
	}
	for i := range feats {
		s.featsByID[feats[i].ID] = &feats[i]
	}
	for i := range skills {
		s.skillsByName[strings.ToLower(skills[i].Name)] = &skills[i]
	}
	for i := range props {
		s.propsByID[props[i].ID] = &props[i]
	}

	return s
}

func mechanicKey(category, name string) string {
	return category + "/" + strings.ToLower(name)
}

// PartByID returns the part with the given id, or nil if the catalog does
// not contain it.
func (s *Snapshot) PartByID(id string) *Part {
	return s.partsByID[id]
}

// MechanicPart returns the mechanic-flagged part for a category and name,
// or nil. Callers treat a nil result as a zero-cost part.
func (s *Snapshot) MechanicPart(category, name string) *Part {
	return s.mechanicParts[mechanicKey(category, name)]
}

// FeatByID returns the feat with the given id, or nil.
func (s *Snapshot) FeatByID(id string) *Feat {
	return s.featsByID[id]
}

// FeatPoints returns the point cost of the feat with the given id, or
// fallback when the catalog lookup misses.
func (s *Snapshot) FeatPoints(id string, fallback int) int {
	if f := s.featsByID[id]; f != nil {
		return f.Points
	}
	return fallback
}

// SkillByName returns the skill with the given name (case-insensitive), or nil.
func (s *Snapshot) SkillByName(name string) *Skill {
	return s.skillsByName[strings.ToLower(name)]
}

// SkillAbility returns the governing ability for a skill name. Unmapped
// skills resolve to the empty string, which calculators treat as a neutral
// (zero-modifier) ability.
func (s *Snapshot) SkillAbility(name string) string {
	if sk := s.SkillByName(name); sk != nil {
		return sk.Ability
	}
	return ""
}

// PropertyByID returns the armament property with the given id, or nil.
func (s *Snapshot) PropertyByID(id string) *Property {
	return s.propsByID[id]
}

// Provider supplies the current catalog snapshot. Implementations must
// return a snapshot that stays immutable for the duration of one
// computation; a refresh produces a new Snapshot value.
type Provider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// StaticProvider wraps an already-built snapshot.
type StaticProvider struct {
	snap *Snapshot
}

// NewStaticProvider creates a provider that always returns snap.
func NewStaticProvider(snap *Snapshot) *StaticProvider {
	return &StaticProvider{snap: snap}
}

// Snapshot returns the wrapped snapshot.
func (p *StaticProvider) Snapshot(_ context.Context) (*Snapshot, error) {
	return p.snap, nil
}
