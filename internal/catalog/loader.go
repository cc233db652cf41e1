package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/forgelight/creator-api/internal/errors"
)

// Catalog file names under the catalog directory.
const (
	partsFile       = "parts.yaml"
	featsFile       = "feats.yaml"
	skillsFile      = "skills.yaml"
	propertiesFile  = "properties.yaml"
	progressionFile = "progression.yaml"
)

// partRecord is the external wire shape of a part record. The op_N field
// names are the contract persistence and UI rely on; they are folded into
// the Options array internally.
type partRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Mechanic bool   `yaml:"mechanic"`
	BaseEN   int    `yaml:"base_en"`
	BaseTP   int    `yaml:"base_tp"`
	Op1EN    int    `yaml:"op_1_en"`
	Op1TP    int    `yaml:"op_1_tp"`
	Op1Desc  string `yaml:"op_1_desc"`
	Op2EN    int    `yaml:"op_2_en"`
	Op2TP    int    `yaml:"op_2_tp"`
	Op2Desc  string `yaml:"op_2_desc"`
	Op3EN    int    `yaml:"op_3_en"`
	Op3TP    int    `yaml:"op_3_tp"`
	Op3Desc  string `yaml:"op_3_desc"`
}

func (r partRecord) toPart() Part {
	return Part{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
		Mechanic: r.Mechanic,
		BaseEN:   r.BaseEN,
		BaseTP:   r.BaseTP,
		Options: [3]PartOption{
			{Description: r.Op1Desc, EnergyPerLevel: r.Op1EN, TPPerLevel: r.Op1TP},
			{Description: r.Op2Desc, EnergyPerLevel: r.Op2EN, TPPerLevel: r.Op2TP},
			{Description: r.Op3Desc, EnergyPerLevel: r.Op3EN, TPPerLevel: r.Op3TP},
		},
	}
}

type featRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Points      int    `yaml:"points"`
}

type skillRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Ability     string `yaml:"ability"`
	BaseSkillID string `yaml:"base_skill_id"`
}

type propertyRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	TPCost      int    `yaml:"tp_cost"`
}

// Load reads the catalog directory and builds an immutable snapshot.
// A missing file yields an empty section with a warning; missing numeric
// fields default to zero and missing option descriptions leave the option
// disabled, so a partially populated catalog degrades instead of failing.
func Load(ctx context.Context, dir string) (*Snapshot, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("catalog directory is required")
	}

	var partRecords []partRecord
	if err := loadFile(ctx, filepath.Join(dir, partsFile), &partRecords); err != nil {
		return nil, err
	}
	parts := make([]Part, 0, len(partRecords))
	for _, r := range partRecords {
		parts = append(parts, r.toPart())
	}

	var featRecords []featRecord
	if err := loadFile(ctx, filepath.Join(dir, featsFile), &featRecords); err != nil {
		return nil, err
	}
	feats := make([]Feat, 0, len(featRecords))
	for _, r := range featRecords {
		feats = append(feats, Feat(r))
	}

	var skillRecords []skillRecord
	if err := loadFile(ctx, filepath.Join(dir, skillsFile), &skillRecords); err != nil {
		return nil, err
	}
	skills := make([]Skill, 0, len(skillRecords))
	for _, r := range skillRecords {
		skills = append(skills, Skill(r))
	}

	var propertyRecords []propertyRecord
	if err := loadFile(ctx, filepath.Join(dir, propertiesFile), &propertyRecords); err != nil {
		return nil, err
	}
	props := make([]Property, 0, len(propertyRecords))
	for _, r := range propertyRecords {
		props = append(props, Property(r))
	}

	var rows []ProgressionRow
	if err := loadFile(ctx, filepath.Join(dir, progressionFile), &rows); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "catalog loaded",
		"dir", dir,
		"parts", len(parts),
		"feats", len(feats),
		"skills", len(skills),
		"properties", len(props),
		"progression_rows", len(rows))

	return NewSnapshot(parts, feats, skills, props, NewProgression(rows)), nil
}

func loadFile(ctx context.Context, path string, out interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304 // path comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			slog.WarnContext(ctx, "catalog file missing, section will be empty", "path", path)
			return nil
		}
		return errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to parse catalog file "+path)
	}
	return nil
}
