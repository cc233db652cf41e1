package entities

import (
	"strconv"

	"github.com/forgelight/creator-api/internal/catalog"
)

// StatColumn is one labeled value in a selection list row.
type StatColumn struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DisplayItem is the normalized shape every selectable catalog item is
// converted to for selection UIs. SourceData carries the original record so
// the conversion round-trips: converting the recovered source again yields
// an identical DisplayItem.
type DisplayItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	StatColumns []StatColumn `json:"stat_columns"`
	Cost        *int         `json:"cost,omitempty"`
	SourceData  interface{}  `json:"source_data"`
}

// FromDisplay recovers the original record a DisplayItem was built from.
func FromDisplay[T any](d DisplayItem) (T, bool) {
	v, ok := d.SourceData.(T)
	return v, ok
}

// DisplayPart converts a catalog part to its display shape.
func DisplayPart(p catalog.Part) DisplayItem {
	cost := p.BaseTP
	return DisplayItem{
		ID:   p.ID,
		Name: p.Name,
		StatColumns: []StatColumn{
			{Label: "Category", Value: p.Category},
			{Label: "EN", Value: strconv.Itoa(p.BaseEN)},
			{Label: "TP", Value: strconv.Itoa(p.BaseTP)},
		},
		Cost:       &cost,
		SourceData: p,
	}
}

// DisplayFeat converts a catalog feat to its display shape.
func DisplayFeat(f catalog.Feat) DisplayItem {
	cost := f.Points
	return DisplayItem{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		StatColumns: []StatColumn{
			{Label: "Points", Value: strconv.Itoa(f.Points)},
		},
		Cost:       &cost,
		SourceData: f,
	}
}

// DisplayProperty converts an armament property to its display shape.
func DisplayProperty(p catalog.Property) DisplayItem {
	cost := p.TPCost
	return DisplayItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StatColumns: []StatColumn{
			{Label: "TP", Value: strconv.Itoa(p.TPCost)},
		},
		Cost:       &cost,
		SourceData: p,
	}
}

// DisplayEmbedded converts a saved power, technique, or armament to its
// display shape.
func DisplayEmbedded(item EmbeddedItem) DisplayItem {
	cost := item.TrainingPoints
	return DisplayItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		StatColumns: []StatColumn{
			{Label: "EN", Value: strconv.Itoa(item.Energy)},
			{Label: "TP", Value: strconv.Itoa(item.TrainingPoints)},
		},
		Cost:       &cost,
		SourceData: item,
	}
}
