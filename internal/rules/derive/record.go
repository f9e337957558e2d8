// Package derive turns a character's raw source records into a fully
// derived attribute snapshot: collect flattens items, features,
// improvements, and manual bonuses into one canonical bonus list, and
// Derive folds that list into per-bucket totals and final values.
package derive

import (
	"github.com/hearthforge/sheet-engine/internal/rules/benefit"
)

// SourceRecord is an item or feature record as the data layer hands it
// over: read-only, with an optional legacy flat bonus array, an
// optional singular bonus, and an optional structured benefit list.
type SourceRecord struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Label string `json:"label,omitempty"`
	Title string `json:"title,omitempty"`

	// Bonuses is the legacy shape: a flat array of raw bonus records.
	Bonuses []any `json:"bonuses,omitempty"`
	// Bonus is the even older shape: one raw bonus record.
	Bonus any `json:"bonus,omitempty"`
	// Benefits are structured descriptors expanded via the registry.
	Benefits []benefit.Benefit `json:"benefits,omitempty"`
}

// DisplayName picks the record's display name from the field variants
// historical records use.
func (r *SourceRecord) DisplayName() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Label != "":
		return r.Label
	case r.Title != "":
		return r.Title
	}
	return "Unknown"
}
