package sheets

import (
	"encoding/json"
	"time"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

// SheetRecord is the persisted form of one character sheet: base
// attributes, the raw source records the engine collects from, and the
// user-entered override layer. Custom modifiers and overrides are
// keyed by the same dotted attribute grammar as bonus targets
// ("ability.strength", "ac", "skill.religion", ...).
type SheetRecord struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	Base character.BaseAttributes `json:"base"`

	Items    []derive.SourceRecord `json:"items,omitempty"`
	Features []derive.SourceRecord `json:"features,omitempty"`
	// EquipmentKeys reference 5e API equipment to be fetched and
	// merged into Items at sheet-build time.
	EquipmentKeys []string              `json:"equipment_keys,omitempty"`
	Improvements  []character.ASIRecord `json:"improvements,omitempty"`
	// ManualBonuses are character-level raw bonus records the user
	// entered directly.
	ManualBonuses []map[string]any `json:"manual_bonuses,omitempty"`

	CustomModifiers map[string][]character.CustomModifier `json:"custom_modifiers,omitempty"`
	Overrides       map[string]*int                       `json:"overrides,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy via a JSON round trip. The record is
// defined by its JSON shape, so this copies exactly what persistence
// would.
func (r *SheetRecord) Clone() *SheetRecord {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		copied := *r
		return &copied
	}
	var copied SheetRecord
	if err := json.Unmarshal(data, &copied); err != nil {
		shallow := *r
		return &shallow
	}
	return &copied
}

// SetOverride sets or clears (value nil) the absolute override for one
// attribute key.
func (r *SheetRecord) SetOverride(attrKey string, value *int) {
	if value == nil {
		delete(r.Overrides, attrKey)
		return
	}
	if r.Overrides == nil {
		r.Overrides = make(map[string]*int)
	}
	r.Overrides[attrKey] = value
}

// AddCustomModifier appends a custom modifier for one attribute key.
func (r *SheetRecord) AddCustomModifier(attrKey string, mod character.CustomModifier) {
	if r.CustomModifiers == nil {
		r.CustomModifiers = make(map[string][]character.CustomModifier)
	}
	r.CustomModifiers[attrKey] = append(r.CustomModifiers[attrKey], mod)
}
