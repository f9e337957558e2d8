// Package benefit expands structured benefit descriptors attached to
// items and features into canonical bonuses. A benefit says what an
// effect is ("+charisma modifier to these skills"); the handlers here
// turn that into the numeric bonuses the deriver aggregates.
package benefit

// Benefit is a structured, not-yet-numeric effect descriptor. Which
// fields are meaningful depends on Type; unknown JSON fields are
// ignored on decode.
type Benefit struct {
	Type        string   `json:"type"`
	Skills      []string `json:"skills,omitempty"`
	Abilities   []string `json:"abilities,omitempty"`
	Saves       []string `json:"saves,omitempty"`
	BonusSource string   `json:"bonus_source,omitempty"`
	Value       int      `json:"value,omitempty"`
	BonusType   string   `json:"bonus_type,omitempty"`
}
