package sheet

import (
	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

// AbilityValue is one finalized ability: the post-override score and
// the modifier recomputed from it.
type AbilityValue struct {
	Score    int `json:"score"`
	Modifier int `json:"modifier"`
}

// Sheet is the fully assembled character sheet: engine output with the
// user-entered override layer applied, plus the audit trail inspector
// UIs need. Every value is recomputed from scratch on each build.
type Sheet struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Abilities         map[character.Ability]AbilityValue `json:"abilities"`
	MaxHP             int                                `json:"max_hp"`
	Proficiency       int                                `json:"proficiency"`
	AC                int                                `json:"ac"`
	Initiative        int                                `json:"initiative"`
	PassivePerception int                                `json:"passive_perception"`
	Skills            map[string]int                     `json:"skills"`
	Saves             map[string]int                     `json:"saves"`
	Speeds            map[string]int                     `json:"speeds"`
	Senses            []character.Sense                  `json:"senses"`

	// Totals are the pre-base bucket sums ("how much bonus").
	Totals derive.Totals `json:"totals"`
	// Sources maps each bucket key to its contributing bonuses, in
	// collection order.
	Sources map[string][]bonus.Bonus `json:"sources"`
	// Diagnostics lists records skipped during this build.
	Diagnostics []bonus.Diagnostic `json:"diagnostics,omitempty"`
}
