package character

import (
	"strconv"
	"strings"

	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
)

// ASIRecord is one ability-score-improvement grant in the shape the
// data layer stores it: a source name plus entries like "STR: 2".
type ASIRecord struct {
	Source     string   `json:"source"`
	SourceType string   `json:"source_type,omitempty"`
	Abilities  []string `json:"abilities"`
}

// Bonuses converts the record's entries into ability bonuses. Entries
// that don't parse as "<ABBR>: <int>" with a recognized abbreviation
// are dropped.
func (r ASIRecord) Bonuses() []bonus.Bonus {
	src := bonus.Source{Type: bonus.SourceImprovement, Label: r.Source}
	if r.SourceType != "" {
		src.Type = bonus.SourceType(r.SourceType)
	}
	if src.Label == "" {
		src.Label = "Ability Score Improvement"
	}

	var out []bonus.Bonus
	for _, entry := range r.Abilities {
		abbrev, rest, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		ability, ok := AbilityFromAbbrev(abbrev)
		if !ok {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			continue
		}
		out = append(out, bonus.Bonus{
			Target: "ability." + string(ability),
			Value:  value,
			Type:   bonus.TypeUntyped,
			Source: src,
		})
	}
	return out
}
