package derive

import (
	"sort"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
)

// Totals holds per-bucket bonus sums before the base values are added:
// "how much bonus did you get", independent of what it was added to.
// Sense entries are max-merged rather than summed.
type Totals struct {
	Abilities         map[character.Ability]int `json:"abilities"`
	MaxHP             int                       `json:"max_hp"`
	AC                int                       `json:"ac"`
	Initiative        int                       `json:"initiative"`
	PassivePerception int                       `json:"passive_perception"`
	Skills            map[string]int            `json:"skills"`
	Saves             map[string]int            `json:"saves"`
	Speeds            map[string]int            `json:"speeds"`
	Senses            map[string]int            `json:"senses"`
}

// Snapshot is the fully derived attribute set after applying all
// collected bonuses to the base attributes. Senses are sorted by type
// so identical inputs always produce identical output.
type Snapshot struct {
	Abilities         map[character.Ability]int `json:"abilities"`
	Modifiers         map[character.Ability]int `json:"modifiers"`
	MaxHP             int                       `json:"max_hp"`
	Proficiency       int                       `json:"proficiency"`
	AC                int                       `json:"ac"`
	Initiative        int                       `json:"initiative"`
	PassivePerception int                       `json:"passive_perception"`
	Skills            map[string]int            `json:"skills"`
	Saves             map[string]int            `json:"saves"`
	Speeds            map[string]int            `json:"speeds"`
	Senses            []character.Sense         `json:"senses"`
}

// Result is the output of one derivation pass. Sources maps each
// bucket key (the canonical target string) to the bonuses that landed
// there, in collection order, for per-attribute audit display.
type Result struct {
	Derived Snapshot
	Totals  Totals
	Sources map[string][]bonus.Bonus
}

// Derive routes every bonus into its aggregation bucket and computes
// final attribute values. It is pure and total: identical inputs give
// identical outputs, and malformed or unrecognized input degrades to a
// dropped contribution, never a failure. There is no cached state;
// callers re-run the full pass after any change.
func Derive(base *character.BaseAttributes, bonuses []bonus.Bonus) *Result {
	if base == nil {
		base = &character.BaseAttributes{}
	}

	totals := Totals{
		Abilities: make(map[character.Ability]int),
		Skills:    make(map[string]int),
		Saves:     make(map[string]int),
		Speeds:    make(map[string]int),
		Senses:    make(map[string]int),
	}
	sources := make(map[string][]bonus.Bonus)

	for _, b := range bonuses {
		target := bonus.ParseTarget(b.Target)

		switch target.Kind {
		case bonus.TargetAbility:
			ability, ok := character.AbilityFromName(target.Name)
			if !ok {
				continue
			}
			totals.Abilities[ability] += b.Value
		case bonus.TargetSkill:
			totals.Skills[target.Name] += b.Value
		case bonus.TargetSave:
			totals.Saves[target.Name] += b.Value
		case bonus.TargetSpeed:
			totals.Speeds[target.Name] += b.Value
		case bonus.TargetSense:
			// Senses merge by max: two darkvision items grant the
			// better of the two, they do not stack.
			if b.Value > totals.Senses[target.Name] {
				totals.Senses[target.Name] = b.Value
			}
		case bonus.TargetAC:
			totals.AC += b.Value
		case bonus.TargetInitiative:
			totals.Initiative += b.Value
		case bonus.TargetMaxHP:
			totals.MaxHP += b.Value
		case bonus.TargetPassivePerception:
			totals.PassivePerception += b.Value
		default:
			// Unknown target shapes route nowhere. Experimental or
			// forward-compatible targets must not break derivation.
			continue
		}

		key := target.Key()
		sources[key] = append(sources[key], b)
	}

	derived := Snapshot{
		Abilities:         make(map[character.Ability]int, len(character.Abilities)),
		Modifiers:         make(map[character.Ability]int, len(character.Abilities)),
		MaxHP:             base.MaxHP + totals.MaxHP,
		Proficiency:       base.ProficiencyBonus,
		AC:                base.BaseAC + totals.AC,
		Initiative:        base.BaseInitiative + totals.Initiative,
		PassivePerception: base.BasePassivePerception + totals.PassivePerception,
		Skills:            make(map[string]int, len(totals.Skills)),
		Saves:             make(map[string]int, len(totals.Saves)),
	}

	for _, ability := range character.Abilities {
		score := base.Score(ability) + totals.Abilities[ability]
		derived.Abilities[ability] = score
		derived.Modifiers[ability] = character.Modifier(score)
	}

	for name, total := range totals.Skills {
		derived.Skills[name] = total
	}
	for name, total := range totals.Saves {
		derived.Saves[name] = total
	}

	derived.Speeds = deriveSpeeds(base.Speeds, totals.Speeds)
	derived.Senses = deriveSenses(base.Senses, totals.Senses)

	return &Result{Derived: derived, Totals: totals, Sources: sources}
}

// deriveSpeeds adds speed bonuses onto base speeds. A bonus for a type
// the base doesn't have introduces it (fly speed from an item).
func deriveSpeeds(base map[string]int, bonuses map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(bonuses))
	for typ, dist := range base {
		out[typ] = dist
	}
	for typ, total := range bonuses {
		out[typ] += total
	}
	return out
}

// deriveSenses merges the max-merged sense bonus totals against the
// base senses, again by max: a +30 darkvision item against a base of
// 60 ft grants 60 ft, not 90. Duplicate base entries collapse by max
// first.
func deriveSenses(base []character.Sense, bonuses map[string]int) []character.Sense {
	ranges := make(map[string]int, len(base)+len(bonuses))
	for _, s := range base {
		if s.Range > ranges[s.Type] {
			ranges[s.Type] = s.Range
		}
	}
	for typ, total := range bonuses {
		if total > ranges[typ] {
			ranges[typ] = total
		}
	}

	out := make([]character.Sense, 0, len(ranges))
	for typ, rng := range ranges {
		out = append(out, character.Sense{Type: typ, Range: rng})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
