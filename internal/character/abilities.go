package character

import "strings"

// Ability is one of the six ability scores, named in full lowercase to
// match the "ability.<name>" target grammar.
type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists the six abilities in standard sheet order.
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityAbbrevs = map[string]Ability{
	"STR": AbilityStrength,
	"DEX": AbilityDexterity,
	"CON": AbilityConstitution,
	"INT": AbilityIntelligence,
	"WIS": AbilityWisdom,
	"CHA": AbilityCharisma,
}

// AbilityFromAbbrev resolves a three-letter abbreviation like "STR"
// (case-insensitive) to an Ability.
func AbilityFromAbbrev(abbrev string) (Ability, bool) {
	a, ok := abilityAbbrevs[strings.ToUpper(strings.TrimSpace(abbrev))]
	return a, ok
}

// AbilityFromName resolves a full lowercase ability name, as it appears
// in target paths and modifier references.
func AbilityFromName(name string) (Ability, bool) {
	for _, a := range Abilities {
		if string(a) == name {
			return a, true
		}
	}
	return "", false
}

// Modifier computes the ability modifier for a score:
// floor((score-10)/2). Plain integer division truncates toward zero,
// which is wrong for scores below 10 (a 9 is -1, not 0), so negative
// differences are floored explicitly.
func Modifier(score int) int {
	return floorDiv(score-10, 2)
}

func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
