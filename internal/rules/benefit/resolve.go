package benefit

import (
	"strings"

	"github.com/hearthforge/sheet-engine/internal/character"
)

// ResolveModifierValue resolves a symbolic reference against the base
// (pre-bonus) attributes. Two grammars are recognized:
//
//	proficiency_bonus
//	<ability>_modifier[_doubled|_halved]
//
// Halving floors, matching ability-modifier math. Unknown references
// resolve to 0, as does a reference to an ability the base attributes
// don't carry. Resolution deliberately never looks at derived scores;
// a bonus that depended on its own output would feed back into itself.
func ResolveModifierValue(ref string, base *character.BaseAttributes) int {
	if base == nil {
		return 0
	}
	if ref == "proficiency_bonus" {
		return base.ProficiencyBonus
	}

	scale := func(v int) int { return v }
	if trimmed, ok := strings.CutSuffix(ref, "_doubled"); ok {
		ref = trimmed
		scale = func(v int) int { return v * 2 }
	} else if trimmed, ok := strings.CutSuffix(ref, "_halved"); ok {
		ref = trimmed
		scale = func(v int) int { return floorHalf(v) }
	}

	name, ok := strings.CutSuffix(ref, "_modifier")
	if !ok {
		return 0
	}
	ability, ok := character.AbilityFromName(name)
	if !ok {
		return 0
	}

	return scale(base.AbilityModifier(ability))
}

func floorHalf(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}
