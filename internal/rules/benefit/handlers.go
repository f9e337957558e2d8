package benefit

import (
	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
)

func registerBuiltins(r *Registry) {
	r.Register("skill_modifier_bonus", skillModifierBonus)
	r.Register("ability_modifier_bonus", abilityModifierBonus)
	r.Register("save_modifier_bonus", saveModifierBonus)
	r.Register("ac_bonus", acBonus)

	// Recognized but inert: these shape proficiency state, which lives
	// in presentation logic, not in the numeric engine. Registering
	// them keeps them out of the unknown-type diagnostics.
	r.Register("skill_proficiency", inert)
	r.Register("skill_dual_ability", inert)
	r.Register("skill_half_proficiency", inert)
}

func inert(*Benefit, *character.BaseAttributes, bonus.Source) []bonus.Bonus {
	return nil
}

// benefitValue picks the benefit's value: a symbolic reference when
// bonus_source is set, the literal value otherwise.
func benefitValue(b *Benefit, base *character.BaseAttributes) int {
	if b.BonusSource != "" {
		return ResolveModifierValue(b.BonusSource, base)
	}
	return b.Value
}

// fanOut emits one bonus per listed name under the given target
// prefix. A resolved value of 0 emits nothing at all rather than a
// pile of zero-valued entries.
func fanOut(prefix string, names []string, value int, src bonus.Source) []bonus.Bonus {
	if value == 0 {
		return nil
	}
	out := make([]bonus.Bonus, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		out = append(out, bonus.Bonus{
			Target: prefix + name,
			Value:  value,
			Type:   bonus.TypeUntyped,
			Source: src,
		})
	}
	return out
}

func skillModifierBonus(b *Benefit, base *character.BaseAttributes, src bonus.Source) []bonus.Bonus {
	return fanOut("skill.", b.Skills, benefitValue(b, base), src)
}

func abilityModifierBonus(b *Benefit, base *character.BaseAttributes, src bonus.Source) []bonus.Bonus {
	return fanOut("ability.", b.Abilities, benefitValue(b, base), src)
}

func saveModifierBonus(b *Benefit, base *character.BaseAttributes, src bonus.Source) []bonus.Bonus {
	return fanOut("save.", b.Saves, benefitValue(b, base), src)
}

func acBonus(b *Benefit, base *character.BaseAttributes, src bonus.Source) []bonus.Bonus {
	typ := bonus.TypeUntyped
	if b.BonusType != "" {
		typ = b.BonusType
	}
	return []bonus.Bonus{{
		Target: "ac",
		Value:  benefitValue(b, base),
		Type:   typ,
		Source: src,
	}}
}
