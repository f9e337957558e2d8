package benefit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthforge/sheet-engine/internal/character"
)

func testBase() *character.BaseAttributes {
	return &character.BaseAttributes{
		Abilities: map[character.Ability]int{
			character.AbilityStrength:  8,
			character.AbilityDexterity: 15,
			character.AbilityCharisma:  16,
		},
		ProficiencyBonus: 3,
	}
}

func TestResolveModifierValue(t *testing.T) {
	base := testBase()

	tests := []struct {
		name string
		ref  string
		want int
	}{
		{name: "proficiency bonus", ref: "proficiency_bonus", want: 3},
		{name: "charisma modifier", ref: "charisma_modifier", want: 3},
		{name: "negative modifier", ref: "strength_modifier", want: -1},
		{name: "doubled", ref: "charisma_modifier_doubled", want: 6},
		{name: "halved floors", ref: "charisma_modifier_halved", want: 1},
		{name: "halved negative floors", ref: "strength_modifier_halved", want: -1},
		{name: "absent ability resolves to zero", ref: "wisdom_modifier", want: 0},
		{name: "unknown ability", ref: "luck_modifier", want: 0},
		{name: "unknown grammar", ref: "spell_attack", want: 0},
		{name: "bare ability name", ref: "charisma", want: 0},
		{name: "empty", ref: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveModifierValue(tt.ref, base))
		})
	}
}

func TestResolveModifierValue_NilBase(t *testing.T) {
	assert.Equal(t, 0, ResolveModifierValue("charisma_modifier", nil))
	assert.Equal(t, 0, ResolveModifierValue("proficiency_bonus", nil))
}

func TestResolveModifierValue_UsesBaseNotDerived(t *testing.T) {
	// The base snapshot is all resolution ever sees; later bonuses to
	// charisma elsewhere in the pass must not change this result.
	base := testBase()
	assert.Equal(t, 3, ResolveModifierValue("charisma_modifier", base))

	raised := *base
	raised.Abilities = map[character.Ability]int{character.AbilityCharisma: 20}
	assert.Equal(t, 5, ResolveModifierValue("charisma_modifier", &raised))
	assert.Equal(t, 3, ResolveModifierValue("charisma_modifier", base))
}
