package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/benefit"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
)

func deriveBase() *character.BaseAttributes {
	return &character.BaseAttributes{
		Abilities: map[character.Ability]int{
			character.AbilityStrength:     8,
			character.AbilityDexterity:    14,
			character.AbilityConstitution: 12,
			character.AbilityIntelligence: 13,
			character.AbilityWisdom:       10,
			character.AbilityCharisma:     16,
		},
		MaxHP:                 27,
		ProficiencyBonus:      2,
		BaseAC:                13,
		BaseInitiative:        2,
		BasePassivePerception: 10,
		Senses:                []character.Sense{{Type: "darkvision", Range: 60}},
		Speeds:                map[string]int{"walk": 30},
	}
}

func itemBonus(target string, value int) bonus.Bonus {
	return bonus.Bonus{
		Target: target,
		Value:  value,
		Type:   bonus.TypeUntyped,
		Source: bonus.Source{Type: bonus.SourceItem, ID: "item-1", Label: "Trinket"},
	}
}

func TestDerive_AdditiveBuckets(t *testing.T) {
	result := Derive(deriveBase(), []bonus.Bonus{
		itemBonus("ac", 2),
		itemBonus("ac", -1),
		itemBonus("initiative", 1),
		itemBonus("maxHP", 5),
		itemBonus("passivePerception", 5),
		itemBonus("skill.stealth", 2),
		itemBonus("skill.stealth", 1),
		itemBonus("save.wisdom", 1),
		itemBonus("ability.charisma", 2),
	})

	assert.Equal(t, 1, result.Totals.AC, "positive and negative contributions sum")
	assert.Equal(t, 14, result.Derived.AC)
	assert.Equal(t, 3, result.Derived.Initiative)
	assert.Equal(t, 32, result.Derived.MaxHP)
	assert.Equal(t, 15, result.Derived.PassivePerception)
	assert.Equal(t, 3, result.Totals.Skills["stealth"])
	assert.Equal(t, 1, result.Totals.Saves["wisdom"])
	assert.Equal(t, 18, result.Derived.Abilities[character.AbilityCharisma])
	assert.Equal(t, 4, result.Derived.Modifiers[character.AbilityCharisma])
}

func TestDerive_Idempotent(t *testing.T) {
	base := deriveBase()
	bonuses := []bonus.Bonus{
		itemBonus("ac", 1),
		itemBonus("ability.strength", 2),
		itemBonus("sense.darkvision", 120),
		itemBonus("speed.walk", 10),
	}

	first := Derive(base, bonuses)
	second := Derive(base, bonuses)

	assert.Equal(t, first, second)
}

func TestDerive_OrderIndependent(t *testing.T) {
	base := deriveBase()
	bonuses := []bonus.Bonus{
		itemBonus("ac", 2),
		itemBonus("ac", -1),
		itemBonus("sense.darkvision", 90),
		itemBonus("sense.darkvision", 30),
		itemBonus("skill.arcana", 3),
	}
	reversed := make([]bonus.Bonus, len(bonuses))
	for i, b := range bonuses {
		reversed[len(bonuses)-1-i] = b
	}

	forward := Derive(base, bonuses)
	backward := Derive(base, reversed)

	assert.Equal(t, forward.Derived, backward.Derived)
	assert.Equal(t, forward.Totals, backward.Totals)
}

func TestDerive_SenseMaxMerge(t *testing.T) {
	t.Run("base exceeds bonus", func(t *testing.T) {
		result := Derive(deriveBase(), []bonus.Bonus{itemBonus("sense.darkvision", 30)})
		require.Len(t, result.Derived.Senses, 1)
		assert.Equal(t, character.Sense{Type: "darkvision", Range: 60}, result.Derived.Senses[0])
	})

	t.Run("bonus exceeds base", func(t *testing.T) {
		result := Derive(deriveBase(), []bonus.Bonus{
			itemBonus("sense.darkvision", 120),
			itemBonus("sense.darkvision", 90),
		})
		require.Len(t, result.Derived.Senses, 1)
		assert.Equal(t, 120, result.Derived.Senses[0].Range)
		assert.Equal(t, 120, result.Totals.Senses["darkvision"], "bucket itself max-merges")
	})

	t.Run("new sense type introduced", func(t *testing.T) {
		result := Derive(deriveBase(), []bonus.Bonus{itemBonus("sense.tremorsense", 30)})
		require.Len(t, result.Derived.Senses, 2)
		assert.Equal(t, "darkvision", result.Derived.Senses[0].Type)
		assert.Equal(t, "tremorsense", result.Derived.Senses[1].Type)
	})

	t.Run("duplicate base entries collapse", func(t *testing.T) {
		base := deriveBase()
		base.Senses = append(base.Senses, character.Sense{Type: "darkvision", Range: 30})
		result := Derive(base, nil)
		require.Len(t, result.Derived.Senses, 1)
		assert.Equal(t, 60, result.Derived.Senses[0].Range)
	})
}

func TestDerive_SpeedsAdditive(t *testing.T) {
	result := Derive(deriveBase(), []bonus.Bonus{
		itemBonus("speed.walk", 10),
		itemBonus("speed.fly", 60),
	})

	assert.Equal(t, 40, result.Derived.Speeds["walk"])
	assert.Equal(t, 60, result.Derived.Speeds["fly"], "bonus introduces a new movement type")
}

func TestDerive_DropsUnrecognized(t *testing.T) {
	result := Derive(deriveBase(), []bonus.Bonus{
		itemBonus("spell_attack", 1),
		itemBonus("ability.luck", 3),
		itemBonus("ac", 1),
	})

	assert.Equal(t, 1, result.Totals.AC)
	assert.Len(t, result.Totals.Abilities, 0)
	assert.Len(t, result.Sources, 1, "dropped bonuses leave no audit trail")
	assert.Len(t, result.Sources["ac"], 1)
}

func TestDerive_NilAndEmpty(t *testing.T) {
	result := Derive(nil, nil)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Derived.MaxHP)
	assert.Equal(t, -5, result.Derived.Modifiers[character.AbilityStrength], "score zero without base data")

	result = Derive(deriveBase(), nil)
	assert.Equal(t, 27, result.Derived.MaxHP)
	assert.Equal(t, 3, result.Derived.Modifiers[character.AbilityCharisma])
	assert.Empty(t, result.Sources)
}

func TestDerive_SourcesAudit(t *testing.T) {
	ring := bonus.Bonus{Target: "ac", Value: 1, Type: bonus.TypeUntyped, Source: bonus.Source{Type: bonus.SourceItem, ID: "ring", Label: "Ring of Protection"}}
	shield := bonus.Bonus{Target: "ac", Value: 2, Type: "shield", Source: bonus.Source{Type: bonus.SourceItem, ID: "shield", Label: "Shield"}}

	result := Derive(deriveBase(), []bonus.Bonus{ring, shield})

	require.Len(t, result.Sources["ac"], 2)
	assert.Equal(t, "Ring of Protection", result.Sources["ac"][0].Source.Label)
	assert.Equal(t, "Shield", result.Sources["ac"][1].Source.Label)
	assert.Equal(t, 16, result.Derived.AC)
}

// Full pipeline: a feature whose benefit resolves against base charisma
// lands on two skills with the feature's identity attached.
func TestCollectThenDerive_FeatureFanOut(t *testing.T) {
	base := deriveBase()
	collector := NewCollector(nil)

	bonuses := collector.Collect(&Input{
		Features: []SourceRecord{{
			ID:   "feat-scholar",
			Name: "Scholar of Yore",
			Benefits: []benefit.Benefit{{
				Type:        "skill_modifier_bonus",
				Skills:      []string{"religion", "history"},
				BonusSource: "charisma_modifier",
			}},
		}},
		Base: base,
	})
	result := Derive(base, bonuses)

	assert.Equal(t, 3, result.Totals.Skills["religion"])
	assert.Equal(t, 3, result.Totals.Skills["history"])
	require.Len(t, result.Sources["skill.religion"], 1)
	require.Len(t, result.Sources["skill.history"], 1)
	assert.Equal(t, "Scholar of Yore", result.Sources["skill.religion"][0].Source.Label)
}
