package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/repositories/sheets"
	"github.com/hearthforge/sheet-engine/internal/rules/benefit"
	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store a demo character and print its ID",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := buildRepository()
		if err != nil {
			return err
		}

		record := demoRecord()
		if err := repo.Create(cmd.Context(), record); err != nil {
			return err
		}

		fmt.Println(record.ID)
		return nil
	},
}

func demoRecord() *sheets.SheetRecord {
	return &sheets.SheetRecord{
		OwnerID: "demo",
		Name:    "Morwen of the Vale",
		Base: character.BaseAttributes{
			Abilities: map[character.Ability]int{
				character.AbilityStrength:     10,
				character.AbilityDexterity:    14,
				character.AbilityConstitution: 12,
				character.AbilityIntelligence: 13,
				character.AbilityWisdom:       11,
				character.AbilityCharisma:     16,
			},
			MaxHP:                 27,
			ProficiencyBonus:      2,
			BaseAC:                12,
			BaseInitiative:        2,
			BasePassivePerception: 10,
			Senses:                []character.Sense{{Type: "darkvision", Range: 60}},
			Speeds:                map[string]int{"walk": 30},
		},
		EquipmentKeys: []string{"shield"},
		Items: []derive.SourceRecord{
			{
				ID:   "ring-of-protection",
				Name: "Ring of Protection",
				Bonuses: []any{
					map[string]any{"target": "ac", "value": 1, "type": "magic"},
					map[string]any{"target": "save.dexterity", "value": 1, "type": "magic"},
				},
			},
		},
		Features: []derive.SourceRecord{
			{
				ID:   "scholar-of-yore",
				Name: "Scholar of Yore",
				Benefits: []benefit.Benefit{
					{
						Type:        "skill_modifier_bonus",
						Skills:      []string{"religion", "history"},
						BonusSource: "charisma_modifier",
					},
				},
			},
		},
		Improvements: []character.ASIRecord{
			{Source: "Level 4", SourceType: "asi", Abilities: []string{"CHA: 2"}},
		},
	}
}
