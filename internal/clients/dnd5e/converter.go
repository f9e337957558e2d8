package dnd5e

import (
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

// equipmentToRecord converts an API equipment result into a source
// record. A shield is the one equipment shape the API expresses as a
// flat AC amount, so it comes back carrying an ac bonus; armor and
// weapons come back bare, since body-armor AC replaces the base rather
// than adding to it.
func equipmentToRecord(input dnd5e.EquipmentInterface) *derive.SourceRecord {
	if input == nil {
		return nil
	}

	switch equip := input.(type) {
	case *apiEntities.Armor:
		record := &derive.SourceRecord{ID: equip.Key, Name: equip.Name}
		if strings.EqualFold(equip.ArmorCategory, "shield") && equip.ArmorClass != nil {
			record.Bonuses = []any{
				map[string]any{
					"target": "ac",
					"value":  equip.ArmorClass.Base,
					"type":   "shield",
				},
			}
		}
		return record
	case *apiEntities.Weapon:
		return &derive.SourceRecord{ID: equip.Key, Name: equip.Name}
	case *apiEntities.Equipment:
		return &derive.SourceRecord{ID: equip.Key, Name: equip.Name}
	default:
		// Silently handle unknown equipment types
		return nil
	}
}
