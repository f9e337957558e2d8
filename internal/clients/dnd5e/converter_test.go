package dnd5e

import (
	"testing"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentToRecord_Shield(t *testing.T) {
	record := equipmentToRecord(&apiEntities.Armor{
		Key:           "shield",
		Name:          "Shield",
		ArmorCategory: "Shield",
		ArmorClass:    &apiEntities.ArmorClass{Base: 2},
	})

	require.NotNil(t, record)
	assert.Equal(t, "shield", record.ID)
	assert.Equal(t, "Shield", record.Name)
	require.Len(t, record.Bonuses, 1)

	raw, ok := record.Bonuses[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ac", raw["target"])
	assert.Equal(t, 2, raw["value"])
	assert.Equal(t, "shield", raw["type"])
}

func TestEquipmentToRecord_BodyArmorIsBare(t *testing.T) {
	record := equipmentToRecord(&apiEntities.Armor{
		Key:           "chain-mail",
		Name:          "Chain Mail",
		ArmorCategory: "Heavy",
		ArmorClass:    &apiEntities.ArmorClass{Base: 16},
	})

	require.NotNil(t, record)
	assert.Equal(t, "chain-mail", record.ID)
	assert.Empty(t, record.Bonuses, "body armor replaces AC, it is not a bonus")
}

func TestEquipmentToRecord_ShieldWithoutArmorClass(t *testing.T) {
	record := equipmentToRecord(&apiEntities.Armor{
		Key:           "shield",
		Name:          "Shield",
		ArmorCategory: "Shield",
	})

	require.NotNil(t, record)
	assert.Empty(t, record.Bonuses)
}

func TestEquipmentToRecord_WeaponAndGear(t *testing.T) {
	record := equipmentToRecord(&apiEntities.Weapon{Key: "longsword", Name: "Longsword"})
	require.NotNil(t, record)
	assert.Equal(t, "longsword", record.ID)
	assert.Empty(t, record.Bonuses)

	record = equipmentToRecord(&apiEntities.Equipment{Key: "rope", Name: "Rope, Hempen"})
	require.NotNil(t, record)
	assert.Equal(t, "Rope, Hempen", record.Name)
}

func TestEquipmentToRecord_Unknown(t *testing.T) {
	assert.Nil(t, equipmentToRecord(nil))
}
