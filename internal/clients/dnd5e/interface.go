// Package dnd5e adapts the public D&D 5e API into the source records
// the rules engine collects bonuses from.
package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

// Client fetches equipment as engine-ready source records.
type Client interface {
	// GetEquipment fetches one piece of equipment by its API key.
	GetEquipment(key string) (*derive.SourceRecord, error)
}
