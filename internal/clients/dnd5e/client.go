package dnd5e

import (
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	apperr "github.com/hearthforge/sheet-engine/internal/errors"
	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

type client struct {
	api dnd5e.Interface
}

// Config holds configuration for the API client.
type Config struct {
	HTTPClient *http.Client
}

// New creates a Client backed by the public 5e API.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{api: api}, nil
}

func (c *client) GetEquipment(key string) (*derive.SourceRecord, error) {
	if key == "" {
		return nil, apperr.InvalidArgument("GetEquipment.key is required")
	}

	response, err := c.api.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	record := equipmentToRecord(response)
	if record == nil {
		return nil, apperr.NotFoundf("equipment '%s' not recognized", key)
	}
	return record, nil
}
