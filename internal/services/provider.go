package services

import (
	"github.com/hearthforge/sheet-engine/internal/clients/dnd5e"
	"github.com/hearthforge/sheet-engine/internal/repositories/sheets"
	"github.com/hearthforge/sheet-engine/internal/rules/benefit"
	sheetService "github.com/hearthforge/sheet-engine/internal/services/sheet"
)

// Provider holds all service instances
type Provider struct {
	SheetService sheetService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DNDClient       dnd5e.Client
	SheetRepository sheets.Repository
	// BenefitRegistry is optional; the built-in handlers are used when
	// it is nil.
	BenefitRegistry *benefit.Registry
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	sheetRepo := cfg.SheetRepository
	if sheetRepo == nil {
		sheetRepo = sheets.NewInMemoryRepository()
	}

	return &Provider{
		SheetService: sheetService.NewService(&sheetService.ServiceConfig{
			Repository: sheetRepo,
			Client:     cfg.DNDClient,
			Registry:   cfg.BenefitRegistry,
		}),
	}
}
