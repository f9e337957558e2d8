package sheets

//go:generate mockgen -destination=mock/mock.go -package=mocksheets -source=interface.go

import (
	"context"

	"github.com/hearthforge/sheet-engine/internal/character"
)

// Repository defines sheet persistence. The rules engine never touches
// storage; everything it derives is recomputed from what lives here.
type Repository interface {
	// Create stores a new sheet record, assigning an ID if empty.
	Create(ctx context.Context, record *SheetRecord) error

	// Get retrieves a sheet record by ID.
	Get(ctx context.Context, id string) (*SheetRecord, error)

	// GetByOwner retrieves all sheet records for an owner.
	GetByOwner(ctx context.Context, ownerID string) ([]*SheetRecord, error)

	// Update replaces an existing sheet record.
	Update(ctx context.Context, record *SheetRecord) error

	// Delete removes a sheet record.
	Delete(ctx context.Context, id string) error

	// SetOverride sets (or clears, when value is nil) the absolute
	// override for one attribute key.
	SetOverride(ctx context.Context, id, attrKey string, value *int) error

	// AddCustomModifier appends a user-entered additive modifier for
	// one attribute key.
	AddCustomModifier(ctx context.Context, id, attrKey string, mod character.CustomModifier) error
}
