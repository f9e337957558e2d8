package sheets

import (
	"context"
	"sync"

	"github.com/hearthforge/sheet-engine/internal/character"
	apperr "github.com/hearthforge/sheet-engine/internal/errors"
	"github.com/hearthforge/sheet-engine/internal/uuid"
)

// InMemoryRepository is an in-memory Repository for tests and local
// development. Records are cloned on the way in and out so callers
// can't mutate stored state.
type InMemoryRepository struct {
	mu            sync.RWMutex
	records       map[string]*SheetRecord
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates an in-memory sheet repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records:       make(map[string]*SheetRecord),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, record *SheetRecord) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = r.uuidGenerator.New()
	}
	if _, exists := r.records[record.ID]; exists {
		return apperr.AlreadyExistsf("sheet '%s' already exists", record.ID).
			WithMeta("sheet_id", record.ID)
	}
	r.records[record.ID] = record.Clone()
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*SheetRecord, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, apperr.NotFoundf("sheet '%s' not found", id).WithMeta("sheet_id", id)
	}
	return record.Clone(), nil
}

func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*SheetRecord, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*SheetRecord
	for _, record := range r.records {
		if record.OwnerID == ownerID {
			out = append(out, record.Clone())
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, record *SheetRecord) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; !exists {
		return apperr.NotFoundf("sheet '%s' not found", record.ID).WithMeta("sheet_id", record.ID)
	}
	r.records[record.ID] = record.Clone()
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return apperr.NotFoundf("sheet '%s' not found", id).WithMeta("sheet_id", id)
	}
	delete(r.records, id)
	return nil
}

func (r *InMemoryRepository) SetOverride(ctx context.Context, id, attrKey string, value *int) error {
	if attrKey == "" {
		return apperr.InvalidArgument("attribute key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[id]
	if !exists {
		return apperr.NotFoundf("sheet '%s' not found", id).WithMeta("sheet_id", id)
	}
	record.SetOverride(attrKey, value)
	return nil
}

func (r *InMemoryRepository) AddCustomModifier(ctx context.Context, id, attrKey string, mod character.CustomModifier) error {
	if attrKey == "" {
		return apperr.InvalidArgument("attribute key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[id]
	if !exists {
		return apperr.NotFoundf("sheet '%s' not found", id).WithMeta("sheet_id", id)
	}
	record.AddCustomModifier(attrKey, mod)
	return nil
}
