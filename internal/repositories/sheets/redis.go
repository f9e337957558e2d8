package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hearthforge/sheet-engine/internal/character"
	apperr "github.com/hearthforge/sheet-engine/internal/errors"
	"github.com/hearthforge/sheet-engine/internal/uuid"
)

// redisRepo implements Repository on Redis. Records are stored as JSON
// under sheet:<id>, with a set per owner for listing.
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository.
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // optional, defaults to google/uuid
}

// NewRedisRepository creates a Redis-backed sheet repository.
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, apperr.InvalidArgument("redis client is required")
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	return &redisRepo{client: cfg.Client, uuidGenerator: gen}, nil
}

func sheetKey(id string) string {
	return fmt.Sprintf("sheet:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("sheet:owner:%s", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, record *SheetRecord) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		record.ID = r.uuidGenerator.New()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	data, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal sheet record")
	}

	ok, err := r.client.SetNX(ctx, sheetKey(record.ID), data, 0).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to store sheet record")
	}
	if !ok {
		return apperr.AlreadyExistsf("sheet '%s' already exists", record.ID).
			WithMeta("sheet_id", record.ID)
	}

	if record.OwnerID != "" {
		if err := r.client.SAdd(ctx, ownerKey(record.OwnerID), record.ID).Err(); err != nil {
			return apperr.Wrap(err, "failed to index sheet by owner")
		}
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*SheetRecord, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	data, err := r.client.Get(ctx, sheetKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("sheet '%s' not found", id).WithMeta("sheet_id", id)
	}
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load sheet record")
	}

	var record SheetRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal sheet record")
	}
	return &record, nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*SheetRecord, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list sheets by owner")
	}

	records := make([]*SheetRecord, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, id)
		if apperr.IsNotFound(err) {
			// Stale index entry; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *redisRepo) Update(ctx context.Context, record *SheetRecord) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	exists, err := r.client.Exists(ctx, sheetKey(record.ID)).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to check sheet existence")
	}
	if exists == 0 {
		return apperr.NotFoundf("sheet '%s' not found", record.ID).WithMeta("sheet_id", record.ID)
	}

	record.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(record)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal sheet record")
	}
	if err := r.client.Set(ctx, sheetKey(record.ID), data, 0).Err(); err != nil {
		return apperr.Wrap(err, "failed to store sheet record")
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, sheetKey(id)).Err(); err != nil {
		return apperr.Wrap(err, "failed to delete sheet record")
	}
	if record.OwnerID != "" {
		if err := r.client.SRem(ctx, ownerKey(record.OwnerID), id).Err(); err != nil {
			return apperr.Wrap(err, "failed to unindex sheet by owner")
		}
	}
	return nil
}

func (r *redisRepo) SetOverride(ctx context.Context, id, attrKey string, value *int) error {
	if attrKey == "" {
		return apperr.InvalidArgument("attribute key is required")
	}
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	record.SetOverride(attrKey, value)
	return r.Update(ctx, record)
}

func (r *redisRepo) AddCustomModifier(ctx context.Context, id, attrKey string, mod character.CustomModifier) error {
	if attrKey == "" {
		return apperr.InvalidArgument("attribute key is required")
	}
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	record.AddCustomModifier(attrKey, mod)
	return r.Update(ctx, record)
}
