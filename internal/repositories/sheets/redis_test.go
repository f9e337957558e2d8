package sheets

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hearthforge/sheet-engine/internal/character"
	apperr "github.com/hearthforge/sheet-engine/internal/errors"
	uuidmocks "github.com/hearthforge/sheet-engine/internal/uuid/mocks"
)

type RedisRepositorySuite struct {
	suite.Suite
	ctx     context.Context
	server  *miniredis.Miniredis
	client  *redis.Client
	ctrl    *gomock.Controller
	uuidGen *uuidmocks.MockGenerator
	repo    Repository
}

func (s *RedisRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.ctrl = gomock.NewController(s.T())
	s.uuidGen = uuidmocks.NewMockGenerator(s.ctrl)

	repo, err := NewRedisRepository(&RedisRepoConfig{
		Client:        s.client,
		UUIDGenerator: s.uuidGen,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositorySuite) TearDownTest() {
	_ = s.client.Close()
	s.ctrl.Finish()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositorySuite))
}

func (s *RedisRepositorySuite) TestNewRequiresClient() {
	_, err := NewRedisRepository(nil)
	s.True(apperr.IsInvalidArgument(err))

	_, err = NewRedisRepository(&RedisRepoConfig{})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *RedisRepositorySuite) TestCreateAndGet() {
	record := testRecord("sheet-1")
	s.Require().NoError(s.repo.Create(s.ctx, record))
	s.False(record.CreatedAt.IsZero())

	got, err := s.repo.Get(s.ctx, "sheet-1")
	s.Require().NoError(err)
	s.Equal("Morwen", got.Name)
	s.Equal(27, got.Base.MaxHP)
}

func (s *RedisRepositorySuite) TestCreateGeneratesID() {
	s.uuidGen.EXPECT().New().Return("generated-id")

	record := testRecord("")
	s.Require().NoError(s.repo.Create(s.ctx, record))
	s.Equal("generated-id", record.ID)

	_, err := s.repo.Get(s.ctx, "generated-id")
	s.NoError(err)
}

func (s *RedisRepositorySuite) TestCreateDuplicate() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))

	err := s.repo.Create(s.ctx, testRecord("sheet-1"))
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepositorySuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepositorySuite) TestGetByOwner() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-2")))

	other := testRecord("sheet-3")
	other.OwnerID = "owner-2"
	s.Require().NoError(s.repo.Create(s.ctx, other))

	records, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *RedisRepositorySuite) TestGetByOwnerSkipsStaleIndex() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))

	// Drop the record but leave the owner index entry behind.
	s.server.Del(sheetKey("sheet-1"))

	records, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RedisRepositorySuite) TestUpdate() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))

	updated := testRecord("sheet-1")
	updated.Name = "Morwen of the Vale"
	s.Require().NoError(s.repo.Update(s.ctx, updated))

	got, err := s.repo.Get(s.ctx, "sheet-1")
	s.Require().NoError(err)
	s.Equal("Morwen of the Vale", got.Name)

	s.True(apperr.IsNotFound(s.repo.Update(s.ctx, testRecord("missing"))))
}

func (s *RedisRepositorySuite) TestDelete() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))
	s.Require().NoError(s.repo.Delete(s.ctx, "sheet-1"))

	_, err := s.repo.Get(s.ctx, "sheet-1")
	s.True(apperr.IsNotFound(err))

	records, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Empty(records, "owner index is cleaned up")
}

func (s *RedisRepositorySuite) TestSetOverride() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))

	value := 18
	s.Require().NoError(s.repo.SetOverride(s.ctx, "sheet-1", "ability.charisma", &value))

	got, err := s.repo.Get(s.ctx, "sheet-1")
	s.Require().NoError(err)
	s.Require().Contains(got.Overrides, "ability.charisma")
	s.Equal(18, *got.Overrides["ability.charisma"])

	s.Require().NoError(s.repo.SetOverride(s.ctx, "sheet-1", "ability.charisma", nil))
	got, err = s.repo.Get(s.ctx, "sheet-1")
	s.Require().NoError(err)
	s.NotContains(got.Overrides, "ability.charisma")
}

func (s *RedisRepositorySuite) TestAddCustomModifier() {
	s.Require().NoError(s.repo.Create(s.ctx, testRecord("sheet-1")))

	mod := character.CustomModifier{Source: "Training", Value: 2}
	s.Require().NoError(s.repo.AddCustomModifier(s.ctx, "sheet-1", "ac", mod))

	got, err := s.repo.Get(s.ctx, "sheet-1")
	s.Require().NoError(err)
	s.Require().Len(got.CustomModifiers["ac"], 1)
	s.Equal(2, got.CustomModifiers["ac"][0].Value)
}
