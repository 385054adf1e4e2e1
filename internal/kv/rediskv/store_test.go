package rediskv_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv/rediskv"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store *rediskv.Store
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	store, err := rediskv.New(&rediskv.Config{Client: client})
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TestNewRequiresClient() {
	_, err := rediskv.New(&rediskv.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = rediskv.New(nil)
	s.Error(err)
}

func (s *StoreTestSuite) TestGetMissingKey() {
	_, err := s.store.Get(s.ctx, "sheet:default:stats")
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestSetOverwritesWholeValue() {
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:notebook", []byte(`"first"`)))
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:notebook", []byte(`"second"`)))

	raw, err := s.mr.Get("sheet:default:notebook")
	s.Require().NoError(err)
	s.Equal(`"second"`, raw)

	got, err := s.store.Get(s.ctx, "sheet:default:notebook")
	s.Require().NoError(err)
	s.Equal(`"second"`, string(got))
}

func (s *StoreTestSuite) TestDelete() {
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:npcs", []byte(`[]`)))
	s.Require().NoError(s.store.Delete(s.ctx, "sheet:default:npcs"))
	s.False(s.mr.Exists("sheet:default:npcs"))

	s.NoError(s.store.Delete(s.ctx, "sheet:default:npcs"))
}

func (s *StoreTestSuite) TestServerDownIsUnavailable() {
	s.mr.SetError("ERR server down")

	_, err := s.store.Get(s.ctx, "sheet:default:stats")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	err = s.store.Set(s.ctx, "sheet:default:stats", []byte(`{}`))
	s.True(errors.IsUnavailable(err))
}

func TestGetReadsExistingData(t *testing.T) {
	client := testutils.CreateTestRedisClientWithData(t, func(mr *miniredis.Miniredis) {
		require.NoError(t, mr.Set("sheet:hero:notebook", `"written elsewhere"`))
	})

	store, err := rediskv.New(&rediskv.Config{Client: client})
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "sheet:hero:notebook")
	require.NoError(t, err)
	assert.Equal(t, `"written elsewhere"`, string(got))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
