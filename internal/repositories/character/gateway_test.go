package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	profile sheet.Profile
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	gw, err := persistence.New(&persistence.Config{Store: kv.NewMemory()})
	s.Require().NoError(err)

	repo, err := character.NewRepository(&character.Config{Gateway: gw})
	s.Require().NoError(err)
	s.repo = repo
	s.profile = testutils.TestProfile()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TestGetUnsetInfo() {
	out, err := s.repo.Get(s.ctx, character.GetInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(&sheet.CharacterInfo{}, out.Info)
}

func (s *RepositoryTestSuite) TestUpdateFields() {
	_, err := s.repo.UpdateField(s.ctx, character.UpdateFieldInput{
		Profile: s.profile,
		Field:   "name",
		Value:   "Aldric",
	})
	s.Require().NoError(err)

	out, err := s.repo.UpdateField(s.ctx, character.UpdateFieldInput{
		Profile: s.profile,
		Field:   " Class ",
		Value:   "Ranger",
	})
	s.Require().NoError(err)
	s.Equal(&sheet.CharacterInfo{Name: "Aldric", Class: "Ranger"}, out.Info)

	got, err := s.repo.Get(s.ctx, character.GetInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(out.Info, got.Info)
}

func (s *RepositoryTestSuite) TestUpdateUnknownField() {
	_, err := s.repo.UpdateField(s.ctx, character.UpdateFieldInput{
		Profile: s.profile,
		Field:   "level",
		Value:   "3",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestEmptyProfile() {
	_, err := s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
