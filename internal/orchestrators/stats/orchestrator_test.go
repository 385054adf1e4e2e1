package stats_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/collection"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	statsrepomock "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	statsRepo     statsrepo.Repository
	equipmentRepo collection.Repository[sheet.EquipmentItem]
	engine        engine.Engine
	orchestrator  stats.Service
	profile       sheet.Profile
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	gw, err := persistence.New(&persistence.Config{Store: kv.NewMemory()})
	s.Require().NoError(err)

	s.statsRepo, err = statsrepo.NewRepository(&statsrepo.Config{Gateway: gw})
	s.Require().NoError(err)

	s.equipmentRepo, err = collection.NewRepository[sheet.EquipmentItem](&collection.Config{
		Gateway: gw,
		Record:  sheet.RecordEquipment,
	})
	s.Require().NoError(err)

	s.engine, err = engine.New(&engine.Config{})
	s.Require().NoError(err)

	s.orchestrator, err = stats.NewOrchestrator(&stats.Config{
		StatsRepo:     s.statsRepo,
		EquipmentRepo: s.equipmentRepo,
		Engine:        s.engine,
	})
	s.Require().NoError(err)

	s.profile = testutils.TestProfile()
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) seedBlock(block *sheet.StatBlock) {
	_, err := s.statsRepo.Save(s.ctx, statsrepo.SaveInput{Profile: s.profile, Block: block})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) equip(item sheet.EquipmentItem) {
	_, err := s.equipmentRepo.Add(s.ctx, collection.AddInput[sheet.EquipmentItem]{Profile: s.profile, Item: item})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) stored() *sheet.StatBlock {
	out, err := s.statsRepo.Get(s.ctx, statsrepo.GetInput{Profile: s.profile})
	s.Require().NoError(err)
	return out.Block
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := stats.NewOrchestrator(&stats.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "StatsRepo")
	s.Contains(err.Error(), "EquipmentRepo")
	s.Contains(err.Error(), "Engine")
}

func (s *OrchestratorTestSuite) TestGetStatsFreshSheet() {
	out, err := s.orchestrator.GetStats(s.ctx, &stats.GetStatsInput{Profile: s.profile})
	s.Require().NoError(err)

	got := out.Sheet
	s.Equal(int32(5), got.Total[sheet.HAB])
	s.Equal(int32(0), got.Total[sheet.ARM])
	s.Equal(int32(15), got.MaxHP)
	s.Equal(int32(15), got.CurrentHP)
	s.Equal(int32(5), got.MaxLuck)
	s.Equal(int32(5), got.CurrentLuck)

	// Undefined luck was pinned and written back
	block := s.stored()
	s.Require().NotNil(block.CurrentLuck)
	s.Equal(int32(5), *block.CurrentLuck)
}

func (s *OrchestratorTestSuite) TestGetStatsClampsStaleValues() {
	s.seedBlock(builders.NewStatBlockBuilder().WithHP(40).WithLuck(9, 9).Build())

	out, err := s.orchestrator.GetStats(s.ctx, &stats.GetStatsInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(int32(15), out.Sheet.CurrentHP)
	s.Equal(int32(5), out.Sheet.CurrentLuck)

	block := s.stored()
	s.Equal(int32(15), block.CurrentHP)
	s.Equal(int32(5), *block.CurrentLuck)
	s.Equal(int32(5), block.MaxLuck)
}

func (s *OrchestratorTestSuite) TestEquipmentBonusesAndRefresh() {
	_, err := s.orchestrator.GetStats(s.ctx, &stats.GetStatsInput{Profile: s.profile})
	s.Require().NoError(err)

	for _, item := range testutils.CreateTestEquipment() {
		s.equip(item)
	}
	s.equip(sheet.EquipmentItem{Name: "Broken Tag", Quantity: 1, Bonus: "shiny"})

	out, err := s.orchestrator.RefreshFromEquipment(s.ctx, &stats.RefreshFromEquipmentInput{Profile: s.profile})
	s.Require().NoError(err)

	got := out.Sheet
	s.Equal(int32(2), got.Bonus[sheet.HAB])
	s.Equal(int32(7), got.Total[sheet.HAB])
	s.Equal(int32(3), got.Total[sheet.ARM])
	s.Equal(int32(4), got.Total[sheet.END])
	s.Equal(int32(12), got.MaxHP)
	s.Equal(int32(12), got.CurrentHP)
	s.Equal(int32(6), got.MaxLuck)
	s.Equal(1, got.IgnoredBonusSegments)

	// A growing max does not drag a defined luck up
	s.Equal(int32(5), got.CurrentLuck)
}

func (s *OrchestratorTestSuite) TestGetStatsPinsUndefinedLuck() {
	s.seedBlock(builders.NewStatBlockBuilder().WithBase(sheet.CHA, 7).WithUndefinedLuck().Build())

	out, err := s.orchestrator.GetStats(s.ctx, &stats.GetStatsInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(int32(7), out.Sheet.CurrentLuck)
	s.Equal(int32(7), out.Sheet.MaxLuck)

	stored := s.stored()
	s.Require().NotNil(stored.CurrentLuck)
	s.Equal(int32(7), *stored.CurrentLuck)
}

func (s *OrchestratorTestSuite) TestUpdateBaseHugeEnduranceKeepsHP() {
	out, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.END,
		Raw:     "1000000000",
	})
	s.Require().NoError(err)

	s.Equal(int32(math.MaxInt32), out.Sheet.MaxHP)
	s.Equal(sheet.DefaultCurrentHP, out.Sheet.CurrentHP)
	s.Equal(sheet.DefaultCurrentHP, s.stored().CurrentHP)
}

func (s *OrchestratorTestSuite) TestUpdateBaseCHAGrowFollowsWhenPinned() {
	_, err := s.orchestrator.GetStats(s.ctx, &stats.GetStatsInput{Profile: s.profile})
	s.Require().NoError(err)

	out, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.CHA,
		Raw:     "8",
	})
	s.Require().NoError(err)
	s.Equal(int32(8), out.Sheet.MaxLuck)
	s.Equal(int32(8), out.Sheet.CurrentLuck)
}

func (s *OrchestratorTestSuite) TestUpdateBaseCHAGrowLeavesSpentLuck() {
	s.seedBlock(builders.NewStatBlockBuilder().WithLuck(3, 5).Build())

	out, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.CHA,
		Raw:     "8",
	})
	s.Require().NoError(err)
	s.Equal(int32(8), out.Sheet.MaxLuck)
	s.Equal(int32(3), out.Sheet.CurrentLuck)
}

func (s *OrchestratorTestSuite) TestUpdateBaseCHAShrinkClamps() {
	s.seedBlock(builders.NewStatBlockBuilder().WithLuck(5, 5).Build())

	out, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.CHA,
		Raw:     "2",
	})
	s.Require().NoError(err)
	s.Equal(int32(2), out.Sheet.MaxLuck)
	s.Equal(int32(2), out.Sheet.CurrentLuck)
	s.Equal(int32(2), *s.stored().CurrentLuck)
}

func (s *OrchestratorTestSuite) TestUpdateBaseENDClampsHP() {
	out, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.END,
		Raw:     "3",
	})
	s.Require().NoError(err)
	s.Equal(int32(9), out.Sheet.MaxHP)
	s.Equal(int32(9), out.Sheet.CurrentHP)
}

func (s *OrchestratorTestSuite) TestUpdateBaseUnreadableIsZero() {
	out, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.HAB,
		Raw:     "lots",
	})
	s.Require().NoError(err)
	s.Equal(int32(0), out.Sheet.Base[sheet.HAB])
	s.Equal(int32(0), s.stored().Base[sheet.HAB])
}

func (s *OrchestratorTestSuite) TestUpdateBaseUnknownKey() {
	_, err := s.orchestrator.UpdateBase(s.ctx, &stats.UpdateBaseInput{
		Profile: s.profile,
		Key:     sheet.StatKey("STR"),
		Raw:     "3",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateHP() {
	testCases := []struct {
		name string
		raw  string
		want int32
	}{
		{name: "within range", raw: "7", want: 7},
		{name: "above max", raw: "100", want: 15},
		{name: "negative", raw: "-4", want: 0},
		{name: "trailing text", raw: "12 hp", want: 12},
		{name: "unreadable", raw: "full", want: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.UpdateHP(s.ctx, &stats.UpdateHPInput{Profile: s.profile, Raw: tc.raw})
			s.Require().NoError(err)
			s.Equal(tc.want, out.Sheet.CurrentHP)
			s.Equal(tc.want, s.stored().CurrentHP)
		})
	}
}

func (s *OrchestratorTestSuite) TestConsumeLuck() {
	s.seedBlock(builders.NewStatBlockBuilder().WithLuck(3, 5).Build())

	out, err := s.orchestrator.ConsumeLuck(s.ctx, &stats.ConsumeLuckInput{Profile: s.profile})
	s.Require().NoError(err)
	s.True(out.Consumed)
	s.Equal(int32(3), out.PreviousLuck)
	s.Equal(int32(2), out.Sheet.CurrentLuck)
	s.Equal(int32(2), *s.stored().CurrentLuck)
}

func (s *OrchestratorTestSuite) TestConsumeLuckExhausted() {
	s.seedBlock(builders.NewStatBlockBuilder().WithLuck(0, 5).Build())

	out, err := s.orchestrator.ConsumeLuck(s.ctx, &stats.ConsumeLuckInput{Profile: s.profile})
	s.Require().NoError(err)
	s.False(out.Consumed)
	s.Equal(int32(0), out.Sheet.CurrentLuck)
	s.Equal(int32(0), *s.stored().CurrentLuck)
}

func (s *OrchestratorTestSuite) TestReset() {
	s.seedBlock(builders.NewStatBlockBuilder().WithBase(sheet.HAB, 12).WithHP(2).WithLuck(1, 5).Build())

	out, err := s.orchestrator.Reset(s.ctx, &stats.ResetInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(int32(5), out.Sheet.Base[sheet.HAB])
	s.Equal(int32(15), out.Sheet.CurrentHP)
	s.Equal(int32(5), out.Sheet.CurrentLuck)
}

func (s *OrchestratorTestSuite) TestNilInput() {
	_, err := s.orchestrator.GetStats(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStorageFailure() {
	ctrl := gomock.NewController(s.T())
	mockRepo := statsrepomock.NewMockRepository(ctrl)

	orch, err := stats.NewOrchestrator(&stats.Config{
		StatsRepo:     mockRepo,
		EquipmentRepo: s.equipmentRepo,
		Engine:        s.engine,
	})
	s.Require().NoError(err)

	mockRepo.EXPECT().
		Get(gomock.Any(), statsrepo.GetInput{Profile: s.profile}).
		Return(&statsrepo.GetOutput{Block: sheet.DefaultStatBlock()}, nil)
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err = orch.UpdateHP(s.ctx, &stats.UpdateHPInput{Profile: s.profile, Raw: "3"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "failed to save stats")
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
