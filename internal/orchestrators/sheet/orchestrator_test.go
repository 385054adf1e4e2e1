package sheet_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/kv"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/persistence"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/collection"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/dicehistory"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/notebook"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	historyRepo  dicehistory.Repository
	orchestrator sheet.Service
	profile      entities.Profile
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	gw, err := persistence.New(&persistence.Config{Store: kv.NewMemory()})
	s.Require().NoError(err)

	statsRepo, err := statsrepo.NewRepository(&statsrepo.Config{Gateway: gw})
	s.Require().NoError(err)
	equipmentRepo, err := collection.NewRepository[entities.EquipmentItem](&collection.Config{Gateway: gw, Record: entities.RecordEquipment})
	s.Require().NoError(err)
	inventoryRepo, err := collection.NewRepository[entities.InventoryItem](&collection.Config{Gateway: gw, Record: entities.RecordInventory})
	s.Require().NoError(err)
	npcRepo, err := collection.NewRepository[entities.NPC](&collection.Config{Gateway: gw, Record: entities.RecordNPCs})
	s.Require().NoError(err)
	characterRepo, err := character.NewRepository(&character.Config{Gateway: gw})
	s.Require().NoError(err)
	notebookRepo, err := notebook.NewRepository(&notebook.Config{Gateway: gw})
	s.Require().NoError(err)
	s.historyRepo, err = dicehistory.NewRepository(&dicehistory.Config{Gateway: gw})
	s.Require().NoError(err)

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	statsService, err := stats.NewOrchestrator(&stats.Config{
		StatsRepo:     statsRepo,
		EquipmentRepo: equipmentRepo,
		Engine:        eng,
	})
	s.Require().NoError(err)

	s.orchestrator, err = sheet.NewOrchestrator(&sheet.Config{
		EquipmentRepo: equipmentRepo,
		InventoryRepo: inventoryRepo,
		NPCRepo:       npcRepo,
		CharacterRepo: characterRepo,
		NotebookRepo:  notebookRepo,
		HistoryRepo:   s.historyRepo,
		Stats:         statsService,
	})
	s.Require().NoError(err)

	s.profile = testutils.TestProfile()
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := sheet.NewOrchestrator(&sheet.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "EquipmentRepo")
	s.Contains(err.Error(), "Stats")
}

func (s *OrchestratorTestSuite) TestAddEquipmentRefreshesStats() {
	out, err := s.orchestrator.AddEquipment(s.ctx, &sheet.AddEquipmentInput{
		Profile:  s.profile,
		Name:     " Belt of Giants ",
		Quantity: "2",
		Bonus:    "+1 END, +2 hab",
	})
	s.Require().NoError(err)

	s.Equal([]entities.EquipmentItem{{Name: "Belt of Giants", Quantity: 2, Bonus: "+1 END, +2 hab"}}, out.Items)
	s.Equal(int32(2), out.Sheet.Bonus[entities.END])
	s.Equal(int32(4), out.Sheet.Bonus[entities.HAB])
	s.Equal(int32(21), out.Sheet.MaxHP)
	s.Equal(int32(15), out.Sheet.CurrentHP)
}

func (s *OrchestratorTestSuite) TestRemoveEquipmentClampsHP() {
	_, err := s.orchestrator.AddEquipment(s.ctx, &sheet.AddEquipmentInput{
		Profile:  s.profile,
		Name:     "Cursed Ring",
		Quantity: "1",
		Bonus:    "-2 END",
	})
	s.Require().NoError(err)
	_, err = s.orchestrator.AddEquipment(s.ctx, &sheet.AddEquipmentInput{
		Profile:  s.profile,
		Name:     "Amulet",
		Quantity: "1",
		Bonus:    "+4 END",
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.RemoveEquipment(s.ctx, &sheet.RemoveInput{Profile: s.profile, Index: 1})
	s.Require().NoError(err)
	s.Equal("Amulet", out.Removed.Name)
	s.Equal(int32(9), out.Sheet.MaxHP)
	s.Equal(int32(9), out.Sheet.CurrentHP)
}

func (s *OrchestratorTestSuite) TestRemoveEquipmentOutOfRange() {
	_, err := s.orchestrator.RemoveEquipment(s.ctx, &sheet.RemoveInput{Profile: s.profile, Index: 3})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAddRequiresName() {
	_, err := s.orchestrator.AddEquipment(s.ctx, &sheet.AddEquipmentInput{Profile: s.profile, Name: "  "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddInventory(s.ctx, &sheet.AddInventoryInput{Profile: s.profile})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddNPC(s.ctx, &sheet.AddNPCInput{Profile: s.profile})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestInventory() {
	out, err := s.orchestrator.AddInventory(s.ctx, &sheet.AddInventoryInput{
		Profile:     s.profile,
		Name:        "Torch",
		Quantity:    "-3",
		Description: "Burns for an hour",
	})
	s.Require().NoError(err)
	s.Equal([]entities.InventoryItem{{Name: "Torch", Quantity: 0, Description: "Burns for an hour"}}, out.Items)

	_, err = s.orchestrator.AddInventory(s.ctx, &sheet.AddInventoryInput{Profile: s.profile, Name: "Rations", Quantity: "4 days"})
	s.Require().NoError(err)

	out, err = s.orchestrator.RemoveInventory(s.ctx, &sheet.RemoveInput{Profile: s.profile, Index: 0})
	s.Require().NoError(err)
	s.Equal([]entities.InventoryItem{{Name: "Rations", Quantity: 4}}, out.Items)

	listed, err := s.orchestrator.ListInventory(s.ctx, &sheet.ProfileInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(out.Items, listed.Items)
}

func (s *OrchestratorTestSuite) TestNPCs() {
	_, err := s.orchestrator.AddNPC(s.ctx, &sheet.AddNPCInput{Profile: s.profile, Name: "Mira", Description: "Ferry keeper.\nKnows the river."})
	s.Require().NoError(err)

	out, err := s.orchestrator.ListNPCs(s.ctx, &sheet.ProfileInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Require().Len(out.NPCs, 1)
	s.Equal("Ferry keeper.\nKnows the river.", out.NPCs[0].Description)

	out, err = s.orchestrator.RemoveNPC(s.ctx, &sheet.RemoveInput{Profile: s.profile, Index: 0})
	s.Require().NoError(err)
	s.Empty(out.NPCs)
}

func (s *OrchestratorTestSuite) TestInfoAndNotebook() {
	_, err := s.orchestrator.UpdateInfo(s.ctx, &sheet.UpdateInfoInput{Profile: s.profile, Field: "name", Value: "Brom"})
	s.Require().NoError(err)

	info, err := s.orchestrator.GetInfo(s.ctx, &sheet.ProfileInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal("Brom", info.Info.Name)

	_, err = s.orchestrator.UpdateInfo(s.ctx, &sheet.UpdateInfoInput{Profile: s.profile, Field: "age", Value: "40"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SaveNotebook(s.ctx, &sheet.SaveNotebookInput{Profile: s.profile, Text: "Door code 4711"})
	s.Require().NoError(err)
	note, err := s.orchestrator.GetNotebook(s.ctx, &sheet.ProfileInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal("Door code 4711", note.Text)
}

func (s *OrchestratorTestSuite) seedSheet() {
	_, err := s.orchestrator.UpdateInfo(s.ctx, &sheet.UpdateInfoInput{Profile: s.profile, Field: "class", Value: "Rogue"})
	s.Require().NoError(err)
	_, err = s.orchestrator.AddEquipment(s.ctx, &sheet.AddEquipmentInput{Profile: s.profile, Name: "Dagger", Quantity: "1", Bonus: "+1 HAB"})
	s.Require().NoError(err)
	_, err = s.orchestrator.SaveNotebook(s.ctx, &sheet.SaveNotebookInput{Profile: s.profile, Text: "hello"})
	s.Require().NoError(err)
	for _, roll := range testutils.CreateTestRolls(2) {
		_, err = s.historyRepo.Append(s.ctx, dicehistory.AppendInput{Profile: s.profile, Roll: roll})
		s.Require().NoError(err)
	}
}

func (s *OrchestratorTestSuite) TestExportYAML() {
	s.seedSheet()

	out, err := s.orchestrator.Export(s.ctx, &sheet.ExportInput{Profile: s.profile})
	s.Require().NoError(err)
	s.Equal(sheet.FormatYAML, out.Format)

	var decoded sheet.Snapshot
	s.Require().NoError(yaml.Unmarshal(out.Data, &decoded))
	s.Equal(s.profile.ID, decoded.Profile)
	s.Equal("Rogue", decoded.Character.Class)
	s.Equal(int32(6), decoded.Stats.Total[entities.HAB])
	s.Len(decoded.Equipment, 1)
	s.Len(decoded.History, 2)
	s.Equal("hello", decoded.Notebook)
	s.Contains(string(out.Data), "dice_history:")
}

func (s *OrchestratorTestSuite) TestExportJSON() {
	s.seedSheet()

	out, err := s.orchestrator.Export(s.ctx, &sheet.ExportInput{Profile: s.profile, Format: "JSON"})
	s.Require().NoError(err)
	s.Equal(sheet.FormatJSON, out.Format)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(out.Data, &decoded))
	s.Contains(decoded, "stats")
	s.Contains(decoded, "npcs")
	s.Equal(out.Snapshot.Notebook, decoded["notebook"])
}

func (s *OrchestratorTestSuite) TestExportUnknownFormat() {
	_, err := s.orchestrator.Export(s.ctx, &sheet.ExportInput{Profile: s.profile, Format: "xml"})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
