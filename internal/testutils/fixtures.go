package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// TestProfileID is the profile used by fixtures
const TestProfileID = "test-profile"

// TestProfile returns the fixture profile
func TestProfile() sheet.Profile {
	return sheet.Profile{ID: TestProfileID}
}

// CreateTestEquipment returns a small loadout touching several stats:
// HAB +2, ARM +3, CHA +1, END -1
func CreateTestEquipment() []sheet.EquipmentItem {
	return []sheet.EquipmentItem{
		{Name: "Short Sword", Quantity: 1, Bonus: "+2 HAB"},
		{Name: "Chain Mail", Quantity: 1, Bonus: "+3 ARM, -1 END"},
		{Name: "Lucky Charm", Quantity: 1, Bonus: "+1 CHA"},
		{Name: "Rope", Quantity: 1, Bonus: ""},
	}
}

// CreateTestRolls returns count plain D6 records with sequential ids
func CreateTestRolls(count int) []sheet.DiceRollRecord {
	rolls := make([]sheet.DiceRollRecord, 0, count)
	for i := 0; i < count; i++ {
		rolls = append(rolls, sheet.DiceRollRecord{
			RollID:    fmt.Sprintf("roll-%d", i),
			Time:      "12:00:00",
			Kind:      sheet.RollKindPlain,
			Faces:     6,
			FaceValue: int32(i%6 + 1),
			Outcome:   sheet.OutcomeNone,
		})
	}
	return rolls
}
