package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/views"
)

func TestStatRows(t *testing.T) {
	s := &stats.Sheet{
		Base:        sheet.StatMap{sheet.HAB: 5, sheet.END: 5, sheet.ARM: 0, sheet.ADR: 5, sheet.CHA: 5, sheet.CRI: 0},
		Bonus:       sheet.StatMap{sheet.HAB: 2, sheet.END: -1, sheet.ARM: 0, sheet.ADR: 0, sheet.CHA: 1, sheet.CRI: 0},
		Total:       sheet.StatMap{sheet.HAB: 7, sheet.END: 4, sheet.ARM: 0, sheet.ADR: 5, sheet.CHA: 6, sheet.CRI: 0},
		CurrentHP:   10,
		MaxHP:       12,
		CurrentLuck: 3,
		MaxLuck:     6,
	}

	rows := views.StatRows(s)
	require.Len(t, rows, 6)

	keys := make([]sheet.StatKey, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, sheet.StatKeys, keys)

	assert.Equal(t, views.StatRow{Key: sheet.HAB, Label: "Skill", Base: 5, Bonus: "+2", Value: 7}, rows[0])
	assert.Equal(t, "-1", rows[1].Bonus)
	assert.Equal(t, "+0", rows[2].Bonus)

	// CHA shows current luck rather than the total
	assert.Equal(t, int32(3), rows[4].Value)

	assert.Equal(t, "10 / 12", views.HP(s).String())
}

func TestHistoryRows(t *testing.T) {
	rolls := []sheet.DiceRollRecord{
		{RollID: "c", Time: "10:00:03", Kind: sheet.RollKindLuckCheck, Faces: 6, FaceValue: 4, Outcome: sheet.OutcomeSuccess},
		{RollID: "b", Time: "10:00:02", Kind: sheet.RollKindLuckCheck, Faces: 6, FaceValue: 6, Outcome: sheet.OutcomeFailure},
		{RollID: "a", Time: "10:00:01", Kind: sheet.RollKindPlain, Faces: 20, FaceValue: 13, Outcome: sheet.OutcomeNone},
	}

	rows := views.HistoryRows(rolls)
	assert.Equal(t, []views.HistoryRow{
		{RollID: "c", Class: views.ClassSuccess, Text: "10:00:03 | D6 (CHA): 4 (Success)"},
		{RollID: "b", Class: views.ClassFail, Text: "10:00:02 | D6 (CHA): 6 (Failure)"},
		{RollID: "a", Class: views.ClassNeutral, Text: "10:00:01 | D20: 13"},
	}, rows)
}

func TestDescriptions(t *testing.T) {
	all := views.Descriptions()
	require.Len(t, all, len(sheet.StatKeys))
	for i, d := range all {
		assert.Equal(t, sheet.StatKeys[i], d.Key)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Text)
	}

	assert.Contains(t, views.Describe(sheet.END).Text, "3 max HP")
	assert.Equal(t, "XYZ", views.Describe(sheet.StatKey("XYZ")).Name)
}
