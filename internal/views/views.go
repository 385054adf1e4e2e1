// Package views turns sheet state into display rows for a renderer.
package views

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
)

// StatRow is one line of the stat table
type StatRow struct {
	Key   sheet.StatKey
	Label string
	Base  int32

	// Bonus always carries a sign: "+2", "-1", "+0"
	Bonus string

	// Value is the total, except for CHA where it is the current luck
	Value int32
}

// HPRow is the current over max health line
type HPRow struct {
	Current int32
	Max     int32
}

// String renders "current / max"
func (r HPRow) String() string {
	return fmt.Sprintf("%d / %d", r.Current, r.Max)
}

// HistoryClass is the styling class of a history row
type HistoryClass string

// History classes
const (
	ClassSuccess HistoryClass = "success"
	ClassFail    HistoryClass = "fail"
	ClassNeutral HistoryClass = "neutral"
)

// HistoryRow is one rendered roll
type HistoryRow struct {
	RollID string
	Class  HistoryClass
	Text   string
}

// FormatBonus renders a signed bonus
func FormatBonus(v int32) string {
	return fmt.Sprintf("%+d", v)
}

// StatRows builds the stat table in display order
func StatRows(s *stats.Sheet) []StatRow {
	rows := make([]StatRow, 0, len(sheet.StatKeys))
	for _, key := range sheet.StatKeys {
		value := s.Total[key]
		if key == sheet.CHA {
			value = s.CurrentLuck
		}
		rows = append(rows, StatRow{
			Key:   key,
			Label: Describe(key).Name,
			Base:  s.Base[key],
			Bonus: FormatBonus(s.Bonus[key]),
			Value: value,
		})
	}
	return rows
}

// HP builds the health row
func HP(s *stats.Sheet) HPRow {
	return HPRow{Current: s.CurrentHP, Max: s.MaxHP}
}

// outcomeLabel is the suffix shown for luck checks
func outcomeLabel(o sheet.RollOutcome) string {
	switch o {
	case sheet.OutcomeSuccess:
		return "Success"
	case sheet.OutcomeFailure:
		return "Failure"
	default:
		return ""
	}
}

// HistoryClassOf picks the styling class of a roll
func HistoryClassOf(r sheet.DiceRollRecord) HistoryClass {
	switch r.Outcome {
	case sheet.OutcomeSuccess:
		return ClassSuccess
	case sheet.OutcomeFailure:
		return ClassFail
	default:
		return ClassNeutral
	}
}

// HistoryText renders a roll as "HH:MM:SS | D6 (CHA): 4 (Success)"
func HistoryText(r sheet.DiceRollRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s: %d", r.Time, r.Label(), r.FaceValue)
	if label := outcomeLabel(r.Outcome); label != "" {
		fmt.Fprintf(&b, " (%s)", label)
	}
	return b.String()
}

// HistoryRows renders rolls in the order given. Callers pass the output of
// the dice service's history query, which is already newest first.
func HistoryRows(rolls []sheet.DiceRollRecord) []HistoryRow {
	rows := make([]HistoryRow, 0, len(rolls))
	for _, r := range rolls {
		rows = append(rows, HistoryRow{
			RollID: r.RollID,
			Class:  HistoryClassOf(r),
			Text:   HistoryText(r),
		})
	}
	return rows
}
