package sheet

import "fmt"

// TimeLayout formats roll stamps as HH:MM:SS
const TimeLayout = "15:04:05"

// RollKind distinguishes a plain roll from a luck check
type RollKind string

// Roll kinds
const (
	RollKindPlain     RollKind = "plain"
	RollKindLuckCheck RollKind = "luck_check"
)

// Valid reports whether k is a known roll kind
func (k RollKind) Valid() bool {
	return k == RollKindPlain || k == RollKindLuckCheck
}

// RollOutcome is the luck check result of a roll
type RollOutcome string

// Roll outcomes
const (
	OutcomeNone    RollOutcome = "none"
	OutcomeSuccess RollOutcome = "success"
	OutcomeFailure RollOutcome = "failure"
)

// DiceRollRecord is one immutable history entry.
type DiceRollRecord struct {
	RollID    string      `json:"roll_id" yaml:"roll_id"`
	Time      string      `json:"time" yaml:"time"`
	Kind      RollKind    `json:"kind" yaml:"kind"`
	Faces     int32       `json:"faces" yaml:"faces"`
	FaceValue int32       `json:"face_value" yaml:"face_value"`
	Outcome   RollOutcome `json:"outcome" yaml:"outcome"`
}

// Label names the die the way the history shows it: "D6" or "D6 (CHA)".
func (r DiceRollRecord) Label() string {
	if r.Kind == RollKindLuckCheck {
		return fmt.Sprintf("D%d (%s)", r.Faces, CHA)
	}
	return fmt.Sprintf("D%d", r.Faces)
}
