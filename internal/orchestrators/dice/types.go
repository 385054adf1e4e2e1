package dice

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// RollDieInput requests one die roll
type RollDieInput struct {
	Profile sheet.Profile
	Faces   int32
	Kind    sheet.RollKind
}

// RollDieOutput is returned as soon as the roll is scheduled
type RollDieOutput struct {
	RollID string

	// Done receives the result once the delayed roll resolves, then closes
	Done <-chan *RollResult
}

// RollResult is a resolved roll.
type RollResult struct {
	RollID    string
	Profile   sheet.Profile
	Kind      sheet.RollKind
	Faces     int32
	FaceValue int32
	Outcome   sheet.RollOutcome

	// LuckBefore is the current luck a luck check was judged against
	LuckBefore int32

	// LuckExhausted is set when a luck check found no luck to spend
	LuckExhausted bool

	// Record is the history entry written, nil when nothing was recorded
	Record *sheet.DiceRollRecord

	// Message is the human-readable luck check outcome; empty for plain rolls
	Message string

	// Err is set when the roll could not be resolved or stored
	Err error
}

// GetHistoryInput selects how much history to return
type GetHistoryInput struct {
	Profile sheet.Profile

	// Limit caps the returned rolls; zero uses the configured display limit
	Limit int
}

// GetHistoryOutput holds rolls newest first
type GetHistoryOutput struct {
	Rolls []sheet.DiceRollRecord

	// Total is the number of stored rolls before the limit was applied
	Total int
}

// ClearHistoryInput names the profile whose history is cleared
type ClearHistoryInput struct {
	Profile sheet.Profile
}

// ClearHistoryOutput reports how many rolls were dropped
type ClearHistoryOutput struct {
	RollsDeleted int32
}

// LastOutcomeOutput holds the most recently resolved roll, if any
type LastOutcomeOutput struct {
	Result *RollResult
}
