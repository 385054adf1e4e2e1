// Package dice implements the dice orchestrator: delayed single-die rolls,
// luck checks that spend current luck, and the bounded roll history.
package dice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/dicehistory"
)

const (
	// DefaultRollDelay is how long a roll stays pending before it resolves
	DefaultRollDelay = 800 * time.Millisecond

	// DefaultDisplayLimit is how many rolls GetHistory returns by default
	DefaultDisplayLimit = 10

	// MessageLuckExhausted is reported when a luck check finds no luck left
	MessageLuckExhausted = "Luck exhausted"
)

// Service defines the interface for dice operations
type Service interface {
	// RollDie schedules one roll. Only one roll may be pending at a time;
	// a second call fails with errors.FailedPrecondition until it resolves.
	RollDie(ctx context.Context, input *RollDieInput) (*RollDieOutput, error)

	// Rolling reports whether a roll is pending
	Rolling() bool

	// GetHistory returns the most recent rolls, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory empties the log and forgets the last outcome
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// LastOutcome returns the most recently resolved roll
	LastOutcome() *LastOutcomeOutput
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	HistoryRepo  dicehistory.Repository
	Stats        stats.Service
	Roller       dice.Roller
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	Scheduler    Scheduler
	RollDelay    time.Duration
	Capacity     int
	DisplayLimit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.Stats == nil {
		vb.RequiredField("Stats")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}
	if c.RollDelay < 0 {
		vb.InvalidField("RollDelay", "must not be negative")
	}
	if c.Capacity < 0 {
		vb.InvalidField("Capacity", "must not be negative")
	}
	if c.DisplayLimit < 0 {
		vb.InvalidField("DisplayLimit", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	historyRepo  dicehistory.Repository
	stats        stats.Service
	roller       dice.Roller
	idGen        idgen.Generator
	clock        clock.Clock
	scheduler    Scheduler
	rollDelay    time.Duration
	capacity     int
	displayLimit int

	mu      sync.Mutex
	pending bool
	last    *RollResult
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		historyRepo:  cfg.HistoryRepo,
		stats:        cfg.Stats,
		roller:       cfg.Roller,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		scheduler:    cfg.Scheduler,
		rollDelay:    cfg.RollDelay,
		capacity:     cfg.Capacity,
		displayLimit: cfg.DisplayLimit,
	}
	if o.rollDelay == 0 {
		o.rollDelay = DefaultRollDelay
	}
	if o.capacity == 0 {
		o.capacity = dicehistory.DefaultCapacity
	}
	if o.displayLimit == 0 {
		o.displayLimit = DefaultDisplayLimit
	}
	return o, nil
}

func (o *orchestrator) RollDie(ctx context.Context, input *RollDieInput) (*RollDieOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Profile.ID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	if input.Faces <= 0 {
		return nil, errors.InvalidArgumentf("die must have at least one face, got %d", input.Faces)
	}
	if !input.Kind.Valid() {
		return nil, errors.InvalidArgumentf("unknown roll kind %q", input.Kind)
	}

	o.mu.Lock()
	if o.pending {
		o.mu.Unlock()
		return nil, errors.FailedPrecondition("roll already in progress")
	}
	o.pending = true
	o.mu.Unlock()

	rollID := o.idGen.Generate()
	done := make(chan *RollResult, 1)

	// The completion outlives the caller's request; it must always run so
	// the pending flag is released.
	resolveCtx := context.WithoutCancel(ctx)
	o.scheduler.AfterFunc(o.rollDelay, func() {
		result := o.resolve(resolveCtx, input, rollID)

		o.mu.Lock()
		o.last = result
		o.pending = false
		o.mu.Unlock()

		done <- result
		close(done)
	})

	slog.Debug("Roll scheduled",
		"profile", input.Profile.ID,
		"roll_id", rollID,
		"faces", input.Faces,
		"kind", input.Kind,
		"delay", o.rollDelay)

	return &RollDieOutput{RollID: rollID, Done: done}, nil
}

// resolve rolls the die, applies the luck rule and records history
func (o *orchestrator) resolve(ctx context.Context, input *RollDieInput, rollID string) *RollResult {
	result := &RollResult{
		RollID:  rollID,
		Profile: input.Profile,
		Kind:    input.Kind,
		Faces:   input.Faces,
		Outcome: sheet.OutcomeNone,
	}

	value, err := o.roller.Roll(int(input.Faces))
	if err != nil {
		result.Err = errors.Wrap(err, "failed to roll die")
		slog.Error("Dice roll failed", "roll_id", rollID, "error", err)
		return result
	}
	// nolint:gosec // value is within 1..faces
	result.FaceValue = int32(value)

	if input.Kind == sheet.RollKindLuckCheck {
		luck, err := o.stats.ConsumeLuck(ctx, &stats.ConsumeLuckInput{Profile: input.Profile})
		if err != nil {
			result.Err = errors.Wrap(err, "failed to consume luck")
			return result
		}
		if !luck.Consumed {
			result.LuckExhausted = true
			result.Message = MessageLuckExhausted
			slog.Info("Luck check skipped", "profile", input.Profile.ID, "roll_id", rollID, "reason", "luck exhausted")
			return result
		}

		result.LuckBefore = luck.PreviousLuck
		if result.FaceValue <= luck.PreviousLuck {
			result.Outcome = sheet.OutcomeSuccess
			result.Message = fmt.Sprintf("Luck check succeeded (%d ≤ %d)", result.FaceValue, luck.PreviousLuck)
		} else {
			result.Outcome = sheet.OutcomeFailure
			result.Message = fmt.Sprintf("Luck check failed (%d > %d)", result.FaceValue, luck.PreviousLuck)
		}
	}

	record := sheet.DiceRollRecord{
		RollID:    rollID,
		Time:      o.clock.Now().Format(sheet.TimeLayout),
		Kind:      input.Kind,
		Faces:     input.Faces,
		FaceValue: result.FaceValue,
		Outcome:   result.Outcome,
	}

	if _, err := o.historyRepo.Append(ctx, dicehistory.AppendInput{
		Profile:  input.Profile,
		Roll:     record,
		Capacity: o.capacity,
	}); err != nil {
		result.Err = errors.Wrap(err, "failed to record roll")
		return result
	}
	result.Record = &record

	slog.Info("Dice rolled",
		"profile", input.Profile.ID,
		"roll_id", rollID,
		"faces", input.Faces,
		"kind", input.Kind,
		"value", result.FaceValue,
		"outcome", result.Outcome)

	return result
}

func (o *orchestrator) Rolling() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending
}

func (o *orchestrator) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	limit := input.Limit
	if limit == 0 {
		limit = o.displayLimit
	}

	out, err := o.historyRepo.Get(ctx, dicehistory.GetInput{Profile: input.Profile})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get history")
	}

	rolls := make([]sheet.DiceRollRecord, 0, min(limit, len(out.Rolls)))
	for i := len(out.Rolls) - 1; i >= 0 && len(rolls) < limit; i-- {
		rolls = append(rolls, out.Rolls[i])
	}

	return &GetHistoryOutput{Rolls: rolls, Total: len(out.Rolls)}, nil
}

func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.historyRepo.Clear(ctx, dicehistory.ClearInput{Profile: input.Profile})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear history")
	}

	o.mu.Lock()
	o.last = nil
	o.mu.Unlock()

	slog.Info("Dice history cleared",
		"profile", input.Profile.ID,
		"rolls_deleted", out.RollsDeleted)

	return &ClearHistoryOutput{RollsDeleted: out.RollsDeleted}, nil
}

func (o *orchestrator) LastOutcome() *LastOutcomeOutput {
	o.mu.Lock()
	defer o.mu.Unlock()
	return &LastOutcomeOutput{Result: o.last}
}
