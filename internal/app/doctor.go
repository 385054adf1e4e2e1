package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// RecordStatus is the health of one stored record
type RecordStatus string

// Record statuses
const (
	StatusOK      RecordStatus = "ok"
	StatusMissing RecordStatus = "missing"
	StatusCorrupt RecordStatus = "corrupt"
	StatusDeleted RecordStatus = "deleted"
)

// RecordCheck is the result for one record of the profile
type RecordCheck struct {
	Key    string
	Record sheet.Record
	Status RecordStatus
	Bytes  int
	Error  string
}

// DoctorInput selects whether corrupt records are removed
type DoctorInput struct {
	Fix bool
}

// DoctorOutput lists every record of the profile in a stable order
type DoctorOutput struct {
	Checks  []RecordCheck
	Corrupt int
}

// shapes maps each record to the value it must decode into
var shapes = []struct {
	record sheet.Record
	newDst func() any
}{
	{sheet.RecordStats, func() any { return &sheet.StatBlock{} }},
	{sheet.RecordDiceHistory, func() any { return &[]sheet.DiceRollRecord{} }},
	{sheet.RecordEquipment, func() any { return &[]sheet.EquipmentItem{} }},
	{sheet.RecordInventory, func() any { return &[]sheet.InventoryItem{} }},
	{sheet.RecordNPCs, func() any { return &[]sheet.NPC{} }},
	{sheet.RecordCharacterInfo, func() any { return &sheet.CharacterInfo{} }},
	{sheet.RecordNotebook, func() any { return new(string) }},
}

// Doctor reads every record of the profile straight from the store and
// reports values that no longer decode. Corrupt values are otherwise
// silently replaced by defaults on the next read; with Fix they are deleted
// now.
func (a *App) Doctor(ctx context.Context, input *DoctorInput) (*DoctorOutput, error) {
	if input == nil {
		input = &DoctorInput{}
	}

	out := &DoctorOutput{Checks: make([]RecordCheck, 0, len(shapes))}
	for _, shape := range shapes {
		key := sheet.Key(a.Profile, shape.record)
		check := RecordCheck{Key: key, Record: shape.record, Status: StatusOK}

		raw, err := a.store.Get(ctx, key)
		switch {
		case errors.IsNotFound(err):
			check.Status = StatusMissing
			out.Checks = append(out.Checks, check)
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		check.Bytes = len(raw)

		if err := json.Unmarshal(raw, shape.newDst()); err != nil {
			check.Status = StatusCorrupt
			check.Error = err.Error()
			out.Corrupt++

			if input.Fix {
				if err := a.store.Delete(ctx, key); err != nil {
					return nil, errors.Wrapf(err, "failed to delete %s", key)
				}
				check.Status = StatusDeleted
				slog.Info("Deleted corrupt record", "key", key, "bytes", check.Bytes)
			}
		}

		out.Checks = append(out.Checks, check)
	}

	return out, nil
}
