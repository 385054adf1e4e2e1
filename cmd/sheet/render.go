package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/views"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printSheet(w io.Writer, s *stats.Sheet) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "STAT\tNAME\tBASE\tBONUS\tVALUE")
	for _, row := range views.StatRows(s) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", row.Key, row.Label, row.Base, row.Bonus, row.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nHP:   %s\n", views.HP(s))
	fmt.Fprintf(w, "Luck: %d / %d\n", s.CurrentLuck, s.MaxLuck)
	if s.IgnoredBonusSegments > 0 {
		fmt.Fprintf(w, "(%d unreadable bonus segment(s) ignored)\n", s.IgnoredBonusSegments)
	}
	return nil
}

func printHistory(w io.Writer, rolls []sheet.DiceRollRecord, total int) error {
	if len(rolls) == 0 {
		fmt.Fprintln(w, "No rolls yet")
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "RESULT\tROLL")
	for _, row := range views.HistoryRows(rolls) {
		fmt.Fprintf(tw, "%s\t%s\n", row.Class, row.Text)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Showing %d of %d\n", len(rolls), total)
	return nil
}

func printEquipment(w io.Writer, items []sheet.EquipmentItem) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No equipment")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tQTY\tBONUS")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, item.Name, item.Quantity, item.Bonus)
	}
	return tw.Flush()
}

func printInventory(w io.Writer, items []sheet.InventoryItem) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "Inventory is empty")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tQTY\tDESCRIPTION")
	for i, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, item.Name, item.Quantity, item.Description)
	}
	return tw.Flush()
}

func printNPCs(w io.Writer, npcs []sheet.NPC) error {
	if len(npcs) == 0 {
		fmt.Fprintln(w, "No NPCs")
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tDESCRIPTION")
	for i, npc := range npcs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, npc.Name, npc.Description)
	}
	return tw.Flush()
}

// parseIndex reads a 1-based list position as shown by the list commands
func parseIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.InvalidArgumentf("invalid position %q, expected 1 or more", raw)
	}
	return n - 1, nil
}

func parseStatKey(raw string) (sheet.StatKey, error) {
	key, ok := sheet.ParseStatKey(raw)
	if !ok {
		return "", errors.InvalidArgumentf("unknown stat %q, expected one of %v", raw, sheet.StatKeys)
	}
	return key, nil
}
