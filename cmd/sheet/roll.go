package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/views"
)

func (c *cli) rollCmd() *cobra.Command {
	var (
		faces int32
		luck  bool
	)

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll one die, optionally as a luck check",
		Long: `Roll one die. With --luck the roll is a luck check: it spends one point of
luck and succeeds when the die shows at most the luck held before spending.
A luck check with no luck left rolls nothing.`,
		Example: "  sheet roll\n  sheet roll --luck\n  sheet roll --faces 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind := sheet.RollKindPlain
			if luck {
				kind = sheet.RollKindLuckCheck
			}

			out, err := c.sheet.Dice.RollDie(cmd.Context(), &dice.RollDieInput{
				Profile: c.sheet.Profile,
				Faces:   faces,
				Kind:    kind,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Rolling D%d...\n", faces)

			var result *dice.RollResult
			select {
			case result = <-out.Done:
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			if result.Err != nil {
				return result.Err
			}

			if result.Record != nil {
				fmt.Fprintln(w, views.HistoryText(*result.Record))
			}
			if result.Message != "" {
				fmt.Fprintln(w, result.Message)
			}
			if kind == sheet.RollKindLuckCheck {
				st, err := c.sheet.Stats.GetStats(cmd.Context(), &stats.GetStatsInput{Profile: c.sheet.Profile})
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Luck: %d / %d\n", st.Sheet.CurrentLuck, st.Sheet.MaxLuck)
			}
			return nil
		},
	}

	cmd.Flags().Int32Var(&faces, "faces", 6, "number of faces on the die")
	cmd.Flags().BoolVar(&luck, "luck", false, "roll as a luck check against CHA")
	return cmd
}

func (c *cli) historyCmd() *cobra.Command {
	var (
		limit    int
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent rolls, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			if clearAll {
				out, err := c.sheet.Dice.ClearHistory(cmd.Context(), &dice.ClearHistoryInput{Profile: c.sheet.Profile})
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Cleared %d roll(s)\n", out.RollsDeleted)
				return nil
			}

			out, err := c.sheet.Dice.GetHistory(cmd.Context(), &dice.GetHistoryInput{
				Profile: c.sheet.Profile,
				Limit:   limit,
			})
			if err != nil {
				return err
			}
			return printHistory(w, out.Rolls, out.Total)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "rolls to show (default: dice.display_limit)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the whole history")
	return cmd
}
