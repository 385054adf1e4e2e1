package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/stats"
)

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show stats, HP and luck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Stats.GetStats(cmd.Context(), &stats.GetStatsInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			return printSheet(cmd.OutOrStdout(), out.Sheet)
		},
	}
}

func (c *cli) baseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "base STAT VALUE",
		Short: "Set the base value of a stat",
		Long: `Set the base value of HAB, END, ARM, ADR, CHA or CRI.

Values that are not numbers count as 0. Raising CHA past the luck maximum also
refills luck when it was full.`,
		Example: "  sheet base hab 7\n  sheet base CHA 6",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseStatKey(args[0])
			if err != nil {
				return err
			}

			out, err := c.sheet.Stats.UpdateBase(cmd.Context(), &stats.UpdateBaseInput{
				Profile: c.sheet.Profile,
				Key:     key,
				Raw:     args[1],
			})
			if err != nil {
				return err
			}
			if out.Sheet.Base[key] < key.SuggestedMinimum() {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %s is usually at least %d\n", key, key.SuggestedMinimum())
			}
			return printSheet(cmd.OutOrStdout(), out.Sheet)
		},
	}
}

func (c *cli) hpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hp VALUE",
		Short: "Set current HP, clamped to 0..max",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.sheet.Stats.UpdateHP(cmd.Context(), &stats.UpdateHPInput{
				Profile: c.sheet.Profile,
				Raw:     args[0],
			})
			if err != nil {
				return err
			}
			return printSheet(cmd.OutOrStdout(), out.Sheet)
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default stats",
		Long:  "Restore default base stats, HP and luck. Equipment and other records are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Stats.Reset(cmd.Context(), &stats.ResetInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			return printSheet(cmd.OutOrStdout(), out.Sheet)
		},
	}
}
