package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/app"
)

func (c *cli) doctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check stored records for unreadable data",
		Long: `Check every stored record of the profile. Unreadable records are replaced by
defaults when next read; --fix deletes them now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Doctor(cmd.Context(), &app.DoctorInput{Fix: fix})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := newTable(w)
			fmt.Fprintln(tw, "KEY\tSTATUS\tBYTES\tERROR")
			for _, check := range out.Checks {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", check.Key, check.Status, check.Bytes, check.Error)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			switch {
			case out.Corrupt == 0:
				fmt.Fprintln(w, "No corrupt records")
			case fix:
				fmt.Fprintf(w, "Deleted %d corrupt record(s)\n", out.Corrupt)
			default:
				fmt.Fprintf(w, "Found %d corrupt record(s); run with --fix to delete them\n", out.Corrupt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "delete corrupt records")
	return cmd
}
