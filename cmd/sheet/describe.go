package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/views"
)

func (c *cli) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "describe [STAT]",
		Short:       "Explain what each stat means",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipStorage: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				key, err := parseStatKey(args[0])
				if err != nil {
					return err
				}
				d := views.Describe(key)
				fmt.Fprintf(w, "%s (%s)\n%s\n", d.Key, d.Name, d.Text)
				return nil
			}

			for i, d := range views.Descriptions() {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s (%s)\n%s\n", d.Key, d.Name, d.Text)
			}
			return nil
		},
	}
}
