package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

func (c *cli) exportCmd() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the whole sheet as YAML or JSON",
		Example: "  sheet export\n  sheet export --format json --output hero.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Sheet.Export(cmd.Context(), &sheetsvc.ExportInput{
				Profile: c.sheet.Profile,
				Format:  format,
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(output, out.Data, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %s", output)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", c.sheet.Profile.GetID(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", sheetsvc.FormatYAML, "yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}
