package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/views"
)

func (c *cli) equipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "List, add or remove equipment",
		Long: `Equipment bonuses change stats. A bonus is a comma-separated list such as
"+2 HAB, -1 ARM"; each part is multiplied by the item quantity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Sheet.ListEquipment(cmd.Context(), &sheetsvc.ProfileInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			return printEquipment(cmd.OutOrStdout(), out.Items)
		},
	}

	var quantity, bonus string
	add := &cobra.Command{
		Use:     "add NAME",
		Short:   "Add an item and recompute stats",
		Example: `  sheet equipment add "Short Sword" --bonus "+2 HAB"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.sheet.Sheet.AddEquipment(cmd.Context(), &sheetsvc.AddEquipmentInput{
				Profile:  c.sheet.Profile,
				Name:     args[0],
				Quantity: quantity,
				Bonus:    bonus,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := printEquipment(w, out.Items); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nHP %s, Luck %d / %d\n", views.HP(out.Sheet), out.Sheet.CurrentLuck, out.Sheet.MaxLuck)
			if out.Sheet.IgnoredBonusSegments > 0 {
				fmt.Fprintf(w, "(%d unreadable bonus segment(s) ignored)\n", out.Sheet.IgnoredBonusSegments)
			}
			return nil
		},
	}
	add.Flags().StringVar(&quantity, "qty", "1", "quantity")
	add.Flags().StringVar(&bonus, "bonus", "", `stat bonus, e.g. "+2 HAB, -1 END"`)

	remove := &cobra.Command{
		Use:   "remove POSITION",
		Short: "Remove the item at a listed position and recompute stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			out, err := c.sheet.Sheet.RemoveEquipment(cmd.Context(), &sheetsvc.RemoveInput{
				Profile: c.sheet.Profile,
				Index:   index,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Removed %s\n", out.Removed.Name)
			if err := printEquipment(w, out.Items); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nHP %s, Luck %d / %d\n", views.HP(out.Sheet), out.Sheet.CurrentLuck, out.Sheet.MaxLuck)
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
