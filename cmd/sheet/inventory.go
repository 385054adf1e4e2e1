package main

import (
	"github.com/spf13/cobra"

	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

func (c *cli) inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "List, add or remove carried items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Sheet.ListInventory(cmd.Context(), &sheetsvc.ProfileInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			return printInventory(cmd.OutOrStdout(), out.Items)
		},
	}

	var quantity, description string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.sheet.Sheet.AddInventory(cmd.Context(), &sheetsvc.AddInventoryInput{
				Profile:     c.sheet.Profile,
				Name:        args[0],
				Quantity:    quantity,
				Description: description,
			})
			if err != nil {
				return err
			}
			return printInventory(cmd.OutOrStdout(), out.Items)
		},
	}
	add.Flags().StringVar(&quantity, "qty", "1", "quantity")
	add.Flags().StringVar(&description, "desc", "", "description")

	remove := &cobra.Command{
		Use:   "remove POSITION",
		Short: "Remove the item at a listed position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			out, err := c.sheet.Sheet.RemoveInventory(cmd.Context(), &sheetsvc.RemoveInput{
				Profile: c.sheet.Profile,
				Index:   index,
			})
			if err != nil {
				return err
			}
			return printInventory(cmd.OutOrStdout(), out.Items)
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func (c *cli) npcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npc",
		Short: "List, add or remove NPC cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Sheet.ListNPCs(cmd.Context(), &sheetsvc.ProfileInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			return printNPCs(cmd.OutOrStdout(), out.NPCs)
		},
	}

	var description string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an NPC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.sheet.Sheet.AddNPC(cmd.Context(), &sheetsvc.AddNPCInput{
				Profile:     c.sheet.Profile,
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return err
			}
			return printNPCs(cmd.OutOrStdout(), out.NPCs)
		},
	}
	add.Flags().StringVar(&description, "desc", "", "description")

	remove := &cobra.Command{
		Use:   "remove POSITION",
		Short: "Remove the NPC at a listed position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			out, err := c.sheet.Sheet.RemoveNPC(cmd.Context(), &sheetsvc.RemoveInput{
				Profile: c.sheet.Profile,
				Index:   index,
			})
			if err != nil {
				return err
			}
			return printNPCs(cmd.OutOrStdout(), out.NPCs)
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
