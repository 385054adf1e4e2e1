package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	entities "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

func printInfo(cmd *cobra.Command, info *entities.CharacterInfo) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Name:  %s\n", info.Name)
	fmt.Fprintf(w, "Class: %s\n", info.Class)
}

func (c *cli) infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show or set the character name and class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Sheet.GetInfo(cmd.Context(), &sheetsvc.ProfileInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			printInfo(cmd, out.Info)
			return nil
		},
	}

	set := &cobra.Command{
		Use:     "set FIELD VALUE...",
		Short:   "Set name or class",
		Example: "  sheet info set name Ayla\n  sheet info set class Ranger of the North",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.sheet.Sheet.UpdateInfo(cmd.Context(), &sheetsvc.UpdateInfoInput{
				Profile: c.sheet.Profile,
				Field:   args[0],
				Value:   strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			printInfo(cmd, out.Info)
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}

func (c *cli) noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Show or replace the notebook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.sheet.Sheet.GetNotebook(cmd.Context(), &sheetsvc.ProfileInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}

	save := func(cmd *cobra.Command, text string) error {
		out, err := c.sheet.Sheet.SaveNotebook(cmd.Context(), &sheetsvc.SaveNotebookInput{
			Profile: c.sheet.Profile,
			Text:    text,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Text)
		return nil
	}

	set := &cobra.Command{
		Use:   "set TEXT...",
		Short: "Replace the notebook text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return save(cmd, strings.Join(args, " "))
		},
	}

	appendCmd := &cobra.Command{
		Use:   "append TEXT...",
		Short: "Add a line to the notebook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.sheet.Sheet.GetNotebook(cmd.Context(), &sheetsvc.ProfileInput{Profile: c.sheet.Profile})
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			if out.Text != "" {
				text = out.Text + "\n" + text
			}
			return save(cmd, text)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the notebook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return save(cmd, "")
		},
	}

	cmd.AddCommand(set, appendCmd, clearCmd)
	return cmd
}
