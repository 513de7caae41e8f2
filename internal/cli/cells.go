package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inkcell-cli/internal/cellview"
	"inkcell-cli/internal/model"
	"inkcell-cli/internal/reorder"
	"inkcell-cli/internal/store"
)

func newCellsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Inspect and reorder notebook cells",
	}
	cmd.AddCommand(newCellsListCmd(app))
	cmd.AddCommand(newCellsMoveCmd(app))
	return cmd
}

func newCellsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [notebook]",
		Short: "List cells in document order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				app.NotebookPath = args[0]
			}
			doc, err := store.LoadNotebook(app.notebookPath())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, id := range doc.Order {
				c := doc.Cells[id]
				first := c.Source
				if idx := strings.IndexByte(first, '\n'); idx >= 0 {
					first = first[:idx]
				}
				tags := ""
				if banners := cellview.BannersFor(c.Metadata); len(banners) > 0 {
					names := make([]string, len(banners))
					for j, b := range banners {
						names[j] = string(b)
					}
					tags = "  [" + strings.Join(names, ",") + "]"
				}
				fmt.Fprintf(out, "%3d  %-42s %-8s %s%s\n", i, c.ID, c.CellType, first, tags)
			}
			return nil
		},
	}
}

func newCellsMoveCmd(app *App) *cobra.Command {
	var above bool
	cmd := &cobra.Command{
		Use:   "move <notebook> <cell-id> <destination-id>",
		Short: "Move a cell next to another cell",
		Long:  "Moves a cell immediately after the destination cell, or immediately before it with --above.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.NotebookPath = args[0]
			id, dest := model.CellID(args[1]), model.CellID(args[2])

			path := app.notebookPath()
			doc, err := store.LoadNotebook(path)
			if err != nil {
				return err
			}

			next, err := reorder.MoveCell(doc.Order, id, dest, above)
			if err != nil {
				return fmt.Errorf("move %s: %w", id, err)
			}
			doc.Order = next
			if err := store.SaveNotebook(path, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s %s %s\n", id, sideWord(above), dest)
			return nil
		},
	}
	cmd.Flags().BoolVar(&above, "above", false, "Insert before the destination instead of after")
	return cmd
}

func sideWord(above bool) string {
	if above {
		return "above"
	}
	return "below"
}
