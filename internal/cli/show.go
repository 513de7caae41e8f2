package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"inkcell-cli/internal/cellview"
	"inkcell-cli/internal/model"
	"inkcell-cli/internal/store"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <notebook> <cell-id>",
		Short: "Print one cell's source and outputs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.NotebookPath = args[0]
			id := model.CellID(args[1])

			doc, err := store.LoadNotebook(app.notebookPath())
			if err != nil {
				return err
			}

			c, ok := doc.Cells[id]
			if !ok {
				if suggestion := closestCellID(doc, string(id)); suggestion != "" {
					return fmt.Errorf("no cell %q (did you mean %s?)", id, suggestion)
				}
				return fmt.Errorf("no cell %q", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:    %s\ntype:  %s\n", c.ID, c.CellType)
			if c.ExecutionCount != nil {
				fmt.Fprintf(out, "count: %d\n", *c.ExecutionCount)
			}
			for _, b := range cellview.BannersFor(c.Metadata) {
				fmt.Fprintf(out, "note:  %s\n", b)
			}
			fmt.Fprintf(out, "\n%s\n", c.Source)

			vis := cellview.Resolve(c.CellType, c.Metadata, len(c.Outputs))
			if c.CellType == model.CellTypeCode && !vis.OutputHidden {
				for _, o := range c.Outputs {
					if s, ok := o.Data["text/plain"].(string); ok {
						fmt.Fprintf(out, "---\n%s\n", s)
					}
				}
			}
			return nil
		},
	}
}

// closestCellID suggests the nearest existing id for a likely typo.
// A distance cap keeps wild guesses quiet.
const maxSuggestDistance = 8

func closestCellID(doc *store.Document, typed string) string {
	typed = strings.ToLower(typed)
	best, bestDist := "", maxSuggestDistance+1
	for _, id := range doc.Order {
		d := levenshtein.ComputeDistance(typed, strings.ToLower(string(id)))
		if d < bestDist {
			best, bestDist = string(id), d
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}
