package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inkcell-cli/internal/model"
	"inkcell-cli/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init [notebook]",
		Short: "Create a fresh notebook file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				app.NotebookPath = args[0]
			}
			path := app.notebookPath()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			doc := store.NewDocument()
			md := &model.Cell{
				ID:       model.NewCellID(),
				CellType: model.CellTypeMarkdown,
				Source:   "# Untitled notebook\n",
			}
			md.Metadata.Normalize()
			doc.AppendCell(md)
			code := &model.Cell{ID: model.NewCellID(), CellType: model.CellTypeCode}
			code.Metadata.Normalize()
			doc.AppendCell(code)

			if err := store.SaveNotebook(path, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
