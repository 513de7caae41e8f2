package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"inkcell-cli/internal/store"
	"inkcell-cli/internal/tui"
)

type App struct {
	NotebookPath string
	Dir          string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "inkcell [notebook]",
		Short:        "inkcell terminal notebook editor",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Open a notebook in the interactive editor
  inkcell notebook.json

  # Scriptable commands
  inkcell cells list notebook.json
  inkcell cells move notebook.json cell-3f2a cell-91bc --above
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				app.NotebookPath = args[0]
			}
			s, err := app.store()
			if err != nil {
				return err
			}
			return tui.Run(app.notebookPath(), s)
		},
	}

	cmd.PersistentFlags().StringVar(&app.NotebookPath, "notebook", envOr("INKCELL_NOTEBOOK", ""), "Notebook file path")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("INKCELL_DIR", ""), "Path to the state dir (default: discovered .inkcell)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newCellsCmd(app))
	cmd.AddCommand(newShowCmd(app))
	return cmd
}

func (a *App) notebookPath() string {
	if strings.TrimSpace(a.NotebookPath) != "" {
		return a.NotebookPath
	}
	return "notebook.json"
}

func (a *App) store() (store.Store, error) {
	if strings.TrimSpace(a.Dir) != "" {
		return store.Store{Dir: a.Dir}, nil
	}
	dir, err := store.DefaultDir()
	if err != nil {
		return store.Store{}, err
	}
	return store.Store{Dir: dir}, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
