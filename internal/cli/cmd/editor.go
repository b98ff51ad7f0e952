package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/mockbrowse/internal/cli/model"
)

var (
	editorPrint bool
	editorOpen  bool
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Show the code editor view",
	Long: `Show the code editor app. It only frames a remote code viewer.

  --print   print the title and URL and exit
  --open    hand the URL to xdg-open and exit`,
	RunE: runEditor,
}

func init() {
	rootCmd.AddCommand(editorCmd)
	editorCmd.Flags().BoolVar(&editorPrint, "print", false, "print the view URL and exit")
	editorCmd.Flags().BoolVar(&editorOpen, "open", false, "open the view URL with the desktop handler")
	editorCmd.MarkFlagsMutuallyExclusive("print", "open")
}

func runEditor(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	view := a.EditorUC.View()
	switch {
	case editorPrint:
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", view.Title, view.URL)
		return err
	case editorOpen:
		return a.EditorUC.Launch(a.Ctx())
	}

	_, err = tea.NewProgram(model.NewEditorModel(a.Ctx(), a.Theme, a.EditorUC)).Run()
	return err
}
