package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/siftsearch/sift"
	"github.com/siftsearch/sift/cmd/sift/tui"
	"github.com/siftsearch/sift/internal/docstore"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive query shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		docs, err := docstore.LoadFolder(dataDir(cmd, cfg))
		if err != nil {
			return err
		}
		engine, err := sift.NewSearchEngine(docs, sift.Tokenize)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
