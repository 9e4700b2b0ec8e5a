package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/document"
	"github.com/kennyg/atelier/internal/panel"
)

var panelCmd = &cobra.Command{
	Use:     "panel",
	Aliases: []string{"ui"},
	Short:   "Open the interactive project panel",
	Long: `Edit the folder list and run every project action from one screen.

Changes are saved as you go. The panel refreshes when the project root
changes on disk. Press ? for keys.`,
	Args: cobra.NoArgs,
	Run:  runPanel,
}

var (
	panelFrom    string
	panelNoWatch bool
)

func init() {
	panelCmd.Flags().StringVar(&panelFrom, "from", "", "working file the save key copies")
	panelCmd.Flags().BoolVar(&panelNoWatch, "no-watch", false, "Do not watch the project root for changes")
}

func runPanel(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	if panelFrom != "" {
		a.session.Saver = document.FileSaver{Source: panelFrom}
	}

	m := panel.New(a.session, a.registry, panel.Options{
		Persist: a.persist,
		Watch:   !panelNoWatch,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		exitWithError(err.Error())
	}
	if fm, ok := final.(panel.Model); ok {
		_ = fm.Close()
	}
	if err := a.persist(a.session); err != nil {
		exitWithError(err.Error())
	}
}
