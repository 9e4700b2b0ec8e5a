package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/launch"
	"github.com/kennyg/atelier/internal/layout"
	"github.com/kennyg/atelier/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"doctor", "diff"},
	Short:   "Compare the folder list with the project directory",
	Long: `Report which listed folders exist, which are missing, and which entries
under the root a sync would delete. Nothing is changed.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

var statusDirsOnly bool

func init() {
	statusCmd.Flags().BoolVar(&statusDirsOnly, "dirs-only", false, "Ignore plain files under the root")
}

func runStatus(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	p := a.session.Project
	a.session.Sync = layout.SyncOptions{DirectoriesOnly: statusDirsOnly}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Status"))
	fmt.Println()

	st := a.registry.Dispatch(action.PlanSync, a.session)
	if !st.OK() {
		exitWithError(st.Message)
	}
	plan := a.session.LastPlan

	missing := make(map[string]bool, len(plan.Create))
	for _, name := range plan.Create {
		missing[name] = true
	}

	fmt.Printf("  %s\n\n", ui.RenderMuted(p.RootDirectory))
	for _, f := range p.Folders {
		if missing[f.Name] {
			fmt.Printf("  %s %s\n", ui.MissingBadge(), f.Name)
		} else {
			fmt.Printf("  %s %s\n", ui.PresentBadge(), f.Name)
		}
	}
	for _, name := range plan.Delete {
		fmt.Printf("  %s %s\n", ui.ExtraBadge(), ui.RenderMuted(name))
	}

	fmt.Println()
	if plan.Empty() {
		fmt.Println(ui.SuccessLine(st.Message))
	} else {
		fmt.Println(ui.WarningLine(st.Message))
	}

	if sys, ok := a.session.Launcher.(launch.System); ok {
		if err := sys.Check(); err != nil {
			fmt.Println(ui.WarningLine("Reference boards cannot be opened: " + err.Error()))
		}
	}
	fmt.Println(ui.PageFooter())
}
