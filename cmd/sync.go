package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/layout"
	"github.com/kennyg/atelier/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Make the project directory match the folder list",
	Long: `Create missing folders and delete everything else directly under the
project root, including its contents.

Deleting asks for confirmation unless --yes is given. Use --dry-run to see
the plan without touching anything.

Examples:
  atelier sync --dry-run
  atelier sync --dirs-only
  atelier sync --yes`,
	Args: cobra.NoArgs,
	Run:  runSync,
}

var (
	syncDryRun   bool
	syncYes      bool
	syncDirsOnly bool
)

func init() {
	syncCmd.Flags().BoolVarP(&syncDryRun, "dry-run", "n", false, "Show the plan without applying it")
	syncCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "Delete without asking")
	syncCmd.Flags().BoolVar(&syncDirsOnly, "dirs-only", false, "Never delete plain files under the root")
}

func runSync(cmd *cobra.Command, args []string) {
	a := getApp(cmd)
	a.session.Sync = layout.SyncOptions{DirectoriesOnly: syncDirsOnly}

	if syncDryRun {
		st := a.registry.Dispatch(action.PlanSync, a.session)
		if !st.OK() {
			exitWithError(st.Message)
		}
		printPlan(a.session.LastPlan)
		fmt.Println(ui.InfoLine(st.Message))
		return
	}

	a.session.Confirm = func(plan layout.Plan) bool {
		if syncYes {
			return true
		}
		printPlan(plan)
		return confirm("Delete these entries and everything inside them?")
	}

	a.dispatch(action.SyncFolders)

	// The prompt already showed the plan
	if syncYes {
		for _, name := range a.session.LastResult.Deleted {
			fmt.Println(ui.RenderMuted("    deleted " + name))
		}
	}
}

func printPlan(plan layout.Plan) {
	if plan.Empty() {
		return
	}
	fmt.Println()
	for _, name := range plan.Create {
		fmt.Printf("  %s %s\n", ui.MissingBadge(), name)
	}
	for _, name := range plan.Delete {
		fmt.Printf("  %s %s\n", ui.ExtraBadge(), name)
	}
	fmt.Println()
}

// confirm asks a y/N question on stdin. Non-interactive input answers no.
func confirm(question string) bool {
	if !term.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, ui.WarningLine("Not a terminal; pass --yes to delete."))
		return false
	}
	fmt.Printf("  %s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
