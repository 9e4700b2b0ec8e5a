package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/config"
	"github.com/kennyg/atelier/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var (
	configFile  string
	sessionFile string
	verbose     bool
)

// appKey is used to store the loaded app in the command context.
type appKey struct{}

// app is everything a command needs after startup.
type app struct {
	prefsPath   string
	sessionPath string
	stored      *config.Session
	session     *action.Session
	registry    *action.Registry
	logger      *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Project folder manager for 3D artists",
	Long: ui.Logo() + `

  Lay out a project directory from a list of folder names,
  keep it in sync as the list changes, and save your working
  file where the pipeline expects it.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Skip loading for commands that never touch a project
		switch cmd.Name() {
		case "help", "completion", "__complete", "version":
			return nil
		}

		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
		return nil
	},
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "preferences file (default: $XDG_CONFIG_HOME/atelier/preferences.yaml)")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session", "", "session file (default: $XDG_CONFIG_HOME/atelier/session.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every filesystem change")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("atelier %s\n", Version)
	},
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadApp(cmd *cobra.Command) (*app, error) {
	logger := newLogger()

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config paths: %w", err)
	}

	a := &app{
		prefsPath:   paths.PreferencesFile,
		sessionPath: paths.SessionFile,
		registry:    action.Default(),
		logger:      logger,
	}
	if configFile != "" {
		a.prefsPath = configFile
	}
	if sessionFile != "" {
		a.sessionPath = sessionFile
	}

	prefs, err := config.LoadPreferences(a.prefsPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	stored, err := config.LoadStoredPreferences(a.prefsPath)
	if err != nil {
		return nil, err
	}

	a.stored, err = config.LoadSession(a.sessionPath)
	if err != nil {
		return nil, err
	}

	a.session = action.NewSession(a.stored.Project, prefs)
	a.session.Logger = logger
	a.session.StoredPrefs = stored

	logger.Debug("loaded",
		"preferences", a.prefsPath,
		"session", a.sessionPath,
		"root", a.stored.Project.RootDirectory,
		"folders", len(a.stored.Project.Folders))

	return a, nil
}

// getApp retrieves the app from the command context.
func getApp(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		return a
	}
	exitWithError("atelier was not initialized")
	return nil
}

// persist writes whatever the session changed.
func (a *app) persist(s *action.Session) error {
	if s.Dirty() {
		a.stored.Project = s.Project
		if err := config.SaveSession(a.sessionPath, a.stored); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}
	if s.PrefsDirty() {
		if err := config.SavePreferences(a.prefsPath, s.PrefsToSave()); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
	}
	return nil
}

// dispatch runs an action, saves what changed and prints the outcome.
// It exits on error severity.
func (a *app) dispatch(name string, args ...string) action.Status {
	st := a.registry.Dispatch(name, a.session, args...)
	if err := a.persist(a.session); err != nil {
		exitWithError(err.Error())
	}
	report(st)
	return st
}

// report prints a status line and exits on error severity
func report(st action.Status) {
	if !st.OK() {
		exitWithError(st.Message)
	}
	if st.Message != "" {
		fmt.Println(ui.SuccessLine(st.Message))
	}
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.ErrorLine(msg))
	os.Exit(1)
}
