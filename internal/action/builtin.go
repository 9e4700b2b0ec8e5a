package action

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kennyg/atelier/internal/config"
	"github.com/kennyg/atelier/internal/document"
	"github.com/kennyg/atelier/internal/launch"
	"github.com/kennyg/atelier/internal/layout"
	"github.com/kennyg/atelier/internal/project"
)

// Names of the built-in actions.
const (
	AddDefaultFolders = "add-default-folders"
	AddFolder         = "add-folder"
	RemoveFolder      = "remove-folder"
	RenameFolder      = "rename-folder"
	SelectFolder      = "select-folder"
	SetProject        = "set-project"
	CreateProject     = "create-project"
	PlanSync          = "plan-sync"
	SyncFolders       = "sync-folders"
	SaveFile          = "save-file"
	OpenReference     = "open-reference"
	OpenLink          = "open-link"
	UpdatePreferences = "update-preferences"
)

var (
	// ErrSyncDeclined is returned when a destructive sync was not confirmed.
	ErrSyncDeclined = errors.New("sync would delete entries and was not confirmed")
	// ErrNoSaver is returned when save-file runs without a document saver.
	ErrNoSaver = errors.New("no working document to save")
)

// Default returns a registry with every built-in action registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(AddDefaultFolders, "Replace the folder list with the default folders", addDefaultFolders)
	r.Register(AddFolder, "Add a folder to the list", addFolder)
	r.Register(RemoveFolder, "Remove a folder from the list", removeFolder)
	r.Register(RenameFolder, "Rename a folder in the list", renameFolder)
	r.Register(SelectFolder, "Select a folder in the list", selectFolder)
	r.Register(SetProject, "Set project root, file name or reference board", setProject)
	r.Register(CreateProject, "Create the project folders", createProject)
	r.Register(PlanSync, "Show what a sync would change", planSync)
	r.Register(SyncFolders, "Make the project directory match the folder list", syncFolders)
	r.Register(SaveFile, "Save the working file into the convention folder", saveFile)
	r.Register(OpenReference, "Open the reference board", openReference)
	r.Register(OpenLink, "Open an informational link", openLink)
	r.Register(UpdatePreferences, "Update preferences", updatePreferences)
	return r
}

func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	if i < 0 || i >= n {
		return 0, project.ErrIndexOutOfRange
	}
	return i, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func addDefaultFolders(s *Session, args []string) (string, error) {
	template := s.Prefs.DefaultFolderNames
	if len(args) > 0 {
		template = args[0]
	}
	project.PopulateDefaults(s.Project, template)
	s.dirty = true
	return fmt.Sprintf("Added %s", plural(len(s.Project.Folders), "default folder")), nil
}

func addFolder(s *Session, args []string) (string, error) {
	entry := s.Project.AddFolder(strings.Join(args, " "))
	s.dirty = true
	return fmt.Sprintf("Added folder '%s'", entry.Name), nil
}

func removeFolder(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		removed, ok := s.Project.RemoveActive()
		if !ok {
			return "No folder selected", nil
		}
		s.dirty = true
		return fmt.Sprintf("Removed folder '%s'", removed.Name), nil
	}

	i, err := parseIndex(args[0], len(s.Project.Folders))
	if err != nil {
		return "", err
	}
	removed, err := s.Project.RemoveFolder(i)
	if err != nil {
		return "", err
	}
	s.dirty = true
	return fmt.Sprintf("Removed folder '%s'", removed.Name), nil
}

func renameFolder(s *Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("rename needs an index and a name")
	}
	i, err := parseIndex(args[0], len(s.Project.Folders))
	if err != nil {
		return "", err
	}
	old := s.Project.Folders[i].Name
	if err := s.Project.RenameFolder(i, strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	s.dirty = true
	return fmt.Sprintf("Renamed '%s' to '%s'", old, s.Project.Folders[i].Name), nil
}

func selectFolder(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		s.Project.ActiveIndex = project.NoSelection
		s.dirty = true
		return "Selection cleared", nil
	}
	i, err := parseIndex(args[0], len(s.Project.Folders))
	if err != nil {
		return "", err
	}
	if err := s.Project.Select(i); err != nil {
		return "", err
	}
	s.dirty = true
	return fmt.Sprintf("Selected '%s'", s.Project.Folders[i].Name), nil
}

// setProject takes key=value pairs: root, name, reference.
func setProject(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("nothing to set")
	}

	var changed []string
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return "", fmt.Errorf("expected key=value, got %q", arg)
		}
		value = strings.TrimSpace(value)

		switch key {
		case "root":
			if value != "" {
				abs, err := filepath.Abs(value)
				if err != nil {
					return "", err
				}
				value = abs
			}
			s.Project.RootDirectory = value
		case "name":
			s.Project.BlendFileBaseName = value
		case "reference":
			if value != "" {
				abs, err := filepath.Abs(value)
				if err != nil {
					return "", err
				}
				value = abs
			}
			s.Project.ReferenceFilePath = value
		default:
			return "", fmt.Errorf("unknown project setting %q", key)
		}
		changed = append(changed, key)
	}

	s.dirty = true
	return "Updated " + strings.Join(changed, ", "), nil
}

func createProject(s *Session, _ []string) (string, error) {
	created, err := layout.CreateAll(s.Project, layout.WithLogger(s.logger()))
	if err != nil {
		if len(created) > 0 {
			s.logger().Warn("project partially created", "created", created)
		}
		return "", err
	}
	if len(created) == 0 {
		return "No folders to create", nil
	}
	return "Project folders created successfully.", nil
}

func planSync(s *Session, _ []string) (string, error) {
	plan, err := layout.PlanSync(s.Project, s.Sync)
	if err != nil {
		return "", err
	}
	s.LastPlan = plan
	return describePlan(plan), nil
}

func syncFolders(s *Session, _ []string) (string, error) {
	plan, err := layout.PlanSync(s.Project, s.Sync)
	if err != nil {
		return "", err
	}
	s.LastPlan = plan
	s.LastResult = layout.Result{}

	if plan.Empty() {
		return "Folders already in sync", nil
	}
	if plan.Destructive() && (s.Confirm == nil || !s.Confirm(plan)) {
		return "", ErrSyncDeclined
	}

	res, err := layout.Apply(plan, layout.WithLogger(s.logger()))
	s.LastResult = res
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Synced: created %d, deleted %d", len(res.Created), len(res.Deleted)), nil
}

func describePlan(p layout.Plan) string {
	if p.Empty() {
		return "Folders already in sync"
	}
	return fmt.Sprintf("Would create %d, delete %d", len(p.Create), len(p.Delete))
}

func saveFile(s *Session, args []string) (string, error) {
	if s.Saver == nil {
		return "", ErrNoSaver
	}

	base := ""
	if len(args) > 0 {
		base = args[0]
	}

	path, err := document.SaveInto(s.Project, base, s.Prefs.DocumentOptions(), s.Saver)
	if err != nil {
		return "", err
	}
	if base != "" && strings.TrimSpace(base) != s.Project.BlendFileBaseName {
		s.Project.BlendFileBaseName = strings.TrimSpace(base)
		s.dirty = true
	}
	return "Saved " + path, nil
}

func openReference(s *Session, args []string) (string, error) {
	path := s.Project.ReferenceFilePath
	if len(args) > 0 && args[0] != "" {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return "", err
		}
		path = abs
	}

	if err := launch.OpenReference(path, s.Prefs.ReferenceExtension, s.Launcher); err != nil {
		return "", err
	}
	if path != s.Project.ReferenceFilePath {
		s.Project.ReferenceFilePath = path
		s.dirty = true
	}
	return "Opened " + filepath.Base(path), nil
}

func openLink(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("which link?")
	}
	label := strings.Join(args, " ")
	link, ok := s.Prefs.FindLink(label)
	if !ok {
		return "", fmt.Errorf("no link labelled %q", label)
	}
	if err := launch.OpenURL(link.URL, s.Launcher); err != nil {
		return "", err
	}
	return "Opened " + link.Label, nil
}

// updatePreferences takes key=value pairs. Keys: template, convention,
// document-extension, reference-extension, link (value "Label=URL") and
// unlink (value "Label"). The same pairs go to the stored preferences so
// environment and flag overrides are never written back.
func updatePreferences(s *Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("nothing to update")
	}

	// Validate everything before touching the preferences.
	next, err := applyPreferences(s.Prefs, args)
	if err != nil {
		return "", err
	}
	var stored config.Preferences
	if s.StoredPrefs != nil {
		if stored, err = applyPreferences(s.StoredPrefs, args); err != nil {
			return "", err
		}
	}

	*s.Prefs = next
	if s.StoredPrefs != nil {
		*s.StoredPrefs = stored
	}
	s.prefsDirty = true
	return "Preferences updated", nil
}

func applyPreferences(prefs *config.Preferences, args []string) (config.Preferences, error) {
	next := *prefs
	next.Links = append([]config.Link(nil), prefs.Links...)

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return next, fmt.Errorf("expected key=value, got %q", arg)
		}

		switch key {
		case "template":
			next.DefaultFolderNames = value
		case "convention":
			value = strings.TrimSpace(value)
			if err := project.ValidateName(value); err != nil {
				return next, err
			}
			next.ConventionFolder = value
		case "document-extension":
			if strings.Trim(value, ". ") == "" {
				return next, errors.New("document extension cannot be empty")
			}
			next.DocumentExtension = normalizeExt(value)
		case "reference-extension":
			if strings.Trim(value, ". ") == "" {
				return next, errors.New("reference extension cannot be empty")
			}
			next.ReferenceExtension = normalizeExt(value)
		case "link":
			label, url, ok := strings.Cut(value, "=")
			label = strings.TrimSpace(label)
			if !ok || label == "" || strings.TrimSpace(url) == "" {
				return next, fmt.Errorf("link must be Label=URL, got %q", value)
			}
			next.SetLink(label, strings.TrimSpace(url))
		case "unlink":
			if !next.RemoveLink(strings.TrimSpace(value)) {
				return next, fmt.Errorf("no link labelled %q", value)
			}
		default:
			return next, fmt.Errorf("unknown preference %q", key)
		}
	}
	return next, nil
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
