// Package layout creates project folders on disk and keeps the root directory
// in step with the folder list.
package layout

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kennyg/atelier/internal/project"
)

// Option configures a layout call.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes per-entry debug logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validateNames rejects unusable names before anything touches the disk.
func validateNames(names []string) error {
	for _, name := range names {
		if err := project.ValidateName(name); err != nil {
			return err
		}
	}
	return nil
}

// CreateAll creates one directory per folder entry under the project root.
//
// It aborts on the first entry that already exists; directories created
// earlier in the same call are left in place. The returned slice lists the
// names created before returning, whether or not an error occurred.
func CreateAll(cfg *project.ProjectConfig, opts ...Option) ([]string, error) {
	o := buildOptions(opts)

	if err := cfg.CheckRoot(); err != nil {
		return nil, err
	}

	names := cfg.Names()
	if err := validateNames(names); err != nil {
		return nil, err
	}

	var created []string
	for _, name := range names {
		path := cfg.FolderPath(name)

		_, err := os.Lstat(path)
		if err == nil {
			o.logger.Debug("folder already exists", "path", path)
			return created, &project.FolderExistsError{Name: name}
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return created, &project.FilesystemError{Op: "stat", Path: path, Err: err}
		}

		if err := os.Mkdir(path, 0755); err != nil {
			return created, &project.FilesystemError{Op: "mkdir", Path: path, Err: err}
		}
		o.logger.Debug("created folder", "path", path)
		created = append(created, name)
	}

	return created, nil
}

// listChildren returns the names of the immediate children of root.
// With dirsOnly, regular files and other non-directories are skipped.
func listChildren(root string, dirsOnly bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &project.FilesystemError{Op: "readdir", Path: root, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if dirsOnly && !e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Snapshot lists what currently sits in the project root, sorted by name.
func Snapshot(cfg *project.ProjectConfig) ([]Entry, error) {
	if err := cfg.CheckRoot(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(cfg.RootDirectory)
	if err != nil {
		return nil, &project.FilesystemError{Op: "readdir", Path: cfg.RootDirectory, Err: err}
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

// Entry is one immediate child of the project root.
type Entry struct {
	Name  string
	IsDir bool
}

// Exists reports whether root/name is present, for display purposes.
func Exists(cfg *project.ProjectConfig, name string) bool {
	if cfg.RootDirectory == "" {
		return false
	}
	_, err := os.Lstat(filepath.Join(cfg.RootDirectory, name))
	return err == nil
}
