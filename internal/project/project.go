// Package project holds the folder list model and the project settings that
// travel with one working session.
package project

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFolderName is used when a folder is added without a name.
const DefaultFolderName = "New Folder"

// NoSelection is the ActiveIndex value when no folder is selected.
const NoSelection = -1

// FolderEntry is one named sub-folder of the project.
type FolderEntry struct {
	Name string `json:"name"`
}

// ProjectConfig is the per-session project state.
type ProjectConfig struct {
	RootDirectory     string        `json:"root_directory"`
	BlendFileBaseName string        `json:"blend_file_base_name,omitempty"`
	ReferenceFilePath string        `json:"reference_file_path,omitempty"`
	Folders           []FolderEntry `json:"folders"`
	ActiveIndex       int           `json:"active_index"`
}

// New returns an empty project with no selection.
func New() *ProjectConfig {
	return &ProjectConfig{ActiveIndex: NoSelection}
}

// AddFolder appends a folder entry and selects it. An empty name gets DefaultFolderName.
func (c *ProjectConfig) AddFolder(name string) FolderEntry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultFolderName
	}
	entry := FolderEntry{Name: name}
	c.Folders = append(c.Folders, entry)
	c.ActiveIndex = len(c.Folders) - 1
	return entry
}

// RemoveFolder removes the entry at index and clears the selection.
func (c *ProjectConfig) RemoveFolder(index int) (FolderEntry, error) {
	if index < 0 || index >= len(c.Folders) {
		return FolderEntry{}, ErrIndexOutOfRange
	}
	removed := c.Folders[index]
	c.Folders = append(c.Folders[:index], c.Folders[index+1:]...)
	c.ActiveIndex = NoSelection
	return removed, nil
}

// RemoveActive removes the selected entry. It is a no-op when nothing is selected.
func (c *ProjectConfig) RemoveActive() (FolderEntry, bool) {
	if len(c.Folders) == 0 || c.ActiveIndex < 0 {
		return FolderEntry{}, false
	}
	removed, err := c.RemoveFolder(c.ActiveIndex)
	if err != nil {
		c.ActiveIndex = NoSelection
		return FolderEntry{}, false
	}
	return removed, true
}

// RenameFolder changes the name of the entry at index.
func (c *ProjectConfig) RenameFolder(index int, name string) error {
	if index < 0 || index >= len(c.Folders) {
		return ErrIndexOutOfRange
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyFolderName
	}
	c.Folders[index].Name = name
	return nil
}

// Select sets the active index. NoSelection clears it.
func (c *ProjectConfig) Select(index int) error {
	if index == NoSelection {
		c.ActiveIndex = NoSelection
		return nil
	}
	if index < 0 || index >= len(c.Folders) {
		return ErrIndexOutOfRange
	}
	c.ActiveIndex = index
	return nil
}

// Active returns the selected entry, if any.
func (c *ProjectConfig) Active() (FolderEntry, bool) {
	if c.ActiveIndex < 0 || c.ActiveIndex >= len(c.Folders) {
		return FolderEntry{}, false
	}
	return c.Folders[c.ActiveIndex], true
}

// Names returns the folder names in list order, duplicates included.
func (c *ProjectConfig) Names() []string {
	names := make([]string, len(c.Folders))
	for i, f := range c.Folders {
		names[i] = f.Name
	}
	return names
}

// FolderPath joins a folder name onto the root directory.
func (c *ProjectConfig) FolderPath(name string) string {
	return filepath.Join(c.RootDirectory, name)
}

// CheckRoot returns ErrInvalidRoot unless the root directory exists and is a directory.
func (c *ProjectConfig) CheckRoot() error {
	if c.RootDirectory == "" {
		return ErrInvalidRoot
	}
	info, err := os.Stat(c.RootDirectory)
	if err != nil || !info.IsDir() {
		return ErrInvalidRoot
	}
	return nil
}

// ValidateName checks that name is usable as a single directory entry under the root.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return &InvalidFolderNameError{Name: name}
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return &InvalidFolderNameError{Name: name}
	}
	return nil
}
