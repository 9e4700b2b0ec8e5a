package project

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is returned when the project root is missing or not a directory.
	ErrInvalidRoot = errors.New("project root does not exist or is not a directory")

	// ErrMissingConventionFolder is returned when the save target folder is absent.
	ErrMissingConventionFolder = errors.New("convention folder does not exist")

	// ErrInvalidReference is returned for reference files that cannot be opened.
	ErrInvalidReference = errors.New("invalid reference file")

	// ErrEmptyFolderName is returned when a folder entry would get an empty name.
	ErrEmptyFolderName = errors.New("folder name cannot be empty")

	// ErrIndexOutOfRange is returned when a folder index does not exist.
	ErrIndexOutOfRange = errors.New("folder index out of range")

	// ErrMissingBaseName is returned when no document base name is known.
	ErrMissingBaseName = errors.New("no file name given and none set on the project")
)

// FolderExistsError reports a folder that already exists on disk.
type FolderExistsError struct {
	Name string
}

func (e *FolderExistsError) Error() string {
	return fmt.Sprintf("folder '%s' already exists", e.Name)
}

// InvalidFolderNameError reports a name that cannot be used as a single path element.
type InvalidFolderNameError struct {
	Name string
}

func (e *InvalidFolderNameError) Error() string {
	return fmt.Sprintf("invalid folder name %q", e.Name)
}

// FilesystemError wraps an OS-level failure during create or delete.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// LaunchError reports a failure handing a file to the OS launcher.
type LaunchError struct {
	Reason string
}

func (e *LaunchError) Error() string {
	return "launch failed: " + e.Reason
}

// SaveError wraps a failure reported by the document saver.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
