package action

import (
	"errors"
	"fmt"

	"github.com/kennyg/atelier/internal/project"
)

// Describe turns an action error into the message shown to the user.
func Describe(err error) string {
	var (
		exists  *project.FolderExistsError
		invalid *project.InvalidFolderNameError
		fsErr   *project.FilesystemError
		launch  *project.LaunchError
		save    *project.SaveError
	)

	switch {
	case errors.Is(err, project.ErrInvalidRoot):
		return "Directory does not exist."
	case errors.As(err, &exists):
		return fmt.Sprintf("Folder '%s' already exists.", exists.Name)
	case errors.As(err, &invalid):
		return fmt.Sprintf("'%s' cannot be used as a folder name.", invalid.Name)
	case errors.Is(err, project.ErrMissingConventionFolder):
		return err.Error() + ". Create the project folders first."
	case errors.As(err, &fsErr):
		return fmt.Sprintf("Could not %s %s: %v", fsErr.Op, fsErr.Path, fsErr.Err)
	case errors.As(err, &launch):
		return "Could not open: " + launch.Reason
	case errors.As(err, &save):
		return fmt.Sprintf("Could not save %s: %v", save.Path, save.Err)
	case errors.Is(err, ErrSyncDeclined):
		return "Sync cancelled: it would delete entries and was not confirmed."
	default:
		return err.Error()
	}
}
