package launch

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/kennyg/atelier/internal/project"
)

// DefaultReferenceExtension is the PureRef board extension.
const DefaultReferenceExtension = ".pur"

// CheckReference validates a reference board path without opening it.
func CheckReference(path, ext string) error {
	if ext == "" {
		ext = DefaultReferenceExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if path == "" {
		return fmt.Errorf("%w: no path given", project.ErrInvalidReference)
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%w: %s is not a %s file", project.ErrInvalidReference, path, ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s does not exist", project.ErrInvalidReference, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", project.ErrInvalidReference, path)
	}
	return nil
}

// OpenReference validates path and hands it to l. Launcher errors and panics
// come back as *project.LaunchError.
func OpenReference(path, ext string, l Launcher) error {
	if err := CheckReference(path, ext); err != nil {
		return err
	}
	return safeLaunch(l, path)
}

// OpenURL hands an http(s) link to l.
func OpenURL(link string, l Launcher) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &project.LaunchError{Reason: fmt.Sprintf("not a web link: %q", link)}
	}
	return safeLaunch(l, u.String())
}

func safeLaunch(l Launcher, target string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &project.LaunchError{Reason: fmt.Sprint(r)}
		}
	}()

	if l == nil {
		return &project.LaunchError{Reason: "no launcher configured"}
	}
	if lerr := l.Launch(target); lerr != nil {
		return &project.LaunchError{Reason: lerr.Error()}
	}
	return nil
}
