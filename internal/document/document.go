// Package document saves the working document into the project's
// convention folder.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cp "github.com/otiai10/copy"

	"github.com/kennyg/atelier/internal/project"
)

const (
	// DefaultConventionFolder holds the authoring documents.
	DefaultConventionFolder = "Blender"
	// DefaultExtension is the document file extension.
	DefaultExtension = ".blend"
)

// Saver writes the current working document to a destination path.
type Saver interface {
	Save(path string) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(path string) error

// Save calls f(path).
func (f SaverFunc) Save(path string) error {
	return f(path)
}

// Options names the convention folder and document extension.
type Options struct {
	ConventionFolder string
	Extension        string
}

func (o Options) withDefaults() Options {
	if o.ConventionFolder == "" {
		o.ConventionFolder = DefaultConventionFolder
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if !strings.HasPrefix(o.Extension, ".") {
		o.Extension = "." + o.Extension
	}
	return o
}

// TargetPath returns root/<convention>/<baseName><ext>, adding the extension
// only when baseName does not already carry it.
func TargetPath(root, baseName string, opts Options) string {
	opts = opts.withDefaults()
	if !strings.EqualFold(filepath.Ext(baseName), opts.Extension) {
		baseName += opts.Extension
	}
	return filepath.Join(root, opts.ConventionFolder, baseName)
}

// SaveInto saves the working document under the project's convention folder
// and returns the path written. The saver is only called once the folder is
// known to exist.
func SaveInto(cfg *project.ProjectConfig, baseName string, opts Options, saver Saver) (string, error) {
	opts = opts.withDefaults()

	if err := cfg.CheckRoot(); err != nil {
		return "", err
	}

	folder := filepath.Join(cfg.RootDirectory, opts.ConventionFolder)
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", project.ErrMissingConventionFolder, folder)
	}

	baseName = strings.TrimSpace(baseName)
	if baseName == "" {
		baseName = strings.TrimSpace(cfg.BlendFileBaseName)
	}
	if baseName == "" {
		return "", project.ErrMissingBaseName
	}
	if err := project.ValidateName(baseName); err != nil {
		return "", err
	}

	path := TargetPath(cfg.RootDirectory, baseName, opts)
	if err := saver.Save(path); err != nil {
		return "", &project.SaveError{Path: path, Err: err}
	}
	return path, nil
}

// FileSaver saves by copying an existing working file to the destination.
type FileSaver struct {
	Source string
}

// Save copies Source to path.
func (s FileSaver) Save(path string) error {
	if s.Source == "" {
		return fmt.Errorf("no working file to save")
	}
	info, err := os.Stat(s.Source)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("working file %s is a directory", s.Source)
	}
	// Copying a file onto itself truncates it before reading.
	if sameFile(s.Source, info, path) {
		return nil
	}
	return cp.Copy(s.Source, path)
}

func sameFile(src string, srcInfo os.FileInfo, dst string) bool {
	absSrc, err1 := filepath.Abs(src)
	absDst, err2 := filepath.Abs(dst)
	if err1 == nil && err2 == nil && absSrc == absDst {
		return true
	}
	dstInfo, err := os.Stat(dst)
	return err == nil && os.SameFile(srcInfo, dstInfo)
}
