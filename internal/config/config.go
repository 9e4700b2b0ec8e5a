package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kennyg/atelier/internal/project"
)

// Following the XDG base directory layout:
// User config: ~/.config/atelier/ (or $XDG_CONFIG_HOME/atelier/)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "atelier"
	// PreferencesFile holds the user's preferences
	PreferencesFile = "preferences.yaml"
	// SessionFile holds the active project between invocations
	SessionFile = "session.json"
)

// Paths holds the various paths atelier uses
type Paths struct {
	// Home is the user's home directory
	Home string

	// UserConfigDir is ~/.config/atelier (or $XDG_CONFIG_HOME/atelier)
	UserConfigDir string
	// PreferencesFile is ~/.config/atelier/preferences.yaml
	PreferencesFile string
	// SessionFile is ~/.config/atelier/session.json
	SessionFile string
}

// GetPaths returns the standard paths for atelier
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	userConfigDir := filepath.Join(configHome, ConfigDir)

	return &Paths{
		Home:            home,
		UserConfigDir:   userConfigDir,
		PreferencesFile: filepath.Join(userConfigDir, PreferencesFile),
		SessionFile:     filepath.Join(userConfigDir, SessionFile),
	}, nil
}

// EnsureDirs creates all necessary directories
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.UserConfigDir, 0755)
}

// Session is the persisted form of the active project
type Session struct {
	Version string                 `json:"version"`
	Project *project.ProjectConfig `json:"project"`
}

// LoadSession loads the session from disk. A missing file yields an empty project.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{Version: "1", Project: project.New()}, nil
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.Project == nil {
		session.Project = project.New()
	}

	return &session, nil
}

// SaveSession saves the session to disk
func SaveSession(path string, session *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
