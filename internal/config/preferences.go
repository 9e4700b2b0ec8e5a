package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/kennyg/atelier/internal/document"
	"github.com/kennyg/atelier/internal/launch"
	"github.com/kennyg/atelier/internal/project"
)

// EnvPrefix is the prefix for environment overrides, e.g. ATELIER_CONVENTION_FOLDER.
const EnvPrefix = "ATELIER_"

// Link is an informational link shown alongside the preferences.
type Link struct {
	Label string `koanf:"label" yaml:"label"`
	URL   string `koanf:"url" yaml:"url"`
}

// Preferences are process-wide settings that outlive any one project.
type Preferences struct {
	DefaultFolderNames string `koanf:"default_folder_names" yaml:"default_folder_names"`
	ConventionFolder   string `koanf:"convention_folder" yaml:"convention_folder"`
	DocumentExtension  string `koanf:"document_extension" yaml:"document_extension"`
	ReferenceExtension string `koanf:"reference_extension" yaml:"reference_extension"`
	Links              []Link `koanf:"links" yaml:"links"`
}

// DefaultLinks are shown when the preferences file lists none.
func DefaultLinks() []Link {
	return []Link{
		{Label: "Blender Manual", URL: "https://docs.blender.org/manual/en/latest/"},
		{Label: "PureRef", URL: "https://www.pureref.com/"},
	}
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		DefaultFolderNames: project.DefaultTemplate,
		ConventionFolder:   document.DefaultConventionFolder,
		DocumentExtension:  document.DefaultExtension,
		ReferenceExtension: launch.DefaultReferenceExtension,
		Links:              DefaultLinks(),
	}
}

// flagKeys maps CLI flag names onto preference keys.
var flagKeys = map[string]string{
	"template":   "default_folder_names",
	"convention": "convention_folder",
}

// LoadPreferences loads preferences from defaults, the YAML file at path,
// ATELIER_* environment variables and explicitly set flags, in rising priority.
// A missing file is not an error.
func LoadPreferences(path string, flags *pflag.FlagSet) (*Preferences, error) {
	return loadPreferences(path, true, flags)
}

// LoadStoredPreferences loads defaults and the YAML file at path only. This is
// the view to change and save, so overrides never end up in the file.
func LoadStoredPreferences(path string) (*Preferences, error) {
	return loadPreferences(path, false, nil)
}

func loadPreferences(path string, overrides bool, flags *pflag.FlagSet) (*Preferences, error) {
	k := koanf.New(".")

	defaults := DefaultPreferences()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"default_folder_names": defaults.DefaultFolderNames,
		"convention_folder":    defaults.ConventionFolder,
		"document_extension":   defaults.DocumentExtension,
		"reference_extension":  defaults.ReferenceExtension,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("error reading preferences file %s: %w", path, err)
			}
		}
	}

	if !overrides {
		return unmarshalPreferences(k)
	}

	// Transform: ATELIER_CONVENTION_FOLDER -> convention_folder
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	return unmarshalPreferences(k)
}

func unmarshalPreferences(k *koanf.Koanf) (*Preferences, error) {
	var prefs Preferences
	if err := k.Unmarshal("", &prefs); err != nil {
		return nil, fmt.Errorf("unable to decode preferences: %w", err)
	}
	if len(prefs.Links) == 0 {
		prefs.Links = DefaultLinks()
	}

	return &prefs, nil
}

// SavePreferences writes prefs to path as YAML.
func SavePreferences(path string, prefs *Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	content, err := yamlv3.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	header := `# atelier preferences
#
# default_folder_names is a comma-separated list used by
# 'atelier folders defaults'.

`
	return os.WriteFile(path, []byte(header+string(content)), 0644)
}

// SetLink adds a link or replaces the URL of an existing label.
func (p *Preferences) SetLink(label, url string) {
	for i := range p.Links {
		if strings.EqualFold(p.Links[i].Label, label) {
			p.Links[i].URL = url
			return
		}
	}
	p.Links = append(p.Links, Link{Label: label, URL: url})
}

// RemoveLink deletes the link with label and reports whether it was present.
func (p *Preferences) RemoveLink(label string) bool {
	for i := range p.Links {
		if strings.EqualFold(p.Links[i].Label, label) {
			p.Links = append(p.Links[:i], p.Links[i+1:]...)
			return true
		}
	}
	return false
}

// FindLink returns the link with label.
func (p *Preferences) FindLink(label string) (Link, bool) {
	for _, l := range p.Links {
		if strings.EqualFold(l.Label, label) {
			return l, true
		}
	}
	return Link{}, false
}

// DocumentOptions returns the save options these preferences describe.
func (p *Preferences) DocumentOptions() document.Options {
	return document.Options{
		ConventionFolder: p.ConventionFolder,
		Extension:        p.DocumentExtension,
	}
}
