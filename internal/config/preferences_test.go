package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyg/atelier/internal/project"
)

func TestLoadPreferences_Defaults(t *testing.T) {
	prefs, err := LoadPreferences(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, project.DefaultTemplate, prefs.DefaultFolderNames)
	assert.Equal(t, "Blender", prefs.ConventionFolder)
	assert.Equal(t, ".blend", prefs.DocumentExtension)
	assert.Equal(t, ".pur", prefs.ReferenceExtension)
	assert.Equal(t, DefaultLinks(), prefs.Links)
}

func TestSaveAndLoadPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atelier", "preferences.yaml")

	prefs := DefaultPreferences()
	prefs.DefaultFolderNames = "Scenes, Textures"
	prefs.ConventionFolder = "Scenes"
	prefs.Links = []Link{{Label: "Wiki", URL: "https://wiki.example.com"}}
	require.NoError(t, SavePreferences(path, prefs))

	loaded, err := LoadPreferences(path, nil)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestLoadPreferences_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_folder_names: \"Geo, Renders\"\n"), 0644))

	prefs, err := LoadPreferences(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Geo, Renders", prefs.DefaultFolderNames)
	assert.Equal(t, "Blender", prefs.ConventionFolder)
}

func TestLoadPreferences_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("convention_folder: Scenes\n"), 0644))
	t.Setenv("ATELIER_CONVENTION_FOLDER", "Maya")

	prefs, err := LoadPreferences(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Maya", prefs.ConventionFolder)
}

func TestLoadStoredPreferences_IgnoresOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("convention_folder: Scenes\n"), 0644))
	t.Setenv("ATELIER_CONVENTION_FOLDER", "Scratch")

	live, err := LoadPreferences(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Scratch", live.ConventionFolder)

	stored, err := LoadStoredPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "Scenes", stored.ConventionFolder)

	stored.SetLink("Docs", "https://example.com/docs")
	require.NoError(t, SavePreferences(path, stored))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "convention_folder: Scenes")
	assert.NotContains(t, string(data), "Scratch")
	assert.Contains(t, string(data), "https://example.com/docs")
}

func TestLoadPreferences_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ATELIER_DEFAULT_FOLDER_NAMES", "FromEnv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("template", "", "")
	flags.String("convention", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--template", "A, B", "--verbose"}))

	prefs, err := LoadPreferences("", flags)
	require.NoError(t, err)
	assert.Equal(t, "A, B", prefs.DefaultFolderNames)
	assert.Equal(t, "Blender", prefs.ConventionFolder, "unset flag must not override")
}

func TestLoadPreferences_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links: [unterminated"), 0644))

	_, err := LoadPreferences(path, nil)
	assert.Error(t, err)
}

func TestPreferencesLinks(t *testing.T) {
	prefs := &Preferences{}

	prefs.SetLink("Docs", "https://a.example")
	prefs.SetLink("docs", "https://b.example")
	require.Len(t, prefs.Links, 1)
	assert.Equal(t, "https://b.example", prefs.Links[0].URL)

	link, ok := prefs.FindLink("DOCS")
	assert.True(t, ok)
	assert.Equal(t, "Docs", link.Label)

	assert.True(t, prefs.RemoveLink("Docs"))
	assert.False(t, prefs.RemoveLink("Docs"))
	assert.Empty(t, prefs.Links)
}

func TestDocumentOptions(t *testing.T) {
	prefs := DefaultPreferences()
	opts := prefs.DocumentOptions()
	assert.Equal(t, "Blender", opts.ConventionFolder)
	assert.Equal(t, ".blend", opts.Extension)
}
