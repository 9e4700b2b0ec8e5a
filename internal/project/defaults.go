package project

import "strings"

// DefaultTemplate is the folder set used when no preference overrides it.
const DefaultTemplate = "Blender, Photoshop, Painter, Geo, Textures, References, Renders"

// SplitTemplate splits a comma-separated template into trimmed, non-empty names.
func SplitTemplate(template string) []string {
	var names []string
	for _, tok := range strings.Split(template, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		names = append(names, tok)
	}
	return names
}

// PopulateDefaults replaces the folder list with the names from template.
func PopulateDefaults(c *ProjectConfig, template string) {
	c.Folders = c.Folders[:0]
	for _, name := range SplitTemplate(template) {
		c.Folders = append(c.Folders, FolderEntry{Name: name})
	}
	c.ActiveIndex = NoSelection
}
