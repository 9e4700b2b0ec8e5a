package panel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/project"
	"github.com/kennyg/atelier/internal/ui"
)

// View renders the panel.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(ui.Logo())
	b.WriteString("\n\n")
	b.WriteString(m.viewProject())
	b.WriteString("\n")
	b.WriteString(m.viewFolders())

	switch m.mode {
	case modeInput:
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(ui.RenderMuted("enter to confirm, esc to cancel"))
		b.WriteString("\n")
	case modeConfirmSync:
		b.WriteString("\n")
		b.WriteString(m.viewConfirm())
	}

	if line := m.viewStatus(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	if ui.IsTTY {
		return ui.Panel.Render(b.String())
	}
	return b.String()
}

func (m Model) viewProject() string {
	p := m.session.Project

	root := p.RootDirectory
	if root == "" {
		root = ui.RenderMuted("(not set)")
	} else if errors.Is(m.diskErr, project.ErrInvalidRoot) {
		root = ui.RenderError(root + " (missing)")
	}

	name := p.BlendFileBaseName
	if name == "" {
		name = ui.RenderMuted("(not set)")
	}

	ref := p.ReferenceFilePath
	if ref == "" {
		ref = ui.RenderMuted("(none)")
	}

	label := lipgloss.NewStyle().Width(11)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", ui.Render(label, "Root"), root)
	fmt.Fprintf(&b, "%s%s\n", ui.Render(label, "File"), name)
	fmt.Fprintf(&b, "%s%s\n", ui.Render(label, "Reference"), ref)
	return b.String()
}

func (m Model) viewFolders() string {
	folders := m.session.Project.Folders
	if len(folders) == 0 {
		return ui.EmptyFolderList()
	}

	var b strings.Builder
	for i, f := range folders {
		badge := ui.MissingBadge()
		if m.onDisk[f.Name] {
			badge = ui.PresentBadge()
		}

		cursor := "  "
		name := f.Name
		if i == m.cursor {
			cursor = "> "
			name = ui.Render(ui.Selected, " "+name+" ")
		}
		fmt.Fprintf(&b, "%s%-2d %s %s\n", cursor, i+1, badge, name)
	}

	for _, extra := range m.extras {
		fmt.Fprintf(&b, "      %s %s\n", ui.ExtraBadge(), ui.RenderMuted(extra))
	}
	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(ui.WarningLine(fmt.Sprintf("Sync will delete %d entries and everything inside them:", len(m.pending.Delete))))
	b.WriteString("\n")
	for _, name := range m.pending.Delete {
		fmt.Fprintf(&b, "    %s\n", ui.RenderError(name))
	}
	if len(m.pending.Create) > 0 {
		fmt.Fprintf(&b, "  and create %d.\n", len(m.pending.Create))
	}
	b.WriteString(ui.RenderHighlight("  Proceed? [y/N]"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewStatus() string {
	if m.status.Message == "" {
		return ""
	}
	if m.status.Severity == action.Error {
		return ui.ErrorLine(m.status.Message)
	}
	return ui.SuccessLine(m.status.Message)
}
