package panel

import (
	"slices"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/layout"
)

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case watchStartedMsg:
		m.watcher = msg.watcher
		return m, waitForChange(m.watcher)

	case rootChangedMsg:
		m.logger().Debug("root changed", "path", msg.name)
		m.refresh()
		if m.watcher != nil {
			return m, waitForChange(m.watcher)
		}
		return m, nil

	case watchErrMsg:
		m.logger().Warn("watching project root failed", "error", msg.err)
		if m.watcher != nil {
			return m, waitForChange(m.watcher)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeConfirmSync:
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	folders := m.session.Project.Folders

	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.run(action.SelectFolder, strconv.Itoa(m.cursor))
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(folders)-1 {
			m.cursor++
			m.run(action.SelectFolder, strconv.Itoa(m.cursor))
		}

	case key.Matches(msg, m.keys.Add):
		return m.prompt(action.AddFolder, "New folder: ", ""), textinput.Blink

	case key.Matches(msg, m.keys.Rename):
		if len(folders) == 0 {
			return m, nil
		}
		return m.prompt(action.RenameFolder, "Rename to: ", folders[m.cursor].Name), textinput.Blink

	case key.Matches(msg, m.keys.Remove):
		if len(folders) == 0 {
			return m, nil
		}
		m.run(action.RemoveFolder, strconv.Itoa(m.cursor))
		m.clampCursor()

	case key.Matches(msg, m.keys.Defaults):
		m.run(action.AddDefaultFolders)
		m.cursor = 0

	case key.Matches(msg, m.keys.Create):
		m.run(action.CreateProject)

	case key.Matches(msg, m.keys.Sync):
		return m.startSync()

	case key.Matches(msg, m.keys.Save):
		return m.prompt(action.SaveFile, "Save as: ", m.session.Project.BlendFileBaseName), textinput.Blink

	case key.Matches(msg, m.keys.OpenRef):
		m.run(action.OpenReference)

	case key.Matches(msg, m.keys.CopyPath):
		m.copySelectedPath()
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		name := m.inputAction
		m.mode = modeList
		m.input.Blur()

		switch name {
		case action.AddFolder:
			m.run(action.AddFolder, value)
			m.cursor = len(m.session.Project.Folders) - 1
		case action.RenameFolder:
			m.run(action.RenameFolder, strconv.Itoa(m.cursor), value)
		case action.SaveFile:
			m.run(action.SaveFile, value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeList
		m.applySync()
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.mode = modeList
		m.pending = layout.Plan{}
		m.status = action.Status{
			Action:   action.SyncFolders,
			Severity: action.Info,
			Message:  "Sync cancelled",
		}
	}
	return m, nil
}

// startSync applies a plan that only creates, and asks first when it deletes.
func (m Model) startSync() (tea.Model, tea.Cmd) {
	plan, err := layout.PlanSync(m.session.Project, m.session.Sync)
	if err != nil {
		m.status = action.Status{
			Action:   action.SyncFolders,
			Severity: action.Error,
			Message:  action.Describe(err),
			Err:      err,
		}
		return m, nil
	}
	if plan.Destructive() {
		m.pending = plan
		m.mode = modeConfirmSync
		return m, nil
	}
	m.run(action.SyncFolders)
	return m, nil
}

// applySync runs the sync only if it deletes exactly what the prompt showed.
// Otherwise the new plan goes back to the prompt.
func (m *Model) applySync() {
	shown := m.pending
	changed := false

	prev := m.session.Confirm
	m.session.Confirm = func(p layout.Plan) bool {
		if slices.Equal(p.Delete, shown.Delete) {
			return true
		}
		changed = true
		return false
	}
	m.run(action.SyncFolders)
	m.session.Confirm = prev
	m.pending = layout.Plan{}

	if changed {
		m.pending = m.session.LastPlan
		m.mode = modeConfirmSync
		m.status = action.Status{
			Action:   action.SyncFolders,
			Severity: action.Info,
			Message:  "Project folder changed; review the new plan",
		}
	}
}

func (m Model) prompt(name, label, initial string) Model {
	m.mode = modeInput
	m.inputAction = name
	m.inputPrompt = label
	m.input.Prompt = label
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

// run dispatches an action, persists the session and refreshes disk state.
func (m *Model) run(name string, args ...string) {
	m.status = m.registry.Dispatch(name, m.session, args...)
	if m.opts.Persist != nil && (m.session.Dirty() || m.session.PrefsDirty()) {
		if err := m.opts.Persist(m.session); err != nil {
			m.logger().Error("saving session failed", "error", err)
			m.status = action.Status{
				Action:   name,
				Severity: action.Error,
				Message:  "Could not save session: " + err.Error(),
				Err:      err,
			}
		}
	}
	m.refresh()
}

func (m *Model) copySelectedPath() {
	p := m.session.Project
	if len(p.Folders) == 0 || p.RootDirectory == "" {
		return
	}
	path := p.FolderPath(p.Folders[m.cursor].Name)

	write := m.opts.CopyToClipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	if err := write(path); err != nil {
		m.status = action.Status{Severity: action.Error, Message: "Could not copy path: " + err.Error(), Err: err}
		return
	}
	m.status = action.Status{Severity: action.Info, Message: "Copied " + path}
}
