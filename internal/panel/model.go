// Package panel is the interactive terminal panel: the folder list, its state
// on disk, and one key per named action.
package panel

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/layout"
	"github.com/kennyg/atelier/internal/project"
)

type mode int

const (
	modeList mode = iota
	modeInput
	modeConfirmSync
)

// Options configures a panel.
type Options struct {
	// Persist is called after every action so changes survive a crash.
	Persist func(*action.Session) error
	// Watch refreshes the panel when the project root changes on disk.
	Watch bool
	// CopyToClipboard overrides the system clipboard, mainly for tests.
	CopyToClipboard func(string) error
}

// Model holds the panel state.
type Model struct {
	session  *action.Session
	registry *action.Registry
	opts     Options

	cursor int
	mode   mode

	// Input state
	input       textinput.Model
	inputAction string
	inputPrompt string

	// Confirmation state
	pending layout.Plan

	// What the root looks like right now
	onDisk  map[string]bool
	extras  []string
	diskErr error

	status action.Status

	keys   KeyMap
	help   help.Model
	width  int
	height int

	watcher *fsnotify.Watcher
}

// New returns a panel over session.
func New(session *action.Session, registry *action.Registry, opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40

	m := Model{
		session:  session,
		registry: registry,
		opts:     opts,
		input:    ti,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	if session.Project.ActiveIndex >= 0 && session.Project.ActiveIndex < len(session.Project.Folders) {
		m.cursor = session.Project.ActiveIndex
	}
	m.refresh()
	return m
}

// Init starts the root watcher when enabled.
func (m Model) Init() tea.Cmd {
	if !m.opts.Watch || m.session.Project.RootDirectory == "" {
		return nil
	}
	return startWatch(m.session.Project.RootDirectory)
}

// Status returns the last action status.
func (m Model) Status() action.Status {
	return m.status
}

// Session returns the session the panel edits.
func (m Model) Session() *action.Session {
	return m.session
}

// Close stops the watcher, if any.
func (m Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

// refresh recomputes which folders exist and which root entries a sync would remove.
func (m *Model) refresh() {
	m.onDisk = make(map[string]bool)
	m.extras = nil
	m.diskErr = nil

	p := m.session.Project
	if p.RootDirectory == "" {
		m.diskErr = project.ErrInvalidRoot
		return
	}

	entries, err := layout.Snapshot(p)
	if err != nil {
		m.diskErr = err
		return
	}
	for _, e := range entries {
		if e.IsDir || !m.session.Sync.DirectoriesOnly {
			m.onDisk[e.Name] = true
		}
	}

	plan, err := layout.PlanSync(p, m.session.Sync)
	if err != nil {
		m.diskErr = err
		return
	}
	m.extras = plan.Delete
}

func (m *Model) clampCursor() {
	n := len(m.session.Project.Folders)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) logger() *slog.Logger {
	if m.session.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m.session.Logger
}
