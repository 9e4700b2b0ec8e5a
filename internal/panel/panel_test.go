package panel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyg/atelier/internal/action"
	"github.com/kennyg/atelier/internal/project"
	"github.com/kennyg/atelier/internal/ui"
)

func newTestModel(t *testing.T, names ...string) (Model, string) {
	t.Helper()

	prev := ui.IsTTY
	ui.IsTTY = false
	t.Cleanup(func() { ui.IsTTY = prev })

	root := t.TempDir()
	p := project.New()
	p.RootDirectory = root
	for _, n := range names {
		p.AddFolder(n)
	}
	s := action.NewSession(p, nil)
	return New(s, action.Default(), Options{}), root
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func TestPanel_DefaultsKey(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "D")

	assert.Equal(t, []string{"Blender", "Photoshop", "Painter", "Geo", "Textures", "References", "Renders"},
		m.Session().Project.Names())
	assert.True(t, m.Status().OK())
}

func TestPanel_AddFolderPrompt(t *testing.T) {
	m, _ := newTestModel(t, "Blender")

	m = press(t, m, "a")
	require.Equal(t, modeInput, m.mode)

	m = typeText(t, m, "Renders")
	m = press(t, m, "enter")

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []string{"Blender", "Renders"}, m.Session().Project.Names())
	assert.Equal(t, 1, m.cursor)
}

func TestPanel_AddFolderCancelled(t *testing.T) {
	m, _ := newTestModel(t, "Blender")

	m = press(t, m, "a")
	m = typeText(t, m, "Renders")
	m = press(t, m, "esc")

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []string{"Blender"}, m.Session().Project.Names())
}

func TestPanel_RenameAndRemove(t *testing.T) {
	m, _ := newTestModel(t, "Blender", "Geo", "Renders")

	m = press(t, m, "up")
	m = press(t, m, "r")
	m.input.SetValue("")
	m = typeText(t, m, "Geometry")
	m = press(t, m, "enter")
	assert.Equal(t, []string{"Blender", "Geometry", "Renders"}, m.Session().Project.Names())

	m = press(t, m, "x")
	assert.Equal(t, []string{"Blender", "Renders"}, m.Session().Project.Names())
	assert.Equal(t, 1, m.cursor)
}

func TestPanel_NavigationSelects(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C")
	require.Equal(t, 2, m.cursor)

	m = press(t, m, "k", "k", "k")
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.Session().Project.ActiveIndex)

	m = press(t, m, "j")
	assert.Equal(t, 1, m.Session().Project.ActiveIndex)
}

func TestPanel_CreateMarksFoldersPresent(t *testing.T) {
	m, root := newTestModel(t, "Blender", "Textures")
	assert.False(t, m.onDisk["Blender"])

	m = press(t, m, "c")

	require.True(t, m.Status().OK(), m.Status().Message)
	assert.DirExists(t, filepath.Join(root, "Blender"))
	assert.True(t, m.onDisk["Blender"])
	assert.True(t, m.onDisk["Textures"])
	assert.Contains(t, m.View(), "[OK]")
}

func TestPanel_SyncAsksBeforeDeleting(t *testing.T) {
	m, root := newTestModel(t, "Blender", "Renders")
	require.NoError(t, os.Mkdir(filepath.Join(root, "Textures"), 0o755))
	m.refresh()
	assert.Equal(t, []string{"Textures"}, m.extras)

	m = press(t, m, "s")
	require.Equal(t, modeConfirmSync, m.mode)
	assert.Contains(t, m.View(), "Proceed?")

	m = press(t, m, "n")
	assert.Equal(t, modeList, m.mode)
	assert.DirExists(t, filepath.Join(root, "Textures"))
	assert.NoDirExists(t, filepath.Join(root, "Blender"))

	m = press(t, m, "s", "y")
	require.True(t, m.Status().OK(), m.Status().Message)
	assert.NoDirExists(t, filepath.Join(root, "Textures"))
	assert.DirExists(t, filepath.Join(root, "Blender"))
	assert.DirExists(t, filepath.Join(root, "Renders"))
	assert.Empty(t, m.extras)
	assert.Nil(t, m.Session().Confirm)
}

func TestPanel_SyncReasksWhenRootChanges(t *testing.T) {
	m, root := newTestModel(t, "Blender")
	require.NoError(t, os.Mkdir(filepath.Join(root, "Old"), 0o755))
	m.refresh()

	m = press(t, m, "s")
	require.Equal(t, modeConfirmSync, m.mode)
	require.Equal(t, []string{"Old"}, m.pending.Delete)

	delivery := filepath.Join(root, "Client_Delivery")
	require.NoError(t, os.Mkdir(delivery, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(delivery, "final.exr"), []byte("pixels"), 0o644))

	m = press(t, m, "y")
	assert.Equal(t, modeConfirmSync, m.mode)
	assert.Equal(t, []string{"Client_Delivery", "Old"}, m.pending.Delete)
	assert.FileExists(t, filepath.Join(delivery, "final.exr"))
	assert.DirExists(t, filepath.Join(root, "Old"))
	assert.NoDirExists(t, filepath.Join(root, "Blender"))
	assert.Contains(t, m.View(), "Client_Delivery")

	m = press(t, m, "y")
	require.True(t, m.Status().OK(), m.Status().Message)
	assert.Equal(t, modeList, m.mode)
	assert.NoDirExists(t, delivery)
	assert.NoDirExists(t, filepath.Join(root, "Old"))
	assert.DirExists(t, filepath.Join(root, "Blender"))
}

func TestPanel_WatchErrorKeepsWatching(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(watchErrMsg{err: errors.New("queue overflow")})
	assert.Nil(t, cmd)

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	m.watcher = w

	_, cmd = m.Update(watchErrMsg{err: errors.New("queue overflow")})
	assert.NotNil(t, cmd)
}

func TestPanel_SyncWithoutDeletesRunsImmediately(t *testing.T) {
	m, root := newTestModel(t, "Blender")

	m = press(t, m, "s")

	assert.Equal(t, modeList, m.mode)
	assert.DirExists(t, filepath.Join(root, "Blender"))
}

func TestPanel_SyncInvalidRoot(t *testing.T) {
	m, root := newTestModel(t, "Blender")
	m.Session().Project.RootDirectory = filepath.Join(root, "missing")

	m = press(t, m, "s")

	assert.False(t, m.Status().OK())
	assert.Equal(t, "Directory does not exist.", m.Status().Message)
}

func TestPanel_CopyPath(t *testing.T) {
	m, root := newTestModel(t, "Blender")
	var copied string
	m.opts.CopyToClipboard = func(s string) error {
		copied = s
		return nil
	}

	m = press(t, m, "p")

	assert.Equal(t, filepath.Join(root, "Blender"), copied)
	assert.True(t, m.Status().OK())
}

func TestPanel_PersistAfterChange(t *testing.T) {
	m, _ := newTestModel(t)
	calls := 0
	m.opts.Persist = func(*action.Session) error {
		calls++
		return nil
	}

	m = press(t, m, "D")

	assert.Equal(t, 1, calls)
}

func TestPanel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPanel_ViewEmpty(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()

	assert.Contains(t, out, "ATELIER")
	assert.Contains(t, out, "(no folders)")
}
