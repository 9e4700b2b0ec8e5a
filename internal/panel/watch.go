package panel

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchStartedMsg carries a watcher that is now observing the root.
type watchStartedMsg struct {
	watcher *fsnotify.Watcher
}

// rootChangedMsg means something under the root was created, removed or renamed.
type rootChangedMsg struct {
	name string
}

// watchErrMsg reports a watcher failure. The panel keeps working without it.
type watchErrMsg struct {
	err error
}

func startWatch(root string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return watchErrMsg{err: err}
		}
		if err := w.Add(root); err != nil {
			_ = w.Close()
			return watchErrMsg{err: err}
		}
		return watchStartedMsg{watcher: w}
	}
}

// waitForChange blocks until the next relevant event on w.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
					return rootChangedMsg{name: ev.Name}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
