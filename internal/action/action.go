// Package action is the table of named user actions shared by the CLI and
// the interactive panel. Every action runs to completion and reports back a
// Status; failures never escape as panics or raw errors.
package action

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/kennyg/atelier/internal/config"
	"github.com/kennyg/atelier/internal/document"
	"github.com/kennyg/atelier/internal/launch"
	"github.com/kennyg/atelier/internal/layout"
	"github.com/kennyg/atelier/internal/project"
)

// Severity of a status message.
type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "info"
}

// Status is what an action reports back to the user.
type Status struct {
	Action   string
	Severity Severity
	Message  string
	Err      error
}

// OK reports whether the action succeeded.
func (s Status) OK() bool {
	return s.Severity != Error
}

// Session carries everything an action may read or change.
type Session struct {
	Project  *project.ProjectConfig
	Prefs    *config.Preferences
	Saver    document.Saver
	Launcher launch.Launcher
	Sync     layout.SyncOptions
	Logger   *slog.Logger

	// StoredPrefs is Prefs as read from the preferences file, without
	// environment or flag overrides. Nil means Prefs is what gets saved.
	StoredPrefs *config.Preferences

	// Confirm is asked before a sync that deletes anything. Nil refuses.
	Confirm func(layout.Plan) bool

	// LastPlan and LastResult are filled by sync-folders for display.
	LastPlan   layout.Plan
	LastResult layout.Result

	dirty      bool
	prefsDirty bool
}

// NewSession returns a session over p and prefs with a discard logger.
func NewSession(p *project.ProjectConfig, prefs *config.Preferences) *Session {
	if p == nil {
		p = project.New()
	}
	if prefs == nil {
		prefs = config.DefaultPreferences()
	}
	return &Session{
		Project:  p,
		Prefs:    prefs,
		Launcher: launch.System{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Dirty reports whether the project changed since the session was created.
func (s *Session) Dirty() bool { return s.dirty }

// PrefsDirty reports whether preferences changed.
func (s *Session) PrefsDirty() bool { return s.prefsDirty }

// PrefsToSave returns the preferences to write back to the preferences file.
func (s *Session) PrefsToSave() *config.Preferences {
	if s.StoredPrefs != nil {
		return s.StoredPrefs
	}
	return s.Prefs
}

// MarkDirty flags the project as changed.
func (s *Session) MarkDirty() { s.dirty = true }

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

// Handler runs one action and returns an info message or an error.
type Handler func(s *Session, args []string) (string, error)

// Definition describes a registered action.
type Definition struct {
	Name        string
	Description string
	handler     Handler
}

// Registry maps action names to handlers.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds or replaces an action.
func (r *Registry) Register(name, description string, h Handler) {
	r.defs[name] = Definition{Name: name, Description: description, handler: h}
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for n := range r.defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named action against s and converts the outcome into a Status.
func (r *Registry) Dispatch(name string, s *Session, args ...string) (st Status) {
	st.Action = name

	def, ok := r.defs[name]
	if !ok {
		st.Severity = Error
		st.Err = fmt.Errorf("unknown action %q", name)
		st.Message = st.Err.Error()
		return st
	}

	log := s.logger().With("action", name)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("action panicked", "panic", rec)
			st.Severity = Error
			st.Err = fmt.Errorf("internal error: %v", rec)
			st.Message = st.Err.Error()
		}
	}()

	log.Debug("dispatching", "args", args)
	msg, err := def.handler(s, args)
	if err != nil {
		log.Debug("action failed", "error", err)
		st.Severity = Error
		st.Err = err
		st.Message = Describe(err)
		return st
	}

	st.Severity = Info
	st.Message = msg
	return st
}
