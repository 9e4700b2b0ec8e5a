package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the project panel
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Rename   key.Binding
	Remove   key.Binding
	Defaults key.Binding
	Create   key.Binding
	Sync     key.Binding
	Save     key.Binding
	OpenRef  key.Binding
	CopyPath key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Create, k.Sync, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Rename, k.Remove, k.Defaults},
		{k.Create, k.Sync, k.Save, k.OpenRef, k.CopyPath},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the panel's default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add folder"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "-", "delete"),
			key.WithHelp("x", "remove"),
		),
		Defaults: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "default folders"),
		),
		Create: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "create project"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync folders"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save file"),
		),
		OpenRef: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open reference"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "copy path"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
