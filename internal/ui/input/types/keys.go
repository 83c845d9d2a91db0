package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shared by the input modes and the help view
type KeyMap struct {
	Search      key.Binding
	ToggleRegex key.Binding
	FocusList   key.Binding
	FocusQuery  key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Open        key.Binding
	Copy        key.Binding
	OpenFolder  key.Binding
	Preview     key.Binding
	Clear       key.Binding
	Save        key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		ToggleRegex: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "toggle regex")),
		FocusList:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "results")),
		FocusQuery:  key.NewBinding(key.WithKeys("/", "tab", "i"), key.WithHelp("/", "edit query")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last")),
		Open:        key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "open")),
		Copy:        key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy path")),
		OpenFolder:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "open folder")),
		Preview:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "preview")),
		Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Copy, k.OpenFolder, k.Save, k.Clear, k.FocusQuery, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.ToggleRegex, k.FocusQuery, k.FocusList, k.Cancel},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Open, k.Copy, k.OpenFolder, k.Preview},
		{k.Clear, k.Save, k.Help, k.Quit},
	}
}

// QueryHelp is the short help shown while the search entry has focus
func (k KeyMap) QueryHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleRegex, k.FocusList, k.Cancel, k.ForceQuit}
}
