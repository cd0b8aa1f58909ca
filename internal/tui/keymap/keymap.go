// Package keymap defines the key bindings of the catalog browser.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Keymap is the set of bindings the catalog view responds to. It satisfies
// help.KeyMap so the help bar can be rendered from it.
type Keymap struct {
	NextCategory  key.Binding
	PrevCategory  key.Binding
	CursorLeft    key.Binding
	CursorRight   key.Binding
	ApplyCategory key.Binding
	ToggleSearch  key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding
}

// Default returns the default key bindings.
func Default() Keymap {
	return Keymap{
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move"),
		),
		ApplyCategory: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select category"),
		),
		ToggleSearch: key.NewBinding(
			key.WithKeys("esc", "/"),
			key.WithHelp("esc", "toggle search"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// SearchFocused returns a copy of k adjusted for while the search input
// has focus: single-letter bindings are disabled so they type into the
// query instead.
func (k Keymap) SearchFocused() Keymap {
	k.CursorLeft.SetEnabled(false)
	k.CursorRight.SetEnabled(false)
	k.ScrollUp = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up"))
	k.ScrollDown = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down"))
	k.ApplyCategory = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select category"))
	k.ToggleSearch = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search"))
	k.Quit.SetEnabled(false)
	return k
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.ApplyCategory, k.ToggleSearch, k.ScrollDown, k.ForceQuit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCategory, k.PrevCategory, k.CursorLeft, k.CursorRight, k.ApplyCategory},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.ToggleSearch, k.Quit, k.ForceQuit},
	}
}
