package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the HUD.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit      key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	Panel1    key.Binding
	Panel2    key.Binding
	Panel3    key.Binding
	Panel4    key.Binding
	Panel5    key.Binding
	Panel6    key.Binding
	Camera    key.Binding
	Help      key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.NextPanel, k.Camera, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel},
		{k.Panel1, k.Panel2, k.Panel3, k.Panel4, k.Panel5, k.Panel6},
		{k.Camera, k.Help, k.Quit},
	}
}

// KeyHelp returns every binding in display order, for surfaces outside
// the TUI that document the keymap.
func KeyHelp() []key.Binding {
	var all []key.Binding
	for _, group := range keys.FullHelp() {
		all = append(all, group...)
	}
	return all
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextPanel: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next panel")),
	PrevPanel: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev panel")),
	Panel1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "profiles")),
	Panel2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "camera")),
	Panel3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "rings")),
	Panel4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "storage")),
	Panel5:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "network")),
	Panel6:    key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "clock")),
	Camera:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle camera")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
