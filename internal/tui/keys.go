package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the app-level key bindings.
type KeyMap struct {
	Dashboard key.Binding
	Create    key.Binding
	NextView  key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Close     key.Binding
	New       key.Binding
	Reload    key.Binding
	Copy      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		Create:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "create")),
		NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// hintPairs flattens bindings into renderHintBar arguments.
func hintPairs(bindings ...key.Binding) []string {
	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return pairs
}
