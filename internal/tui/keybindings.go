package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the browsing-view keybindings.
type keyMap struct {
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Reload    key.Binding
	Quit      key.Binding
	Checklist key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new order"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit order"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete order"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Checklist: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "inspection checklist"),
		),
	}
}
