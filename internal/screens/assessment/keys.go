package assessment

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Pick   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "move")),
		Choose: key.NewBinding(key.WithKeys("space"), key.WithHelp("space/1-9", "choose")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
		Next:   key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "next")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous")),
		Quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
	}
}
