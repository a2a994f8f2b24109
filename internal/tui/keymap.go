package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	quit  key.Binding
	reset key.Binding
}

func newKeymap() keymap {
	return keymap{
		quit:  key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
		reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "end gesture")),
	}
}
