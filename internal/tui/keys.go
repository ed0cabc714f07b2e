package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	buildInfo  key.Binding
	reveal     key.Binding
	regenerate key.Binding
	copy       key.Binding
	longer     key.Binding
	shorter    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	reveal:     key.NewBinding(key.WithKeys("ctrl+r")),
	regenerate: key.NewBinding(key.WithKeys("r", " ")),
	copy:       key.NewBinding(key.WithKeys("c")),
	longer:     key.NewBinding(key.WithKeys("+", "=", "right", "l")),
	shorter:    key.NewBinding(key.WithKeys("-", "left", "h")),
}
