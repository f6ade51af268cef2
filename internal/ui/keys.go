package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings of the slideshow
type keyMap struct {
	Previous key.Binding
	Next     key.Binding
	Jump     key.Binding
	Toggle   key.Binding
	Open     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to slide"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open slide"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
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

// navigation returns the bindings that move the slideshow
func (k keyMap) navigation() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Jump, k.Toggle}
}

// setNavigationEnabled turns the navigation bindings on or off
func (k *keyMap) setNavigationEnabled(on bool) {
	k.Previous.SetEnabled(on)
	k.Next.SetEnabled(on)
	k.Jump.SetEnabled(on)
	k.Toggle.SetEnabled(on)
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Toggle, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.navigation(),
		{k.Open, k.Reload, k.Help, k.Quit},
	}
}
