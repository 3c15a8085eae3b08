package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application
type KeyMap struct {
	Submit     key.Binding
	Ticket     key.Binding
	VoteLeft   key.Binding
	VoteRight  key.Binding
	Copy       key.Binding
	NewRound   key.Binding
	CycleTheme key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default keybindings. Setup has a focused text
// input, so its extra bindings are ctrl chords to stay typeable.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add / start"),
		),
		Ticket: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "ticket item"),
		),
		VoteLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "vote left"),
		),
		VoteRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "vote right"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy results"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "new round"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
