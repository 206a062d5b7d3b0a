package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit       key.Binding
	Up         key.Binding
	Down       key.Binding
	NextVideo  key.Binding // page down — snap to the next video
	PrevVideo  key.Binding // page up — snap to the previous video
	TogglePlay key.Binding // space — play/pause the active video
	Like       key.Binding
	Comment    key.Binding
	Share      key.Binding
	Refresh    key.Binding
	Upload     key.Binding
	Profile    key.Binding
	ForYou     key.Binding // AI recommendation dialog
	Back       key.Binding
	Submit     key.Binding
	NextField  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextVideo: key.NewBinding(
			key.WithKeys("pgdown", "J"),
			key.WithHelp("J", "next video"),
		),
		PrevVideo: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("K", "prev video"),
		),
		TogglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comments"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		ForYou: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "for you"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}
