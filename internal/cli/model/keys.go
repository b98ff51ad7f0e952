package model

import "github.com/charmbracelet/bubbles/key"

// browserKeyMap defines keybindings for the browser app.
type browserKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Address  key.Binding
	Blur     key.Binding
	Refresh  key.Binding
	Back     key.Binding
	Forward  key.Binding
	Home     key.Binding
	Star     key.Binding
	AddTab   key.Binding
	CloseTab key.Binding
	Projects key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Address, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Open},
		{k.Address, k.Blur, k.Refresh},
		{k.Back, k.Forward, k.Home, k.Star},
		{k.AddTab, k.CloseTab, k.Projects},
		{k.Help, k.Quit},
	}
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous link"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next link"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous grid"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next grid"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open link"),
		),
		Address: key.NewBinding(
			key.WithKeys("/", "ctrl+l"),
			key.WithHelp("/", "edit address"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "leave address"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward"),
		),
		Home: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "home"),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star"),
		),
		AddTab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "close tab"),
		),
		Projects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "view projects"),
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

// editorKeyMap defines keybindings for the editor view.
type editorKeyMap struct {
	Launch key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Launch, k.Quit}}
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Launch: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open in browser"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
