package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the widget's key bindings.
type keyMap struct {
	Toggle    key.Binding
	Reset     key.Binding
	Work      key.Binding
	Break     key.Binding
	LongBreak key.Binding
	NextTab   key.Binding
	Stats     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Work:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "work")),
		Break:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "break")),
		LongBreak: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "long break")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next session")),
		Stats:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weekly stats")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.NextTab, k.Stats, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Stats, k.Quit},
		{k.Work, k.Break, k.LongBreak, k.NextTab},
	}
}
