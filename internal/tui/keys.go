package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap 定义全部按键绑定
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Search   key.Binding
	NextTab  key.Binding
	Users    key.Binding
	Billing  key.Binding
	LoadMore key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Confirm  key.Binding
	Cycle    key.Binding
	Theme    key.Binding
	Reset    key.Binding
	Help     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field/screen"),
		),
		Users: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "users"),
		),
		Billing: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "billing"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m", "pgdown"),
			key.WithHelp("m", "load more"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cycle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "change status"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset filters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// helpKeys adapts keyMap plus the screen's selector keys to help.KeyMap.
type helpKeys struct {
	keys      keyMap
	selectors []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Search, h.keys.Enter, h.keys.LoadMore, h.keys.NextTab, h.keys.Theme, h.keys.Help, h.keys.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Up, h.keys.Down, h.keys.Enter, h.keys.LoadMore},
		{h.keys.Search, h.keys.Back, h.keys.Reset},
		append([]key.Binding(nil), h.selectors...),
		{h.keys.Edit, h.keys.Delete, h.keys.Confirm, h.keys.Cycle},
		{h.keys.Users, h.keys.Billing, h.keys.NextTab, h.keys.Theme, h.keys.Quit},
	}
}
