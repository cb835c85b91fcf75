package builder

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPanel key.Binding
	PrevPanel key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Edit      key.Binding
	Cancel    key.Binding

	AddRow    key.Binding
	RemoveRow key.Binding
	Commit    key.Binding
	Reset     key.Binding
	Bulk      key.Binding
	Import    key.Binding
	Apply     key.Binding

	ToggleCustom key.Binding

	ExportPNG key.Binding
	ExportCSV key.Binding

	TogglePanel key.Binding

	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		AddRow:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		RemoveRow: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove row")),
		Commit:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update chart")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset data")),
		Bulk:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bulk edit")),
		Import:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import csv")),
		Apply:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply csv")),

		ToggleCustom: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom colours")),

		ExportPNG: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "save png")),
		ExportCSV: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save csv")),

		TogglePanel: key.NewBinding(key.WithKeys("!", "@", "#"), key.WithHelp("!/@/#", "show/hide data, settings, style")),

		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPanel, k.Edit, k.Commit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPanel, k.PrevPanel, k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Cancel, k.AddRow, k.RemoveRow, k.Commit, k.Reset},
		{k.Bulk, k.Import, k.Apply, k.ToggleCustom},
		{k.ExportPNG, k.ExportCSV, k.TogglePanel, k.Help, k.Quit},
	}
}
