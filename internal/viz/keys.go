package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle   key.Binding
	Start    key.Binding
	Pause    key.Binding
	ResetOne key.Binding
	ResetAll key.Binding
	StepBack key.Binding
	StepFwd  key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Preset   key.Binding
	Custom   key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause all"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start selected"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause selected"),
	),
	ResetOne: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset selected"),
	),
	ResetAll: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset all"),
	),
	StepBack: key.NewBinding(
		key.WithKeys("[", "left", "h"),
		key.WithHelp("[/←", "step back"),
	),
	StepFwd: key.NewBinding(
		key.WithKeys("]", "right", "l"),
		key.WithHelp("]/→", "step forward"),
	),
	Faster: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "faster"),
	),
	Slower: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "slower"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab", "next card"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("shift+tab", "previous card"),
	),
	Preset: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next preset"),
	),
	Custom: key.NewBinding(
		key.WithKeys("e", "/"),
		key.WithHelp("e", "enter array"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next theme"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ResetAll, k.Next, k.Preset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.ResetAll, k.Faster, k.Slower},
		{k.Start, k.Pause, k.ResetOne, k.StepBack, k.StepFwd},
		{k.Next, k.Prev, k.Preset, k.Custom},
		{k.Theme, k.Help, k.Quit},
	}
}
