package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digit      key.Binding
	Decimal    key.Binding
	Operator   key.Binding
	Equals     key.Binding
	AllClear   key.Binding
	ClearEntry key.Binding
	Negate     key.Binding
	Tape       key.Binding
	Command    key.Binding
	Quit       key.Binding

	PromptRun    key.Binding
	PromptCancel key.Binding
	PromptErase  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digit:      key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digit")),
		Decimal:    key.NewBinding(key.WithKeys(".", ","), key.WithHelp(".", "point")),
		Operator:   key.NewBinding(key.WithKeys("+", "-", "*", "x", "/"), key.WithHelp("+-*/", "operator")),
		Equals:     key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
		AllClear:   key.NewBinding(key.WithKeys("esc", "a"), key.WithHelp("esc", "all clear")),
		ClearEntry: key.NewBinding(key.WithKeys("backspace", "c"), key.WithHelp("bksp", "clear")),
		Negate:     key.NewBinding(key.WithKeys("n", "_", "~"), key.WithHelp("n", "±")),
		Tape:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tape")),
		Command:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		PromptRun:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		PromptCancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		PromptErase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "erase")),
	}
}

func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Digit, k.Operator, k.Equals, k.Negate, k.ClearEntry, k.AllClear, k.Tape, k.Command, k.Quit}
}

func (k keyMap) promptBindings() []key.Binding {
	return []key.Binding{k.PromptRun, k.PromptCancel, k.PromptErase}
}

// button maps a pressed key to the keypad label it lights up.
func button(pressed string) string {
	switch pressed {
	case ",":
		return "."
	case "*", "x":
		return "×"
	case "/":
		return "÷"
	case "enter":
		return "="
	case "esc", "a":
		return "AC"
	case "backspace", "c":
		return "C"
	case "n", "_", "~":
		return "±"
	}
	return pressed
}
