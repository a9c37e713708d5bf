package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	uistate "github.com/atomicstack/pipemind/internal/ui/state"
)

// keyMap holds the bindings the dispatcher understands. Editing bindings are
// only consulted while the input line is focused.
type keyMap struct {
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	JumpHeader     key.Binding
	JumpNavigation key.Binding
	JumpPreview    key.Binding
	JumpInput      key.Binding
	JumpFooter     key.Binding

	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Back        key.Binding
	SelectFirst key.Binding
	SelectLast  key.Binding

	Submit      key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	CursorStart key.Binding
	CursorEnd   key.Binding
	KillToStart key.Binding
	KillToEnd   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),

		JumpHeader:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "header")),
		JumpNavigation: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "menu")),
		JumpPreview:    key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "preview")),
		JumpInput:      key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "input")),
		JumpFooter:     key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "footer")),

		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		SelectFirst: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		SelectLast:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),

		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:      key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		CursorLeft:  key.NewBinding(key.WithKeys("left", "ctrl+b")),
		CursorRight: key.NewBinding(key.WithKeys("right", "ctrl+f")),
		CursorStart: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("ctrl+a", "start")),
		CursorEnd:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("ctrl+e", "end")),
		KillToStart: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		KillToEnd:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill")),
	}
}

// jumps pairs each jump binding with its region.
func (k keyMap) jumps() []struct {
	binding key.Binding
	area    uistate.FocusArea
} {
	return []struct {
		binding key.Binding
		area    uistate.FocusArea
	}{
		{k.JumpHeader, uistate.FocusHeader},
		{k.JumpNavigation, uistate.FocusNavigation},
		{k.JumpPreview, uistate.FocusPreview},
		{k.JumpInput, uistate.FocusInput},
		{k.JumpFooter, uistate.FocusFooter},
	}
}

// helpFor returns the short help shown in the footer for the focused region.
func (k keyMap) helpFor(focus uistate.FocusArea, quitPending bool) []key.Binding {
	if quitPending {
		return []key.Binding{k.Confirm, k.Cancel}
	}
	switch focus {
	case uistate.FocusInput:
		return []key.Binding{k.Submit, k.CursorStart, k.CursorEnd, k.KillToStart, k.JumpNavigation, k.Quit}
	case uistate.FocusNavigation:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.JumpInput, k.Quit}
	}
	return []key.Binding{k.Left, k.Right, k.JumpNavigation, k.JumpInput, k.Quit}
}

// translateKey turns a key press into state events. The quit binding is
// honoured everywhere; while the confirmation is showing only its answers
// are translated.
func (m *Model) translateKey(msg tea.KeyPressMsg) []uistate.Event {
	if key.Matches(msg, m.keys.Quit) {
		return single(uistate.Key(uistate.EventRequestQuit))
	}
	if m.app.QuitPending() {
		return m.promptEvents(msg)
	}
	for _, jump := range m.keys.jumps() {
		if key.Matches(msg, jump.binding) {
			return single(uistate.Jump(jump.area))
		}
	}
	if m.app.HasFocus(uistate.FocusInput) {
		return m.inputEvents(msg)
	}
	return m.navigationEvents(msg)
}

func single(ev uistate.Event) []uistate.Event {
	return []uistate.Event{ev}
}
