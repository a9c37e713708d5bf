// Package testutil builds the key messages tests feed to the console.
package testutil

import tea "charm.land/bubbletea/v2"

// Key returns a press of a special key such as tea.KeyF4 or tea.KeyEnter.
func Key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Rune returns a press of a printable key carrying its text.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Ctrl returns r pressed with the control modifier.
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// Alt returns r pressed with the alt modifier.
func Alt(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModAlt}
}

// Typed returns one key press per rune of text.
func Typed(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, Rune(r))
	}
	return msgs
}
