package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uistate "github.com/atomicstack/pipemind/internal/ui/state"
)

const (
	quitPromptTitle = "Confirm Exit"
	quitPromptText  = "Quit Pipemind? (y/n)"
)

// promptEvents translates the answers to the quit confirmation. Anything
// else is dropped.
func (m *Model) promptEvents(msg tea.KeyPressMsg) []uistate.Event {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return single(uistate.Key(uistate.EventConfirmQuit))
	case key.Matches(msg, m.keys.Cancel):
		return single(uistate.Key(uistate.EventCancelQuit))
	}
	return nil
}

// viewQuitPrompt centres the confirmation dialog over the screen.
func (m *Model) viewQuitPrompt(width, height int) string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.TitleStyle(true).Render(quitPromptTitle),
		"",
		styles.ModalText.Render(quitPromptText),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.Modal.Render(body))
}
