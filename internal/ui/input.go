package ui

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/pipemind/internal/logging/events"
	uistate "github.com/atomicstack/pipemind/internal/ui/state"
	"github.com/mattn/go-runewidth"
)

const inputPlaceholder = "Press F4 to type, /help for commands"

// inputEvents translates keys for the focused input line. Printable text is
// inserted rune by rune; modified keys only reach the editing bindings.
func (m *Model) inputEvents(msg tea.KeyPressMsg) []uistate.Event {
	k := m.keys
	switch {
	case key.Matches(msg, k.Submit):
		return single(uistate.Key(uistate.EventSubmit))
	case key.Matches(msg, k.Backspace):
		return single(uistate.Key(uistate.EventBackspace))
	case key.Matches(msg, k.Delete):
		return single(uistate.Key(uistate.EventDelete))
	case key.Matches(msg, k.CursorLeft):
		return single(uistate.Key(uistate.EventCursorLeft))
	case key.Matches(msg, k.CursorRight):
		return single(uistate.Key(uistate.EventCursorRight))
	case key.Matches(msg, k.CursorStart):
		return single(uistate.Key(uistate.EventCursorStart))
	case key.Matches(msg, k.CursorEnd):
		return single(uistate.Key(uistate.EventCursorEnd))
	case key.Matches(msg, k.KillToStart):
		return single(uistate.Key(uistate.EventKillToStart))
	case key.Matches(msg, k.KillToEnd):
		return single(uistate.Key(uistate.EventKillToEnd))
	}
	if msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		return nil
	}
	return textEvents(msg.Text)
}

func textEvents(text string) []uistate.Event {
	if text == "" {
		return nil
	}
	evs := make([]uistate.Event, 0, len(text))
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		evs = append(evs, uistate.Rune(r))
	}
	return evs
}

// handlePasteMsg inserts bracketed-paste content into the focused input line.
func (m *Model) handlePasteMsg(msg tea.Msg) tea.Cmd {
	paste, ok := msg.(tea.PasteMsg)
	if !ok {
		return nil
	}
	if m.app.QuitPending() || !m.app.HasFocus(uistate.FocusInput) {
		return nil
	}
	text := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, paste.Content)
	if m.app.InsertText(text) {
		events.Input.Edit("paste", m.app.Input(), m.app.InputCursor(), m.app.CommandMode())
	}
	return nil
}

// inputTitle names the input panel after the current mode.
func (m *Model) inputTitle() string {
	if m.app.CommandMode() {
		return "Command"
	}
	return "Input"
}

// viewInputLine renders the buffer so the cursor stays visible within width
// cells. The cursor cell is drawn in reverse video while the line is focused.
func (m *Model) viewInputLine(width int) string {
	if width <= 0 {
		return ""
	}
	focused := m.app.HasFocus(uistate.FocusInput)
	text := m.app.Input()
	if text == "" && !focused {
		return styles.InputPlaceholder.Render(runewidth.Truncate(inputPlaceholder, width, ""))
	}
	textStyle := styles.Input
	if m.app.CommandMode() {
		textStyle = styles.CommandText
	}
	if !focused {
		return textStyle.Render(runewidth.Truncate(text, width, "…"))
	}

	before, under, after := visibleInput([]rune(text), m.app.InputCursor(), width)
	var b strings.Builder
	b.WriteString(textStyle.Render(before))
	b.WriteString(styles.Cursor.Render(under))
	if after != "" {
		b.WriteString(textStyle.Render(after))
	}
	return b.String()
}

// visibleInput splits runes around cursor, dropping leading runes until the
// text before the cursor and the cursor cell fit in width.
func visibleInput(runes []rune, cursor, width int) (before, under, after string) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	under = " "
	if cursor < len(runes) {
		under = string(runes[cursor])
	}
	underWidth := runewidth.StringWidth(under)
	start := 0
	for start < cursor && runewidth.StringWidth(string(runes[start:cursor]))+underWidth > width {
		start++
	}
	before = string(runes[start:cursor])
	remaining := width - runewidth.StringWidth(before) - underWidth
	if cursor+1 < len(runes) && remaining > 0 {
		after = runewidth.Truncate(string(runes[cursor+1:]), remaining, "")
	}
	return before, under, after
}
