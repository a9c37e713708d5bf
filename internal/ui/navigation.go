package ui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/pipemind/internal/format/table"
	uistate "github.com/atomicstack/pipemind/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

const (
	itemIndicator         = "  "
	selectedItemIndicator = "› "
	submenuMarker         = "▸"
)

// navigationEvents translates keys while a non-input region is focused.
func (m *Model) navigationEvents(msg tea.KeyPressMsg) []uistate.Event {
	k := m.keys
	switch {
	case key.Matches(msg, k.Left):
		return single(uistate.Move(uistate.Left))
	case key.Matches(msg, k.Right):
		return single(uistate.Move(uistate.Right))
	case key.Matches(msg, k.Up):
		return single(uistate.Move(uistate.Up))
	case key.Matches(msg, k.Down):
		return single(uistate.Move(uistate.Down))
	case key.Matches(msg, k.Enter):
		return single(uistate.Key(uistate.EventEnterSubmenu))
	case key.Matches(msg, k.Back):
		return single(uistate.Key(uistate.EventExitSubmenu))
	case key.Matches(msg, k.SelectFirst):
		return single(uistate.Key(uistate.EventSelectFirst))
	case key.Matches(msg, k.SelectLast):
		return single(uistate.Key(uistate.EventSelectLast))
	}
	return nil
}

// viewNavigationItems renders the active level, keeping the selection inside
// a window of height rows. Entries that open a submenu carry a marker column.
func (m *Model) viewNavigationItems(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	items := m.app.Navigation().CurrentItems()
	selected := m.app.Selection()
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, len(items))
	if start >= end {
		return nil
	}
	labelWidth := width - ansi.StringWidth(selectedItemIndicator)
	visible := items[start:end]
	markerWidth := 0
	for _, item := range visible {
		if item.HasChildren() {
			markerWidth = ansi.StringWidth(table.Separator + submenuMarker)
			break
		}
	}
	rows := make([][]string, len(visible))
	for i, item := range visible {
		label := ansi.Truncate(item.Label, max(labelWidth-markerWidth, 0), "…")
		rows[i] = []string{label}
		if markerWidth > 0 {
			marker := ""
			if item.HasChildren() {
				marker = submenuMarker
			}
			rows[i] = append(rows[i], marker)
		}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	focused := m.app.HasFocus(uistate.FocusNavigation)
	lines := make([]string, 0, len(formatted))
	for i, text := range formatted {
		if start+i == selected {
			pad := strings.Repeat(" ", max(labelWidth-ansi.StringWidth(text), 0))
			itemStyle := styles.Item
			if focused {
				itemStyle = styles.SelectedItem
			}
			lines = append(lines, styles.SelectedItemIndicator.Render(selectedItemIndicator)+itemStyle.Render(text+pad))
			continue
		}
		lines = append(lines, styles.ItemIndicator.Render(itemIndicator)+styles.Item.Render(text))
	}
	return lines
}
