package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uistate "github.com/atomicstack/pipemind/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	headerHeight      = 3
	footerHeight      = 3
	inputHeight       = 3
	navigationWidth   = 20
	minPreviewWidth   = 20
	minPreviewHeight  = 3
	outputPlaceholder = "No output yet"
)

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}

// Render draws the whole screen as a string: header, navigation beside the
// preview and input, footer, and the quit confirmation on top when pending.
func (m *Model) Render() string {
	width, height := m.size()
	if m.app.QuitPending() {
		return m.viewQuitPrompt(width, height)
	}

	bodyHeight := height - headerHeight
	if m.showFooter {
		bodyHeight -= footerHeight
	}
	bodyHeight = max(bodyHeight, inputHeight+minPreviewHeight)

	navWidth := min(navigationWidth, max(width-minPreviewWidth, 1))
	contentWidth := max(width-navWidth, minPreviewWidth)

	header := m.viewHeader(width)
	nav := m.panel(m.app.Navigation().Title(), uistate.FocusNavigation, navWidth, bodyHeight, m.viewNavigationItems)
	preview := m.panel(m.previewTitle(), uistate.FocusPreview, contentWidth, bodyHeight-inputHeight, m.viewPreviewBody)
	input := m.viewInput(contentWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top, nav, lipgloss.JoinVertical(lipgloss.Left, preview, input))

	sections := []string{header, body}
	if m.showFooter {
		sections = append(sections, m.viewFooter(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// panel draws a bordered region whose first line is its title. The body
// callback receives the space left inside the border.
func (m *Model) panel(title string, area uistate.FocusArea, width, height int, body func(width, height int) []string) string {
	focused := m.app.HasFocus(area)
	style := styles.PanelStyle(focused).Width(width).Height(height)
	innerWidth := max(width-style.GetHorizontalFrameSize(), 0)
	innerHeight := max(height-style.GetVerticalFrameSize(), 0)
	lines := []string{styles.TitleStyle(focused).Render(ansi.Truncate(title, innerWidth, "…"))}
	if innerHeight > 1 {
		lines = append(lines, body(innerWidth, innerHeight-1)...)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// row draws a bordered single-line region with an inline label.
func (m *Model) row(label string, area uistate.FocusArea, width int, content func(width int) string) string {
	focused := m.app.HasFocus(area)
	style := styles.PanelStyle(focused).Width(width).Height(inputHeight)
	innerWidth := max(width-style.GetHorizontalFrameSize(), 0)
	prefix := ""
	if label != "" {
		prefix = styles.TitleStyle(focused).Render(label) + " "
	}
	remaining := max(innerWidth-ansi.StringWidth(prefix), 0)
	return style.Render(ansi.Truncate(prefix+content(remaining), innerWidth, ""))
}

func (m *Model) viewHeader(width int) string {
	return m.row("", uistate.FocusHeader, width, func(w int) string {
		return styles.Header.Render(ansi.Truncate(m.title, w, "…"))
	})
}

func (m *Model) viewInput(width int) string {
	return m.row(m.inputTitle()+" ›", uistate.FocusInput, width, m.viewInputLine)
}

// viewFooter shows the latest output (or command suggestions while typing a
// command) followed by the key help for the focused region.
func (m *Model) viewFooter(width int) string {
	return m.row("", uistate.FocusFooter, width, func(w int) string {
		status := m.footerStatus()
		helpView := m.help.ShortHelpView(m.keys.helpFor(m.app.Focus(), m.app.QuitPending()))
		gap := w - ansi.StringWidth(status) - ansi.StringWidth(helpView)
		if gap < 2 {
			return status
		}
		return status + strings.Repeat(" ", gap) + helpView
	})
}

func (m *Model) footerStatus() string {
	if m.app.CommandMode() {
		if suggestions := m.app.Suggestions(); len(suggestions) > 0 {
			parts := make([]string, len(suggestions))
			for i, name := range suggestions {
				parts[i] = "/" + name
			}
			return styles.Suggestion.Render(strings.Join(parts, " "))
		}
	}
	if last, ok := m.app.LastOutput(); ok {
		return styles.Output.Render("Last: " + last)
	}
	return styles.Footer.Render(outputPlaceholder)
}
