package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const defaultPreviewTitle = "Preview"

// previewTitle names the preview panel after the feature being browsed.
func (m *Model) previewTitle() string {
	nav := m.app.Navigation()
	if parent, ok := nav.Parent(); ok {
		return parent.Label
	}
	if item, ok := nav.SelectedItem(); ok && item.HasChildren() {
		return item.Label
	}
	return defaultPreviewTitle
}

// viewPreviewBody wraps the preview text to width and keeps at most height
// lines.
func (m *Model) viewPreviewBody(width, height int) []string {
	return wrapLines(m.app.Preview(), width, height)
}

func wrapLines(text string, width, height int) []string {
	if width <= 0 || height <= 0 || text == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > height {
		lines = lines[:height]
		lines[height-1] = ansi.Truncate(lines[height-1], width-1, "") + "…"
	}
	for i, line := range lines {
		lines[i] = styles.PreviewBody.Render(strings.TrimRight(ansi.Truncate(line, width, ""), " "))
	}
	return lines
}
