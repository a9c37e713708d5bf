package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/pipemind/internal/testutil"
	"github.com/charmbracelet/x/ansi"
)

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestViewShowsRegions(t *testing.T) {
	h := newTestHarness(t)
	view := plainView(h)
	for _, want := range []string{"Pipemind Console", "Navigation", "Home", "Image Tools", "About", "Welcome to Pipemind Console!", "Input", outputPlaceholder} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q\n%s", want, view)
		}
	}
}

func TestViewFitsDimensions(t *testing.T) {
	h := newTestHarness(t)
	lines := strings.Split(plainView(h), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 100 {
			t.Fatalf("line %d is %d cells wide", i, w)
		}
	}
}

func TestViewPreviewTitleFollowsFeature(t *testing.T) {
	h := newTestHarness(t)
	if strings.Contains(plainView(h), "Prompt Peekery") {
		t.Fatal("expected feature text hidden on Home")
	}
	h.Send(testutil.Key(tea.KeyDown))
	view := plainView(h)
	if !strings.Contains(view, "Prompt Peekery") {
		t.Fatalf("expected image tools welcome\n%s", view)
	}
	h.Send(testutil.Key(tea.KeyEnter))
	view = plainView(h)
	if !strings.Contains(view, "Navigation - ") || !strings.Contains(view, "Open Image") {
		t.Fatalf("expected submenu view\n%s", view)
	}
}

func TestViewInputTitleFollowsCommandMode(t *testing.T) {
	h := newTestHarness(t)
	h.Send(testutil.Key(tea.KeyF4))
	typeString(h, "/he")
	view := plainView(h)
	if !strings.Contains(view, "Command ›") {
		t.Fatalf("expected command title\n%s", view)
	}
	if !strings.Contains(view, "/help") {
		t.Fatalf("expected suggestion in footer\n%s", view)
	}
	if !strings.Contains(view, "Command: /he") {
		t.Fatalf("expected command preview\n%s", view)
	}
}

func TestViewFooterShowsLastOutput(t *testing.T) {
	h := newTestHarness(t)
	h.Send(testutil.Key(tea.KeyF4))
	typeString(h, "hello")
	h.Send(testutil.Key(tea.KeyEnter))
	if view := plainView(h); !strings.Contains(view, "Last: hello") {
		t.Fatalf("expected last output in footer\n%s", view)
	}
}

func TestViewWithoutFooter(t *testing.T) {
	m, err := NewModel(Options{Width: 80, Height: 20})
	if err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	view := ansi.Strip(m.Render())
	if strings.Contains(view, outputPlaceholder) {
		t.Fatalf("expected footer hidden\n%s", view)
	}
}

func TestViewQuitPrompt(t *testing.T) {
	h := newTestHarness(t)
	h.Send(testutil.Ctrl('q'))
	view := plainView(h)
	if !strings.Contains(view, quitPromptText) || !strings.Contains(view, quitPromptTitle) {
		t.Fatalf("expected quit prompt\n%s", view)
	}
	h.Send(testutil.Rune('n'))
	if strings.Contains(plainView(h), quitPromptText) {
		t.Fatal("expected prompt dismissed")
	}
}

func TestViewUsesAltScreen(t *testing.T) {
	h := newTestHarness(t)
	if v := h.Model().View(); !v.AltScreen {
		t.Fatal("expected alt screen view")
	}
}

func TestViewDefaultsWithoutSize(t *testing.T) {
	m, err := NewModel(Options{ShowFooter: true})
	if err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	lines := strings.Split(ansi.Strip(m.Render()), "\n")
	if len(lines) != defaultHeight {
		t.Fatalf("expected %d lines, got %d", defaultHeight, len(lines))
	}
}

func TestViewMarksSubmenuEntries(t *testing.T) {
	h := newTestHarness(t)
	if view := plainView(h); !strings.Contains(view, "Image Tools "+submenuMarker) {
		t.Fatalf("expected submenu marker beside Image Tools\n%s", view)
	}
	h.Send(testutil.Key(tea.KeyDown))
	h.Send(testutil.Key(tea.KeyEnter))
	if view := plainView(h); strings.Contains(view, submenuMarker) {
		t.Fatalf("expected no markers inside a submenu\n%s", view)
	}
}
