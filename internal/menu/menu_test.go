package menu

import (
	"errors"
	"testing"

	"github.com/atomicstack/pipemind/internal/features/imagetools"
)

func TestRootItemsCatalog(t *testing.T) {
	items := RootItems()
	if len(items) != 6 {
		t.Fatalf("expected 6 root items, got %d", len(items))
	}
	if items[0].Label != "Home" {
		t.Fatalf("expected Home first, got %q", items[0].Label)
	}
	if !items[1].HasChildren() {
		t.Fatalf("expected image tools to own a submenu")
	}
	got := Labels(items[1].Children)
	want := []string{"Overview", "Open Image", "Close Image"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if err := Validate(items); err != nil {
		t.Fatalf("expected default catalog to validate, got %v", err)
	}
}

func TestValidateRejectsNestedSubmenu(t *testing.T) {
	items := []Item{{
		ID:    "a",
		Label: "A",
		Children: []Item{{
			ID:       "b",
			Label:    "B",
			Children: []Item{{ID: "c", Label: "C"}},
		}},
	}}
	err := Validate(items)
	if !errors.Is(err, ErrNestedSubmenu) {
		t.Fatalf("expected ErrNestedSubmenu, got %v", err)
	}
}

func TestValidateRejectsDuplicateAndEmptyIDs(t *testing.T) {
	if err := Validate([]Item{{ID: "a"}, {ID: "a"}}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if err := Validate([]Item{{Label: "nameless"}}); err == nil {
		t.Fatalf("expected missing id error")
	}
}

func TestCloneItemsCopiesChildren(t *testing.T) {
	items := RootItems()
	clone := CloneItems(items)
	clone[1].Children[0].Label = "changed"
	if items[1].Children[0].Label == "changed" {
		t.Fatalf("expected clone to own its children")
	}
	if CloneItems(nil) != nil {
		t.Fatalf("expected nil clone for nil input")
	}
}

func TestPreviewTable(t *testing.T) {
	p := DefaultPreviews()
	items := RootItems()

	if got := p.Root(items, 0); got != WelcomeText {
		t.Fatalf("expected welcome text for Home, got %q", got)
	}
	if got := p.Root(items, 1); got != imagetools.Welcome {
		t.Fatalf("expected image tools welcome, got %q", got)
	}
	for i := 2; i < len(items); i++ {
		if got := p.Root(items, i); got != SelectText {
			t.Fatalf("expected generic text at %d, got %q", i, got)
		}
	}

	parent := items[1]
	cases := map[int]string{
		0: imagetools.Welcome,
		1: imagetools.OpenText,
		2: imagetools.CloseText,
		3: imagetools.FallbackText,
	}
	for idx, want := range cases {
		if got := p.Submenu(parent, idx); got != want {
			t.Fatalf("submenu slot %d: expected %q, got %q", idx, want, got)
		}
	}
}

func TestPreviewTableUnknownFeatureFallsBack(t *testing.T) {
	p := DefaultPreviews()
	parent := Item{ID: "mystery", Label: "Mystery", Children: []Item{{ID: "x"}}}
	if got := p.Root([]Item{{ID: "home"}, parent}, 1); got != SelectText {
		t.Fatalf("expected generic text for unknown feature, got %q", got)
	}
	if got := p.Submenu(parent, 3); got != SelectText {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}

func TestPrettyLabel(t *testing.T) {
	if got := prettyLabel("open-image"); got != "Open Image" {
		t.Fatalf("expected Open Image, got %q", got)
	}
	if got := prettyLabel(""); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
