package state

import (
	"fmt"

	"github.com/atomicstack/pipemind/internal/menu"
)

// NavState is the browsing context: the root list or one submenu.
type NavState struct {
	submenu     bool
	parentIndex int
}

// Root is the top-level browsing context.
var Root = NavState{}

// Submenu returns the context for browsing the children of root item parent.
func Submenu(parent int) NavState {
	return NavState{submenu: true, parentIndex: parent}
}

// InSubmenu reports whether a submenu is being browsed and, if so, its parent index.
func (s NavState) InSubmenu() (int, bool) {
	return s.parentIndex, s.submenu
}

func (s NavState) String() string {
	if s.submenu {
		return fmt.Sprintf("submenu(%d)", s.parentIndex)
	}
	return "root"
}

// Navigation tracks the catalog, the browsing context and the selection
// within the active level.
type Navigation struct {
	items     []menu.Item
	state     NavState
	selection int
}

// NewNavigation validates the catalog and starts at the root with the first
// entry selected.
func NewNavigation(items []menu.Item) (*Navigation, error) {
	if err := menu.Validate(items); err != nil {
		return nil, fmt.Errorf("navigation catalog: %w", err)
	}
	return &Navigation{items: menu.CloneItems(items)}, nil
}

// Items returns the root catalog.
func (n *Navigation) Items() []menu.Item {
	return n.items
}

// State returns the current browsing context.
func (n *Navigation) State() NavState {
	return n.state
}

// Selection returns the selected index within the active level.
func (n *Navigation) Selection() int {
	return n.selection
}

// CurrentItems returns the entries of the active level.
func (n *Navigation) CurrentItems() []menu.Item {
	if parent, ok := n.state.InSubmenu(); ok {
		return n.items[parent].Children
	}
	return n.items
}

// CurrentLabels returns the display names of the active level.
func (n *Navigation) CurrentLabels() []string {
	return menu.Labels(n.CurrentItems())
}

// CurrentCount returns the number of entries in the active level.
func (n *Navigation) CurrentCount() int {
	return len(n.CurrentItems())
}

// SelectedItem returns the entry under the selection.
func (n *Navigation) SelectedItem() (menu.Item, bool) {
	items := n.CurrentItems()
	if n.selection < 0 || n.selection >= len(items) {
		return menu.Item{}, false
	}
	return items[n.selection], true
}

// Parent returns the root item whose submenu is being browsed.
func (n *Navigation) Parent() (menu.Item, bool) {
	parent, ok := n.state.InSubmenu()
	if !ok {
		return menu.Item{}, false
	}
	return n.items[parent], true
}

// Title returns the heading for the navigation panel.
func (n *Navigation) Title() string {
	if parent, ok := n.Parent(); ok {
		return "Navigation - " + parent.Label
	}
	return "Navigation"
}

// Select stores index clamped to the active level.
func (n *Navigation) Select(index int) bool {
	old := n.selection
	n.selection = clampIndex(index, n.CurrentCount())
	return n.selection != old
}

// MoveSelection moves the selection by delta, saturating at both ends.
func (n *Navigation) MoveSelection(delta int) bool {
	count := n.CurrentCount()
	if count == 0 {
		n.selection = 0
		return false
	}
	next := n.selection + delta
	if delta < 0 && next > n.selection {
		next = 0
	}
	if delta > 0 && next < n.selection {
		next = count - 1
	}
	return n.Select(next)
}

// MoveSelectionHome selects the first entry.
func (n *Navigation) MoveSelectionHome() bool {
	return n.Select(0)
}

// MoveSelectionEnd selects the last entry.
func (n *Navigation) MoveSelectionEnd() bool {
	return n.Select(n.CurrentCount() - 1)
}

// EnterSubmenu opens the submenu of the selected root entry. Leaf entries
// and submenus themselves are left untouched.
func (n *Navigation) EnterSubmenu() bool {
	if n.state.submenu {
		return false
	}
	if n.selection < 0 || n.selection >= len(n.items) {
		return false
	}
	if !n.items[n.selection].HasChildren() {
		return false
	}
	n.state = Submenu(n.selection)
	n.selection = 0
	return true
}

// ExitSubmenu returns to the root and reselects the parent entry.
func (n *Navigation) ExitSubmenu() bool {
	parent, ok := n.state.InSubmenu()
	if !ok {
		return false
	}
	n.state = Root
	n.selection = clampIndex(parent, len(n.items))
	return true
}

// SetItems replaces the catalog. A submenu whose parent no longer owns
// children is closed, and the selection is clamped to the active level.
func (n *Navigation) SetItems(items []menu.Item) error {
	if err := menu.Validate(items); err != nil {
		return fmt.Errorf("navigation catalog: %w", err)
	}
	n.items = menu.CloneItems(items)
	if parent, ok := n.state.InSubmenu(); ok {
		if parent >= len(n.items) || !n.items[parent].HasChildren() {
			n.state = Root
			n.selection = parent
		}
	}
	n.selection = clampIndex(n.selection, n.CurrentCount())
	return nil
}

// Preview resolves the preview text for the current context and selection.
func (n *Navigation) Preview(p menu.Previews) string {
	if parent, ok := n.Parent(); ok {
		return p.Submenu(parent, n.selection)
	}
	return p.Root(n.items, n.selection)
}

func clampIndex(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
