package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/pipemind/internal/features/imagetools"
)

// ErrNestedSubmenu reports a catalog entry whose children have children of their own.
var ErrNestedSubmenu = errors.New("submenus cannot contain submenus")

// Item represents a selectable menu entry. Root entries may own one level of children.
type Item struct {
	ID       string
	Label    string
	Children []Item
}

// HasChildren reports whether the item opens a non-empty submenu.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// RootItems returns the top-level menu entries.
func RootItems() []Item {
	return []Item{
		{ID: "home", Label: "Home"},
		{ID: imagetools.ID, Label: "Image Tools", Children: menuItemsFromIDs(imagetools.ID, imagetools.Slots())},
		{ID: "prompts", Label: "Prompts"},
		{ID: "history", Label: "History"},
		{ID: "settings", Label: "Settings"},
		{ID: "about", Label: "About"},
	}
}

// Validate checks the catalog for duplicate identifiers and nested submenus.
func Validate(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("menu item %q has no id", item.Label)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
		for _, child := range item.Children {
			if child.HasChildren() {
				return fmt.Errorf("menu item %q: %w", item.ID+":"+child.ID, ErrNestedSubmenu)
			}
		}
	}
	return nil
}

// CloneItems produces a copy of the provided menu items, children included.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	for i := range dup {
		if dup[i].Children != nil {
			dup[i].Children = CloneItems(dup[i].Children)
		}
	}
	return dup
}

// Labels returns the display labels of items in order.
func Labels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

func menuItemsFromIDs(prefix string, ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: prefix + ":" + id, Label: prettyLabel(id)})
	}
	return items
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
