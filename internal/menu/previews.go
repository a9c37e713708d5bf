package menu

import "github.com/atomicstack/pipemind/internal/features/imagetools"

const (
	// WelcomeText is shown while the Home entry is selected.
	WelcomeText = "Welcome to Pipemind Console!\n\n" +
		"F1-F5 jump between panels, h/j/k/l or the arrow keys move around, " +
		"enter opens a submenu and esc leaves it. Press F4 to type; lines " +
		"starting with / are commands (try /help). ctrl+q quits."
	// SelectText is shown for root entries without dedicated content.
	SelectText = "Select an option from the navigation menu."
)

// Feature describes the preview content owned by a root entry with a submenu.
type Feature struct {
	Welcome  string
	Slots    map[int]string
	Fallback string
}

// Previews is the preview table keyed by navigation state and selection.
type Previews struct {
	Welcome  string
	Generic  string
	Features map[string]Feature
}

// DefaultPreviews returns the table used by the console catalog.
func DefaultPreviews() Previews {
	slots := make(map[int]string, len(imagetools.Slots()))
	for i := range imagetools.Slots() {
		if text, ok := imagetools.SlotText(i); ok {
			slots[i] = text
		}
	}
	return Previews{
		Welcome: WelcomeText,
		Generic: SelectText,
		Features: map[string]Feature{
			imagetools.ID: {
				Welcome:  imagetools.Welcome,
				Slots:    slots,
				Fallback: imagetools.FallbackText,
			},
		},
	}
}

// Root resolves the preview for the root level with the given selection.
func (p Previews) Root(items []Item, index int) string {
	if index >= 0 && index < len(items) {
		item := items[index]
		if item.HasChildren() {
			return p.feature(item).Welcome
		}
	}
	if index == 0 {
		return p.Welcome
	}
	return p.Generic
}

// Submenu resolves the preview for a submenu of parent with the given selection.
func (p Previews) Submenu(parent Item, index int) string {
	f := p.feature(parent)
	if index == 0 {
		return f.Welcome
	}
	if text, ok := f.Slots[index]; ok {
		return text
	}
	return f.Fallback
}

func (p Previews) feature(item Item) Feature {
	if f, ok := p.Features[item.ID]; ok {
		if f.Fallback == "" {
			f.Fallback = p.Generic
		}
		return f
	}
	return Feature{Welcome: p.Generic, Fallback: p.Generic}
}
