// Package imagetools holds the image metadata inspection feature. The
// inspector itself is not implemented yet; the feature contributes its
// welcome text and submenu slots to the navigation catalog.
package imagetools

// ID identifies the feature's root menu entry.
const ID = "image-tools"

// Welcome is shown when the feature or its overview slot is selected.
const Welcome = "Welcome to the Prompt Peekery!\n\n" +
	"Drop in a picture, preferably one you've birthed from the loins of a diffusion engine. " +
	"We'll pry it open like a suspicious pie and sniff the juicy metadata inside.\n\n" +
	"What you'll uncover:\n\n" +
	"- The _sacred prompt_ that summoned it\n" +
	"- The _model_ that carved its bones\n" +
	"- The _seed_ that sprouted its weird little face\n" +
	"- Sampling steps, schedulers, styles, and other sorceries\n\n" +
	"Perfect for when you mutter _\"how the gob did I make this?\"_\n\n" +
	"📷 Chuck in an image to begin the poking."

const (
	OpenText     = "Open image: choose a file to inspect. (not available yet)"
	CloseText    = "Close image: release the current image. (not available yet)"
	FallbackText = "Select an image tool."
)

const (
	SlotOverview = "overview"
	SlotOpen     = "open-image"
	SlotClose    = "close-image"
)

// Slots lists the submenu entries in display order.
func Slots() []string {
	return []string{SlotOverview, SlotOpen, SlotClose}
}

// SlotText maps a submenu slot index to its preview text. Slot 0 repeats the
// welcome text.
func SlotText(index int) (string, bool) {
	switch index {
	case 0:
		return Welcome, true
	case 1:
		return OpenText, true
	case 2:
		return CloseText, true
	}
	return "", false
}
