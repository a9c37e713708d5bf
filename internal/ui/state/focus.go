package state

// FocusArea identifies one of the five fixed UI regions.
type FocusArea int

const (
	FocusHeader FocusArea = iota
	FocusNavigation
	FocusPreview
	FocusInput
	FocusFooter
)

// FocusAreas lists every region in jump order (F1-F5).
func FocusAreas() []FocusArea {
	return []FocusArea{FocusHeader, FocusNavigation, FocusPreview, FocusInput, FocusFooter}
}

func (a FocusArea) String() string {
	switch a {
	case FocusHeader:
		return "header"
	case FocusNavigation:
		return "navigation"
	case FocusPreview:
		return "preview"
	case FocusInput:
		return "input"
	case FocusFooter:
		return "footer"
	}
	return "unknown"
}

// Valid reports whether a names one of the five regions.
func (a FocusArea) Valid() bool {
	return a >= FocusHeader && a <= FocusFooter
}

// Direction is a directional focus move.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// SelectionMover moves a list selection; the navigation panel consumes
// vertical moves instead of changing focus.
type SelectionMover interface {
	MoveSelection(delta int) bool
}

// focusTransitions maps (current, direction) to the next region. The four
// non-input regions form a cycle; input is only reachable by jumping.
var focusTransitions = map[FocusArea][4]FocusArea{
	//               Left             Right            Up               Down
	FocusHeader:     {FocusFooter, FocusNavigation, FocusFooter, FocusNavigation},
	FocusNavigation: {FocusHeader, FocusPreview, FocusHeader, FocusPreview},
	FocusPreview:    {FocusNavigation, FocusFooter, FocusNavigation, FocusFooter},
	FocusFooter:     {FocusPreview, FocusHeader, FocusPreview, FocusHeader},
	FocusInput:      {FocusInput, FocusInput, FocusInput, FocusInput},
}

// Focus tracks which region owns keyboard input.
type Focus struct {
	current FocusArea
}

// NewFocus starts with the navigation panel focused.
func NewFocus() *Focus {
	return &Focus{current: FocusNavigation}
}

// Current returns the focused region.
func (f *Focus) Current() FocusArea {
	return f.current
}

// Is reports whether area has focus.
func (f *Focus) Is(area FocusArea) bool {
	return f.current == area
}

// Jump focuses area directly. Invalid areas are ignored.
func (f *Focus) Jump(area FocusArea) bool {
	if !area.Valid() || area == f.current {
		return false
	}
	f.current = area
	return true
}

// Next returns the region reached from the current one in direction d.
func (f *Focus) Next(d Direction) FocusArea {
	row, ok := focusTransitions[f.current]
	if !ok || d < Left || d > Down {
		return f.current
	}
	return row[d]
}

// Move applies a directional move. While the navigation panel is focused,
// up and down are handed to mover. The returned flags report whether focus
// changed and whether the selection moved.
func (f *Focus) Move(d Direction, mover SelectionMover) (focusChanged, selectionMoved bool) {
	if f.current == FocusNavigation && (d == Up || d == Down) {
		if mover == nil {
			return false, false
		}
		delta := 1
		if d == Up {
			delta = -1
		}
		return false, mover.MoveSelection(delta)
	}
	next := f.Next(d)
	if next == f.current {
		return false, false
	}
	f.current = next
	return true, false
}
