package state

// EventKind enumerates the inputs the dispatcher can deliver.
type EventKind int

const (
	EventNone EventKind = iota
	EventRune
	EventBackspace
	EventDelete
	EventCursorLeft
	EventCursorRight
	EventCursorStart
	EventCursorEnd
	EventKillToStart
	EventKillToEnd
	EventSubmit
	EventDirection
	EventEnterSubmenu
	EventExitSubmenu
	EventSelectFirst
	EventSelectLast
	EventFocusJump
	EventRequestQuit
	EventConfirmQuit
	EventCancelQuit
)

var eventNames = map[EventKind]string{
	EventNone:         "none",
	EventRune:         "rune",
	EventBackspace:    "backspace",
	EventDelete:       "delete",
	EventCursorLeft:   "cursor-left",
	EventCursorRight:  "cursor-right",
	EventCursorStart:  "cursor-start",
	EventCursorEnd:    "cursor-end",
	EventKillToStart:  "kill-to-start",
	EventKillToEnd:    "kill-to-end",
	EventSubmit:       "submit",
	EventDirection:    "direction",
	EventEnterSubmenu: "enter-submenu",
	EventExitSubmenu:  "exit-submenu",
	EventSelectFirst:  "select-first",
	EventSelectLast:   "select-last",
	EventFocusJump:    "focus-jump",
	EventRequestQuit:  "request-quit",
	EventConfirmQuit:  "confirm-quit",
	EventCancelQuit:   "cancel-quit",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one discrete input. Rune carries the text for EventRune,
// Direction the move for EventDirection and Area the target of EventFocusJump.
type Event struct {
	Kind      EventKind
	Rune      rune
	Direction Direction
	Area      FocusArea
}

// Rune builds an insertion event.
func Rune(r rune) Event {
	return Event{Kind: EventRune, Rune: r}
}

// Move builds a directional event.
func Move(d Direction) Event {
	return Event{Kind: EventDirection, Direction: d}
}

// Jump builds a direct focus event.
func Jump(area FocusArea) Event {
	return Event{Kind: EventFocusJump, Area: area}
}

// Key builds an event that needs no payload.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// Submission describes a submitted input line.
type Submission struct {
	Text     string
	Command  bool
	Response string
	Logged   bool
}

// Result reports what applying an event did.
type Result struct {
	// Handled is false when the event was ignored.
	Handled bool
	// Quit is set once the quit confirmation was accepted.
	Quit             bool
	FocusChanged     bool
	SelectionChanged bool
	NavigationMoved  bool
	InputChanged     bool
	Submitted        *Submission
}
