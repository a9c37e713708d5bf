package state

import (
	"github.com/atomicstack/pipemind/internal/menu"
	"github.com/atomicstack/pipemind/internal/ui/command"
)

// App is the console state: focus, navigation, the input line, the output
// log, the preview text and the quit confirmation flag. It is owned by a
// single event loop; the renderer only reads it between events.
type App struct {
	focus       *Focus
	nav         *Navigation
	editor      Editor
	log         OutputLog
	previews    menu.Previews
	preview     string
	quitPending bool
}

// NewApp builds the state for a catalog and its preview table.
func NewApp(items []menu.Item, previews menu.Previews) (*App, error) {
	nav, err := NewNavigation(items)
	if err != nil {
		return nil, err
	}
	a := &App{
		focus:    NewFocus(),
		nav:      nav,
		previews: previews,
	}
	a.refreshNavigationPreview()
	return a, nil
}

// NewDefaultApp builds the state for the built-in catalog.
func NewDefaultApp() (*App, error) {
	return NewApp(menu.RootItems(), menu.DefaultPreviews())
}

// Focus returns the focused region.
func (a *App) Focus() FocusArea {
	return a.focus.Current()
}

// HasFocus reports whether area is focused.
func (a *App) HasFocus(area FocusArea) bool {
	return a.focus.Is(area)
}

// Navigation exposes the navigation state for reading.
func (a *App) Navigation() *Navigation {
	return a.nav
}

// NavState returns the browsing context.
func (a *App) NavState() NavState {
	return a.nav.State()
}

// Selection returns the selected index within the active level.
func (a *App) Selection() int {
	return a.nav.Selection()
}

// NavigationLabels returns the display names of the active level.
func (a *App) NavigationLabels() []string {
	return a.nav.CurrentLabels()
}

// Input returns the buffer contents.
func (a *App) Input() string {
	return a.editor.Text()
}

// InputCursor returns the rune offset of the input cursor.
func (a *App) InputCursor() int {
	return a.editor.Cursor()
}

// CommandMode reports whether the input holds a command line.
func (a *App) CommandMode() bool {
	return a.editor.CommandMode()
}

// Suggestions lists commands matching the input while in command mode.
func (a *App) Suggestions() []string {
	return a.editor.Suggestions()
}

// Preview returns the preview text.
func (a *App) Preview() string {
	return a.preview
}

// Output returns the submitted lines, oldest first.
func (a *App) Output() []string {
	return a.log.Entries()
}

// LastOutput returns the most recent submitted line.
func (a *App) LastOutput() (string, bool) {
	return a.log.Last()
}

// QuitPending reports whether the quit confirmation is showing.
func (a *App) QuitPending() bool {
	return a.quitPending
}

// Apply routes one event. While the quit confirmation is pending only
// confirm and cancel are honoured. Otherwise editing events reach the
// input line when it is focused and navigation events reach focus and
// navigation when it is not.
func (a *App) Apply(ev Event) Result {
	if ev.Kind == EventRequestQuit {
		return Result{Handled: a.RequestQuit()}
	}
	if a.quitPending {
		switch ev.Kind {
		case EventConfirmQuit:
			return Result{Handled: true, Quit: a.ConfirmQuit()}
		case EventCancelQuit:
			return Result{Handled: a.CancelQuit()}
		}
		return Result{}
	}
	switch ev.Kind {
	case EventConfirmQuit, EventCancelQuit, EventNone:
		return Result{}
	case EventFocusJump:
		changed := a.JumpFocus(ev.Area)
		return Result{Handled: ev.Area.Valid(), FocusChanged: changed}
	}
	if a.focus.Is(FocusInput) {
		return a.applyInput(ev)
	}
	return a.applyNavigation(ev)
}

func (a *App) applyInput(ev Event) Result {
	var changed bool
	switch ev.Kind {
	case EventRune:
		changed = a.InsertRune(ev.Rune)
	case EventBackspace:
		changed = a.DeleteBackward()
	case EventDelete:
		changed = a.DeleteForward()
	case EventCursorLeft:
		return Result{Handled: true, InputChanged: a.editor.MoveLeft()}
	case EventCursorRight:
		return Result{Handled: true, InputChanged: a.editor.MoveRight()}
	case EventCursorStart:
		return Result{Handled: true, InputChanged: a.editor.MoveStart()}
	case EventCursorEnd:
		return Result{Handled: true, InputChanged: a.editor.MoveEnd()}
	case EventKillToStart:
		changed = a.KillToStart()
	case EventKillToEnd:
		changed = a.KillToEnd()
	case EventSubmit:
		sub := a.Submit()
		return Result{Handled: true, InputChanged: true, Submitted: &sub}
	default:
		return Result{}
	}
	return Result{Handled: true, InputChanged: changed}
}

func (a *App) applyNavigation(ev Event) Result {
	switch ev.Kind {
	case EventDirection:
		focusChanged, moved := a.MoveFocus(ev.Direction)
		return Result{Handled: true, FocusChanged: focusChanged, SelectionChanged: moved}
	case EventEnterSubmenu:
		return Result{Handled: true, NavigationMoved: a.EnterSubmenu()}
	case EventExitSubmenu:
		return Result{Handled: true, NavigationMoved: a.ExitSubmenu()}
	case EventSelectFirst:
		if !a.focus.Is(FocusNavigation) {
			return Result{}
		}
		return Result{Handled: true, SelectionChanged: a.Select(0)}
	case EventSelectLast:
		if !a.focus.Is(FocusNavigation) {
			return Result{}
		}
		return Result{Handled: true, SelectionChanged: a.Select(a.nav.CurrentCount() - 1)}
	}
	return Result{}
}

// JumpFocus focuses area regardless of the current focus.
func (a *App) JumpFocus(area FocusArea) bool {
	return a.focus.Jump(area)
}

// MoveFocus applies a directional move; vertical moves on the navigation
// panel change the selection instead.
func (a *App) MoveFocus(d Direction) (focusChanged, selectionMoved bool) {
	vertical := a.focus.Is(FocusNavigation) && (d == Up || d == Down)
	focusChanged, selectionMoved = a.focus.Move(d, a.nav)
	if vertical {
		a.refreshNavigationPreview()
	}
	return focusChanged, selectionMoved
}

// Select selects index in the active level, clamped.
func (a *App) Select(index int) bool {
	changed := a.nav.Select(index)
	a.refreshNavigationPreview()
	return changed
}

// MoveSelection moves the selection by delta, saturating.
func (a *App) MoveSelection(delta int) bool {
	changed := a.nav.MoveSelection(delta)
	a.refreshNavigationPreview()
	return changed
}

// EnterSubmenu opens the submenu of the selected entry.
func (a *App) EnterSubmenu() bool {
	if !a.nav.EnterSubmenu() {
		return false
	}
	a.refreshNavigationPreview()
	return true
}

// ExitSubmenu returns to the root list.
func (a *App) ExitSubmenu() bool {
	if !a.nav.ExitSubmenu() {
		return false
	}
	a.refreshNavigationPreview()
	return true
}

// SetItems replaces the navigation catalog.
func (a *App) SetItems(items []menu.Item) error {
	if err := a.nav.SetItems(items); err != nil {
		return err
	}
	a.refreshNavigationPreview()
	return nil
}

// InsertRune inserts r at the input cursor.
func (a *App) InsertRune(r rune) bool {
	changed := a.editor.Insert(r)
	a.refreshInputPreview()
	return changed
}

// InsertText inserts text at the input cursor.
func (a *App) InsertText(text string) bool {
	if !a.editor.InsertText(text) {
		return false
	}
	a.refreshInputPreview()
	return true
}

// DeleteBackward removes the rune before the input cursor.
func (a *App) DeleteBackward() bool {
	if !a.editor.DeleteBackward() {
		return false
	}
	a.refreshInputPreview()
	return true
}

// DeleteForward removes the rune under the input cursor.
func (a *App) DeleteForward() bool {
	if !a.editor.DeleteForward() {
		return false
	}
	a.refreshInputPreview()
	return true
}

// MoveCursor shifts the input cursor by delta, clamped.
func (a *App) MoveCursor(delta int) bool {
	return a.editor.MoveCursor(delta)
}

// KillToStart removes the input before the cursor.
func (a *App) KillToStart() bool {
	if !a.editor.KillToStart() {
		return false
	}
	a.refreshInputPreview()
	return true
}

// KillToEnd removes the input from the cursor onward.
func (a *App) KillToEnd() bool {
	if !a.editor.KillToEnd() {
		return false
	}
	a.refreshInputPreview()
	return true
}

// Submit finalises the input line. Command lines are interpreted and their
// response becomes the preview. Non-blank lines are appended to the output
// log. The input is cleared either way.
func (a *App) Submit() Submission {
	sub := Submission{Text: a.editor.Text(), Command: a.editor.CommandMode()}
	if sub.Command {
		sub.Response = command.Interpret(sub.Text)
		a.preview = sub.Response
	}
	if !a.editor.Blank() {
		a.log.Append(sub.Text)
		sub.Logged = true
	}
	a.editor.Reset()
	return sub
}

// RequestQuit shows the quit confirmation.
func (a *App) RequestQuit() bool {
	if a.quitPending {
		return false
	}
	a.quitPending = true
	return true
}

// ConfirmQuit accepts a pending quit confirmation.
func (a *App) ConfirmQuit() bool {
	return a.quitPending
}

// CancelQuit dismisses the quit confirmation.
func (a *App) CancelQuit() bool {
	if !a.quitPending {
		return false
	}
	a.quitPending = false
	return true
}

func (a *App) refreshNavigationPreview() {
	a.preview = a.nav.Preview(a.previews)
}

func (a *App) refreshInputPreview() {
	a.preview = a.editor.Preview()
}
