package state

import (
	"strings"

	"github.com/atomicstack/pipemind/internal/ui/command"
)

const commandRune = '/'

// Editor owns the input line and its cursor. Offsets count runes, so
// multi-byte characters are never split.
type Editor struct {
	buf         []rune
	cursor      int
	commandMode bool
}

// Text returns the buffer contents.
func (e *Editor) Text() string {
	return string(e.buf)
}

// Len returns the buffer length in runes.
func (e *Editor) Len() int {
	return len(e.buf)
}

// Empty reports whether the buffer holds no runes.
func (e *Editor) Empty() bool {
	return len(e.buf) == 0
}

// Cursor returns the rune offset of the cursor.
func (e *Editor) Cursor() int {
	return e.cursor
}

// CommandMode reports whether the buffer holds a command line.
func (e *Editor) CommandMode() bool {
	return e.commandMode
}

// Insert places r at the cursor and advances the cursor by one.
func (e *Editor) Insert(r rune) bool {
	pos := e.cursor
	e.buf = append(e.buf, 0)
	copy(e.buf[pos+1:], e.buf[pos:])
	e.buf[pos] = r
	e.cursor = pos + 1
	if pos == 0 {
		e.syncMode()
	}
	return true
}

// InsertText inserts every rune of text at the cursor.
func (e *Editor) InsertText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		e.Insert(r)
	}
	return true
}

// DeleteBackward removes the rune before the cursor.
func (e *Editor) DeleteBackward() bool {
	pos := e.cursor
	if pos == 0 {
		return false
	}
	e.buf = append(e.buf[:pos-1], e.buf[pos:]...)
	e.cursor = pos - 1
	if e.cursor == 0 {
		e.syncMode()
	}
	return true
}

// DeleteForward removes the rune under the cursor without moving it.
func (e *Editor) DeleteForward() bool {
	pos := e.cursor
	if pos >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:pos], e.buf[pos+1:]...)
	if pos == 0 {
		e.syncMode()
	}
	return true
}

// MoveCursor shifts the cursor by delta, clamped to the buffer.
func (e *Editor) MoveCursor(delta int) bool {
	old := e.cursor
	next := old + delta
	// guard against overflow for extreme deltas
	switch {
	case delta < 0 && next > old:
		next = 0
	case delta > 0 && next < old:
		next = len(e.buf)
	}
	if next < 0 {
		next = 0
	}
	if next > len(e.buf) {
		next = len(e.buf)
	}
	e.cursor = next
	return e.cursor != old
}

// MoveLeft moves the cursor one rune backward.
func (e *Editor) MoveLeft() bool {
	return e.MoveCursor(-1)
}

// MoveRight moves the cursor one rune forward.
func (e *Editor) MoveRight() bool {
	return e.MoveCursor(1)
}

// MoveStart moves the cursor to the start of the line.
func (e *Editor) MoveStart() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = 0
	return true
}

// MoveEnd moves the cursor past the last rune.
func (e *Editor) MoveEnd() bool {
	if e.cursor == len(e.buf) {
		return false
	}
	e.cursor = len(e.buf)
	return true
}

// KillToStart removes everything before the cursor.
func (e *Editor) KillToStart() bool {
	if e.cursor == 0 {
		return false
	}
	e.buf = append(e.buf[:0], e.buf[e.cursor:]...)
	e.cursor = 0
	e.syncMode()
	return true
}

// KillToEnd removes everything from the cursor onward.
func (e *Editor) KillToEnd() bool {
	if e.cursor >= len(e.buf) {
		return false
	}
	e.buf = e.buf[:e.cursor]
	if e.cursor == 0 {
		e.syncMode()
	}
	return true
}

// Reset clears the buffer, cursor and command mode.
func (e *Editor) Reset() {
	e.buf = e.buf[:0]
	e.cursor = 0
	e.commandMode = false
}

// Blank reports whether the buffer holds only whitespace.
func (e *Editor) Blank() bool {
	return strings.TrimSpace(string(e.buf)) == ""
}

// Preview renders the echo shown while the line is being edited.
func (e *Editor) Preview() string {
	if e.commandMode {
		return "Command: " + e.Text()
	}
	return "Echo: " + e.Text()
}

// Suggestions lists matching commands while in command mode.
func (e *Editor) Suggestions() []string {
	if !e.commandMode {
		return nil
	}
	return command.Suggest(e.Text())
}

// syncMode re-evaluates command mode after an edit touched the first rune.
func (e *Editor) syncMode() {
	e.commandMode = len(e.buf) > 0 && e.buf[0] == commandRune
}
