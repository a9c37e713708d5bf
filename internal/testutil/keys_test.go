package testutil

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestKeyStrings(t *testing.T) {
	cases := []struct {
		msg  tea.KeyPressMsg
		want string
	}{
		{Key(tea.KeyF4), "f4"},
		{Key(tea.KeyEnter), "enter"},
		{Rune('h'), "h"},
		{Ctrl('q'), "ctrl+q"},
		{Alt('x'), "alt+x"},
	}
	for _, tc := range cases {
		if got := tc.msg.String(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestTypedSplitsRunes(t *testing.T) {
	msgs := Typed("/hé")
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if key, ok := msgs[2].(tea.KeyPressMsg); !ok || key.Text != "é" {
		t.Fatalf("unexpected last message %#v", msgs[2])
	}
}
