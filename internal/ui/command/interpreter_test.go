package command

import (
	"reflect"
	"testing"
)

func TestInterpretKnownCommands(t *testing.T) {
	if got := Interpret("/help"); got != HelpText {
		t.Fatalf("expected help text, got %q", got)
	}
	if got := Interpret("/clear"); got != "" {
		t.Fatalf("expected empty response for clear, got %q", got)
	}
}

func TestInterpretToleratesMissingSlash(t *testing.T) {
	if got := Interpret("help"); got != HelpText {
		t.Fatalf("expected help text without slash, got %q", got)
	}
}

func TestInterpretUnknownCommand(t *testing.T) {
	cases := map[string]string{
		"/HELP":       "Unknown command: HELP",
		"/help me":    "Unknown command: help me",
		"/":           "Unknown command: ",
		"//help":      "Unknown command: /help",
		"/quit":       "Unknown command: quit",
		"/help ":      "Unknown command: help ",
		"plain words": "Unknown command: plain words",
	}
	for input, want := range cases {
		if got := Interpret(input); got != want {
			t.Fatalf("Interpret(%q): expected %q, got %q", input, want, got)
		}
	}
}

func TestSuggest(t *testing.T) {
	if got := Suggest("/"); !reflect.DeepEqual(got, []string{Help, Clear}) {
		t.Fatalf("expected all commands for bare slash, got %v", got)
	}
	if got := Suggest("/he"); !reflect.DeepEqual(got, []string{Help}) {
		t.Fatalf("expected help for /he, got %v", got)
	}
	if got := Suggest("/cl"); !reflect.DeepEqual(got, []string{Clear}) {
		t.Fatalf("expected clear for /cl, got %v", got)
	}
	if got := Suggest("/zzz"); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
	if got := Suggest("/help now"); len(got) != 0 {
		t.Fatalf("expected no suggestions once arguments start, got %v", got)
	}
}
