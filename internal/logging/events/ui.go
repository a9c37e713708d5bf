package events

import (
	"github.com/atomicstack/pipemind/internal/logging"
	"go.uber.org/zap"
)

type UITracer struct{}

type InputTracer struct{}

type CommandTracer struct{}

type QuitTracer struct{}

var (
	UI      = UITracer{}
	Input   = InputTracer{}
	Command = CommandTracer{}
	Quit    = QuitTracer{}
)

func (UITracer) Key(key, focus string, handled bool) {
	logging.Trace("ui.key", zap.String("key", key), zap.String("focus", focus), zap.Bool("handled", handled))
}

func (UITracer) Focus(from, to string) {
	logging.Trace("ui.focus", zap.String("from", from), zap.String("to", to))
}

func (UITracer) MenuCursor(state string, selection int) {
	logging.Trace("menu.cursor", zap.String("state", state), zap.Int("selection", selection))
}

func (UITracer) MenuEnter(parent, label string) {
	logging.Trace("menu.enter", zap.String("parent", parent), zap.String("label", label))
}

func (UITracer) MenuExit(parent string, selection int) {
	logging.Trace("menu.exit", zap.String("parent", parent), zap.Int("selection", selection))
}

func (InputTracer) Edit(action, buffer string, cursor int, commandMode bool) {
	logging.Trace("input.edit",
		zap.String("action", action),
		zap.String("buffer", buffer),
		zap.Int("cursor", cursor),
		zap.Bool("command", commandMode),
	)
}

func (InputTracer) Submit(text string, logged bool) {
	logging.Trace("input.submit", zap.String("text", text), zap.Bool("logged", logged))
}

func (CommandTracer) Run(text, response string) {
	logging.Trace("command.run", zap.String("text", text), zap.String("response", response))
}

func (QuitTracer) Request(focus string) {
	logging.Trace("quit.request", zap.String("focus", focus))
}

func (QuitTracer) Cancel() {
	logging.Trace("quit.cancel")
}
