package events

import (
	"github.com/atomicstack/pipemind/internal/logging"
	"go.uber.org/zap"
)

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", zap.Any("payload", payload))
}

func (AppTracer) Quit(reason string) {
	logging.Trace("app.quit", zap.String("reason", reason))
}
