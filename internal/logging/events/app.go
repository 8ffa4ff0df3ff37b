package events

import "github.com/atomicstack/canopy/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}

func (AppTracer) Resize(width, height int) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height})
}
