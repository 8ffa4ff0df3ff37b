package events

import "github.com/atomicstack/canopy/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Run(name, node string) {
	logging.Trace("command.run", map[string]interface{}{"command": name, "node": node})
}

func (CommandTracer) Unknown(name string) {
	logging.Trace("command.unknown", map[string]interface{}{"command": name})
}

func (CommandTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"command": name, "error": err.Error()})
}
