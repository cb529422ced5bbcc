package events

import (
	"github.com/tliron/commonlog"
)

// LoggerHandler emits a diagnostic line per lifecycle event via
// commonlog, the same leveled logger the teacher wires up for its LSP
// server (cmd/kanso-lsp/main.go's commonlog.Configure). Call
// ConfigureLogging once at process start to control verbosity.
type LoggerHandler struct {
	BaseHandler
	log commonlog.Logger
}

// ConfigureLogging sets the global commonlog verbosity (0 disables
// logging, higher is more verbose), matching commonlog.Configure's
// signature as used by the teacher.
func ConfigureLogging(verbosity int) {
	commonlog.Configure(verbosity, nil)
}

// NewLoggerHandler returns a handler that logs under the given scope
// name.
func NewLoggerHandler(scope string) *LoggerHandler {
	return &LoggerHandler{log: commonlog.GetLogger(scope)}
}

func (h *LoggerHandler) OnIterationStarted(p Payload) {
	h.log.Infof("iteration started: %s", p)
}

func (h *LoggerHandler) OnCycleStarted(p Payload) {
	h.log.Debugf("cycle started: %s", p)
}

func (h *LoggerHandler) OnSuccessfulReduction(p Payload) {
	h.log.Infof("reduction succeeded: %s", p)
}

func (h *LoggerHandler) OnConfigurationSplit(p Payload) {
	h.log.Debugf("granularity doubled: %s", p)
}

func (h *LoggerHandler) OnTestStarted(p Payload) {
	h.log.Debugf("test started: %s", p)
}

func (h *LoggerHandler) OnTestFinished(p Payload) {
	h.log.Debugf("test finished: %s", p)
}

func (h *LoggerHandler) OnCacheLookup(p Payload) {
	h.log.Debugf("cache lookup: %s", p)
}

func (h *LoggerHandler) OnCacheInsert(p Payload) {
	h.log.Debugf("cache insert: %s", p)
}

func (h *LoggerHandler) OnFinished(p Payload) {
	h.log.Infof("reduction finished: %s", p)
}
