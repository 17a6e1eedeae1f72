package cons

import "github.com/go-logr/logr"

// Exhaustion reasons reported to Monitor.OnExhausted.
const (
	// ReasonUnderfilled means the source ended before the first window could be filled.
	ReasonUnderfilled = "underfilled"
	// ReasonSourceDone means the source ended while windows were being produced.
	ReasonSourceDone = "source_done"
	// ReasonStopped means the caller stopped the adapter before the source ended.
	ReasonStopped = "stopped"
)

// Monitor observes the lifecycle of a windowing adapter.
type Monitor interface {
	// OnWindow is called after each window is produced with the running total.
	OnWindow(produced int)
	// OnExhausted is called exactly once, when the adapter enters its terminal state.
	OnExhausted(reason string, produced int)
}

// NoopMonitor discards all events. It is the default Monitor.
type NoopMonitor struct{}

func (NoopMonitor) OnWindow(produced int)                   {}
func (NoopMonitor) OnExhausted(reason string, produced int) {}

// LogrMonitor reports adapter events to a logr.Logger.
// Exhaustion is logged at V(1) and every produced window at V(2).
type LogrMonitor struct {
	Logger logr.Logger
}

func (m LogrMonitor) OnWindow(produced int) {
	m.Logger.V(2).Info("window produced", "produced", produced)
}

func (m LogrMonitor) OnExhausted(reason string, produced int) {
	m.Logger.V(1).Info("windowing exhausted", "reason", reason, "produced", produced)
}
