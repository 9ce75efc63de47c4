package mp3

import (
	"github.com/golang/glog"

	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

// Event is something happened on the link.
type Event interface {
	String() string
}

// SendEvent is recorded after a command frame is written.
type SendEvent struct {
	Frame frame.CommandFrame
}

// String implements Event.
func (e *SendEvent) String() string {
	return "Send: " + e.Frame.String()
}

// ReceiveEvent is recorded when a response frame is reassembled.
type ReceiveEvent struct {
	Response frame.Response
}

// String implements Event.
func (e *ReceiveEvent) String() string {
	return "Recv: " + e.Response.String()
}

// TimeoutEvent is recorded when a started frame doesn't complete in time.
type TimeoutEvent struct{}

// String implements Event.
func (e *TimeoutEvent) String() string {
	return "Recv: frame timeout"
}

// OverflowEvent is recorded when an oversized frame is dropped.
type OverflowEvent struct{}

// String implements Event.
func (e *OverflowEvent) String() string {
	return "Recv: frame overflow"
}

// EventRecorder receives link events, e.g. for debugging.
type EventRecorder interface {
	RecordEvent(Event)
}

// RecordEventFunc is func type of EventRecorder.
type RecordEventFunc func(Event)

// RecordEvent implements EventRecorder.
func (f RecordEventFunc) RecordEvent(ev Event) {
	f(ev)
}

// Recorders dispatches events to multiple recorders.
type Recorders []EventRecorder

// RecordEvent implements EventRecorder.
func (r Recorders) RecordEvent(ev Event) {
	for _, rec := range r {
		rec.RecordEvent(ev)
	}
}

// GlogRecorder logs events with glog at verbosity Level.
type GlogRecorder struct {
	Level glog.Level
}

// RecordEvent implements EventRecorder.
func (r *GlogRecorder) RecordEvent(ev Event) {
	switch ev.(type) {
	case *TimeoutEvent, *OverflowEvent:
		glog.Warning(ev.String())
	default:
		if glog.V(r.Level) {
			glog.Info(ev.String())
		}
	}
}
