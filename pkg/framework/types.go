package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Message is anything posted to a Loop from other goroutines.
type Message interface{}

// Controller defines the logic executed in each iteration of a Loop.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}

// ControlContext provides the context of current iteration.
type ControlContext interface {
	// Context retrieves context.Context.
	Context() context.Context
	// Time is when this iteration started.
	Time() time.Time
	// Messages retrieves messages posted before this iteration started.
	// Messages not taken are passed to the next controller.
	Messages() []Message
	// TakeMessages consumes messages accepted by fn, they're not seen
	// by controllers after the current one.
	TakeMessages(fn func(Message) bool)

	LoopControl
}

// LoopControl exposes access to the loop.
type LoopControl interface {
	// PostMessage enqueues the message for next iteration.
	PostMessage(Message)
	// TriggerNext schedules the next iteration immediately.
	TriggerNext()
}
