package mp3

import (
	"context"
	"time"

	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

// Timing is the pacing contract of the link.
type Timing struct {
	// Settle is waited before writing a command.
	Settle time.Duration
	// Post is waited after writing a command so the module has
	// processed it before the next one.
	Post time.Duration
	// Startup is waited around each step of Init.
	Startup time.Duration
	// FrameTimeout bounds the wait for the rest of a started frame.
	// Zero waits forever.
	FrameTimeout time.Duration
	// Poll is the interval to check the transport while waiting.
	Poll time.Duration
}

// DefaultTiming matches the module's documented behavior.
var DefaultTiming = Timing{
	Settle:       20 * time.Millisecond,
	Post:         500 * time.Millisecond,
	Startup:      500 * time.Millisecond,
	FrameTimeout: time.Second,
	Poll:         5 * time.Millisecond,
}

// Player drives the MP3 module over a Transport.
// It's not safe for concurrent use; confine it to a single goroutine.
type Player struct {
	Timing   Timing
	Recorder EventRecorder

	transport Transport
	parser    frame.Parser
	last      frame.ResponseFrame
}

// NewPlayer creates a Player with DefaultTiming.
func NewPlayer(t Transport) *Player {
	return &Player{Timing: DefaultTiming, transport: t}
}

// Init resets the module and selects the microSD card.
func (p *Player) Init(ctx context.Context) error {
	if err := sleep(ctx, p.Timing.Startup); err != nil {
		return err
	}
	if err := p.Reset(ctx); err != nil {
		return err
	}
	if err := sleep(ctx, p.Timing.Startup); err != nil {
		return err
	}
	if err := p.SelectDevice(ctx, int(frame.DeviceMicroSD)); err != nil {
		return err
	}
	return sleep(ctx, p.Timing.Startup)
}

// SendCommand sends a raw command. The data bytes are not validated.
// It blocks for Timing.Settle + Timing.Post.
func (p *Player) SendCommand(ctx context.Context, cmd frame.Command, data1, data2 byte) error {
	if err := sleep(ctx, p.Timing.Settle); err != nil {
		return err
	}
	f := frame.Encode(cmd, data1, data2)
	if _, err := f.WriteTo(p.transport); err != nil {
		return err
	}
	p.record(&SendEvent{Frame: f})
	return sleep(ctx, p.Timing.Post)
}

// Do performs an Action.
func (p *Player) Do(ctx context.Context, a Action) error {
	if a.Err != nil {
		return a.Err
	}
	return p.SendCommand(ctx, a.Command, a.Data1, a.Data2)
}

// Available returns the number of received bytes not yet consumed.
func (p *Player) Available() int {
	return p.transport.Available()
}

// ReadFrame reads a response frame from the received bytes.
// It returns (nil, nil) if no frame start is available. Once a frame has
// started, it waits for the end marker up to Timing.FrameTimeout.
// The frame is also kept for DecodeLast.
func (p *Player) ReadFrame(ctx context.Context) (*frame.ResponseFrame, error) {
	if p.transport.Available() == 0 {
		return nil, nil
	}
	var deadline <-chan time.Time
	defer p.parser.Reset()
	for {
		if p.transport.Available() == 0 {
			if p.parser.State() != frame.StateAccumulating {
				return nil, nil
			}
			if deadline == nil && p.Timing.FrameTimeout > 0 {
				timer := time.NewTimer(p.Timing.FrameTimeout)
				defer timer.Stop()
				deadline = timer.C
			}
			if err := p.waitData(ctx, deadline); err != nil {
				return nil, err
			}
			continue
		}
		b, err := p.transport.ReadByte()
		if err != nil {
			return nil, err
		}
		pr := p.parser.Parse(b)
		if pr.Overflow {
			p.record(&OverflowEvent{})
			return nil, ErrFrameOverflow
		}
		if f := pr.Frame; f != nil {
			p.last = *f
			p.record(&ReceiveEvent{Response: frame.Decode(f)})
			return f, nil
		}
	}
}

// DecodeLast decodes the last frame read and marks it consumed by clearing
// its response code, so decoding again yields no status.
func (p *Player) DecodeLast() string {
	return p.TakeLast().String()
}

// TakeLast is DecodeLast returning the decoded Response. Callers reading
// frames through ReadFrame use it so the stored code doesn't outlive
// the decode.
func (p *Player) TakeLast() frame.Response {
	r := frame.Decode(&p.last)
	p.last.ClearCode()
	return r
}

// Answer reads a response frame and decodes it. It returns an empty string
// if no frame is available.
func (p *Player) Answer(ctx context.Context) (string, error) {
	f, err := p.ReadFrame(ctx)
	if err != nil || f == nil {
		return "", err
	}
	return p.DecodeLast(), nil
}

func (p *Player) waitData(ctx context.Context, deadline <-chan time.Time) error {
	poll := p.Timing.Poll
	if poll <= 0 {
		poll = time.Millisecond
	}
	timer := time.NewTimer(poll)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-deadline:
		p.record(&TimeoutEvent{})
		return ErrTimeout
	case <-timer.C:
		return nil
	}
}

func (p *Player) record(ev Event) {
	if r := p.Recorder; r != nil {
		r.RecordEvent(ev)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
