package frame

// ParseState is the state of the response reassembler.
type ParseState int

const (
	// StateScanning means no start marker has been seen yet.
	StateScanning ParseState = iota
	// StateAccumulating means a start marker was seen and bytes are
	// collected until the end marker.
	StateAccumulating
)

// String implements fmt.Stringer.
func (s ParseState) String() string {
	if s == StateAccumulating {
		return "accumulating"
	}
	return "scanning"
}

// ParseResult indicates the result after one parsing step.
type ParseResult struct {
	State ParseState
	// Frame is set when an end marker completes a frame.
	Frame *ResponseFrame
	// Overflow is set when a frame is dropped for exceeding
	// ResponseFrameSize without an end marker.
	Overflow bool
	// Resync is set when a start marker discarded a partial frame.
	Resync bool
}

// Parser reassembles response frames from a byte stream.
// The zero value is ready to use.
//
// A start marker always begins a new frame, even in the middle of one.
// This recovers from truncated frames, but a data byte equal to the start
// marker also restarts the frame: the protocol has no escaping.
type Parser struct {
	state ParseState
	buf   [ResponseFrameSize]byte
	index int
}

// State gets the current state.
func (p *Parser) State() ParseState {
	return p.state
}

// Reset drops any partial frame.
func (p *Parser) Reset() {
	p.state, p.index = StateScanning, 0
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	if b == StartByte {
		pr.Resync = p.state == StateAccumulating
		p.state, p.index = StateAccumulating, 0
	}
	if p.state == StateScanning {
		pr.State = p.state
		return
	}
	if p.index >= ResponseFrameSize {
		p.Reset()
		pr.State, pr.Overflow = p.state, true
		return
	}
	p.buf[p.index] = b
	p.index++
	if b == EndByte {
		pr.Frame = &ResponseFrame{size: p.index}
		copy(pr.Frame.raw[:], p.buf[:p.index])
		p.Reset()
	}
	pr.State = p.state
	return
}
