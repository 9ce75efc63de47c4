package mp3

import (
	"context"
	"io"
)

// Transport is the byte stream connected to the module.
type Transport interface {
	io.Writer
	// Available returns the number of bytes that can be read
	// without blocking.
	Available() int
	// ReadByte reads one byte. It doesn't block; ErrNoData is
	// returned if nothing is available.
	ReadByte() (byte, error)
}

// DefaultQueueSize is the receive queue size of StreamTransport.
const DefaultQueueSize = 256

// StreamTransport adapts an io.ReadWriter (e.g. serial port) to Transport.
// Run must be running to receive bytes.
type StreamTransport struct {
	ReadWriter io.ReadWriter

	recvCh chan byte
}

// NewStreamTransport creates a StreamTransport.
func NewStreamTransport(rw io.ReadWriter) *StreamTransport {
	return NewStreamTransportSize(rw, DefaultQueueSize)
}

// NewStreamTransportSize creates a StreamTransport with receive queue size.
func NewStreamTransportSize(rw io.ReadWriter, size int) *StreamTransport {
	return &StreamTransport{ReadWriter: rw, recvCh: make(chan byte, size)}
}

// Write implements io.Writer.
func (s *StreamTransport) Write(p []byte) (int, error) {
	return s.ReadWriter.Write(p)
}

// Available implements Transport.
func (s *StreamTransport) Available() int {
	return len(s.recvCh)
}

// ReadByte implements Transport.
func (s *StreamTransport) ReadByte() (byte, error) {
	select {
	case b := <-s.recvCh:
		return b, nil
	default:
		return 0, ErrNoData
	}
}

// Run reads from ReadWriter into the receive queue until an error happens
// or ctx is done. The queue applies back pressure when it's full.
// A blocked Read is not interrupted by ctx, close the underlying stream
// for that (see framework.RunWithContextCloser).
func (s *StreamTransport) Run(ctx context.Context) error {
	buf := make([]byte, 64)
	for {
		n, err := s.ReadWriter.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.recvCh <- b:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}
