package mp3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an argument outside the documented
	// device range. Returned errors are *ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTimeout indicates the end marker of a started frame didn't arrive
	// within Timing.FrameTimeout.
	ErrTimeout = errors.New("frame timeout")
	// ErrFrameOverflow indicates a frame longer than a response frame
	// without an end marker. The bytes are dropped.
	ErrFrameOverflow = errors.New("frame overflow")
	// ErrNoData is returned by Transport.ReadByte when nothing is available.
	ErrNoData = errors.New("no data available")
)

// ArgumentError reports an out-of-range argument.
type ArgumentError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be within %d-%d", e.Name, e.Value, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrInvalidArgument) work.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func checkRange(name string, value, min, max int) error {
	if value < min || value > max {
		return &ArgumentError{Name: name, Value: value, Min: min, Max: max}
	}
	return nil
}
