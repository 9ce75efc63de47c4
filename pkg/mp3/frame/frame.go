package frame

import (
	"fmt"
	"io"
	"strings"
)

// Frame markers and fixed header bytes.
const (
	StartByte   byte = 0x7E
	VersionByte byte = 0xFF
	LengthByte  byte = 0x06
	EndByte     byte = 0xEF
	FeedbackOn  byte = 0x01
)

// Frame sizes.
const (
	CommandFrameSize  = 8
	ResponseFrameSize = 10
)

// Offsets of the meaningful bytes.
const (
	offsetCode  = 3
	offsetData1 = 5
	offsetData2 = 6
	offsetData  = 6
)

// CommandFrame is an encoded command ready to be sent.
type CommandFrame [CommandFrameSize]byte

// Encode builds the command frame. Neither the command nor the data bytes
// are checked, range validation is up to the caller.
func Encode(cmd Command, data1, data2 byte) CommandFrame {
	return CommandFrame{
		StartByte,
		VersionByte,
		LengthByte,
		byte(cmd),
		FeedbackOn,
		data1,
		data2,
		EndByte,
	}
}

// Command returns the command code.
func (f CommandFrame) Command() Command {
	return Command(f[offsetCode])
}

// Data returns both data bytes (high, low).
func (f CommandFrame) Data() (byte, byte) {
	return f[offsetData1], f[offsetData2]
}

// Bytes returns encoded bytes for sending.
func (f CommandFrame) Bytes() []byte {
	b := make([]byte, CommandFrameSize)
	copy(b, f[:])
	return b
}

// WriteTo implements io.WriterTo.
func (f CommandFrame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f[:])
	return int64(n), err
}

// String implements fmt.Stringer.
func (f CommandFrame) String() string {
	return HexDump(f[:])
}

// ResponseFrame is a response received from the module. A frame cut short
// by an early end marker keeps only the bytes received; the remaining
// positions read as zero.
type ResponseFrame struct {
	raw  [ResponseFrameSize]byte
	size int
}

// NewResponseFrame creates a ResponseFrame from raw bytes.
func NewResponseFrame(b []byte) (*ResponseFrame, error) {
	if len(b) > ResponseFrameSize {
		return nil, fmt.Errorf("response frame too long: %d bytes", len(b))
	}
	f := &ResponseFrame{size: len(b)}
	copy(f.raw[:], b)
	return f, nil
}

// Code returns the response code.
func (f *ResponseFrame) Code() ResponseCode {
	return ResponseCode(f.raw[offsetCode])
}

// Data returns the additional data byte.
func (f *ResponseFrame) Data() byte {
	return f.raw[offsetData]
}

// ClearCode zeroes the response code, marking the frame as consumed.
func (f *ResponseFrame) ClearCode() {
	f.raw[offsetCode] = 0
}

// Len returns the number of bytes received.
func (f *ResponseFrame) Len() int {
	return f.size
}

// Bytes returns the raw bytes received.
func (f *ResponseFrame) Bytes() []byte {
	b := make([]byte, f.size)
	copy(b, f.raw[:f.size])
	return b
}

// IsComplete indicates the frame has the full size and is bounded by
// start and end markers.
func (f *ResponseFrame) IsComplete() bool {
	return f.size == ResponseFrameSize &&
		f.raw[0] == StartByte && f.raw[ResponseFrameSize-1] == EndByte
}

// String implements fmt.Stringer.
func (f *ResponseFrame) String() string {
	return HexDump(f.raw[:f.size])
}

// HexDump formats bytes the way the module datasheet prints them,
// e.g. "0X7E 0XFF ".
func HexDump(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, "0X%02X ", v)
	}
	return sb.String()
}
