package mp3

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type chanReadWriter struct {
	readCh  <-chan byte
	writeCh chan byte
}

func (c *chanReadWriter) Read(p []byte) (int, error) {
	b, ok := <-c.readCh
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

func (c *chanReadWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		c.writeCh <- b
	}
	return len(p), nil
}

func TestStreamTransportRead(t *testing.T) {
	in := []byte{0x7e, 0xff, 0x06, 0x3a, 0x00, 0x00, 0x02, 0xfe, 0xba, 0xef}
	var out bytes.Buffer
	s := NewStreamTransport(struct {
		io.Reader
		io.Writer
	}{bytes.NewReader(in), &out})

	require.Zero(t, s.Available())
	_, err := s.ReadByte()
	require.Equal(t, ErrNoData, err)

	require.Equal(t, io.EOF, s.Run(context.TODO()))
	require.Equal(t, len(in), s.Available())
	for i := range in {
		b, err := s.ReadByte()
		require.NoError(t, err)
		require.Equalf(t, in[i], b, "byte[%d] mismatch", i)
	}
	require.Zero(t, s.Available())

	n, err := s.Write([]byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{1, 2}, out.Bytes())
}

func TestStreamTransportPlayer(t *testing.T) {
	readCh, writeCh := make(chan byte), make(chan byte, 16)
	s := NewStreamTransport(&chanReadWriter{readCh: readCh, writeCh: writeCh})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	p := NewPlayer(s)
	p.Timing = Timing{FrameTimeout: time.Second, Poll: time.Millisecond}
	require.NoError(t, p.QueryVolume(ctx))
	for i, b := range cmdFrame(0x43, 0, 0) {
		require.Equalf(t, b, <-writeCh, "byte[%d] mismatch", i)
	}

	for _, b := range []byte{0x7e, 0xff, 0x06, 0x43, 0x00, 0x00, 0x14, 0xfe, 0xba, 0xef} {
		readCh <- b
	}
	require.Eventually(t, func() bool { return p.Available() == 10 }, time.Second, time.Millisecond)
	answer, err := p.Answer(ctx)
	require.NoError(t, err)
	require.Contains(t, answer, "Vol playing: 20")

	close(readCh)
	require.Equal(t, io.EOF, <-errCh)
}
