package sh

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

type testTransport struct {
	lock sync.Mutex
	in   []byte
	out  []byte
}

func (t *testTransport) Write(p []byte) (int, error) {
	t.lock.Lock()
	t.out = append(t.out, p...)
	t.lock.Unlock()
	return len(p), nil
}

func (t *testTransport) Available() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.in)
}

func (t *testTransport) ReadByte() (byte, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if len(t.in) == 0 {
		return 0, mp3.ErrNoData
	}
	b := t.in[0]
	t.in = t.in[1:]
	return b, nil
}

func findCommand(name string) *Command {
	for _, cmd := range Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func run(t *testing.T, in []byte, name string, args ...string) (string, []byte, error) {
	cmd := findCommand(name)
	require.NotNil(t, cmd, name)
	tr := &testTransport{in: in}
	p := mp3.NewPlayer(tr)
	p.Timing = mp3.Timing{FrameTimeout: 50 * time.Millisecond, Poll: time.Millisecond}
	var out bytes.Buffer
	err := cmd.Run(&Exec{Ctx: context.Background(), Player: p, Out: &out}, args)
	return out.String(), tr.out, err
}

var ackFrame = []byte{0x7E, 0xFF, 0x06, 0x41, 0x00, 0x00, 0x00, 0xFE, 0xBA, 0xEF}

func TestCommandsSend(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		expect frame.CommandFrame
	}{
		{"play", nil, frame.Encode(frame.CmdPlay, 0, 0)},
		{"play", []string{"3"}, frame.Encode(frame.CmdPlayIndex, 0, 3)},
		{"play", []string{"3", "15"}, frame.Encode(frame.CmdPlayVolume, 15, 3)},
		{"prev", nil, frame.Encode(frame.CmdPrevious, 0, 0)},
		{"vol", []string{"+"}, frame.Encode(frame.CmdVolumeUp, 0, 0)},
		{"vol", []string{"-"}, frame.Encode(frame.CmdVolumeDown, 0, 0)},
		{"vol", []string{"12"}, frame.Encode(frame.CmdSetVolume, 0, 12)},
		{"vol", nil, frame.Encode(frame.CmdQueryVolume, 0, 0)},
		{"status", nil, frame.Encode(frame.CmdQueryStatus, 0, 0)},
		{"query", []string{"folders"}, frame.Encode(frame.CmdQueryTotalFolder, 0, 0)},
		{"do", []string{"shuffle"}, frame.Encode(frame.CmdShuffle, 0, 0)},
		{"raw", []string{"0x0F", "1", "2"}, frame.Encode(frame.CmdPlayFolderFile, 1, 2)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, sent, err := run(t, nil, tc.name, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect.Bytes(), sent)
		})
	}
}

func TestCommandsPrintAnswers(t *testing.T) {
	out, _, err := run(t, ackFrame, "next")
	require.NoError(t, err)
	assert.Equal(t, "0X7E 0XFF 0X06 0X41 0X00 0X00 0X00 0XFE 0XBA 0XEF  -> Data received correctly\n", out)

	out, sent, err := run(t, nil, "answer")
	require.NoError(t, err)
	assert.Empty(t, sent)
	assert.Equal(t, "No answer\n", out)
}

func TestCommandsJSON(t *testing.T) {
	tr := &testTransport{in: ackFrame}
	var out bytes.Buffer
	x := &Exec{Ctx: context.Background(), Player: mp3.NewPlayer(tr), Out: &out, OutputJSON: true}
	x.Player.Timing = mp3.Timing{}
	require.NoError(t, x.PrintAnswers(true))
	assert.Contains(t, out.String(), `"Code":65`)
	assert.Contains(t, out.String(), `"Raw":"0X7E 0XFF 0X06 0X41 0X00 0X00 0X00 0XFE 0XBA 0XEF"`)
	assert.Contains(t, out.String(), `"Known":true`)
	assert.NotContains(t, x.Player.DecodeLast(), "->")
}

func TestParseActionSingleCycle(t *testing.T) {
	a, err := ParseAction("single-cycle", []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, frame.CmdSetSingleCycle, a.Command)
	assert.Equal(t, byte(0), a.Data2)

	a, err = ParseAction("single-cycle", []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, byte(1), a.Data2)
	assert.Contains(t, findCommand("single-cycle").Help, "1 turns it on")
}

func TestCommandsErrors(t *testing.T) {
	_, sent, err := run(t, nil, "vol", "31")
	require.EqualError(t, err, "invalid volume 31: must be within 0-30")
	assert.Empty(t, sent)

	_, _, err = run(t, nil, "play", "x")
	require.EqualError(t, err, `play: invalid argument "x"`)

	_, _, err = run(t, nil, "query", "weather")
	require.EqualError(t, err, `unknown action "query-weather"`)

	_, _, err = run(t, nil, "raw", "256")
	require.EqualError(t, err, `invalid byte "256"`)

	_, _, err = run(t, nil, "next", "1")
	require.EqualError(t, err, "next: unexpected 1 arguments")
}

func TestParseByte(t *testing.T) {
	for s, v := range map[string]byte{"0x4E": 0x4E, "78": 78, "0": 0, "255": 255} {
		b, err := ParseByte(s)
		require.NoError(t, err)
		assert.Equal(t, v, b, s)
	}
	_, err := ParseByte("-1")
	require.Error(t, err)
}
