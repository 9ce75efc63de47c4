package frame

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    Command
		d1, d2 byte
		expect []byte
	}{
		{"no data", CmdPlay, 0, 0, []byte{0x7e, 0xff, 0x06, 0x0d, 0x01, 0x00, 0x00, 0xef}},
		{"low data", CmdPlayIndex, 0, 5, []byte{0x7e, 0xff, 0x06, 0x03, 0x01, 0x00, 0x05, 0xef}},
		{"both data", CmdPlayFolderFile, 2, 9, []byte{0x7e, 0xff, 0x06, 0x0f, 0x01, 0x02, 0x09, 0xef}},
		{"markers as data", CmdPlayVolume, StartByte, EndByte, []byte{0x7e, 0xff, 0x06, 0x22, 0x01, 0x7e, 0xef, 0xef}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := Encode(tc.cmd, tc.d1, tc.d2)
			require.Equal(t, tc.expect, f.Bytes())
			require.Equal(t, tc.cmd, f.Command())
			var buf bytes.Buffer
			n, err := f.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, int64(CommandFrameSize), n)
			require.Equal(t, tc.expect, buf.Bytes())
		})
	}
}

func TestEncodeFixedBytes(t *testing.T) {
	for cmd := 0; cmd < 0x100; cmd++ {
		for _, data := range [][2]byte{{0, 0}, {0, 1}, {0x1e, 0xff}, {0xff, 0xff}} {
			b := Encode(Command(cmd), data[0], data[1]).Bytes()
			require.Len(t, b, CommandFrameSize)
			require.Equal(t, []byte{0x7e, 0xff, 0x06}, b[:3])
			require.Equal(t, byte(cmd), b[3])
			require.Equal(t, FeedbackOn, b[4])
			require.Equal(t, data[0], b[5])
			require.Equal(t, data[1], b[6])
			require.Equal(t, EndByte, b[7])
		}
	}
}

func TestHexDump(t *testing.T) {
	require.Equal(t, "", HexDump(nil))
	require.Equal(t, "0X7E 0X0D 0XEF ", HexDump([]byte{0x7e, 0x0d, 0xef}))
	require.Equal(t, "0X7E 0XFF 0X06 0X09 0X01 0X00 0X02 0XEF ", Encode(CmdSelectDevice, 0, DeviceMicroSD).String())
}

func TestResponseFrame(t *testing.T) {
	raw := []byte{0x7e, 0xff, 0x06, 0x42, 0x00, 0x00, 0x01, 0xfe, 0xba, 0xef}
	f, err := NewResponseFrame(raw)
	require.NoError(t, err)
	require.True(t, f.IsComplete())
	require.Equal(t, RspStatus, f.Code())
	require.Equal(t, byte(1), f.Data())
	require.Equal(t, raw, f.Bytes())
	f.ClearCode()
	require.Equal(t, ResponseCode(0), f.Code())
	require.Equal(t, byte(1), f.Data())

	short, err := NewResponseFrame([]byte{0x7e, 0xff, 0xef})
	require.NoError(t, err)
	require.False(t, short.IsComplete())
	require.Equal(t, 3, short.Len())
	require.Equal(t, ResponseCode(0), short.Code())

	_, err = NewResponseFrame(make([]byte, ResponseFrameSize+1))
	require.Error(t, err)
}

func TestCommandString(t *testing.T) {
	require.Equal(t, "PLAY_VOLUME", CmdPlayVolume.String())
	require.Equal(t, "CMD(0x7F)", Command(0x7f).String())
	require.True(t, CmdQuerySong.IsQuery())
	require.False(t, CmdPlay.IsQuery())
	for _, c := range []Command{0x44, 0x45, 0x47, 0x49, 0x4B, 0x4D} {
		require.False(t, c.IsQuery(), c.String())
	}
}
