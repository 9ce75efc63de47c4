package frame

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	testCases := []struct {
		code   ResponseCode
		data   byte
		expect string
	}{
		{RspCardInserted, 0, "MicroSD card inserted"},
		{RspCardRemoved, 0, "MicroSD card removed"},
		{RspPlayCompleted, 7, "Completed play num 7"},
		{RspCardReady, 2, "MicroSD ready"},
		{RspCardReady, 1, ""},
		{RspError, 0, "Error"},
		{RspAck, 0, "Data received correctly"},
		{RspStatus, 0, "Status: stopped"},
		{RspStatus, 1, "Status: playing"},
		{RspStatus, 2, "Status: paused"},
		{RspStatus, 99, ""},
		{RspVolume, 30, "Vol playing: 30"},
		{RspFileCount, 12, "File count: 12"},
		{RspPlaying, 255, "Playing: 255"},
		{RspFolderFileCount, 4, "Folder file count: 4"},
		{RspFolderCount, 0, "Folder count: 0"},
	}
	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			desc, known := Describe(tc.code, tc.data)
			require.True(t, known)
			require.Equal(t, tc.expect, desc)
		})
	}
}

func TestDescribeUnknown(t *testing.T) {
	for _, code := range []ResponseCode{0, 0x01, 0x3c, 0x3e, 0x44, 0x50, 0xff} {
		desc, known := Describe(code, 1)
		require.False(t, known, "code %s", code)
		require.Empty(t, desc)
	}
}

func TestDecode(t *testing.T) {
	f, err := NewResponseFrame([]byte{0x7e, 0xff, 0x06, 0x42, 0x00, 0x00, 0x01, 0xfe, 0xba, 0xef})
	require.NoError(t, err)
	r := Decode(f)
	require.Equal(t, RspStatus, r.Code)
	require.Equal(t, byte(1), r.Data)
	require.Equal(t, "Status: playing", r.Description)
	require.NoError(t, r.Err())
	require.Equal(t, "0X7E 0XFF 0X06 0X42 0X00 0X00 0X01 0XFE 0XBA 0XEF  -> Status: playing", r.String())

	f, err = NewResponseFrame([]byte{0x7e, 0xff, 0x06, 0x55, 0x00, 0x00, 0x01, 0xfe, 0xba, 0xef})
	require.NoError(t, err)
	r = Decode(f)
	require.False(t, r.Known)
	require.Empty(t, r.Description)
	require.Equal(t, "0X7E 0XFF 0X06 0X55 0X00 0X00 0X01 0XFE 0XBA 0XEF ", r.String())
	require.Equal(t, &UnknownResponseError{Code: 0x55}, r.Err())
	require.EqualError(t, r.Err(), "unknown response code 0x55")
}

func TestResponseJSON(t *testing.T) {
	f, err := NewResponseFrame([]byte{0x7e, 0xff, 0x06, 0x42, 0x00, 0x00, 0x01, 0xfe, 0xba, 0xef})
	require.NoError(t, err)
	out, err := json.Marshal(Decode(f))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"Code": 66,
		"Data": 1,
		"Raw": "0X7E 0XFF 0X06 0X42 0X00 0X00 0X01 0XFE 0XBA 0XEF",
		"Description": "Status: playing",
		"Known": true
	}`, string(out))
}
