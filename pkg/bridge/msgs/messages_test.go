package msgs

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestCommandRequestWire(t *testing.T) {
	payload, err := proto.Marshal(&CommandRequest{Action: "play", Args: []uint32{1, 20}})
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 4, 'p', 'l', 'a', 'y', 0x12, 2, 1, 20}, payload)

	var req CommandRequest
	require.NoError(t, proto.Unmarshal(payload, &req))
	require.Equal(t, []int{1, 20}, req.IntArgs())
}
