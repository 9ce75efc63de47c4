package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

func TestRecorder(t *testing.T) {
	reg := NewRegistry()
	r := NewRecorder(reg)

	r.RecordEvent(&mp3.SendEvent{Frame: frame.Encode(frame.CmdPlay, 0, 0)})
	r.RecordEvent(&mp3.SendEvent{Frame: frame.Encode(frame.CmdPlay, 0, 0)})
	r.RecordEvent(&mp3.ReceiveEvent{Response: frame.Response{Code: frame.RspStatus, Known: true}})
	r.RecordEvent(&mp3.ReceiveEvent{Response: frame.Response{Code: 0x55}})
	r.RecordEvent(&mp3.TimeoutEvent{})
	r.RecordEvent(&mp3.OverflowEvent{})

	require.Equal(t, 2.0, testutil.ToFloat64(r.CommandsSent.WithLabelValues("PLAY")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.FramesReceived.WithLabelValues("0x42")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.FramesReceived.WithLabelValues("0x55")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.UnknownResponses))
	require.Equal(t, 1.0, testutil.ToFloat64(r.FrameTimeouts))
	require.Equal(t, 1.0, testutil.ToFloat64(r.FrameOverflows))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `mp3_commands_sent_total{command="PLAY"} 2`))
}
