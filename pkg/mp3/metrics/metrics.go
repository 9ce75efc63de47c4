// Package metrics exposes link events as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/serialmp3.go/pkg/mp3"
)

// NewRegistry creates a registry with Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler returns the HTTP handler serving reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Recorder implements mp3.EventRecorder by counting events.
type Recorder struct {
	CommandsSent     *prometheus.CounterVec // labels: command
	FramesReceived   *prometheus.CounterVec // labels: code
	UnknownResponses prometheus.Counter
	FrameTimeouts    prometheus.Counter
	FrameOverflows   prometheus.Counter
}

// NewRecorder creates a Recorder and registers its metrics.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		CommandsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mp3_commands_sent_total",
			Help: "Command frames written to the module.",
		}, []string{"command"}),
		FramesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mp3_frames_received_total",
			Help: "Response frames reassembled, by response code.",
		}, []string{"code"}),
		UnknownResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mp3_unknown_responses_total",
			Help: "Response frames with an undocumented code.",
		}),
		FrameTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mp3_frame_timeouts_total",
			Help: "Frames abandoned waiting for the end marker.",
		}),
		FrameOverflows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mp3_frame_overflows_total",
			Help: "Frames dropped for exceeding the response size.",
		}),
	}
	reg.MustRegister(r.CommandsSent, r.FramesReceived, r.UnknownResponses, r.FrameTimeouts, r.FrameOverflows)
	return r
}

// RecordEvent implements mp3.EventRecorder.
func (r *Recorder) RecordEvent(ev mp3.Event) {
	switch e := ev.(type) {
	case *mp3.SendEvent:
		r.CommandsSent.WithLabelValues(e.Frame.Command().String()).Inc()
	case *mp3.ReceiveEvent:
		r.FramesReceived.WithLabelValues(e.Response.Code.String()).Inc()
		if !e.Response.Known {
			r.UnknownResponses.Inc()
		}
	case *mp3.TimeoutEvent:
		r.FrameTimeouts.Inc()
	case *mp3.OverflowEvent:
		r.FrameOverflows.Inc()
	}
}
