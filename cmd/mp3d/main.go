package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"net/http"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/robotalks/serialmp3.go/pkg/bridge"
	fx "github.com/robotalks/serialmp3.go/pkg/framework"
	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/metrics"
	"github.com/robotalks/serialmp3.go/pkg/mp3/port"
)

func init() {
	bridge.SetupFlags()
}

func main() {
	flag.Parse()
	conf, err := bridge.NewConfig()
	if err != nil {
		glog.Exit(err)
	}
	if conf.Port == "" {
		glog.Exit("-port or MP3_PORT is required")
	}

	conn, err := port.Open(conf.Port, conf.Baud)
	if err != nil {
		glog.Exitf("open %s: %v", conf.Port, err)
	}
	transport := mp3.NewStreamTransport(conn)

	opts, topicPrefix, err := bridge.ClientOptionsFromURL(conf.MQTTBrokerURL)
	if err != nil {
		glog.Exitf("MQTT URL: %v", err)
	}
	bridge.WillTopic(opts, topicPrefix, conf.ID)
	if opts.ClientID == "" {
		opts.SetClientID("mp3:" + conf.ID)
	}
	queue := bridge.NewQueue(opts, topicPrefix)

	reg := metrics.NewRegistry()
	player := mp3.NewPlayer(transport)
	player.Timing = conf.Timing()
	player.Recorder = mp3.Recorders{&mp3.GlogRecorder{Level: 2}, metrics.NewRecorder(reg)}

	b := bridge.New(conf.ID, player, queue)
	b.Port, b.InitOnStart = conf.Port, true
	b.Attach(queue)

	loop := fx.NewLoop()
	loop.Interval = conf.Interval
	loop.Add(b)
	loop.AddRunnable(fx.NamedRun("link", fx.RunFunc(func(ctx context.Context) error {
		return fx.RunWithContextCloser(ctx, conn, func() error { return transport.Run(ctx) })
	})))
	if conf.MetricsAddr != "" {
		loop.AddRunnable(fx.NamedRun("metrics", metricsServer(conf.MetricsAddr, reg)))
	}

	if token := queue.Connect(); token.Wait() && token.Error() != nil {
		glog.Exitf("MQTT connect %s: %v", conf.MQTTBrokerURL, token.Error())
	}
	glog.Infof("bridging %s as %q", conf.Port, conf.ID)
	err = fx.NewRunner().HandleSignals().Go(loop).Wait()
	queue.Close()
	if err != nil {
		glog.Exit(err)
	}
}

func metricsServer(addr string, reg *prometheus.Registry) fx.Runnable {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	server := &http.Server{Addr: addr, Handler: mux}
	return fx.RunFunc(func(ctx context.Context) error {
		return fx.RunWithContextCloser(ctx, server, server.ListenAndServe)
	})
}
