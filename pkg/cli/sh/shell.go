package sh

import (
	"bytes"
	"context"
	"flag"
	"os"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	fx "github.com/robotalks/serialmp3.go/pkg/framework"
	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/port"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell  *ishell.Shell
	Player *mp3.Player
}

var (
	// flags

	evalOnly     bool
	outputJSON   bool
	portAddr     = os.Getenv("MP3_PORT")
	baud         = port.DefaultBaud
	frameTimeout = mp3.DefaultTiming.FrameTimeout
	skipInit     bool
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print responses in JSON.")
	flag.StringVar(&portAddr, "port", portAddr, "Serial device, tcp:// or ws:// URL")
	flag.IntVar(&baud, "baud", baud, "Serial baud rate")
	flag.DurationVar(&frameTimeout, "frame-timeout", frameTimeout, "Max wait for a frame end marker, 0 waits forever")
	flag.BoolVar(&skipInit, "no-init", skipInit, "Skip module reset on start.")
}

// New creates a new shell.
func New(player *mp3.Player) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Player: player,
	}
	s.Shell.SetPrompt("mp3 > ")
	for _, cmd := range Commands {
		s.Shell.AddCmd(s.wrap(cmd))
	}
	return s
}

func (s *Shell) wrap(cmd *Command) *ishell.Cmd {
	return &ishell.Cmd{
		Name:    cmd.Name,
		Aliases: cmd.Aliases,
		Help:    cmd.Help,
		Func: func(c *ishell.Context) {
			var out bytes.Buffer
			x := &Exec{
				Ctx:        context.Background(),
				Player:     s.Player,
				Out:        &out,
				OutputJSON: s.OutputJSON,
			}
			err := cmd.Run(x, c.Args)
			if out.Len() > 0 {
				c.Print(out.String())
			}
			if err != nil {
				c.Err(err)
			}
		},
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			glog.Exit(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	glog.Exit("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	if portAddr == "" {
		glog.Exit("-port or MP3_PORT is required")
	}
	conn, err := port.Open(portAddr, baud)
	if err != nil {
		glog.Exitf("open %s: %v", portAddr, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	transport := mp3.NewStreamTransport(conn)
	go func() {
		err := fx.RunWithContextCloser(ctx, conn, func() error { return transport.Run(ctx) })
		if err != nil && err != context.Canceled {
			glog.Errorf("link %s: %v", portAddr, err)
		}
	}()

	player := mp3.NewPlayer(transport)
	player.Timing.FrameTimeout = frameTimeout
	player.Recorder = &mp3.GlogRecorder{Level: 1}
	if !skipInit {
		initCtx, initCancel := context.WithTimeout(ctx, 5*time.Second)
		err := player.Init(initCtx)
		initCancel()
		if err != nil {
			glog.Exitf("init: %v", err)
		}
	}
	New(player).Run(flag.Args()...)
}
