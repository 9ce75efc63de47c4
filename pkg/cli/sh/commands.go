package sh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

// Exec is what a Command runs against.
type Exec struct {
	Ctx        context.Context
	Player     *mp3.Player
	Out        io.Writer
	OutputJSON bool
}

// Command is a shell command independent of the terminal.
type Command struct {
	Name    string
	Aliases []string
	Help    string
	Run     func(x *Exec, args []string) error
}

// Commands are all shell commands.
var Commands = []*Command{
	actionCmd("play", "play", "[TRACK [VOLUME]]"),
	actionCmd("next", "next", ""),
	actionCmd("prev", "previous", ""),
	actionCmd("folder", "folder", "FOLDER [TRACK]"),
	actionCmd("cycle", "cycle", "[FOLDER] TRACK"),
	actionCmd("cycle-folder", "cycle-folder", "FOLDER"),
	actionCmd("single-cycle", "single-cycle", "1|0, 1 turns it on, 0 off"),
	actionCmd("pause", "pause", ""),
	actionCmd("stop", "stop", ""),
	actionCmd("sleep", "sleep", ""),
	actionCmd("wakeup", "wakeup", ""),
	actionCmd("reset", "reset", ""),
	actionCmd("device", "device", "DEVICE, 2 for micro SD"),
	actionCmd("shuffle", "shuffle", ""),
	actionCmd("status", "query-status", ""),
	{
		Name:    "vol",
		Aliases: []string{"volume"},
		Help:    "[VOLUME|+|-], query volume without argument",
		Run: func(x *Exec, args []string) error {
			if len(args) == 1 {
				switch args[0] {
				case "+":
					return x.DoAction("volume-up", nil)
				case "-":
					return x.DoAction("volume-down", nil)
				}
				return x.DoAction("volume", args)
			}
			if len(args) == 0 {
				return x.DoAction("query-volume", nil)
			}
			return fmt.Errorf("vol: unexpected %d arguments", len(args))
		},
	},
	{
		Name: "query",
		Help: "status|volume|total|song|folder-total|folders",
		Run: func(x *Exec, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("query: expect 1 argument")
			}
			return x.DoAction("query-"+args[0], nil)
		},
	},
	{
		Name: "do",
		Help: "ACTION [ARGS...], actions: " + strings.Join(mp3.ActionNames(), " "),
		Run: func(x *Exec, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("do: action expected")
			}
			return x.DoAction(args[0], args[1:])
		},
	},
	{
		Name:    "raw",
		Aliases: []string{"send"},
		Help:    "CMD [DATA1 [DATA2]], bytes in decimal or 0x hex, not validated",
		Run: func(x *Exec, args []string) error {
			if len(args) < 1 || len(args) > 3 {
				return fmt.Errorf("raw: expect 1 to 3 arguments")
			}
			var vals [3]byte
			for n, arg := range args {
				v, err := ParseByte(arg)
				if err != nil {
					return err
				}
				vals[n] = v
			}
			if err := x.Player.SendCommand(x.Ctx, frame.Command(vals[0]), vals[1], vals[2]); err != nil {
				return err
			}
			return x.PrintAnswers(false)
		},
	},
	{
		Name:    "answer",
		Aliases: []string{"a"},
		Help:    "decode pending response frames",
		Run: func(x *Exec, args []string) error {
			return x.PrintAnswers(true)
		},
	},
	{
		Name: "init",
		Help: "reset the module and select micro SD",
		Run: func(x *Exec, args []string) error {
			if err := x.Player.Init(x.Ctx); err != nil {
				return err
			}
			return x.PrintAnswers(false)
		},
	},
}

func actionCmd(name, action, help string) *Command {
	return &Command{
		Name: name,
		Help: help,
		Run: func(x *Exec, args []string) error {
			return x.DoAction(action, args)
		},
	}
}

// ParseAction parses an action with arguments from the command line.
func ParseAction(name string, args []string) (mp3.Action, error) {
	vals := make([]int, len(args))
	for n, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return mp3.Action{}, fmt.Errorf("%s: invalid argument %q", name, arg)
		}
		vals[n] = v
	}
	return mp3.ParseAction(name, vals...)
}

// ParseByte parses a byte in decimal, 0x hex or 0 octal.
func ParseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q", s)
	}
	return byte(v), nil
}

// DoAction runs the named action and prints the answers.
func (x *Exec) DoAction(name string, args []string) error {
	a, err := ParseAction(name, args)
	if err != nil {
		return err
	}
	if err := x.Player.Do(x.Ctx, a); err != nil {
		return err
	}
	return x.PrintAnswers(false)
}

// PrintAnswers prints every pending response frame. With
// reportEmpty, it tells when there was none.
func (x *Exec) PrintAnswers(reportEmpty bool) error {
	var count int
	for {
		f, err := x.Player.ReadFrame(x.Ctx)
		if err != nil {
			return err
		}
		if f == nil {
			break
		}
		count++
		if x.OutputJSON {
			out, err := json.Marshal(x.Player.TakeLast())
			if err != nil {
				return err
			}
			fmt.Fprintln(x.Out, string(out))
			continue
		}
		fmt.Fprintln(x.Out, x.Player.DecodeLast())
	}
	if count == 0 && reportEmpty {
		fmt.Fprintln(x.Out, "No answer")
	}
	return nil
}
