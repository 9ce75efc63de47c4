package mp3

import (
	"context"
	"fmt"
	"sort"

	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

// Documented argument ranges.
const (
	MinTrack  = 1
	MaxTrack  = 255
	MinVolume = 0
	MaxVolume = 30
	MinFolder = 1
	MaxFolder = 99
	MinDevice = 1
	MaxDevice = 5
)

// Action is a command with its data bytes laid out as the module expects.
// Constructors validate arguments and record any failure in Err.
type Action struct {
	Command frame.Command
	Data1   byte
	Data2   byte
	Err     error
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return fmt.Sprintf("%s(%d, %d)", a.Command, a.Data1, a.Data2)
}

func simple(cmd frame.Command) Action {
	return Action{Command: cmd}
}

func withLow(cmd frame.Command, name string, value, min, max int) Action {
	if err := checkRange(name, value, min, max); err != nil {
		return Action{Command: cmd, Err: err}
	}
	return Action{Command: cmd, Data2: byte(value)}
}

func withFolderTrack(cmd frame.Command, folder, track int) Action {
	if err := checkRange("folder", folder, MinFolder, MaxFolder); err != nil {
		return Action{Command: cmd, Err: err}
	}
	if err := checkRange("track", track, MinTrack, MaxTrack); err != nil {
		return Action{Command: cmd, Err: err}
	}
	return Action{Command: cmd, Data1: byte(folder), Data2: byte(track)}
}

// PlayAction resumes or starts playing.
func PlayAction() Action { return simple(frame.CmdPlay) }

// PlayIndexAction plays track i.
func PlayIndexAction(i int) Action {
	return withLow(frame.CmdPlayIndex, "track", i, MinTrack, MaxTrack)
}

// PlayIndexVolumeAction plays track i at volume. The module expects the
// volume in the high data byte and the track in the low one.
func PlayIndexVolumeAction(i, volume int) Action {
	if err := checkRange("track", i, MinTrack, MaxTrack); err != nil {
		return Action{Command: frame.CmdPlayVolume, Err: err}
	}
	if err := checkRange("volume", volume, MinVolume, MaxVolume); err != nil {
		return Action{Command: frame.CmdPlayVolume, Err: err}
	}
	return Action{Command: frame.CmdPlayVolume, Data1: byte(volume), Data2: byte(i)}
}

// NextAction plays the next track.
func NextAction() Action { return simple(frame.CmdNext) }

// PreviousAction plays the previous track.
func PreviousAction() Action { return simple(frame.CmdPrevious) }

// PlayFolderAction plays folder f. The folder goes to the low data byte.
func PlayFolderAction(f int) Action {
	return withLow(frame.CmdPlayFolderFile, "folder", f, MinFolder, MaxFolder)
}

// PlayFolderFileAction plays file i in folder f.
func PlayFolderFileAction(f, i int) Action {
	return withFolderTrack(frame.CmdPlayFolderFile, f, i)
}

// VolumeUpAction increases volume by one.
func VolumeUpAction() Action { return simple(frame.CmdVolumeUp) }

// VolumeDownAction decreases volume by one.
func VolumeDownAction() Action { return simple(frame.CmdVolumeDown) }

// SetVolumeAction sets volume (0-30).
func SetVolumeAction(volume int) Action {
	return withLow(frame.CmdSetVolume, "volume", volume, MinVolume, MaxVolume)
}

// SingleCyclePlayAction repeats track i.
func SingleCyclePlayAction(i int) Action {
	return withLow(frame.CmdSingleCycle, "track", i, MinTrack, MaxTrack)
}

// SingleCyclePlayFolderAction repeats file i in folder f.
func SingleCyclePlayFolderAction(f, i int) Action {
	return withFolderTrack(frame.CmdSingleCycle, f, i)
}

// PauseAction pauses playing.
func PauseAction() Action { return simple(frame.CmdPause) }

// StopAction stops playing.
func StopAction() Action { return simple(frame.CmdStop) }

// SleepAction puts the chip to sleep.
func SleepAction() Action { return simple(frame.CmdSleep) }

// WakeUpAction wakes the chip up.
func WakeUpAction() Action { return simple(frame.CmdWakeUp) }

// ResetAction resets the chip.
func ResetAction() Action { return simple(frame.CmdReset) }

// SelectDeviceAction selects the storage device.
func SelectDeviceAction(device int) Action {
	return withLow(frame.CmdSelectDevice, "device", device, MinDevice, MaxDevice)
}

// CycleFolderAction plays all files of folder f in a loop.
func CycleFolderAction(f int) Action {
	return withLow(frame.CmdCycleFolder, "folder", f, MinFolder, MaxFolder)
}

// ShuffleAction plays all files in random order.
func ShuffleAction() Action { return simple(frame.CmdShuffle) }

// SetSingleCycleAction turns single cycle of the current track on or off.
// The module uses 0 for on and 1 for off.
func SetSingleCycleAction(on bool) Action {
	a := simple(frame.CmdSetSingleCycle)
	if !on {
		a.Data2 = 1
	}
	return a
}

// QueryAction builds one of the query commands.
func QueryAction(cmd frame.Command) Action {
	if !cmd.IsQuery() {
		return Action{Command: cmd, Err: fmt.Errorf("%s is not a query", cmd)}
	}
	return simple(cmd)
}

// Play resumes or starts playing.
func (p *Player) Play(ctx context.Context) error { return p.Do(ctx, PlayAction()) }

// PlayIndex plays track i.
func (p *Player) PlayIndex(ctx context.Context, i int) error {
	return p.Do(ctx, PlayIndexAction(i))
}

// PlayIndexVolume plays track i at volume.
func (p *Player) PlayIndexVolume(ctx context.Context, i, volume int) error {
	return p.Do(ctx, PlayIndexVolumeAction(i, volume))
}

// Next plays the next track.
func (p *Player) Next(ctx context.Context) error { return p.Do(ctx, NextAction()) }

// Previous plays the previous track.
func (p *Player) Previous(ctx context.Context) error { return p.Do(ctx, PreviousAction()) }

// PlayFolder plays folder f.
func (p *Player) PlayFolder(ctx context.Context, f int) error {
	return p.Do(ctx, PlayFolderAction(f))
}

// PlayFolderFile plays file i in folder f.
func (p *Player) PlayFolderFile(ctx context.Context, f, i int) error {
	return p.Do(ctx, PlayFolderFileAction(f, i))
}

// VolumeUp increases volume by one.
func (p *Player) VolumeUp(ctx context.Context) error { return p.Do(ctx, VolumeUpAction()) }

// VolumeDown decreases volume by one.
func (p *Player) VolumeDown(ctx context.Context) error { return p.Do(ctx, VolumeDownAction()) }

// SetVolume sets volume (0-30).
func (p *Player) SetVolume(ctx context.Context, volume int) error {
	return p.Do(ctx, SetVolumeAction(volume))
}

// SingleCyclePlay repeats track i.
func (p *Player) SingleCyclePlay(ctx context.Context, i int) error {
	return p.Do(ctx, SingleCyclePlayAction(i))
}

// SingleCyclePlayFolder repeats file i in folder f.
func (p *Player) SingleCyclePlayFolder(ctx context.Context, f, i int) error {
	return p.Do(ctx, SingleCyclePlayFolderAction(f, i))
}

// Pause pauses playing.
func (p *Player) Pause(ctx context.Context) error { return p.Do(ctx, PauseAction()) }

// Stop stops playing.
func (p *Player) Stop(ctx context.Context) error { return p.Do(ctx, StopAction()) }

// Sleep puts the chip to sleep.
func (p *Player) Sleep(ctx context.Context) error { return p.Do(ctx, SleepAction()) }

// WakeUp wakes the chip up.
func (p *Player) WakeUp(ctx context.Context) error { return p.Do(ctx, WakeUpAction()) }

// Reset resets the chip.
func (p *Player) Reset(ctx context.Context) error { return p.Do(ctx, ResetAction()) }

// SelectDevice selects the storage device.
func (p *Player) SelectDevice(ctx context.Context, device int) error {
	return p.Do(ctx, SelectDeviceAction(device))
}

// CycleFolder plays all files of folder f in a loop.
func (p *Player) CycleFolder(ctx context.Context, f int) error {
	return p.Do(ctx, CycleFolderAction(f))
}

// Shuffle plays all files in random order.
func (p *Player) Shuffle(ctx context.Context) error { return p.Do(ctx, ShuffleAction()) }

// SetSingleCycle turns single cycle on or off.
func (p *Player) SetSingleCycle(ctx context.Context, on bool) error {
	return p.Do(ctx, SetSingleCycleAction(on))
}

// QueryStatus asks for the playing status.
func (p *Player) QueryStatus(ctx context.Context) error {
	return p.Do(ctx, QueryAction(frame.CmdQueryStatus))
}

// QueryVolume asks for the volume.
func (p *Player) QueryVolume(ctx context.Context) error {
	return p.Do(ctx, QueryAction(frame.CmdQueryVolume))
}

// QueryTotalSong asks for the number of files.
func (p *Player) QueryTotalSong(ctx context.Context) error {
	return p.Do(ctx, QueryAction(frame.CmdQueryTotalSong))
}

// QuerySong asks for the current file.
func (p *Player) QuerySong(ctx context.Context) error {
	return p.Do(ctx, QueryAction(frame.CmdQuerySong))
}

// QueryTotalSongInFolder asks for the number of files in the current folder.
func (p *Player) QueryTotalSongInFolder(ctx context.Context) error {
	return p.Do(ctx, QueryAction(frame.CmdQueryTotalSongFolder))
}

// QueryTotalFolder asks for the number of folders.
func (p *Player) QueryTotalFolder(ctx context.Context) error {
	return p.Do(ctx, QueryAction(frame.CmdQueryTotalFolder))
}

// actionBuilder builds an Action from numeric arguments, keyed by arity.
type actionBuilder map[int]func(args []int) Action

var actionBuilders = map[string]actionBuilder{
	"play": {
		0: func([]int) Action { return PlayAction() },
		1: func(a []int) Action { return PlayIndexAction(a[0]) },
		2: func(a []int) Action { return PlayIndexVolumeAction(a[0], a[1]) },
	},
	"next":     {0: func([]int) Action { return NextAction() }},
	"previous": {0: func([]int) Action { return PreviousAction() }},
	"folder": {
		1: func(a []int) Action { return PlayFolderAction(a[0]) },
		2: func(a []int) Action { return PlayFolderFileAction(a[0], a[1]) },
	},
	"volume-up":   {0: func([]int) Action { return VolumeUpAction() }},
	"volume-down": {0: func([]int) Action { return VolumeDownAction() }},
	"volume":      {1: func(a []int) Action { return SetVolumeAction(a[0]) }},
	"cycle": {
		1: func(a []int) Action { return SingleCyclePlayAction(a[0]) },
		2: func(a []int) Action { return SingleCyclePlayFolderAction(a[0], a[1]) },
	},
	"pause":        {0: func([]int) Action { return PauseAction() }},
	"stop":         {0: func([]int) Action { return StopAction() }},
	"sleep":        {0: func([]int) Action { return SleepAction() }},
	"wakeup":       {0: func([]int) Action { return WakeUpAction() }},
	"reset":        {0: func([]int) Action { return ResetAction() }},
	"device":       {1: func(a []int) Action { return SelectDeviceAction(a[0]) }},
	"cycle-folder": {1: func(a []int) Action { return CycleFolderAction(a[0]) }},
	"shuffle":      {0: func([]int) Action { return ShuffleAction() }},
	"single-cycle": {1: func(a []int) Action { return SetSingleCycleAction(a[0] != 0) }},
	"query-status": {0: func([]int) Action { return QueryAction(frame.CmdQueryStatus) }},
	"query-volume": {0: func([]int) Action { return QueryAction(frame.CmdQueryVolume) }},
	"query-total":  {0: func([]int) Action { return QueryAction(frame.CmdQueryTotalSong) }},
	"query-song":   {0: func([]int) Action { return QueryAction(frame.CmdQuerySong) }},
	"query-folder-total": {
		0: func([]int) Action { return QueryAction(frame.CmdQueryTotalSongFolder) },
	},
	"query-folders": {0: func([]int) Action { return QueryAction(frame.CmdQueryTotalFolder) }},
}

// ActionNames lists the names accepted by ParseAction.
func ActionNames() []string {
	names := make([]string, 0, len(actionBuilders))
	for name := range actionBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAction builds an Action by name and arguments, e.g. ("play", 3, 20).
// Argument errors are returned directly rather than in Action.Err.
func ParseAction(name string, args ...int) (Action, error) {
	builders, ok := actionBuilders[name]
	if !ok {
		return Action{}, fmt.Errorf("unknown action %q", name)
	}
	build, ok := builders[len(args)]
	if !ok {
		return Action{}, fmt.Errorf("%s: unexpected %d arguments", name, len(args))
	}
	a := build(args)
	return a, a.Err
}
