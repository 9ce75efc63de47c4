package frame

import "fmt"

// Command identifies an operation sent to the module.
type Command byte

// Control commands.
const (
	CmdNext           Command = 0x01 // next song
	CmdPrevious       Command = 0x02 // previous song
	CmdPlayIndex      Command = 0x03 // play song i (1-255)
	CmdVolumeUp       Command = 0x04
	CmdVolumeDown     Command = 0x05
	CmdSetVolume      Command = 0x06 // 0-30
	CmdSingleCycle    Command = 0x08 // single cycle play
	CmdSelectDevice   Command = 0x09 // storage device, microSD is 2
	CmdSleep          Command = 0x0A
	CmdWakeUp         Command = 0x0B
	CmdReset          Command = 0x0C
	CmdPlay           Command = 0x0D
	CmdPause          Command = 0x0E
	CmdPlayFolderFile Command = 0x0F // folder in D1, file in D2
	CmdStop           Command = 0x16
	CmdCycleFolder    Command = 0x17
	CmdShuffle        Command = 0x18
	CmdSetSingleCycle Command = 0x19
	CmdPlayVolume     Command = 0x22 // volume in D1, song in D2
)

// Query commands.
const (
	CmdQueryStatus          Command = 0x42
	CmdQueryVolume          Command = 0x43
	CmdQueryTotalSong       Command = 0x48
	CmdQuerySong            Command = 0x4C
	CmdQueryTotalSongFolder Command = 0x4E
	CmdQueryTotalFolder     Command = 0x4F
)

// DeviceMicroSD is the storage device selector for the microSD card.
const DeviceMicroSD byte = 2

var commandNames = map[Command]string{
	CmdNext:                 "NEXT",
	CmdPrevious:             "PREVIOUS",
	CmdPlayIndex:            "PLAY_INDEX",
	CmdVolumeUp:             "VOL_UP",
	CmdVolumeDown:           "VOL_DOWN",
	CmdSetVolume:            "SET_VOLUME",
	CmdSingleCycle:          "SINGLE_CYCLE_PLAY",
	CmdSelectDevice:         "SELECT_DEVICE",
	CmdSleep:                "SLEEP",
	CmdWakeUp:               "WAKE",
	CmdReset:                "RESET",
	CmdPlay:                 "PLAY",
	CmdPause:                "PAUSE",
	CmdPlayFolderFile:       "PLAY_FOLDER_FILE",
	CmdStop:                 "STOP",
	CmdCycleFolder:          "CYCLE_FOLDER",
	CmdShuffle:              "SHUFFLE",
	CmdSetSingleCycle:       "SET_SINGLE_CYCLE",
	CmdPlayVolume:           "PLAY_VOLUME",
	CmdQueryStatus:          "QUERY_STATUS",
	CmdQueryVolume:          "QUERY_VOLUME",
	CmdQueryTotalSong:       "QUERY_TOTAL_SONG",
	CmdQuerySong:            "QUERY_SONG",
	CmdQueryTotalSongFolder: "QUERY_TOTAL_SONG_FOLDER",
	CmdQueryTotalFolder:     "QUERY_TOTAL_FOLDER",
}

// String implements fmt.Stringer.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CMD(0x%02X)", byte(c))
}

// IsQuery indicates the command asks the module for information.
func (c Command) IsQuery() bool {
	switch c {
	case CmdQueryStatus, CmdQueryVolume, CmdQueryTotalSong,
		CmdQuerySong, CmdQueryTotalSongFolder, CmdQueryTotalFolder:
		return true
	}
	return false
}

// ResponseCode identifies the meaning of a response frame.
type ResponseCode byte

// Response codes.
const (
	RspCardInserted    ResponseCode = 0x3A
	RspCardRemoved     ResponseCode = 0x3B
	RspPlayCompleted   ResponseCode = 0x3D
	RspCardReady       ResponseCode = 0x3F
	RspError           ResponseCode = 0x40
	RspAck             ResponseCode = 0x41
	RspStatus          ResponseCode = 0x42
	RspVolume          ResponseCode = 0x43
	RspFileCount       ResponseCode = 0x48
	RspPlaying         ResponseCode = 0x4C
	RspFolderFileCount ResponseCode = 0x4E
	RspFolderCount     ResponseCode = 0x4F
)

// String implements fmt.Stringer.
func (c ResponseCode) String() string {
	return fmt.Sprintf("0x%02X", byte(c))
}

// Values reported with RspStatus.
const (
	StatusStopped byte = 0
	StatusPlaying byte = 1
	StatusPaused  byte = 2
)
