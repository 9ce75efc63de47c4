package frame

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// describeFunc renders the description of a response from its data byte.
// An empty string means nothing to report for this data value.
type describeFunc func(data byte) string

func fixed(text string) describeFunc {
	return func(byte) string { return text }
}

func withData(prefix string) describeFunc {
	return func(data byte) string { return prefix + strconv.Itoa(int(data)) }
}

func lookup(values map[byte]string) describeFunc {
	return func(data byte) string { return values[data] }
}

var descriptions = map[ResponseCode]describeFunc{
	RspCardInserted:  fixed("MicroSD card inserted"),
	RspCardRemoved:   fixed("MicroSD card removed"),
	RspPlayCompleted: withData("Completed play num "),
	RspCardReady:     lookup(map[byte]string{DeviceMicroSD: "MicroSD ready"}),
	RspError:         fixed("Error"),
	RspAck:           fixed("Data received correctly"),
	RspStatus: lookup(map[byte]string{
		StatusStopped: "Status: stopped",
		StatusPlaying: "Status: playing",
		StatusPaused:  "Status: paused",
	}),
	RspVolume:          withData("Vol playing: "),
	RspFileCount:       withData("File count: "),
	RspPlaying:         withData("Playing: "),
	RspFolderFileCount: withData("Folder file count: "),
	RspFolderCount:     withData("Folder count: "),
}

// Describe maps a response code and its data to a description.
// known is false if the code is undocumented, in which case the
// description is empty.
func Describe(code ResponseCode, data byte) (desc string, known bool) {
	fn, known := descriptions[code]
	if !known {
		return "", false
	}
	return fn(data), true
}

// UnknownResponseError reports an undocumented response code.
// It's informational, the frame itself was received fine.
type UnknownResponseError struct {
	Code ResponseCode
}

// Error implements error.
func (e *UnknownResponseError) Error() string {
	return fmt.Sprintf("unknown response code %s", e.Code)
}

// Response is a decoded response frame.
type Response struct {
	Code        ResponseCode
	Data        byte
	Raw         []byte
	Description string
	Known       bool
}

// Decode decodes a response frame. It never fails, see Response.Err.
func Decode(f *ResponseFrame) Response {
	r := Response{Code: f.Code(), Data: f.Data(), Raw: f.Bytes()}
	r.Description, r.Known = Describe(r.Code, r.Data)
	return r
}

// Err returns *UnknownResponseError if the code is undocumented.
func (r Response) Err() error {
	if r.Known {
		return nil
	}
	return &UnknownResponseError{Code: r.Code}
}

// MarshalJSON renders Raw as the hex dump instead of base64.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code        ResponseCode
		Data        byte
		Raw         string
		Description string
		Known       bool
	}{r.Code, r.Data, strings.TrimSpace(HexDump(r.Raw)), r.Description, r.Known})
}

// String renders the raw bytes followed by the description if any,
// e.g. "0X7E ... 0XEF  -> Status: playing".
func (r Response) String() string {
	s := HexDump(r.Raw)
	if r.Description != "" {
		s += " -> " + r.Description
	}
	return s
}
