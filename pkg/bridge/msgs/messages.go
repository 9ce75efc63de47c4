// Package msgs defines the protobuf messages exchanged over MQTT.
package msgs

import (
	"github.com/golang/protobuf/proto"
)

// CommandRequest asks the bridge to perform a named action.
type CommandRequest struct {
	Action string   `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	Args   []uint32 `protobuf:"varint,2,rep,packed,name=args,proto3" json:"args,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *CommandRequest) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandRequest) Reset() { *m = CommandRequest{} }

// String implements proto.Message.
func (m *CommandRequest) String() string { return proto.CompactTextString(m) }

// IntArgs converts Args to ints.
func (m *CommandRequest) IntArgs() []int {
	args := make([]int, len(m.Args))
	for n, arg := range m.Args {
		args[n] = int(arg)
	}
	return args
}

// ResponseEvent is a response frame received from the module.
type ResponseEvent struct {
	Code        uint32 `protobuf:"varint,1,opt,name=code,proto3" json:"code,omitempty"`
	Data        uint32 `protobuf:"varint,2,opt,name=data,proto3" json:"data,omitempty"`
	Raw         []byte `protobuf:"bytes,3,opt,name=raw,proto3" json:"raw,omitempty"`
	Description string `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Known       bool   `protobuf:"varint,5,opt,name=known,proto3" json:"known,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *ResponseEvent) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ResponseEvent) Reset() { *m = ResponseEvent{} }

// String implements proto.Message.
func (m *ResponseEvent) String() string { return proto.CompactTextString(m) }

// CommandResult reports the outcome of a CommandRequest.
type CommandResult struct {
	Action string `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	Error  string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *CommandResult) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandResult) Reset() { *m = CommandResult{} }

// String implements proto.Message.
func (m *CommandResult) String() string { return proto.CompactTextString(m) }
