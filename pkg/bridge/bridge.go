// Package bridge exposes a Player over MQTT.
//
// Topics, relative to the broker URL prefix:
//
//	<id>/cmd     CommandRequest, subscribed
//	<id>/result  CommandResult for every request
//	<id>/rsp     ResponseEvent for every response frame
//	<id>/meta    retained JSON Meta, cleared on exit and by the will
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/serialmp3.go/pkg/bridge/msgs"
	fx "github.com/robotalks/serialmp3.go/pkg/framework"
	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

// Topic suffixes.
const (
	TopicCmd    = "/cmd"
	TopicResult = "/result"
	TopicRsp    = "/rsp"
	TopicMeta   = "/meta"
)

// Publisher publishes payloads, implemented by Queue.
type Publisher interface {
	PubWith(topic string, payload []byte, qos byte, retain bool) paho.Token
}

// Meta is published retained on <id>/meta while the bridge is online.
type Meta struct {
	ID      string   `json:"id"`
	Port    string   `json:"port,omitempty"`
	Actions []string `json:"actions"`
}

// Bridge executes CommandRequests on the Player and publishes
// the responses. The Player is only touched from the loop.
type Bridge struct {
	ID     string
	Port   string
	Player *mp3.Player
	Pub    Publisher

	// InitOnStart resets the module in the first iteration, before
	// any command is executed.
	InitOnStart bool

	loop        fx.LoopControl
	initialized bool
}

type actionMsg struct {
	name   string
	action mp3.Action
	err    error
}

// New creates a Bridge publishing through pub.
func New(id string, player *mp3.Player, pub Publisher) *Bridge {
	return &Bridge{ID: id, Player: player, Pub: pub}
}

// AddToLoop implements LoopAdder.
func (b *Bridge) AddToLoop(loop *fx.Loop) {
	b.loop = loop
	loop.AddController(b)
}

// Attach subscribes the command topic on q and keeps meta published
// across reconnects. The will on <id>/meta must be set on the client
// options before the Queue is created, see WillTopic.
func (b *Bridge) Attach(q *Queue) {
	q.Sub(b.ID+TopicCmd, b.HandleCommand)
	q.OnConnect = func(*Queue) { b.PublishMeta() }
}

// WillTopic sets a will clearing the retained meta on opts.
func WillTopic(opts *paho.ClientOptions, topicPrefix, id string) {
	opts.SetBinaryWill(topicPrefix+id+TopicMeta, nil, 1, true)
}

// Run implements Runnable, it clears the retained meta on exit.
func (b *Bridge) Run(ctx context.Context) error {
	<-ctx.Done()
	b.Pub.PubWith(b.ID+TopicMeta, nil, 1, true).Wait()
	return nil
}

// PublishMeta publishes retained Meta.
func (b *Bridge) PublishMeta() {
	meta, err := json.Marshal(&Meta{ID: b.ID, Port: b.Port, Actions: mp3.ActionNames()})
	if err != nil {
		panic(err)
	}
	b.Pub.PubWith(b.ID+TopicMeta, meta, 1, true)
}

// HandleCommand decodes a CommandRequest and posts it into the loop.
func (b *Bridge) HandleCommand(topic string, payload []byte) {
	var req msgs.CommandRequest
	if err := proto.Unmarshal(payload, &req); err != nil {
		glog.Warningf("%s: decode CommandRequest error: %v", topic, err)
		return
	}
	action, err := mp3.ParseAction(req.Action, req.IntArgs()...)
	glog.V(2).Infof("CMD %s", req.String())
	b.loop.PostMessage(&actionMsg{name: req.Action, action: action, err: err})
}

// Control implements Controller.
func (b *Bridge) Control(cc fx.ControlContext) error {
	if b.InitOnStart && !b.initialized {
		if err := b.Player.Init(cc.Context()); err != nil {
			return fmt.Errorf("init: %v", err)
		}
		b.initialized = true
		glog.Infof("%s initialized", b.ID)
	}
	var errs fx.AggregatedError
	cc.TakeMessages(func(m fx.Message) bool {
		msg, ok := m.(*actionMsg)
		if ok {
			errs.Add(b.execute(cc.Context(), msg))
		}
		return ok
	})
	errs.Add(b.poll(cc.Context()))
	return errs.Aggregate()
}

func (b *Bridge) execute(ctx context.Context, msg *actionMsg) error {
	err := msg.err
	if err == nil {
		err = b.Player.Do(ctx, msg.action)
	}
	result := &msgs.CommandResult{Action: msg.name}
	if err != nil {
		result.Error = err.Error()
	}
	if pubErr := b.publish(b.ID+TopicResult, result); pubErr != nil {
		return pubErr
	}
	if err != nil {
		return fmt.Errorf("%s: %v", msg.name, err)
	}
	return nil
}

// poll publishes every frame available without blocking on an
// empty link.
func (b *Bridge) poll(ctx context.Context) error {
	var errs fx.AggregatedError
	for b.Player.Available() > 0 {
		f, err := b.Player.ReadFrame(ctx)
		if err != nil {
			errs.Add(err)
			if err == mp3.ErrTimeout || ctx.Err() != nil {
				break
			}
			continue
		}
		if f == nil {
			break
		}
		errs.Add(b.publish(b.ID+TopicRsp, ResponseEventFrom(b.Player.TakeLast())))
	}
	return errs.Aggregate()
}

func (b *Bridge) publish(topic string, msg proto.Message) error {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	b.Pub.PubWith(topic, payload, 0, false)
	return nil
}

// ResponseEventFrom converts a decoded response.
func ResponseEventFrom(r frame.Response) *msgs.ResponseEvent {
	return &msgs.ResponseEvent{
		Code:        uint32(r.Code),
		Data:        uint32(r.Data),
		Raw:         r.Raw,
		Description: r.Description,
		Known:       r.Known,
	}
}
