package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/golang/protobuf/proto"

	"github.com/robotalks/serialmp3.go/pkg/bridge"
	"github.com/robotalks/serialmp3.go/pkg/bridge/msgs"
	"github.com/robotalks/serialmp3.go/pkg/mp3/frame"
)

var (
	mqttURL = "mqtt://localhost:1883/mp3/"
)

func init() {
	if val := os.Getenv("MP3_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := bridge.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	q.Sub("#", func(topic string, payload []byte) {
		var msg proto.Message
		switch {
		case strings.HasSuffix(topic, bridge.TopicMeta):
			log.Printf("%s: %s", topic, string(payload))
			return
		case strings.HasSuffix(topic, bridge.TopicCmd):
			msg = &msgs.CommandRequest{}
		case strings.HasSuffix(topic, bridge.TopicResult):
			msg = &msgs.CommandResult{}
		case strings.HasSuffix(topic, bridge.TopicRsp):
			var rsp msgs.ResponseEvent
			if err := proto.Unmarshal(payload, &rsp); err != nil {
				log.Printf("%s: bad message: %v", topic, err)
				return
			}
			log.Printf("%s: %s -> %s", topic, frame.HexDump(rsp.Raw), rsp.Description)
			return
		default:
			return
		}
		if err := proto.Unmarshal(payload, msg); err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		log.Printf("%s: %s", topic, msg.String())
	})
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	<-(chan struct{})(nil)
}
