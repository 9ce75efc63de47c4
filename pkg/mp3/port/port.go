// Package port opens the byte stream connected to the MP3 module.
package port

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	"github.com/tarm/serial"
	"golang.org/x/net/websocket"
)

// DefaultBaud is the baud rate of the module's UART.
const DefaultBaud = 9600

// Open opens the stream at addr:
//
//	/dev/ttyUSB0, COM3      serial port at baud (DefaultBaud if 0)
//	tcp://host:port         raw TCP serial server (e.g. ser2net)
//	ws://host:port/path     websocket carrying the raw byte stream
func Open(addr string, baud int) (io.ReadWriteCloser, error) {
	if !strings.Contains(addr, "://") {
		if baud <= 0 {
			baud = DefaultBaud
		}
		p, err := serial.OpenPort(&serial.Config{Name: addr, Baud: baud})
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid port address: %v", err)
	}
	switch u.Scheme {
	case "tcp":
		return net.Dial("tcp", u.Host)
	case "ws", "wss":
		origin := "http://localhost/"
		if u.Scheme == "wss" {
			origin = "https://localhost/"
		}
		conn, err := websocket.Dial(addr, "", origin)
		if err != nil {
			return nil, err
		}
		conn.PayloadType = websocket.BinaryFrame
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown port scheme: %q", u.Scheme)
	}
}
