// Package wire implements UDPRIP's on-the-wire message codec and the raw
// UDP socket plumbing used to send and receive it.
package wire

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"udprip/logger"
)

// Port is the fixed UDP port every router binds, per spec.md §6.
const Port = 55151

// MaxPacketSize bounds the receive buffer. spec.md §5 asks for at least
// 4096 octets; the teacher's bencode KRPC codec used the same constant
// for the same reason (a handful of oversized packets are tolerated, not
// optimized for).
const MaxPacketSize = 4096

// Kind distinguishes the three message types named in spec.md §6.
type Kind string

const (
	KindUpdate Kind = "update"
	KindData   Kind = "data"
	KindTrace  Kind = "trace"
)

// envelope is used only to sniff the `type` field before decoding the
// rest of the message into its concrete shape.
type envelope struct {
	Type Kind `json:"type"`
}

// Update carries a neighbor's distance-vector advertisement.
type Update struct {
	Type        Kind           `json:"type"`
	Source      string         `json:"source"`
	Destination string         `json:"destination,omitempty"`
	Distances   map[string]int `json:"distances"`
}

// Data carries an application payload addressed to a specific router.
type Data struct {
	Type        Kind   `json:"type"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Payload     string `json:"payload"`
}

// Trace records the path a diagnostic probe has taken.
type Trace struct {
	Type        Kind     `json:"type"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Routers     []string `json:"routers"`
}

// NewUpdate builds an update message ready to encode.
func NewUpdate(source, destination string, distances map[string]int) *Update {
	return &Update{Type: KindUpdate, Source: source, Destination: destination, Distances: distances}
}

// NewData builds a data message ready to encode.
func NewData(source, destination, payload string) *Data {
	return &Data{Type: KindData, Source: source, Destination: destination, Payload: payload}
}

// NewTrace builds a trace message originated by source toward destination,
// per spec.md §4.3: "Originating a trace is equivalent to constructing
// {type:trace, source:self, destination:d, routers:[self]}".
func NewTrace(source, destination string) *Trace {
	return &Trace{Type: KindTrace, Source: source, Destination: destination, Routers: []string{source}}
}

// Encode marshals any of Update, Data, or Trace to its wire form.
func Encode(msg interface{}) ([]byte, error) {
	return json.Marshal(msg)
}

// Decode parses a single UDP datagram payload into one of *Update, *Data,
// or *Trace. It returns an error for malformed JSON; an unrecognized
// `type` or a message missing required fields returns (nil, nil) so the
// caller can distinguish "drop silently" from "log and drop," per
// spec.md §6/§7.
func Decode(b []byte) (interface{}, error) {
	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	switch e.Type {
	case KindUpdate:
		var m Update
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("malformed update: %w", err)
		}
		if m.Source == "" || m.Distances == nil {
			return nil, nil
		}
		return &m, nil
	case KindData:
		var m Data
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("malformed data: %w", err)
		}
		if m.Source == "" || m.Destination == "" {
			return nil, nil
		}
		return &m, nil
	case KindTrace:
		var m Trace
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("malformed trace: %w", err)
		}
		if m.Source == "" || m.Destination == "" {
			return nil, nil
		}
		return &m, nil
	default:
		// Unknown type: ignored, not logged, per spec.md §6.
		return nil, nil
	}
}

// Packet is a datagram read off the wire together with its sender, mirroring
// the teacher's remoteNode.PacketType.
type Packet struct {
	B     []byte
	Raddr net.UDPAddr
}

// Listen binds addr:Port for both send and receive, as spec.md §6 requires.
func Listen(addr string, log logger.DebugLogger) (*net.UDPConn, error) {
	log.Debugf("binding udp4 %s:%d", addr, Port)
	pc, err := net.ListenPacket("udp4", net.JoinHostPort(addr, strconv.Itoa(Port)))
	if err != nil {
		return nil, err
	}
	return pc.(*net.UDPConn), nil
}

// ReadLoop blocks reading datagrams from conn and pushes them to out until
// stop is closed or the socket errors out (which happens on Close()).
// Grounded on the teacher's remoteNode.ReadFromSocket, simplified to a
// plain per-read allocation since UDPRIP's packet volume never approaches
// the DHT's (no arena pooling needed at this scale, see DESIGN.md).
func ReadLoop(conn *net.UDPConn, out chan<- Packet, stop <-chan struct{}, log logger.DebugLogger) {
	for {
		buf := make([]byte, MaxPacketSize)
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-stop:
				return
			default:
				log.Debugf("udp read error: %v", err)
				return
			}
		}
		select {
		case out <- Packet{B: buf[:n], Raddr: *addr}:
		case <-stop:
			return
		}
	}
}

// Send encodes and writes msg to addr:Port. Errors are the caller's to
// log; per spec.md §7 a transient send error never evicts a route.
func Send(conn *net.UDPConn, addr string, msg interface{}) error {
	b, err := Encode(msg)
	if err != nil {
		return err
	}
	raddr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(addr, strconv.Itoa(Port)))
	if err != nil {
		return err
	}
	_, err = conn.WriteToUDP(b, raddr)
	return err
}
