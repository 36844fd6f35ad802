package udprip

import (
	"encoding/json"
	"fmt"
	"time"

	"udprip/wire"
)

// handlePacket decodes one inbound datagram and routes it by kind, per
// spec.md §2's data-flow summary. It always runs inside loop(), so it is
// the single critical section for everything it touches.
func (r *Router) handlePacket(p wire.Packet) {
	packetsReceived.Add(1)
	msg, err := wire.Decode(p.B)
	if err != nil {
		r.log.Errorf("malformed datagram from %s: %v", p.Raddr, err)
		return
	}
	if msg == nil {
		// Unknown type or missing required fields: silently dropped,
		// per spec.md §6.
		packetsDropped.Add(1)
		return
	}
	switch m := msg.(type) {
	case *wire.Update:
		r.handleUpdate(m)
	case *wire.Data:
		r.handleData(m)
	case *wire.Trace:
		r.handleTrace(m)
	}
}

// handleUpdate implements spec.md §4.2: advertisement intake.
func (r *Router) handleUpdate(m *wire.Update) {
	n := r.neighbors.Get(m.Source)
	if n == nil {
		// Precondition failed: source isn't a current neighbor.
		return
	}

	now := time.Now()
	r.neighbors.MarkHeard(m.Source, now)
	updatesAccepted.Add(1)

	dirty := false
	for dest, d := range m.Distances {
		if dest == r.self {
			continue
		}
		dPrime := d + n.Weight
		if r.table.Apply(dest, dPrime, m.Source) {
			routesInstalled.Add(1)
			dirty = true
		}
	}

	if dirty {
		r.advertiseAll()
	}
}

// handleData implements spec.md §4.3: deliver locally or forward
// unchanged.
func (r *Router) handleData(m *wire.Data) {
	if m.Destination == r.self {
		fmt.Fprintln(r.out, m.Payload)
		return
	}
	r.forward(m.Destination, m)
}

// handleTrace implements spec.md §4.3: append self, then either wrap as
// a reply data message (if we're the destination) or forward the amended
// trace.
func (r *Router) handleTrace(m *wire.Trace) {
	m.Routers = append(m.Routers, r.self)

	if m.Destination == r.self {
		body, err := json.Marshal(m)
		if err != nil {
			r.log.Errorf("failed to marshal trace reply: %v", err)
			return
		}
		reply := wire.NewData(r.self, m.Source, string(body))
		r.forward(reply.Destination, reply)
		return
	}
	r.forward(m.Destination, m)
}

// forward implements spec.md §4.5: look up the next hop and send, or
// silently drop if there's no route.
func (r *Router) forward(destination string, msg interface{}) {
	route, ok := r.table.Lookup(destination)
	if !ok {
		r.log.Debugf("no route to %s, dropping message", destination)
		return
	}
	nextHop := route.NextHop
	conn := r.conn
	go func() {
		if err := wire.Send(conn, nextHop, msg); err != nil {
			r.log.Errorf("send to %s (next hop for %s) failed: %v", nextHop, destination, err)
		}
	}()
}
