// Package udprip implements the UDPRIP distance-vector routing daemon
// described in SPEC_FULL.md. A Router owns one UDP socket and runs a
// single event-loop goroutine that is the sole mutator of its routing
// table and neighbor set, in the same shape as the teacher's DHT.loop().
package udprip

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"udprip/logger"
	"udprip/neighbor"
	"udprip/table"
	"udprip/wire"
)

// Config configures a Router. Address and Period have no defaults in
// code and must be set by the caller (the cmd layer fills them in from
// flags); the remaining fields are optional, mirroring the teacher's Config +
// NewConfig pairing but without a package-level DefaultConfig, since
// spec.md has no notion of a default bind address.
type Config struct {
	// Address is the router's own IPv4 address, bound on UDP/55151.
	Address string
	// Period is the advertisement interval P (spec.md §3), also used as
	// the liveness-check interval.
	Period time.Duration
	// StartupFile names a file of add/del/trace commands, one per line,
	// `#` introducing a comment. The Router never opens it itself; the
	// file's contents are run through LoadStartupFile.
	StartupFile string
	// DebugAddr, if non-empty, serves a read-only GET /debug/state
	// endpoint on this host:port (see SPEC_FULL.md §8).
	DebugAddr string
	// Output receives payloads of data messages addressed to this
	// router, and the output of the `routes`/`neighbors` operator
	// verbs. Defaults to os.Stdout if nil.
	Output io.Writer
}

// Router is one UDPRIP instance.
type Router struct {
	cfg  Config
	self string
	log  logger.DebugLogger
	out  io.Writer

	conn *net.UDPConn

	// Owned exclusively by loop(). Every other goroutine reaches these
	// only through the channels below.
	neighbors *neighbor.Set
	table     *table.Table

	packets  chan wire.Packet
	commands chan command
	stateReq chan chan stateSnapshot
}

// command is an operator instruction decoded from the startup file or
// stdin, delivered to the loop goroutine.
type command struct {
	verb string
	args []string
}

// stateSnapshot is handed back over a stateReq's reply channel, the same
// request/reply shape as the teacher's d.portRequest.
type stateSnapshot struct {
	routes    map[string]table.Route
	neighbors []neighbor.Neighbor
}

// New creates a Router. It does not bind the socket yet; call Bind for
// that.
func New(cfg Config, log logger.DebugLogger) (*Router, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("router: Address is required")
	}
	if cfg.Period <= 0 {
		return nil, fmt.Errorf("router: Period must be positive")
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = logger.NullLogger{}
	}
	return &Router{
		cfg:       cfg,
		self:      cfg.Address,
		log:       log,
		out:       out,
		neighbors: neighbor.NewSet(),
		table:     table.New(cfg.Address),
		packets:   make(chan wire.Packet, 64),
		commands:  make(chan command, 16),
		stateReq:  make(chan chan stateSnapshot),
	}, nil
}

// Bind opens the UDP socket. Separated from Run so the caller can
// surface a bind error before spawning any goroutines.
func (r *Router) Bind() error {
	conn, err := wire.Listen(r.self, r.log)
	if err != nil {
		return err
	}
	r.conn = conn
	return nil
}

// Addr returns the bound local address. Bind must have succeeded first.
func (r *Router) Addr() net.Addr {
	return r.conn.LocalAddr()
}

// Submit enqueues an operator command for the loop goroutine to process.
// It is safe to call from any goroutine (stdin reader, startup file
// loader).
func (r *Router) Submit(verb string, args []string) {
	r.commands <- command{verb: verb, args: args}
}

// Snapshot requests a consistent read of the table and neighbor set from
// the loop goroutine, via the same request/reply channel pattern as the
// teacher's d.portRequest. Safe to call concurrently (used by the debug
// HTTP handler).
func (r *Router) Snapshot(ctx context.Context) (stateSnapshot, error) {
	reply := make(chan stateSnapshot, 1)
	select {
	case r.stateReq <- reply:
	case <-ctx.Done():
		return stateSnapshot{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return stateSnapshot{}, ctx.Err()
	}
}

// Close releases the socket. It unblocks any in-flight ReadFromUDP.
func (r *Router) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
