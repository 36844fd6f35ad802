package udprip

import "udprip/wire"

// advertiseAll implements spec.md §4.4's advertiser: for every configured
// neighbor, build its split-horizon snapshot and send one update
// datagram. Per SPEC_FULL.md §5, the snapshots are built synchronously
// here (cheap, in-memory) while the actual sends happen in a detached
// goroutine so a stalled neighbor can never block the event loop — the
// same shape as the teacher dispatching routingTable.PingSlowly from
// inside its cleanupTicker case.
func (r *Router) advertiseAll() {
	neighbors := r.neighbors.All()
	if len(neighbors) == 0 {
		return
	}

	type outgoing struct {
		addr string
		msg  *wire.Update
	}
	batch := make([]outgoing, 0, len(neighbors))
	for _, n := range neighbors {
		distances := r.table.SnapshotForNeighbor(n.Addr)
		batch = append(batch, outgoing{addr: n.Addr, msg: wire.NewUpdate(r.self, n.Addr, distances)})
	}

	conn := r.conn
	log := r.log
	go func() {
		for _, o := range batch {
			if err := wire.Send(conn, o.addr, o.msg); err != nil {
				log.Errorf("advertisement send to %s failed: %v", o.addr, err)
			}
		}
	}()
}
