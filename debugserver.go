package udprip

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// debugRoute and debugNeighbor are the JSON shapes served by
// GET /debug/state, kept separate from table.Route/neighbor.Neighbor so
// the wire shape of this diagnostic endpoint doesn't couple to internal
// field names.
type debugRoute struct {
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
	NextHop     string `json:"next_hop"`
}

type debugNeighbor struct {
	Address   string `json:"address"`
	Weight    int    `json:"weight"`
	LastHeard string `json:"last_heard,omitempty"`
}

type debugState struct {
	Self      string          `json:"self"`
	Routes    []debugRoute    `json:"routes"`
	Neighbors []debugNeighbor `json:"neighbors"`
}

// serveDebug runs a read-only HTTP server exposing the router's current
// state. Adapted from the teacher's HTTPserver.go/serverEntry.go, which
// used the same "net/http.Server registered against shared state" shape
// for DHT peer registration; here the handler never mutates state, it
// only issues a Snapshot request through the loop's request/reply
// channel described in SPEC_FULL.md §5.
func (r *Router) serveDebug(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/state", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		snap, err := r.Snapshot(req.Context())
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toDebugState(r.self, snap))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		srv.Close()
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func toDebugState(self string, snap stateSnapshot) debugState {
	s := debugState{Self: self}
	for dest, route := range snap.routes {
		s.Routes = append(s.Routes, debugRoute{Destination: dest, Distance: route.Distance, NextHop: route.NextHop})
	}
	for _, n := range snap.neighbors {
		dn := debugNeighbor{Address: n.Addr, Weight: n.Weight}
		if n.LastHeard != nil {
			dn.LastHeard = n.LastHeard.Format("2006-01-02T15:04:05Z07:00")
		}
		s.Neighbors = append(s.Neighbors, dn)
	}
	return s
}
