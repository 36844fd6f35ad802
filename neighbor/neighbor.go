// Package neighbor models the set of administratively configured links a
// router has to its directly-connected peers.
package neighbor

import "time"

// Neighbor is a directly configured link to another router.
type Neighbor struct {
	Addr   string // IPv4 address
	Weight int    // link weight, strictly positive

	// LastHeard is nil until the neighbor has sent at least one
	// advertisement since it was last added, per spec.md's invariant.
	LastHeard *time.Time
}

// Set is the collection of a router's configured neighbors, keyed by
// address. It carries no lock: per SPEC_FULL.md §5, a Set is only ever
// touched from the router's single event-loop goroutine.
type Set struct {
	byAddr map[string]*Neighbor
}

// NewSet creates an empty neighbor set.
func NewSet() *Set {
	return &Set{byAddr: make(map[string]*Neighbor)}
}

// Add upserts a neighbor's weight. It does not touch LastHeard: adding a
// neighbor again (e.g. re-running an `add` command) does not manufacture
// liveness the neighbor hasn't demonstrated.
func (s *Set) Add(addr string, weight int) *Neighbor {
	if n, ok := s.byAddr[addr]; ok {
		n.Weight = weight
		return n
	}
	n := &Neighbor{Addr: addr, Weight: weight}
	s.byAddr[addr] = n
	return n
}

// Remove deletes a neighbor. It returns false if the neighbor wasn't
// configured.
func (s *Set) Remove(addr string) bool {
	if _, ok := s.byAddr[addr]; !ok {
		return false
	}
	delete(s.byAddr, addr)
	return true
}

// Get returns the neighbor for addr, or nil if it isn't configured.
func (s *Set) Get(addr string) *Neighbor {
	return s.byAddr[addr]
}

// MarkHeard refreshes a neighbor's last-heard timestamp. It is a no-op if
// addr isn't a current neighbor (callers must check Get first; the
// message pipeline relies on this to implement "silently dropped" intake
// from non-neighbors).
func (s *Set) MarkHeard(addr string, at time.Time) {
	if n, ok := s.byAddr[addr]; ok {
		n.LastHeard = &at
	}
}

// All returns every configured neighbor, copied by value — the same way
// table.Table.All() copies Routes — so a caller holding the result never
// observes a mutation Add/MarkHeard/ForgetLastHeard makes afterwards.
func (s *Set) All() []Neighbor {
	out := make([]Neighbor, 0, len(s.byAddr))
	for _, n := range s.byAddr {
		out = append(out, *n)
	}
	return out
}

// Len reports how many neighbors are configured.
func (s *Set) Len() int {
	return len(s.byAddr)
}

// Expired returns the addresses of neighbors that have a last-heard
// timestamp older than window (i.e. have demonstrated liveness before but
// gone silent since). Neighbors that have never sent anything are not
// considered expired — they simply haven't been heard from yet, which is
// a distinct state per spec.md's invariant on last-heard existence.
func (s *Set) Expired(now time.Time, window time.Duration) []string {
	var out []string
	for addr, n := range s.byAddr {
		if n.LastHeard != nil && now.Sub(*n.LastHeard) > window {
			out = append(out, addr)
		}
	}
	return out
}

// ForgetLastHeard clears the liveness timestamp for addr without removing
// the configured link, per spec.md §4.4: timeout evicts routes, not the
// neighbor itself.
func (s *Set) ForgetLastHeard(addr string) {
	if n, ok := s.byAddr[addr]; ok {
		n.LastHeard = nil
	}
}
