// Package table implements the routing table described in spec.md §4.1:
// lookup, insert-or-replace, predicate removal, and the split-horizon
// snapshot used to build advertisements.
package table

// Route is one entry of the routing table.
type Route struct {
	Distance int
	NextHop  string
}

// Table maps destination addresses to routes. It is never locked: per
// SPEC_FULL.md §5 it is only ever mutated or read from the router's
// single event-loop goroutine, the same way the teacher's
// routingTable.RoutingTable is only ever touched from DHT.loop().
type Table struct {
	self   string
	routes map[string]Route
}

// New creates a table pre-populated with the self entry (self, 0, self),
// which spec.md §3 requires to exist for the lifetime of the process and
// never be removed or overwritten.
func New(self string) *Table {
	t := &Table{self: self, routes: make(map[string]Route)}
	t.routes[self] = Route{Distance: 0, NextHop: self}
	return t
}

// Lookup returns the route to dest, if any.
func (t *Table) Lookup(dest string) (Route, bool) {
	r, ok := t.routes[dest]
	return r, ok
}

// InsertOrReplace installs (dest, distance, nextHop), refusing to touch
// the self entry — it is never removed or overwritten per spec.md §3.
func (t *Table) InsertOrReplace(dest string, distance int, nextHop string) {
	if dest == t.self {
		return
	}
	t.routes[dest] = Route{Distance: distance, NextHop: nextHop}
}

// RemoveIf deletes every entry other than self for which pred returns
// true.
func (t *Table) RemoveIf(pred func(dest string, r Route) bool) {
	for dest, r := range t.routes {
		if dest == t.self {
			continue
		}
		if pred(dest, r) {
			delete(t.routes, dest)
		}
	}
}

// SnapshotForNeighbor implements split horizon (spec.md §4.1): it returns
// every entry whose next-hop is not n, self included (self's next-hop is
// always self, so it survives). Distances returned are local distances;
// the receiver adds its own link weight.
func (t *Table) SnapshotForNeighbor(n string) map[string]int {
	out := make(map[string]int, len(t.routes))
	for dest, r := range t.routes {
		if r.NextHop == n {
			continue
		}
		out[dest] = r.Distance
	}
	return out
}

// All returns every (destination, route) pair currently installed, for
// diagnostics (the `routes` operator verb and the debug HTTP endpoint).
func (t *Table) All() map[string]Route {
	out := make(map[string]Route, len(t.routes))
	for k, v := range t.routes {
		out[k] = v
	}
	return out
}

// Apply runs the route-selection rule from spec.md §4.2 for a single
// (dest, d, source) candidate and reports whether the installed route
// changed.
func (t *Table) Apply(dest string, d int, source string) (changed bool) {
	if dest == t.self {
		return false
	}
	cur, ok := t.routes[dest]
	switch {
	case !ok:
		// No route yet: install.
	case cur.Distance > d:
		// Strictly better route.
	case cur.NextHop == source:
		// The current next-hop is re-advertising, possibly at a higher
		// cost: must be accepted so cost increases and withdrawals
		// propagate upward (spec.md §4.2, the critical branch).
		if cur.Distance == d {
			return false
		}
	default:
		// Worse route from a different next-hop: ignore.
		return false
	}
	t.routes[dest] = Route{Distance: d, NextHop: source}
	return true
}
