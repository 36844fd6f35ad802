package udprip

import (
	"time"

	"udprip/table"
)

// livenessWindow is 4P, the interval spec.md §4.4/glossary defines as the
// liveness window.
func (r *Router) livenessWindow() time.Duration {
	return 4 * r.cfg.Period
}

// checkLiveness implements spec.md §4.4's timeout monitor: any neighbor
// whose last-heard timestamp is older than 4P has its learned routes
// evicted (self entry excluded) and its last-heard timestamp forgotten.
// The neighbor link itself is not removed, per the spec's stated
// deviation-free behavior.
func (r *Router) checkLiveness() {
	now := time.Now()
	stale := r.neighbors.Expired(now, r.livenessWindow())
	for _, addr := range stale {
		r.table.RemoveIf(func(dest string, route table.Route) bool {
			return route.NextHop == addr
		})
		r.neighbors.ForgetLastHeard(addr)
		neighborTimeouts.Add(1)
		r.log.Infof("neighbor %s timed out, routes via it evicted", addr)
	}
}
