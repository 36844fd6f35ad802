package udprip

import (
	"fmt"
	"sort"

	"udprip/table"
	"udprip/util"
	"udprip/wire"
)

// handleCommand implements spec.md §4.6's three operator verbs plus the
// `routes`/`neighbors` introspection verbs described in SPEC_FULL.md §8.
// `quit` is intercepted by the operator loop before it reaches here.
func (r *Router) handleCommand(cmd command) {
	switch cmd.verb {
	case "add":
		r.cmdAdd(cmd.args)
	case "del":
		r.cmdDel(cmd.args)
	case "trace":
		r.cmdTrace(cmd.args)
	case "routes":
		r.cmdRoutes()
	case "neighbors":
		r.cmdNeighbors()
	default:
		fmt.Fprintf(r.out, "unknown command %q. Available: add, del, trace, routes, neighbors, quit\n", cmd.verb)
	}
}

func (r *Router) cmdAdd(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "usage: add <ip> <weight>")
		return
	}
	addr := args[0]
	if _, err := util.ValidateNeighborAddress(addr); err != nil {
		fmt.Fprintf(r.out, "add: %v\n", err)
		return
	}
	var weight int
	if _, err := fmt.Sscanf(args[1], "%d", &weight); err != nil || weight <= 0 {
		fmt.Fprintln(r.out, "usage: add <ip> <weight> (weight must be a positive integer)")
		return
	}

	r.neighbors.Add(addr, weight)
	// Upsert the direct route, if it's no worse than what's installed,
	// per spec.md §4.6.
	if cur, ok := r.table.Lookup(addr); !ok || cur.Distance >= weight {
		r.table.InsertOrReplace(addr, weight, addr)
	}
	r.log.Infof("added neighbor %s weight %d", addr, weight)
}

func (r *Router) cmdDel(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: del <ip>")
		return
	}
	addr := args[0]
	if !r.neighbors.Remove(addr) {
		fmt.Fprintf(r.out, "no link to %s exists\n", addr)
		return
	}
	r.neighbors.ForgetLastHeard(addr)
	r.table.RemoveIf(func(dest string, route table.Route) bool {
		return route.NextHop == addr
	})
	r.log.Infof("removed neighbor %s", addr)
}

func (r *Router) cmdTrace(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: trace <ip>")
		return
	}
	dest := args[0]
	if _, err := util.ValidateNeighborAddress(dest); err != nil {
		fmt.Fprintf(r.out, "trace: %v\n", err)
		return
	}
	r.forward(dest, wire.NewTrace(r.self, dest))
}

func (r *Router) cmdRoutes() {
	routes := r.table.All()
	dests := make([]string, 0, len(routes))
	for d := range routes {
		dests = append(dests, d)
	}
	sort.Strings(dests)
	fmt.Fprintf(r.out, "\nRouting table for %s:\n", r.self)
	fmt.Fprintln(r.out, "Destination\t\tDistance\tNext Hop")
	for _, d := range dests {
		rt := routes[d]
		fmt.Fprintf(r.out, "%-15s\t%d\t\t%s\n", d, rt.Distance, rt.NextHop)
	}
}

func (r *Router) cmdNeighbors() {
	ns := r.neighbors.All()
	sort.Slice(ns, func(i, j int) bool { return ns[i].Addr < ns[j].Addr })
	fmt.Fprintf(r.out, "\nNeighbors of %s:\n", r.self)
	fmt.Fprintln(r.out, "IP Address\t\tWeight")
	for _, n := range ns {
		fmt.Fprintf(r.out, "%-15s\t%d\n", n.Addr, n.Weight)
	}
}
