package udprip

import "expvar"

// Process-wide counters, in the same style as the teacher's
// remoteNode/krpc.go (TotalSent, TotalReadBytes) and
// routingTable/routing_table.go (totalNodes, totalKilledNodes) expvars.
var (
	packetsReceived  = expvar.NewInt("udprip_packets_received")
	packetsDropped   = expvar.NewInt("udprip_packets_dropped")
	updatesAccepted  = expvar.NewInt("udprip_updates_accepted")
	routesInstalled  = expvar.NewInt("udprip_routes_installed")
	neighborTimeouts = expvar.NewInt("udprip_neighbor_timeouts")
)
