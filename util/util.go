// Package util holds small standalone helpers shared across the router,
// mirroring the teacher's own util package of small free functions.
package util

import (
	"fmt"
	"net/netip"
)

// ValidRouterSubnet is the loopback-alias range the reference deployment
// restricts declared router addresses to (spec.md §6). This validator is
// an external-collaborator concern per spec.md §1 — it constrains what
// addresses operators may bind, it is not a core routing invariant.
var ValidRouterSubnet = netip.MustParsePrefix("127.0.1.0/24")

// ValidateRouterAddress parses addr and checks it falls within
// ValidRouterSubnet, as original_source/router.py's startup validation
// does with ipaddress.IPv4Address.
func ValidateRouterAddress(addr string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid IPv4 address %q: %w", addr, err)
	}
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("address %q is not IPv4", addr)
	}
	if !ValidRouterSubnet.Contains(ip) {
		return netip.Addr{}, fmt.Errorf("address %q must be in %s", addr, ValidRouterSubnet)
	}
	return ip, nil
}

// ValidateNeighborAddress checks that addr is a syntactically valid IPv4
// address, without the subnet restriction (neighbors of a router running
// outside the reference deployment's loopback scheme are still valid
// peers for the protocol itself).
func ValidateNeighborAddress(addr string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid IPv4 address %q: %w", addr, err)
	}
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("address %q is not IPv4", addr)
	}
	return ip, nil
}
