// Package hosts binds end hosts to their attachment routers and answers
// host-to-host route queries over computed routing state.
//
// A Binding is a plain host → router map: hosts hang off exactly one router
// and play no part in shortest-path computation. Route resolves both hosts,
// short-circuits the same-router case (no routing needed), and otherwise
// returns the inter-router path, hop count, and cost.
package hosts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ospfsim/spf"
	"github.com/katalvlaran/ospfsim/topology"
)

// Sentinel errors for host route resolution.
var (
	// ErrUnknownHost indicates a host absent from the binding.
	ErrUnknownHost = errors.New("hosts: unknown host")
	// ErrUnknownRouter indicates a binding references a router absent from the topology.
	ErrUnknownRouter = errors.New("hosts: bound router not found in topology")
	// ErrNilRoutes indicates a nil all-pairs routing state was supplied.
	ErrNilRoutes = errors.New("hosts: all-pairs routing state is nil")
)

// Binding maps host name → attachment router ID.
type Binding map[string]string

// DefaultBinding returns the reference multi-campus binding: eighteen PCs,
// three per campus edge router R0–R5.
func DefaultBinding() Binding {
	return Binding{
		"PC0": "R0", "PC1": "R0", "PC2": "R0",
		"PC3": "R1", "PC4": "R1", "PC5": "R1",
		"PC6": "R2", "PC7": "R2", "PC8": "R2",
		"PC9": "R3", "PC10": "R3", "PC11": "R3",
		"PC12": "R4", "PC13": "R4", "PC14": "R4",
		"PC15": "R5", "PC16": "R5", "PC17": "R5",
	}
}

// Resolve returns the attachment router of host, or ErrUnknownHost.
func (b Binding) Resolve(host string) (string, error) {
	router, ok := b[host]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHost, host)
	}

	return router, nil
}

// Hosts returns all bound host names in ascending order.
func (b Binding) Hosts() []string {
	names := make([]string, 0, len(b))
	for h := range b {
		names = append(names, h)
	}
	sort.Strings(names)

	return names
}

// Routers returns the distinct attachment routers in ascending order.
func (b Binding) Routers() []string {
	seen := make(map[string]struct{}, len(b))
	for _, r := range b {
		seen[r] = struct{}{}
	}
	routers := make([]string, 0, len(seen))
	for r := range seen {
		routers = append(routers, r)
	}
	sort.Strings(routers)

	return routers
}

// HostRoute is the answer to a host-to-host route query.
type HostRoute struct {
	SrcHost, DstHost     string
	SrcRouter, DstRouter string
	// SameRouter is set when both hosts attach to one router; no routing
	// happens and the path fields stay empty.
	SameRouter bool
	// Unreachable is set when the attachment routers are disconnected.
	Unreachable bool
	Path        spf.Path
	Hops        int
	Cost        float64
}

// Route resolves the route between two bound hosts over precomputed
// all-pairs routing state.
//
// Validation (in order): both hosts must be bound (ErrUnknownHost), both
// attachment routers must exist in the topology (ErrUnknownRouter), and
// routing state must be present (ErrNilRoutes). Disconnected routers yield
// Unreachable=true, not an error.
func Route(b Binding, t *topology.Topology, all spf.AllPairs, srcHost, dstHost string) (HostRoute, error) {
	var hr HostRoute
	var err error

	if hr.SrcRouter, err = b.Resolve(srcHost); err != nil {
		return HostRoute{}, err
	}
	if hr.DstRouter, err = b.Resolve(dstHost); err != nil {
		return HostRoute{}, err
	}
	hr.SrcHost, hr.DstHost = srcHost, dstHost

	if t == nil || !t.HasNode(hr.SrcRouter) {
		return HostRoute{}, fmt.Errorf("%w: %q (host %q)", ErrUnknownRouter, hr.SrcRouter, srcHost)
	}
	if !t.HasNode(hr.DstRouter) {
		return HostRoute{}, fmt.Errorf("%w: %q (host %q)", ErrUnknownRouter, hr.DstRouter, dstHost)
	}

	// Hosts on one router exchange traffic locally; SPF has nothing to add.
	if hr.SrcRouter == hr.DstRouter {
		hr.SameRouter = true

		return hr, nil
	}

	if all == nil {
		return HostRoute{}, ErrNilRoutes
	}

	routes, ok := all[hr.SrcRouter]
	if !ok {
		return HostRoute{}, fmt.Errorf("%w: %q (no routing state)", ErrUnknownRouter, hr.SrcRouter)
	}
	path, ok := routes.Paths[hr.DstRouter]
	if !ok {
		hr.Unreachable = true

		return hr, nil
	}

	hr.Path = path
	hr.Hops = len(path) - 1
	hr.Cost = routes.Dist[hr.DstRouter]

	return hr, nil
}
