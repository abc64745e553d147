// Package topology defines core types, options, and sentinel errors
// for the topology subpackage of github.com/katalvlaran/ospfsim.
package topology

import "errors"

// Sentinel errors for topology construction and queries.
var (
	// ErrEmptyNodeID indicates an arc endpoint with an empty node ID.
	ErrEmptyNodeID = errors.New("topology: node ID is empty")
	// ErrNegativeCost indicates an arc with a negative routing cost.
	ErrNegativeCost = errors.New("topology: arc cost must be non-negative")
	// ErrNonPositiveBandwidth indicates an arc with bandwidth ≤ 0 Mbps.
	ErrNonPositiveBandwidth = errors.New("topology: arc bandwidth must be positive")
	// ErrNegativeDistance indicates an arc with distance < 0 km.
	ErrNegativeDistance = errors.New("topology: arc distance must be non-negative")
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("topology: node not found")
)

// Default per-arc attributes, applied when a topology source omits a field
// or when neither direction of a link carries attributes at all.
// Cost 64 matches the OSPF reference cost of a 1.544 Mbps serial link;
// the distance and bandwidth defaults describe a generic metro fiber span.
const (
	// DefaultCost is the routing metric assumed for an attribute-less arc.
	DefaultCost = 64.0
	// DefaultDistanceKm is the physical span assumed for an attribute-less arc.
	DefaultDistanceKm = 50.0
	// DefaultBandwidthMbps is the capacity assumed for an attribute-less arc.
	DefaultBandwidthMbps = 1000.0
)

// LinkAttrs carries the per-arc attributes consumed by the shortest-path
// engine (Cost) and by the metrics layer (DistanceKm, BandwidthMbps).
//
// Arcs are directed: a bidirectional link is modeled as two arcs whose
// attributes may — but need not — coincide.
type LinkAttrs struct {
	// Cost is the routing metric of the arc; lower is preferred. Must be ≥ 0.
	Cost float64
	// DistanceKm is the physical length of the arc in kilometers. Must be ≥ 0.
	DistanceKm float64
	// BandwidthMbps is the arc capacity in megabits per second. Must be > 0.
	BandwidthMbps float64
}

// DefaultLinkAttrs returns the attribute set assumed when neither direction
// of a link is present in the topology.
func DefaultLinkAttrs() LinkAttrs {
	return LinkAttrs{
		Cost:          DefaultCost,
		DistanceKm:    DefaultDistanceKm,
		BandwidthMbps: DefaultBandwidthMbps,
	}
}

// Topology is an immutable-by-convention adjacency structure:
// node ID → neighbor ID → LinkAttrs.
//
// Invariant: every node ever referenced as an arc endpoint owns an entry in
// the adjacency map (possibly with no outgoing arcs), so membership checks
// never depend on which direction referenced the node first. The invariant
// is maintained by AddLink/AddCost at construction time.
//
// Topology is not safe for concurrent mutation; once construction is done it
// is read-only and may be shared freely across goroutines.
type Topology struct {
	adj map[string]map[string]LinkAttrs
}
