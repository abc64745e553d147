// Package topology models a static, weighted network snapshot as an
// adjacency structure: node ID → neighbor ID → per-arc attributes.
//
// Overview:
//
//   - Arcs are directed. Bidirectional links are represented as two arcs,
//     added pairwise via AddBiLink or independently via AddLink, and the two
//     directions may carry different attributes.
//   - Each arc holds the routing Cost consumed by the shortest-path engine
//     plus the physical attributes (DistanceKm, BandwidthMbps) consumed by
//     the metrics layer.
//   - A Topology is built once, validated, and then treated as read-only;
//     no mutation happens during route computation.
//
// Attribute resolution:
//
//	ResolveLink(a, b) implements the fallback chain used throughout the
//	metrics layer: forward arc a→b, then reverse arc b→a, then
//	DefaultLinkAttrs() (cost 64, 50 km, 1000 Mbps). Partial or asymmetric
//	topology data therefore degrades to sensible defaults instead of
//	failing.
//
// Construction sources:
//
//   - programmatic: New + AddLink / AddCost / AddBiLink / AddNode;
//   - YAML files:   LoadYAML (omitted attribute fields take defaults);
//   - presets:      MultiCampus, the twelve-router reference network.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyNodeID:          an arc endpoint or node ID is "".
//   - ErrNegativeCost:         an arc cost is < 0 (forbidden — the
//     shortest-path engine requires non-negative weights).
//   - ErrNegativeDistance:     an arc distance is < 0 km.
//   - ErrNonPositiveBandwidth: an arc bandwidth is ≤ 0 Mbps.
//   - ErrNodeNotFound:         a query referenced an unknown node.
//
// Thread safety: construction is single-goroutine; a constructed Topology is
// immutable by convention and safe for concurrent readers.
package topology
