// Package ospfsim is an offline model of a link-state routing protocol's
// shortest-path-first computation: routing tables and per-route performance
// estimates over a static, weighted network snapshot.
//
// What lives where:
//
//	topology/ — the network model: nodes, directed arcs with routing cost
//	            and physical attributes, YAML loading, attribute fallback
//	spf/      — Dijkstra-based SPF engine: single-source distances and
//	            predecessors, path reconstruction, all-pairs routing state
//	            (optionally computed on a worker pool)
//	metrics/  — the delay/throughput pipeline: propagation, transmission,
//	            processing and queuing delay plus bottleneck throughput,
//	            derived per ordered (source, destination) pair
//	hosts/    — end-host → router binding and host-to-host route queries
//	report/   — human-readable routing tables and metric reports, plus
//	            comparison against externally measured reference data
//	cmd/      — the ospfsim CLI tying the above together
//
// Everything is a pure, deterministic computation over an immutable
// topology: build the snapshot once, run SPF, derive metrics, render.
// No live network I/O, no protocol message exchange, no dynamic updates.
//
// Quick ASCII picture of the built-in reference network (all links cost 64):
//
//	R0─R6──R7──R8─R2
//	        │ ╲  │
//	   R1───┘  ╲ │
//	            R9──R3
//	            │
//	      R4──R10──R11──R5
//
// Start with topology.MultiCampus(), spf.ComputeAllPairs, and
// metrics.ComputeRouteTable.
package ospfsim
