// Package spf provides the shortest-path-first engine of ospfsim:
// Dijkstra's algorithm over a static weighted topology, generalized to
// full all-pairs routing state with reconstructed paths.
//
// Overview:
//
//   - ComputeSingleSource computes, for one source node, the shortest cost
//     to every other node plus the predecessor map, in O((V+E) log V).
//   - ReconstructPath turns a predecessor map into an ordered node path,
//     reporting unreachability as a first-class outcome rather than an error.
//   - ComputeAllPairs repeats the single-source run for every node and
//     stores the path to each reachable destination — the routing state a
//     link-state protocol derives after flooding converges.
//
// Determinism:
//
//	The frontier is a binary min-heap keyed by (distance, node ID) and arcs
//	relax in sorted neighbor order, so for a fixed topology every run
//	produces identical distances, predecessors, and tie-broken paths.
//
// Tracing:
//
//	The engine accepts an Observer (OnVisit, OnRelax) invoked at its two
//	decision points. The default is a no-op; supply one via WithObserver to
//	render algorithm steps without entangling I/O with the computation.
//
// Concurrency:
//
//	Single-source runs are self-contained and share nothing but the
//	read-only topology. ComputeAllPairs can fan sources out over a worker
//	pool (WithWorkers); each worker owns a disjoint output slot, so only
//	the final map insert is serialized.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Options.Source was left empty.
//   - ErrNilTopology:    a nil topology was supplied.
//   - ErrSourceNotFound: the source node is absent from the topology.
//   - ErrNegativeWeight: a negative arc cost was detected (O(V+E) pre-scan).
//   - ErrNilResult:      ReconstructPath received a nil result.
//   - ErrNodeNotFound:   ReconstructPath received an unknown destination.
//   - ErrBadWorkerCount: WithWorkers received a value < 1 (panics).
//
// Example usage:
//
//	res, err := spf.ComputeSingleSource(t, spf.Source("R0"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok, _ := spf.ReconstructPath(res, "R5")
//	if !ok {
//	    fmt.Println("R5 unreachable")
//	}
package spf
