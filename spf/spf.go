// Package spf implements the shortest-path-first computation used by
// link-state routing protocols: Dijkstra's algorithm over a weighted
// topology snapshot, with predecessor tracking and path reconstruction.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per single-source run.
//   - Each node is extracted from the frontier at most once: V extractions.
//   - Each relaxation may push a new frontier entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Costs are non-negative float64; unreachable is math.Inf(1).
//   - An upfront O(V+E) scan rejects negative costs before any relaxation.
//   - Lazy decrease-key: improved distances push duplicate frontier entries,
//     and stale entries are skipped on extraction via the visited set.
//   - The frontier orders by (dist, node ID), and arcs relax in sorted
//     neighbor order, so runs are fully deterministic for a fixed topology.
package spf

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/ospfsim/topology"
)

// ComputeSingleSource computes shortest distances and predecessors from the
// source node (Options.Source) to all other nodes of t.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. t must be non-nil (ErrNilTopology).
//  3. t must contain Source (ErrSourceNotFound).
//  4. No arc of t may have negative cost (ErrNegativeWeight).
//
// Guarantee: on return, Dist[n] is the true shortest-path cost from Source
// to n for every reachable n, and +Inf for unreachable n.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ComputeSingleSource(t *topology.Topology, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if t == nil {
		return nil, ErrNilTopology
	}
	if !t.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}
	if err := scanNegativeCosts(t); err != nil {
		return nil, err
	}

	return computeFrom(t, cfg.Source, cfg.Observer), nil
}

// scanNegativeCosts walks every arc once and fails fast on a negative cost.
// Complexity: O(V + E).
func scanNegativeCosts(t *topology.Topology) error {
	for _, from := range t.Nodes() {
		nbrs, err := t.Neighbors(from)
		if err != nil {
			return fmt.Errorf("spf: neighbors of %q: %w", from, err)
		}
		for to, attrs := range nbrs {
			if attrs.Cost < 0 {
				return fmt.Errorf("%w: arc %s→%s cost=%v", ErrNegativeWeight, from, to, attrs.Cost)
			}
		}
	}

	return nil
}

// computeFrom runs the algorithm proper. Inputs are assumed validated:
// source exists in t and all costs are non-negative.
func computeFrom(t *topology.Topology, source string, obs Observer) *Result {
	r := &runner{
		t:       t,
		obs:     obs,
		dist:    make(map[string]float64, t.NodeCount()),
		prev:    make(map[string]string, t.NodeCount()),
		visited: make(map[string]bool, t.NodeCount()),
		pq:      make(nodePQ, 0, t.NodeCount()),
	}
	r.init(source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}
}

// runner holds the mutable state of one single-source execution.
type runner struct {
	t       *topology.Topology // read-only input snapshot
	obs     Observer           // tracing hook, never nil
	dist    map[string]float64 // node → current best distance from source
	prev    map[string]string  // node → predecessor on the shortest path
	visited map[string]bool    // node → distance finalized
	pq      nodePQ             // lazy min-heap frontier
}

// init sets dist[v]=+Inf and prev[v]="" for every node, zeroes the source,
// and seeds the frontier with (0, source).
func (r *runner) init(source string) {
	for _, v := range r.t.Nodes() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the frontier entry with the smallest
// (dist, id) key, skips stale duplicates, finalizes the node, and relaxes
// its outgoing arcs. Terminates when the frontier is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale duplicate left behind by lazy decrease-key: skip.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.obs.OnVisit(item.id, item.dist)

		r.relax(item.id)
	}
}

// relax examines each outgoing arc of u and improves neighbor distances.
// Assumes dist[u] is final.
func (r *runner) relax(u string) {
	// Sorted neighbor order keeps relaxation (and observer callbacks)
	// deterministic across runs. u was placed in the frontier, so it exists.
	ids, _ := r.t.NeighborIDs(u)
	nbrs, _ := r.t.Neighbors(u)

	for _, v := range ids {
		if r.visited[v] {
			continue
		}

		candidate := r.dist[u] + nbrs[v].Cost
		updated := candidate < r.dist[v]
		r.obs.OnRelax(u, v, r.dist[v], candidate, updated)
		if !updated {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: candidate})
	}
}

// ReconstructPath walks backward from dest through the predecessor map and
// returns the source→dest path.
//
// Returns:
//
//   - (path, true, nil)  – dest is reachable; path starts at res.Source and
//     ends at dest. When dest == source the path is the single element
//     [source].
//   - (nil, false, nil)  – dest is a known node but unreachable from the
//     source. NoPath is a first-class outcome, not an error.
//   - (nil, false, err)  – res is nil (ErrNilResult) or dest is not a node
//     of the computed topology (ErrNodeNotFound).
//
// Complexity: O(path length).
func ReconstructPath(res *Result, dest string) (Path, bool, error) {
	if res == nil {
		return nil, false, ErrNilResult
	}
	if _, ok := res.Dist[dest]; !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrNodeNotFound, dest)
	}

	// Walk prev links until a node with no predecessor.
	var rev Path
	for cur := dest; cur != ""; cur = res.Prev[cur] {
		rev = append(rev, cur)
	}

	// A walk that does not terminate at the source means dest was never
	// reached (its prev chain bottoms out elsewhere — in practice at dest
	// itself, still holding the initial "" predecessor).
	if rev[len(rev)-1] != res.Source {
		return nil, false, nil
	}

	path := make(Path, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}

	return path, true, nil
}

// nodeItem is a frontier entry: a node and its candidate distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
// The secondary ID key makes extraction order among equal-cost entries
// deterministic, which in turn makes tie-broken path choices reproducible.
type nodePQ []*nodeItem

// Len returns the number of frontier entries.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then node ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two frontier entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
