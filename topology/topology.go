package topology

import (
	"fmt"
	"sort"
)

// New creates an empty Topology.
// Complexity: O(1).
func New() *Topology {
	return &Topology{adj: make(map[string]map[string]LinkAttrs)}
}

// AddLink inserts (or replaces) the directed arc from → to with the given
// attributes. Both endpoints are registered as nodes, so the adjacency
// invariant (every referenced node has an entry) holds after every call.
//
// Validation (in order):
//  1. from and to must be non-empty (ErrEmptyNodeID).
//  2. attrs.Cost must be ≥ 0 (ErrNegativeCost).
//  3. attrs.DistanceKm must be ≥ 0 (ErrNegativeDistance).
//  4. attrs.BandwidthMbps must be > 0 (ErrNonPositiveBandwidth).
//
// Complexity: O(1) amortized.
func (t *Topology) AddLink(from, to string, attrs LinkAttrs) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if attrs.Cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeCost, from, to, attrs.Cost)
	}
	if attrs.DistanceKm < 0 {
		return fmt.Errorf("%w: %s→%s distance_km=%v", ErrNegativeDistance, from, to, attrs.DistanceKm)
	}
	if attrs.BandwidthMbps <= 0 {
		return fmt.Errorf("%w: %s→%s bandwidth_mbps=%v", ErrNonPositiveBandwidth, from, to, attrs.BandwidthMbps)
	}

	t.ensureNode(from)
	t.ensureNode(to)
	t.adj[from][to] = attrs

	return nil
}

// AddCost inserts the directed arc from → to carrying only a routing cost;
// distance and bandwidth take the package defaults. This mirrors topology
// sources that describe links as bare cost maps.
func (t *Topology) AddCost(from, to string, cost float64) error {
	attrs := DefaultLinkAttrs()
	attrs.Cost = cost

	return t.AddLink(from, to, attrs)
}

// AddBiLink inserts the link as two symmetric arcs (from→to and to→from)
// sharing the same attribute set.
func (t *Topology) AddBiLink(a, b string, attrs LinkAttrs) error {
	if err := t.AddLink(a, b, attrs); err != nil {
		return err
	}

	return t.AddLink(b, a, attrs)
}

// AddNode registers a node with no outgoing arcs. Adding an existing node is
// a no-op. Returns ErrEmptyNodeID for the empty string.
func (t *Topology) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	t.ensureNode(id)

	return nil
}

// ensureNode guarantees the adjacency entry for id exists.
func (t *Topology) ensureNode(id string) {
	if _, ok := t.adj[id]; !ok {
		t.adj[id] = make(map[string]LinkAttrs)
	}
}

// HasNode reports whether id is a node of the topology.
// Complexity: O(1).
func (t *Topology) HasNode(id string) bool {
	_, ok := t.adj[id]

	return ok
}

// Nodes returns all node IDs in ascending order. The sorted order makes
// every full-topology iteration deterministic.
// Complexity: O(V log V).
func (t *Topology) Nodes() []string {
	ids := make([]string, 0, len(t.adj))
	for id := range t.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the outgoing arcs of node id as a neighbor→attrs map.
// The returned map is the internal adjacency row; callers must not mutate it.
// Returns ErrNodeNotFound for unknown nodes.
// Complexity: O(1).
func (t *Topology) Neighbors(id string) (map[string]LinkAttrs, error) {
	row, ok := t.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return row, nil
}

// NeighborIDs returns the outgoing neighbor IDs of node id in ascending
// order, for deterministic relaxation and rendering.
// Complexity: O(deg log deg).
func (t *Topology) NeighborIDs(id string) ([]string, error) {
	row, ok := t.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	ids := make([]string, 0, len(row))
	for nbr := range row {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// NodeCount returns the number of nodes.
func (t *Topology) NodeCount() int { return len(t.adj) }

// ArcCount returns the number of directed arcs.
func (t *Topology) ArcCount() int {
	var n int
	for _, row := range t.adj {
		n += len(row)
	}

	return n
}

// ResolveLink resolves the attributes used when traversing a → b.
//
// Fallback chain:
//  1. the forward arc a→b, when present;
//  2. the reverse arc b→a — links in this domain are near-symmetric, and a
//     missing forward arc usually means the source described one direction
//     only;
//  3. DefaultLinkAttrs() when neither direction exists.
//
// The chain deliberately tolerates partial topology data instead of failing;
// see the metrics layer for the consumer that relies on this.
func (t *Topology) ResolveLink(a, b string) LinkAttrs {
	if row, ok := t.adj[a]; ok {
		if attrs, ok := row[b]; ok {
			return attrs
		}
	}
	if row, ok := t.adj[b]; ok {
		if attrs, ok := row[a]; ok {
			return attrs
		}
	}

	return DefaultLinkAttrs()
}

// Validate re-checks the whole topology against the construction constraints.
// AddLink already rejects bad arcs one by one; Validate exists for callers
// that received a Topology from elsewhere (e.g. a decoded file) and need the
// non-negative-cost precondition of the shortest-path engine verified before
// running it.
// Complexity: O(V + E).
func (t *Topology) Validate() error {
	for from, row := range t.adj {
		for to, attrs := range row {
			if attrs.Cost < 0 {
				return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeCost, from, to, attrs.Cost)
			}
			if attrs.DistanceKm < 0 {
				return fmt.Errorf("%w: %s→%s distance_km=%v", ErrNegativeDistance, from, to, attrs.DistanceKm)
			}
			if attrs.BandwidthMbps <= 0 {
				return fmt.Errorf("%w: %s→%s bandwidth_mbps=%v", ErrNonPositiveBandwidth, from, to, attrs.BandwidthMbps)
			}
		}
	}

	return nil
}
