package spf

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/ospfsim/topology"
)

// ComputeAllPairs runs one single-source computation per topology node and
// eagerly reconstructs the path to every reachable destination.
//
// The per-source runs are independent: each produces its own distance and
// predecessor maps, and each writes a disjoint slot of the output map. With
// WithWorkers(n), n > 1, the sources are fanned out over a goroutine pool;
// only the top-level map insert is serialized. The default is sequential.
//
// Validation: ErrNilTopology for a nil topology, ErrNegativeWeight if any
// arc has negative cost (checked once, upfront, for the whole run).
//
// Complexity: O(V · (V + E) log V) time, O(V²) space for stored paths.
func ComputeAllPairs(t *topology.Topology, opts ...Option) (AllPairs, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if t == nil {
		return nil, ErrNilTopology
	}
	if err := scanNegativeCosts(t); err != nil {
		return nil, err
	}

	nodes := t.Nodes()
	out := make(AllPairs, len(nodes))

	if cfg.Workers <= 1 {
		for _, src := range nodes {
			out[src] = routesFrom(t, src, cfg.Observer, nodes)
		}

		return out, nil
	}

	// Parallel fan-out. Observer callbacks from concurrent sources would
	// interleave, so parallel mode always runs with the no-op observer.
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("spf: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, src := range nodes {
		src := src
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			routes := routesFrom(t, src, NoopObserver{}, nodes)
			mu.Lock()
			out[src] = routes
			mu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()

			return nil, fmt.Errorf("spf: submit source %q: %w", src, err)
		}
	}
	wg.Wait()

	return out, nil
}

// routesFrom computes the SourceRoutes slot for one source. Inputs are
// assumed validated.
func routesFrom(t *topology.Topology, src string, obs Observer, nodes []string) SourceRoutes {
	res := computeFrom(t, src, obs)

	paths := make(map[string]Path, len(nodes)-1)
	for _, dst := range nodes {
		if dst == src {
			continue
		}
		// Reconstruction over a freshly computed result cannot fail on
		// known nodes; unreachable destinations simply get no entry.
		if path, ok, _ := ReconstructPath(res, dst); ok {
			paths[dst] = path
		}
	}

	return SourceRoutes{Result: *res, Paths: paths}
}
