// Package spf defines core types, functional options, and sentinel errors
// for the shortest-path-first engine of github.com/katalvlaran/ospfsim.
package spf

import "errors"

// Sentinel errors returned by the SPF engine.
var (
	// ErrEmptySource indicates that no source node ID was provided.
	ErrEmptySource = errors.New("spf: source node ID is empty")

	// ErrNilTopology indicates that a nil *topology.Topology was passed in.
	ErrNilTopology = errors.New("spf: topology is nil")

	// ErrSourceNotFound indicates that the source node does not exist in the topology.
	ErrSourceNotFound = errors.New("spf: source node not found in topology")

	// ErrNegativeWeight indicates a negative arc cost was detected in the topology.
	// Dijkstra's correctness guarantee requires non-negative weights, so the
	// engine fails fast instead of returning wrong distances.
	ErrNegativeWeight = errors.New("spf: negative arc cost encountered")

	// ErrNilResult indicates path reconstruction was asked to walk a nil result.
	ErrNilResult = errors.New("spf: result is nil")

	// ErrNodeNotFound indicates a requested destination is absent from the result.
	ErrNodeNotFound = errors.New("spf: node not found in result")

	// ErrBadWorkerCount indicates WithWorkers was given a value < 1.
	ErrBadWorkerCount = errors.New("spf: worker count must be ≥ 1")
)

// Path is an ordered node sequence from source to destination, inclusive.
type Path []string

// Result holds the outcome of one single-source computation.
//
// Dist maps every topology node to its shortest cost from Source
// (math.Inf(1) for unreachable nodes). Prev maps every node to the node from
// which its shortest distance was last improved; "" for the source itself
// and for unreached nodes.
type Result struct {
	// Source is the node the computation started from.
	Source string
	// Dist is the shortest-cost map, +Inf for unreachable nodes.
	Dist map[string]float64
	// Prev is the predecessor map used for path reconstruction.
	Prev map[string]string
}

// SourceRoutes bundles a single-source Result with the eagerly reconstructed
// path to every reachable destination (destinations other than the source).
type SourceRoutes struct {
	Result
	// Paths maps destination → path. Unreachable destinations have no entry.
	Paths map[string]Path
}

// AllPairs maps every topology node to its SourceRoutes.
type AllPairs map[string]SourceRoutes

// Observer receives callbacks at the engine's two well-defined decision
// points. It replaces interleaved tracing output: the engine stays pure and
// a caller-supplied Observer renders steps however it likes.
//
// OnVisit fires when a node's distance is finalized (extracted from the
// frontier and not stale). OnRelax fires for every examined arc; updated
// reports whether the candidate improved the neighbor's distance.
//
// Callbacks run synchronously on the computing goroutine; implementations
// must not mutate the topology.
type Observer interface {
	OnVisit(node string, dist float64)
	OnRelax(from, to string, oldDist, newDist float64, updated bool)
}

// NoopObserver is the default Observer; it ignores every callback.
type NoopObserver struct{}

// OnVisit implements Observer.
func (NoopObserver) OnVisit(string, float64) {}

// OnRelax implements Observer.
func (NoopObserver) OnRelax(string, string, float64, float64, bool) {}

// Options configures the SPF engine.
//
// Source   – starting node ID (required for ComputeSingleSource).
// Observer – tracing hook; NoopObserver by default.
// Workers  – goroutines used by ComputeAllPairs (1 = sequential).
type Options struct {
	Source   string
	Observer Observer
	Workers  int
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// Source sets the starting node ID for a single-source computation.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithObserver installs a tracing Observer. ComputeAllPairs honors the
// observer only in sequential mode; parallel runs would interleave
// callbacks from concurrent sources, so they keep the no-op default.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = NoopObserver{}
		}
		o.Observer = obs
	}
}

// WithWorkers sets the number of concurrent single-source computations used
// by ComputeAllPairs. Values < 1 panic with ErrBadWorkerCount.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkerCount.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source node ID: no-op observer, sequential execution.
func DefaultOptions(source string) Options {
	return Options{
		Source:   source,
		Observer: NoopObserver{},
		Workers:  1,
	}
}
