// Package metrics derives per-route performance estimates from computed
// shortest paths and per-arc physical attributes: a decomposed delay model
// (propagation, transmission, processing, queuing) plus effective
// bottleneck throughput.
package metrics

import (
	"math"

	"github.com/katalvlaran/ospfsim/spf"
	"github.com/katalvlaran/ospfsim/topology"
)

// PropagationDelayMs returns the time for a signal to traverse distanceKm of
// medium at speedMps meters per second, in milliseconds.
func PropagationDelayMs(distanceKm, speedMps float64) float64 {
	distanceM := distanceKm * 1000.0
	delayS := distanceM / speedMps

	return delayS * 1000.0
}

// TransmissionDelayMs returns the time to push packetSizeBytes onto a link
// of bandwidthMbps megabits per second, in milliseconds.
func TransmissionDelayMs(packetSizeBytes, bandwidthMbps float64) float64 {
	packetBits := packetSizeBytes * 8.0
	bwBps := bandwidthMbps * 1e6
	delayS := packetBits / bwBps

	return delayS * 1000.0
}

// EffectiveThroughputMbps models the practically achievable rate along a
// path: the narrowest hop bandwidth discounted for loss and contention,
// rounded to two decimal digits. An empty bandwidth list yields 0.
//
// This is a single-bottleneck capacity estimate, not a queuing simulation.
func EffectiveThroughputMbps(bandwidthsMbps []float64, lossRate, utilization float64) float64 {
	if len(bandwidthsMbps) == 0 {
		return 0
	}

	minBw := bandwidthsMbps[0]
	for _, bw := range bandwidthsMbps[1:] {
		if bw < minBw {
			minBw = bw
		}
	}

	return round2(minBw * (1 - lossRate) * utilization)
}

// ComputeRouteTable derives RouteMetrics for every ordered pair
// (source ≠ destination) of the all-pairs routing state.
//
// Per pair with a known path, for each consecutive hop (a, b):
//
//   - arc attributes resolve through the topology fallback chain
//     (forward arc → reverse arc → defaults), so partial attribute data
//     degrades to defaults instead of failing;
//   - Cost accumulates each hop's routing metric;
//   - propagation and transmission delays accumulate from the hop's
//     distance and bandwidth;
//   - processing and queuing delays are fixed per-hop constants.
//
// Delay components and total are rounded to four decimal digits; the total
// is summed before rounding. Pairs without a stored path become explicit
// Unreachable entries with zero-valued numerics.
//
// The derivation is pure: no side effects, recompute at will.
// Complexity: O(V² · L) where L is the mean path length.
func ComputeRouteTable(t *topology.Topology, all spf.AllPairs, p Params) (RouteTable, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	if all == nil {
		return nil, ErrNilRoutes
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	table := make(RouteTable, len(all)*(len(all)-1))
	for _, src := range t.Nodes() {
		routes, ok := all[src]
		if !ok {
			continue
		}
		for _, dst := range t.Nodes() {
			if dst == src {
				continue
			}
			table[RouteKey{Source: src, Destination: dst}] = routeMetrics(t, src, dst, routes.Paths[dst], p)
		}
	}

	return table, nil
}

// routeMetrics computes the profile of one pair. A nil or sub-2-node path
// marks the pair unreachable with all-zero numerics.
func routeMetrics(t *topology.Topology, src, dst string, path spf.Path, p Params) RouteMetrics {
	if len(path) < 2 {
		return RouteMetrics{Source: src, Destination: dst, Unreachable: true}
	}

	hops := len(path) - 1
	bandwidths := make([]float64, 0, hops)

	var cost, propMs, transMs float64
	for i := 0; i < hops; i++ {
		attrs := t.ResolveLink(path[i], path[i+1])
		cost += attrs.Cost
		propMs += PropagationDelayMs(attrs.DistanceKm, p.SpeedOfLightFiberMps)
		transMs += TransmissionDelayMs(p.PacketSizeBytes, attrs.BandwidthMbps)
		bandwidths = append(bandwidths, attrs.BandwidthMbps)
	}

	procMs := float64(hops) * p.ProcessingPerHopMs
	queueMs := float64(hops) * p.QueuingPerHopMs

	return RouteMetrics{
		Source:      src,
		Destination: dst,
		Path:        path,
		Hops:        hops,
		Cost:        cost,
		Delay: Delay{
			PropagationMs:  round4(propMs),
			TransmissionMs: round4(transMs),
			ProcessingMs:   round4(procMs),
			QueuingMs:      round4(queueMs),
			TotalMs:        round4(propMs + transMs + procMs + queueMs),
		},
		ThroughputMbps:     EffectiveThroughputMbps(bandwidths, p.PacketLossRate, p.UtilizationFactor),
		PathBandwidthsMbps: bandwidths,
	}
}

// round2 rounds to two decimal digits.
func round2(x float64) float64 { return math.Round(x*1e2) / 1e2 }

// round4 rounds to four decimal digits.
func round4(x float64) float64 { return math.Round(x*1e4) / 1e4 }
