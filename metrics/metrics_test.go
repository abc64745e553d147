// Package metrics_test contains unit tests for the delay/throughput
// pipeline: per-hop formulas, composition along paths, attribute fallback,
// unreachable markers, and parameter validation.
package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ospfsim/metrics"
	"github.com/katalvlaran/ospfsim/spf"
	"github.com/katalvlaran/ospfsim/topology"
)

// ------------------------------------------------------------------------
// 1. Hop-level formulas.
// ------------------------------------------------------------------------

func TestPropagationDelayMs(t *testing.T) {
	// 50 km of fiber at 2·10⁸ m/s: 50000 / 2e8 s = 0.25 ms.
	got := metrics.PropagationDelayMs(50, metrics.SpeedOfLightFiberMps)
	assert.Equal(t, 0.25, got)

	assert.Zero(t, metrics.PropagationDelayMs(0, metrics.SpeedOfLightFiberMps))
}

func TestTransmissionDelayMs(t *testing.T) {
	// A 1500-byte packet on a 1.544 Mbps serial link: 12000 / 1.544e6 s ≈ 7.772 ms.
	got := metrics.TransmissionDelayMs(1500, 1.544)
	assert.InDelta(t, 7.772, got, 1e-3)

	// The same packet on gigabit fiber: 12000 / 1e9 s = 0.012 ms.
	assert.InDelta(t, 0.012, metrics.TransmissionDelayMs(1500, 1000), 1e-9)
}

func TestEffectiveThroughputMbps(t *testing.T) {
	// Bottleneck 5 Mbps, default loss 0.01 and utilization 0.8:
	// 5 × 0.99 × 0.8 = 3.96.
	got := metrics.EffectiveThroughputMbps([]float64{10, 5}, metrics.DefaultPacketLossRate, metrics.DefaultUtilization)
	assert.Equal(t, 3.96, got)

	// Order must not matter; only the minimum does.
	got = metrics.EffectiveThroughputMbps([]float64{5, 10}, metrics.DefaultPacketLossRate, metrics.DefaultUtilization)
	assert.Equal(t, 3.96, got)

	// No hops → no throughput.
	assert.Zero(t, metrics.EffectiveThroughputMbps(nil, 0.01, 0.8))
}

// ------------------------------------------------------------------------
// 2. Single-hop composition.
// ------------------------------------------------------------------------

func TestComputeRouteTable_SingleHop(t *testing.T) {
	tp := topology.New()
	require.NoError(t, tp.AddBiLink("A", "B", topology.LinkAttrs{
		Cost:          64,
		DistanceKm:    50,
		BandwidthMbps: 1.544,
	}))

	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)

	table, err := metrics.ComputeRouteTable(tp, all, metrics.DefaultParams())
	require.NoError(t, err)

	rm := table[metrics.RouteKey{Source: "A", Destination: "B"}]
	require.False(t, rm.Unreachable)
	assert.Equal(t, spf.Path{"A", "B"}, rm.Path)
	assert.Equal(t, 1, rm.Hops)
	assert.Equal(t, 64.0, rm.Cost)
	assert.Equal(t, []float64{1.544}, rm.PathBandwidthsMbps)

	// Components: prop 0.25, trans ≈ 7.772, proc 1.0, queue 2.0.
	assert.Equal(t, 0.25, rm.Delay.PropagationMs)
	assert.InDelta(t, 7.772, rm.Delay.TransmissionMs, 1e-3)
	assert.Equal(t, 1.0, rm.Delay.ProcessingMs)
	assert.Equal(t, 2.0, rm.Delay.QueuingMs)
	assert.InDelta(t, 0.25+7.772+1.0+2.0, rm.Delay.TotalMs, 1e-3)

	// Throughput: 1.544 × 0.99 × 0.8 = 1.22 (2 dp).
	assert.Equal(t, 1.22, rm.ThroughputMbps)
}

// ------------------------------------------------------------------------
// 3. Multi-hop composition and attribute fallback.
// ------------------------------------------------------------------------

func TestComputeRouteTable_MultiHopAccumulation(t *testing.T) {
	// A—B: 100 km @ 10 Mbps; B—C: 200 km @ 5 Mbps.
	tp := topology.New()
	require.NoError(t, tp.AddBiLink("A", "B", topology.LinkAttrs{Cost: 1, DistanceKm: 100, BandwidthMbps: 10}))
	require.NoError(t, tp.AddBiLink("B", "C", topology.LinkAttrs{Cost: 2, DistanceKm: 200, BandwidthMbps: 5}))

	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)
	table, err := metrics.ComputeRouteTable(tp, all, metrics.DefaultParams())
	require.NoError(t, err)

	rm := table[metrics.RouteKey{Source: "A", Destination: "C"}]
	require.False(t, rm.Unreachable)
	assert.Equal(t, 2, rm.Hops)
	assert.Equal(t, 3.0, rm.Cost)

	// Sums: prop 0.5 + 1.0 = 1.5 ms; trans 1.2 + 2.4 = 3.6 ms.
	assert.Equal(t, 1.5, rm.Delay.PropagationMs)
	assert.InDelta(t, 3.6, rm.Delay.TransmissionMs, 1e-9)
	assert.Equal(t, 2.0, rm.Delay.ProcessingMs)
	assert.Equal(t, 4.0, rm.Delay.QueuingMs)
	assert.InDelta(t, 1.5+3.6+2.0+4.0, rm.Delay.TotalMs, 1e-9)

	// Bottleneck: min(10, 5) × 0.99 × 0.8 = 3.96 Mbps.
	assert.Equal(t, []float64{10, 5}, rm.PathBandwidthsMbps)
	assert.Equal(t, 3.96, rm.ThroughputMbps)
}

func TestComputeRouteTable_MultiCampusDefaultsEveryHop(t *testing.T) {
	// The reference topology carries costs only, so every hop must resolve
	// to the default 50 km / 1000 Mbps attributes.
	tp := topology.MultiCampus()
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)
	table, err := metrics.ComputeRouteTable(tp, all, metrics.DefaultParams())
	require.NoError(t, err)

	// 12 routers → 132 ordered pairs.
	assert.Len(t, table, 132)

	for key, rm := range table {
		require.False(t, rm.Unreachable, "%v unreachable", key)
		require.Positive(t, rm.Hops)

		for _, bw := range rm.PathBandwidthsMbps {
			assert.Equal(t, topology.DefaultBandwidthMbps, bw)
		}
		// Per hop: prop 0.25 ms, trans 0.012 ms, proc 1 ms, queue 2 ms.
		h := float64(rm.Hops)
		assert.InDelta(t, 0.25*h, rm.Delay.PropagationMs, 1e-9)
		assert.InDelta(t, 0.012*h, rm.Delay.TransmissionMs, 1e-9)
		assert.Equal(t, h, rm.Delay.ProcessingMs)
		assert.Equal(t, 2*h, rm.Delay.QueuingMs)

		// Costs stay integer multiples of 64.
		assert.Equal(t, h*64, rm.Cost)

		// Gigabit bottleneck: 1000 × 0.99 × 0.8 = 792 Mbps.
		assert.Equal(t, 792.0, rm.ThroughputMbps)
	}
}

func TestComputeRouteTable_ReverseArcFallback(t *testing.T) {
	// Routing ran over a fully bidirectional topology, but the attribute
	// snapshot describes one direction only. The A→B hop must borrow the
	// reverse arc's attributes instead of failing or inventing zeros.
	routing := topology.New()
	require.NoError(t, routing.AddBiLink("A", "B", topology.DefaultLinkAttrs()))
	all, err := spf.ComputeAllPairs(routing)
	require.NoError(t, err)

	attrsOnly := topology.New()
	require.NoError(t, attrsOnly.AddLink("B", "A", topology.LinkAttrs{Cost: 7, DistanceKm: 10, BandwidthMbps: 2}))

	table, err := metrics.ComputeRouteTable(attrsOnly, all, metrics.DefaultParams())
	require.NoError(t, err)

	ab := table[metrics.RouteKey{Source: "A", Destination: "B"}]
	require.False(t, ab.Unreachable)
	assert.Equal(t, 7.0, ab.Cost)
	assert.Equal(t, []float64{2.0}, ab.PathBandwidthsMbps)
	// prop: 10 km → 0.05 ms.
	assert.Equal(t, 0.05, ab.Delay.PropagationMs)
}

// ------------------------------------------------------------------------
// 4. Unreachable pairs and validation.
// ------------------------------------------------------------------------

func TestComputeRouteTable_UnreachableMarker(t *testing.T) {
	tp := topology.New()
	require.NoError(t, tp.AddBiLink("A", "B", topology.DefaultLinkAttrs()))
	require.NoError(t, tp.AddBiLink("C", "D", topology.DefaultLinkAttrs()))

	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)
	table, err := metrics.ComputeRouteTable(tp, all, metrics.DefaultParams())
	require.NoError(t, err)

	rm, ok := table[metrics.RouteKey{Source: "A", Destination: "C"}]
	require.True(t, ok, "unreachable pair must still own a table entry")
	assert.True(t, rm.Unreachable)
	assert.Zero(t, rm.Hops)
	assert.Zero(t, rm.Cost)
	assert.Zero(t, rm.Delay)
	assert.Zero(t, rm.ThroughputMbps)
	assert.Nil(t, rm.Path)
}

func TestComputeRouteTable_InputValidation(t *testing.T) {
	tp := topology.MultiCampus()
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)

	_, err = metrics.ComputeRouteTable(nil, all, metrics.DefaultParams())
	assert.ErrorIs(t, err, metrics.ErrNilTopology)

	_, err = metrics.ComputeRouteTable(tp, nil, metrics.DefaultParams())
	assert.ErrorIs(t, err, metrics.ErrNilRoutes)
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, metrics.DefaultParams().Validate())

	p := metrics.DefaultParams()
	p.PacketSizeBytes = 0
	assert.ErrorIs(t, p.Validate(), metrics.ErrBadPacketSize)

	p = metrics.DefaultParams()
	p.SpeedOfLightFiberMps = -1
	assert.ErrorIs(t, p.Validate(), metrics.ErrBadPropagationSpeed)

	p = metrics.DefaultParams()
	p.PacketLossRate = 1
	assert.ErrorIs(t, p.Validate(), metrics.ErrBadLossRate)

	p = metrics.DefaultParams()
	p.UtilizationFactor = 1.5
	assert.ErrorIs(t, p.Validate(), metrics.ErrBadUtilization)
}
