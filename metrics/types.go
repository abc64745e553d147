// Package metrics defines core types, parameters, and sentinel errors for
// the route-performance layer of github.com/katalvlaran/ospfsim.
package metrics

import (
	"errors"

	"github.com/katalvlaran/ospfsim/spf"
)

// Sentinel errors for metric derivation.
var (
	// ErrNilTopology indicates a nil topology was supplied.
	ErrNilTopology = errors.New("metrics: topology is nil")
	// ErrNilRoutes indicates a nil all-pairs result was supplied.
	ErrNilRoutes = errors.New("metrics: all-pairs routing state is nil")
	// ErrBadPacketSize indicates PacketSizeBytes ≤ 0.
	ErrBadPacketSize = errors.New("metrics: packet size must be positive")
	// ErrBadPropagationSpeed indicates SpeedOfLightFiberMps ≤ 0.
	ErrBadPropagationSpeed = errors.New("metrics: propagation speed must be positive")
	// ErrBadLossRate indicates PacketLossRate outside [0, 1).
	ErrBadLossRate = errors.New("metrics: packet loss rate must be in [0, 1)")
	// ErrBadUtilization indicates UtilizationFactor outside (0, 1].
	ErrBadUtilization = errors.New("metrics: utilization factor must be in (0, 1]")
)

// Default parameter values. SpeedOfLightFiber is the propagation speed in
// optical fiber (~2/3 of vacuum light speed), not c itself.
const (
	DefaultPacketSizeBytes  = 1500.0
	SpeedOfLightFiberMps    = 2e8
	DefaultPacketLossRate   = 0.01
	DefaultUtilization      = 0.8
	DefaultProcessingPerHop = 1.0 // ms
	DefaultQueuingPerHop    = 2.0 // ms
)

// Params consolidates every physical and queuing constant of the delay
// model into one explicitly passed structure, keeping the layer pure and
// testable — no module-level tuning knobs.
type Params struct {
	// PacketSizeBytes is the modeled packet size for transmission delay.
	PacketSizeBytes float64
	// SpeedOfLightFiberMps is the propagation speed over the medium, m/s.
	SpeedOfLightFiberMps float64
	// PacketLossRate discounts throughput for loss; in [0, 1).
	PacketLossRate float64
	// UtilizationFactor discounts throughput for contention; in (0, 1].
	UtilizationFactor float64
	// ProcessingPerHopMs is the fixed per-hop processing delay, ms.
	ProcessingPerHopMs float64
	// QueuingPerHopMs is the fixed per-hop queuing delay, ms.
	QueuingPerHopMs float64
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		PacketSizeBytes:      DefaultPacketSizeBytes,
		SpeedOfLightFiberMps: SpeedOfLightFiberMps,
		PacketLossRate:       DefaultPacketLossRate,
		UtilizationFactor:    DefaultUtilization,
		ProcessingPerHopMs:   DefaultProcessingPerHop,
		QueuingPerHopMs:      DefaultQueuingPerHop,
	}
}

// Validate checks the parameter ranges documented on the fields.
func (p Params) Validate() error {
	if p.PacketSizeBytes <= 0 {
		return ErrBadPacketSize
	}
	if p.SpeedOfLightFiberMps <= 0 {
		return ErrBadPropagationSpeed
	}
	if p.PacketLossRate < 0 || p.PacketLossRate >= 1 {
		return ErrBadLossRate
	}
	if p.UtilizationFactor <= 0 || p.UtilizationFactor > 1 {
		return ErrBadUtilization
	}

	return nil
}

// Delay is the per-route delay decomposition, milliseconds, rounded to four
// decimal digits.
type Delay struct {
	PropagationMs  float64
	TransmissionMs float64
	ProcessingMs   float64
	QueuingMs      float64
	TotalMs        float64
}

// RouteMetrics is the derived performance profile of one ordered
// (source, destination) pair.
//
// Unreachable pairs carry Unreachable=true with zero-valued numerics and a
// nil Path — an explicit marker the reporting layer renders as it sees fit,
// never a silently-zero route.
type RouteMetrics struct {
	Source      string
	Destination string
	Path        spf.Path
	Hops        int
	// Cost is the summed routing metric along the path.
	Cost  float64
	Delay Delay
	// ThroughputMbps is the bottleneck bandwidth discounted for loss and
	// contention, rounded to two decimal digits.
	ThroughputMbps float64
	// PathBandwidthsMbps lists the per-hop bandwidths the throughput was
	// derived from, in hop order.
	PathBandwidthsMbps []float64
	Unreachable        bool
}

// RouteKey identifies an ordered pair in a RouteTable.
type RouteKey struct {
	Source      string
	Destination string
}

// RouteTable maps every ordered pair (source ≠ destination) to its metrics.
type RouteTable map[RouteKey]RouteMetrics
