package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParams is returned when model constants make the analysis singular.
	ErrInvalidParams = errors.New("invalid model parameters")

	// ErrOutsideDomain is returned when a model is evaluated outside its domain.
	ErrOutsideDomain = errors.New("outside model domain")
)

// LatencyParams groups the constants of the latency model L(n) = L0 + k/(C-n).
type LatencyParams struct {
	BaseLatency float64 `yaml:"base_latency" json:"base_latency"` // L0, latency with no contention
	Scaling     float64 `yaml:"scaling" json:"scaling"`           // k, contention scaling constant (must be > 0)
}

// ThroughputParams groups the constants of the throughput model R(n) = B*n*(1-n/C).
type ThroughputParams struct {
	Bandwidth      float64 `yaml:"bandwidth" json:"bandwidth"`             // B, per-user bandwidth at zero contention (Mbps)
	BandwidthScale float64 `yaml:"bandwidth_scale" json:"bandwidth_scale"` // multiplier applied to B for the what-if gain (default 1.5)
}

// SimulationParams groups the sweep and noise knobs of the emulated measurements.
type SimulationParams struct {
	LatencyStep      int     `yaml:"latency_step" json:"latency_step"`           // user-count stride of the latency sweep
	ThroughputStep   int     `yaml:"throughput_step" json:"throughput_step"`     // user-count stride of the throughput sweep
	NoiseStdDev      float64 `yaml:"noise_stddev" json:"noise_stddev"`           // sigma of the Gaussian measurement noise
	SimulationMargin int     `yaml:"simulation_margin" json:"simulation_margin"` // latency sweep stops strictly below C - margin
	PlotPoints       int     `yaml:"plot_points" json:"plot_points"`             // evenly spaced samples per plotted curve
}

// Params holds every constant of one analysis run. Fixed for the process lifetime.
type Params struct {
	Capacity   int              `yaml:"capacity" json:"capacity"` // C, maximum concurrent users (domain bound)
	Latency    LatencyParams    `yaml:"latency" json:"latency"`
	Throughput ThroughputParams `yaml:"throughput" json:"throughput"`
	Simulation SimulationParams `yaml:"simulation" json:"simulation"`
}

// DefaultParams returns the built-in constants used when no overlay is given.
func DefaultParams() Params {
	return Params{
		Capacity: 1000,
		Latency: LatencyParams{
			BaseLatency: 3,
			Scaling:     997,
		},
		Throughput: ThroughputParams{
			Bandwidth:      1000,
			BandwidthScale: 1.5,
		},
		Simulation: SimulationParams{
			LatencyStep:      10,
			ThroughputStep:   10,
			NoiseStdDev:      0.01,
			SimulationMargin: 50,
			PlotPoints:       1000,
		},
	}
}

// C returns the capacity as a float for use in formulas.
func (p Params) C() float64 {
	return float64(p.Capacity)
}

// Validate rejects constants that would make a later evaluation divide by zero
// or produce an empty sweep.
func (p Params) Validate() error {
	switch {
	case p.Capacity <= 1:
		return fmt.Errorf("%w: capacity must be > 1, got %d", ErrInvalidParams, p.Capacity)
	case !(p.Latency.Scaling > 0) || math.IsInf(p.Latency.Scaling, 0):
		return fmt.Errorf("%w: latency scaling must be a positive finite number, got %v", ErrInvalidParams, p.Latency.Scaling)
	case math.IsNaN(p.Latency.BaseLatency) || math.IsInf(p.Latency.BaseLatency, 0):
		return fmt.Errorf("%w: base latency must be finite, got %v", ErrInvalidParams, p.Latency.BaseLatency)
	case !(p.Throughput.Bandwidth > 0) || math.IsInf(p.Throughput.Bandwidth, 0):
		return fmt.Errorf("%w: bandwidth must be a positive finite number, got %v", ErrInvalidParams, p.Throughput.Bandwidth)
	case !(p.Throughput.BandwidthScale > 0) || math.IsInf(p.Throughput.BandwidthScale, 0):
		return fmt.Errorf("%w: bandwidth scale must be a positive finite number, got %v", ErrInvalidParams, p.Throughput.BandwidthScale)
	case p.Simulation.LatencyStep <= 0:
		return fmt.Errorf("%w: latency step must be > 0, got %d", ErrInvalidParams, p.Simulation.LatencyStep)
	case p.Simulation.ThroughputStep <= 0:
		return fmt.Errorf("%w: throughput step must be > 0, got %d", ErrInvalidParams, p.Simulation.ThroughputStep)
	case !(p.Simulation.NoiseStdDev >= 0) || math.IsInf(p.Simulation.NoiseStdDev, 0):
		return fmt.Errorf("%w: noise stddev must be finite and >= 0, got %v", ErrInvalidParams, p.Simulation.NoiseStdDev)
	case p.Simulation.SimulationMargin < 0:
		return fmt.Errorf("%w: simulation margin must be >= 0, got %d", ErrInvalidParams, p.Simulation.SimulationMargin)
	case p.Capacity-p.Simulation.SimulationMargin <= 1:
		return fmt.Errorf("%w: capacity %d leaves no latency samples with margin %d",
			ErrInvalidParams, p.Capacity, p.Simulation.SimulationMargin)
	case p.Simulation.PlotPoints < 2:
		return fmt.Errorf("%w: plot points must be >= 2, got %d", ErrInvalidParams, p.Simulation.PlotPoints)
	}
	return nil
}
