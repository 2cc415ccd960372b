// Package report assembles the netopt analysis and renders it as console
// text, JSON results and Prometheus textfile metrics.
package report

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/netopt/sim"
	"github.com/inference-sim/netopt/sim/latency"
	"github.com/inference-sim/netopt/sim/throughput"
)

// Analysis holds every quantity the report prints. Built by Analyze; no I/O.
type Analysis struct {
	Params sim.Params `json:"params"`

	LatencyCrossover    float64 `json:"latency_crossover_users"`
	MinLatency          float64 `json:"latency_at_one_user"`
	LatencyNearCapacity float64 `json:"latency_near_capacity"`
	LatencySamples      int     `json:"latency_samples"`
	LatencyMAE          float64 `json:"latency_mean_abs_error"`
	LatencyResidualStd  float64 `json:"latency_residual_stddev"`

	Optimum               throughput.Optimum `json:"throughput_optimum"`
	SimulatedOptimum      throughput.Optimum `json:"throughput_simulated_optimum"`
	PerUserAtOptimum      float64            `json:"per_user_throughput_at_optimum"`
	PerUserSlope          float64            `json:"per_user_throughput_slope"`
	BandwidthGainPercent  float64            `json:"bandwidth_gain_percent"`
	ThroughputSweepPoints int                `json:"throughput_samples"`
}

// Analyze evaluates both models for p, drawing latency noise from key.
// Returns an error for invalid params; nothing here is evaluated at n >= C.
func Analyze(p sim.Params, key sim.SimulationKey) (*Analysis, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	lat := latency.New(p)
	tp := throughput.New(p)

	run, err := simulateLatency(lat, p, key.LatencyNoise())
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	mae, err := run.MeanAbsError()
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	sweep, err := tp.Simulate(p.Simulation.ThroughputStep)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	opt := tp.Maximum()
	return &Analysis{
		Params:                p,
		LatencyCrossover:      lat.Crossover(),
		MinLatency:            lat.Latency(1),
		LatencyNearCapacity:   lat.Latency(p.C() - 1),
		LatencySamples:        len(run.Samples),
		LatencyMAE:            mae,
		LatencyResidualStd:    sim.ResidualStdDev(run.Theoretical(), run.Simulated()),
		Optimum:               opt,
		SimulatedOptimum:      sweep.Optimum(),
		PerUserAtOptimum:      tp.PerUser(opt.Users),
		PerUserSlope:          tp.PerUserDerivative(),
		BandwidthGainPercent:  tp.BandwidthGain(p.Throughput.BandwidthScale),
		ThroughputSweepPoints: len(sweep.Users),
	}, nil
}

func simulateLatency(m *latency.Model, p sim.Params, rng *rand.Rand) (*latency.ServerRun, error) {
	return m.SimulateServer(p.Simulation.LatencyStep, p.Simulation.SimulationMargin, p.Simulation.NoiseStdDev, rng)
}
