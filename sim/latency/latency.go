// Package latency provides the contention latency model for the netopt analyzer.
// L(n) = L0 + k/(C-n) grows without bound as the active-user count n approaches
// capacity C; L'(n) = k/(C-n)^2 is positive everywhere in (0, C).
package latency

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/inference-sim/netopt/sim"
)

// Model evaluates the latency curve for one set of constants.
// Callers must keep n in (0, C); use CheckDomain when n comes from outside.
type Model struct {
	baseLatency float64 // L0
	scaling     float64 // k
	capacity    float64 // C
}

// New builds a Model from validated params.
func New(p sim.Params) *Model {
	return &Model{
		baseLatency: p.Latency.BaseLatency,
		scaling:     p.Latency.Scaling,
		capacity:    p.C(),
	}
}

// Latency returns L(n) = L0 + k/(C-n).
func (m *Model) Latency(n float64) float64 {
	return m.baseLatency + m.scaling/(m.capacity-n)
}

// Derivative returns L'(n) = k/(C-n)^2.
func (m *Model) Derivative(n float64) float64 {
	d := m.capacity - n
	return m.scaling / (d * d)
}

// Crossover returns the user count C - sqrt(k) at which L'(n) = 1.
// Beyond it each extra user costs more than one latency unit.
// The value is negative when k > C^2, meaning L' > 1 over the whole domain.
func (m *Model) Crossover() float64 {
	return m.capacity - math.Sqrt(m.scaling)
}

// CheckDomain returns sim.ErrOutsideDomain unless 0 < n < C.
func (m *Model) CheckDomain(n float64) error {
	if !(n > 0 && n < m.capacity) {
		return fmt.Errorf("latency at n=%v: %w (capacity %v)", n, sim.ErrOutsideDomain, m.capacity)
	}
	return nil
}

// Sample pairs a theoretical latency with one emulated measurement.
type Sample struct {
	Users       float64
	Theoretical float64
	Simulated   float64
}

// ServerRun is the output of SimulateServer.
type ServerRun struct {
	Samples []Sample
}

// Users returns the sampled user counts in order.
func (r *ServerRun) Users() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Users
	}
	return out
}

// Theoretical returns the noiseless latencies in sample order.
func (r *ServerRun) Theoretical() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Theoretical
	}
	return out
}

// Simulated returns the noisy latencies in sample order.
func (r *ServerRun) Simulated() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Simulated
	}
	return out
}

// MeanAbsError returns the mean absolute gap between theoretical and simulated latency.
func (r *ServerRun) MeanAbsError() (float64, error) {
	return sim.MeanAbsError(r.Theoretical(), r.Simulated())
}

// SimulateServer emulates latency measurements for n = 1, 1+step, ... while
// n < C - margin, adding Normal(0, stddev) noise drawn from rng to each point.
// The sweep never reaches C, so every sample is in domain.
func (m *Model) SimulateServer(step, margin int, stddev float64, rng *rand.Rand) (*ServerRun, error) {
	if step <= 0 {
		return nil, fmt.Errorf("simulate server: step must be > 0, got %d", step)
	}
	if rng == nil {
		return nil, fmt.Errorf("simulate server: nil rng")
	}
	users := sim.Steps(1, int(m.capacity)-margin, step)
	if len(users) == 0 {
		return nil, fmt.Errorf("simulate server: %w: no users below %v - %d", sim.ErrOutsideDomain, m.capacity, margin)
	}

	run := &ServerRun{Samples: make([]Sample, 0, len(users))}
	for _, n := range users {
		if err := m.CheckDomain(n); err != nil {
			return nil, fmt.Errorf("simulate server: %w", err)
		}
		l := m.Latency(n)
		run.Samples = append(run.Samples, Sample{
			Users:       n,
			Theoretical: l,
			Simulated:   l + rng.NormFloat64()*stddev,
		})
	}
	return run, nil
}
