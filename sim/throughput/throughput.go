// Package throughput provides the shared-bandwidth throughput model.
//
// Per-user throughput T(n) = B*(1-n/C) falls linearly with load; aggregate
// throughput R(n) = n*T(n) is a concave parabola peaking at n = C/2.
package throughput

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/inference-sim/netopt/sim"
)

// Model evaluates throughput curves for one set of constants.
// Unlike latency, every formula here is finite on the closed range [0, C].
type Model struct {
	bandwidth float64 // B
	capacity  float64 // C
}

// New builds a Model from validated params.
func New(p sim.Params) *Model {
	return &Model{bandwidth: p.Throughput.Bandwidth, capacity: p.C()}
}

// WithBandwidth returns a copy of m with B replaced.
func (m *Model) WithBandwidth(b float64) *Model {
	return &Model{bandwidth: b, capacity: m.capacity}
}

// PerUser returns T(n) = B*(1 - n/C).
func (m *Model) PerUser(n float64) float64 {
	return m.bandwidth * (1 - n/m.capacity)
}

// Total returns R(n) = B*n*(1 - n/C).
func (m *Model) Total(n float64) float64 {
	return m.bandwidth * n * (1 - n/m.capacity)
}

// Derivative returns R'(n) = B*(1 - 2n/C).
func (m *Model) Derivative(n float64) float64 {
	return m.bandwidth * (1 - 2*n/m.capacity)
}

// PerUserDerivative returns T'(n) = -B/C, constant in n.
func (m *Model) PerUserDerivative() float64 {
	return -m.bandwidth / m.capacity
}

// Optimum is a user count and the aggregate throughput reached there.
type Optimum struct {
	Users      float64 `json:"users"`
	Throughput float64 `json:"throughput_mbps"`
}

// Maximum returns the closed-form optimum (C/2, B*C/4).
func (m *Model) Maximum() Optimum {
	n := m.capacity / 2
	return Optimum{Users: n, Throughput: m.Total(n)}
}

// BandwidthGain returns the percentage increase of the maximum aggregate
// throughput when B is multiplied by scale. The maximum is linear in B, so
// this is (scale-1)*100 up to rounding.
func (m *Model) BandwidthGain(scale float64) float64 {
	base := m.Maximum().Throughput
	scaled := m.WithBandwidth(m.bandwidth * scale).Maximum().Throughput
	return (scaled - base) / base * 100
}

// Sweep holds throughput curves sampled at discrete user counts.
type Sweep struct {
	Users   []float64
	Total   []float64
	PerUser []float64
}

// Optimum returns the sampled user count with the largest aggregate
// throughput, the first one on ties. It depends on the sampling step and
// need not equal C/2.
func (s *Sweep) Optimum() Optimum {
	i := floats.MaxIdx(s.Total)
	return Optimum{Users: s.Users[i], Throughput: s.Total[i]}
}

// Simulate evaluates R and T for n = 1, 1+step, ..., n <= C-1.
func (m *Model) Simulate(step int) (*Sweep, error) {
	if step <= 0 {
		return nil, fmt.Errorf("simulate throughput: step must be > 0, got %d", step)
	}
	users := sim.Steps(1, int(m.capacity), step)
	if len(users) == 0 {
		return nil, fmt.Errorf("simulate throughput: %w: capacity %v", sim.ErrOutsideDomain, m.capacity)
	}
	return &Sweep{
		Users:   users,
		Total:   sim.Evaluate(users, m.Total),
		PerUser: sim.Evaluate(users, m.PerUser),
	}, nil
}
