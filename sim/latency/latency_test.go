package latency

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/netopt/sim"
)

func defaultModel() *Model {
	return New(sim.DefaultParams())
}

func TestLatency_AtOneUser(t *testing.T) {
	m := defaultModel()
	// 3 + 997/999
	assert.InDelta(t, 3.998, m.Latency(1), 1e-3)
	assert.InDelta(t, 3+997.0/999.0, m.Latency(1), 1e-12)
}

func TestLatency_NearCapacity(t *testing.T) {
	// L(C-1) = L0 + k
	assert.InDelta(t, 1000.0, defaultModel().Latency(999), 1e-9)
}

func TestLatency_StrictlyIncreasingWithPositiveDerivative(t *testing.T) {
	m := defaultModel()
	prev := m.Latency(0.5)
	for n := 1.0; n < 1000; n += 0.5 {
		if d := m.Derivative(n); !(d > 0) {
			t.Fatalf("L'(%v) = %v, want > 0", n, d)
		}
		l := m.Latency(n)
		if !(l > prev) {
			t.Fatalf("L(%v) = %v not greater than previous %v", n, l, prev)
		}
		prev = l
	}
}

func TestDerivative_MatchesFiniteDifference(t *testing.T) {
	m := defaultModel()
	const h = 1e-4
	for _, n := range []float64{1, 250, 500, 900, 990} {
		fd := (m.Latency(n+h) - m.Latency(n-h)) / (2 * h)
		assert.InEpsilon(t, fd, m.Derivative(n), 1e-5, "n=%v", n)
	}
}

func TestCrossover_DerivativeEqualsOne(t *testing.T) {
	m := defaultModel()
	n := m.Crossover()
	assert.InDelta(t, 1000-math.Sqrt(997), n, 1e-9)
	assert.InDelta(t, 968.43, n, 0.01)
	assert.InDelta(t, 1.0, m.Derivative(n), 1e-9)

	// below the crossover each user costs less than one unit, above it more
	assert.Less(t, m.Derivative(n-1), 1.0)
	assert.Greater(t, m.Derivative(n+1), 1.0)
}

func TestCrossover_NegativeWhenScalingExceedsCapacitySquared(t *testing.T) {
	p := sim.DefaultParams()
	p.Capacity = 10
	p.Simulation.SimulationMargin = 2
	p.Latency.Scaling = 400
	m := New(p)
	assert.Less(t, m.Crossover(), 0.0)
	assert.Greater(t, m.Derivative(1), 1.0)
}

func TestCheckDomain(t *testing.T) {
	m := defaultModel()
	tests := []struct {
		n  float64
		ok bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{999.999, true},
		{1000, false},
		{1001, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		err := m.CheckDomain(tt.n)
		if tt.ok {
			assert.NoError(t, err, "n=%v", tt.n)
			continue
		}
		require.Error(t, err, "n=%v", tt.n)
		assert.True(t, errors.Is(err, sim.ErrOutsideDomain))
	}
}

func TestSimulateServer_Grid(t *testing.T) {
	// GIVEN the default constants and step 10
	m := defaultModel()

	// WHEN the server is simulated
	run, err := m.SimulateServer(10, 50, 0.01, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// THEN users are 1, 11, ..., 941 and every sample is below C-50
	users := run.Users()
	require.Len(t, users, 95)
	assert.Equal(t, 1.0, users[0])
	assert.Equal(t, 941.0, users[len(users)-1])
	for _, s := range run.Samples {
		assert.Less(t, s.Users, 950.0)
		assert.Equal(t, m.Latency(s.Users), s.Theoretical)
	}
}

func TestSimulateServer_ZeroNoiseIsExact(t *testing.T) {
	run, err := defaultModel().SimulateServer(10, 50, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, run.Theoretical(), run.Simulated())
	mae, err := run.MeanAbsError()
	require.NoError(t, err)
	assert.Equal(t, 0.0, mae)
}

func TestSimulateServer_ErrorBoundedByNoise(t *testing.T) {
	// E|N(0, 0.01)| = 0.01*sqrt(2/pi) ≈ 0.008; 95 samples keep it well under 0.02.
	m := defaultModel()
	for seed := int64(0); seed < 20; seed++ {
		rng := sim.NewSimulationKey(seed).LatencyNoise()
		run, err := m.SimulateServer(10, 50, 0.01, rng)
		require.NoError(t, err)
		mae, err := run.MeanAbsError()
		require.NoError(t, err)
		assert.Greater(t, mae, 0.0, "seed %d", seed)
		assert.Less(t, mae, 0.02, "seed %d", seed)
	}
}

func TestSimulateServer_Deterministic(t *testing.T) {
	m := defaultModel()
	a, err := m.SimulateServer(10, 50, 0.01, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := m.SimulateServer(10, 50, 0.01, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.Simulated(), b.Simulated())
}

func TestSimulateServer_InvalidInput(t *testing.T) {
	m := defaultModel()
	rng := rand.New(rand.NewSource(1))

	_, err := m.SimulateServer(0, 50, 0.01, rng)
	assert.Error(t, err, "zero step")

	_, err = m.SimulateServer(10, 50, 0.01, nil)
	assert.Error(t, err, "nil rng")

	_, err = m.SimulateServer(10, 999, 0.01, rng)
	require.Error(t, err, "margin leaves no users")
	assert.True(t, errors.Is(err, sim.ErrOutsideDomain))
}
