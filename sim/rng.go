package sim

import "math/rand"

// SimulationKey identifies a reproducible analysis run.
// Two runs with the same key and identical Params produce identical reports.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// LatencyNoise returns a fresh noise source for emulated latency measurements.
// It is seeded with the key itself, so --seed maps one-to-one onto the noise.
// Each call starts the stream over; callers keep the returned *rand.Rand.
func (k SimulationKey) LatencyNoise() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
