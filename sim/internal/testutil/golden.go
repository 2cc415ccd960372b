// Package testutil provides shared test infrastructure for the netopt analyzer.
// It holds the golden dataset types and assertion helpers used across the
// sim/ sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/inference-sim/netopt/sim"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one parameter set and the quantities it must produce.
// Noise is zero in every case so the expectations are exact.
type GoldenTestCase struct {
	Name    string        `json:"name"`
	Params  sim.Params    `json:"params"`
	Metrics GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected analysis output of a golden test case.
type GoldenMetrics struct {
	// Latency model
	LatencyCrossoverUsers float64 `json:"latency_crossover_users"`
	LatencyAtOneUser      float64 `json:"latency_at_one_user"`
	LatencyNearCapacity   float64 `json:"latency_near_capacity"`
	LatencySamples        int     `json:"latency_samples"`

	// Throughput model
	OptimumUsers          float64 `json:"optimum_users"`
	MaxThroughput         float64 `json:"max_throughput"`
	SimulatedOptimumUsers float64 `json:"simulated_optimum_users"`
	ThroughputSamples     int     `json:"throughput_samples"`
	PerUserAtOptimum      float64 `json:"per_user_at_optimum"`
	PerUserSlope          float64 `json:"per_user_slope"`
	BandwidthGainPercent  float64 `json:"bandwidth_gain_percent"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
