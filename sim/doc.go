// Package sim provides the shared numeric core of the netopt analyzer.
//
// # Reading Guide
//
// Start with these files:
//   - config.go: Params (L0, k, C, B and sweep knobs), validation, domain checks
//   - sweep.go: evenly spaced and stepped user-count sequences
//   - rng.go: seeded, per-subsystem RNGs for reproducible noise
//
// # Architecture
//
// The sim package holds parameters and helpers; the models live in
// sub-packages:
//   - sim/latency/: L(n) = L0 + k/(C-n), its derivative and the noisy server sweep
//   - sim/throughput/: R(n) = B*n*(1-n/C), T(n) = B*(1-n/C), derivatives and optimum
//   - sim/report/: pure Analysis assembly, console report, JSON and Prometheus exports
//   - sim/plot/: two-panel PNG figures
//
// All latency formulas assume 0 < n < C. Nothing in this tree evaluates at n >= C;
// sweeps are built so that the bound is never reached.
package sim
