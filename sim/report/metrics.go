package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "netopt"

// Registry returns a fresh Prometheus registry holding one gauge per key
// quantity of the analysis. Nothing is registered globally.
func (a *Analysis) Registry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	gauge := func(name, help string, v float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		})
		g.Set(v)
		reg.MustRegister(g)
	}
	gauge("latency_crossover_users", "User count above which L'(n) exceeds 1.", a.LatencyCrossover)
	gauge("latency_at_one_user", "Latency L(1).", a.MinLatency)
	gauge("latency_mean_abs_error", "Mean absolute error of simulated latency samples.", a.LatencyMAE)
	gauge("throughput_optimum_users", "User count maximizing aggregate throughput.", a.Optimum.Users)
	gauge("throughput_max_mbps", "Maximum aggregate throughput in Mbps.", a.Optimum.Throughput)
	gauge("throughput_simulated_optimum_users", "Sampled user count with the largest aggregate throughput.", a.SimulatedOptimum.Users)
	gauge("bandwidth_gain_percent", "Maximum throughput gain from scaling per-user bandwidth.", a.BandwidthGainPercent)
	return reg
}

// WriteMetrics writes the analysis gauges in Prometheus text format to path,
// suitable for the node_exporter textfile collector.
func (a *Analysis) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, a.Registry()); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
