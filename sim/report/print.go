package report

import (
	"fmt"
	"io"
	"strings"
)

var banner = strings.Repeat("=", 60)

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, banner)
}

// PrintAnalysis writes the critical-point section of the report.
func (a *Analysis) PrintAnalysis(w io.Writer) {
	printBanner(w, "NETWORK OPTIMIZATION ANALYSIS")

	fmt.Fprintln(w, "\n--- Latency ---")
	fmt.Fprintf(w, "L'(n) > 1 when n > %.2f\n", a.LatencyCrossover)

	fmt.Fprintln(w, "\n--- Throughput ---")
	fmt.Fprintf(w, "Optimal point: n = %g\n", a.Optimum.Users)
	fmt.Fprintf(w, "Maximum throughput: R(%g) = %.2f\n", a.Optimum.Users, a.Optimum.Throughput)

	fmt.Fprintf(w, "\nIncreasing B by %.0f%% -> throughput gain: %.1f%%\n",
		(a.Params.Throughput.BandwidthScale-1)*100, a.BandwidthGainPercent)

	fmt.Fprintf(w, "\nMean simulated latency error: %.4f\n", a.LatencyMAE)
	fmt.Fprintf(w, "Simulated optimal n: %g\n", a.SimulatedOptimum.Users)
}

// PrintSummary writes the closing summary section of the report.
func (a *Analysis) PrintSummary(w io.Writer) {
	fmt.Fprintln(w)
	printBanner(w, "SUMMARY")
	fmt.Fprintf(w, "Minimum latency: L(1) = %.4f\n", a.MinLatency)
	fmt.Fprintf(w, "Latency at n=%d: %.4f\n", a.Params.Capacity-1, a.LatencyNearCapacity)
	fmt.Fprintf(w, "Maximum throughput: %.2f Mbps with %g users\n", a.Optimum.Throughput, a.Optimum.Users)
	fmt.Fprintf(w, "Per-user throughput at optimum: %.2f Mbps\n", a.PerUserAtOptimum)
}
