package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/netopt/sim"
	"github.com/inference-sim/netopt/sim/plot"
	"github.com/inference-sim/netopt/sim/report"
)

var (
	seed        int64  // Seed for the latency measurement noise
	logLevel    string // Log verbosity level
	configPath  string // Optional YAML overlay for model constants
	outputDir   string // Directory receiving the figure PNGs
	show        bool   // Open each figure in the platform viewer (disable for headless runs)
	noPlots     bool   // Skip figure generation entirely
	resultsPath string // Optional JSON results file
	metricsPath string // Optional Prometheus textfile
)

// runOptions carries the flag values into runAnalysis.
type runOptions struct {
	Seed        int64
	ConfigPath  string
	OutputDir   string
	NoPlots     bool
	ResultsPath string
	MetricsPath string
	Open        plot.Opener
}

// rootCmd is the base command for the CLI. With no subcommand it runs the analysis.
var rootCmd = &cobra.Command{
	Use:   "netopt",
	Short: "Latency and throughput model analyzer for shared network links",
	Args:  cobra.NoArgs,
	Run:   runAnalysisCmd,
}

// runCmd executes the analysis using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the latency/throughput analysis",
	Args:  cobra.NoArgs,
	Run:   runAnalysisCmd,
}

func runAnalysisCmd(cmd *cobra.Command, args []string) {
	// Set up logging
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	opts := runOptions{
		Seed:        seed,
		ConfigPath:  configPath,
		OutputDir:   outputDir,
		NoPlots:     noPlots,
		ResultsPath: resultsPath,
		MetricsPath: metricsPath,
	}
	if show {
		opts.Open = plot.OpenWithViewer
	}
	if err := runAnalysis(opts, os.Stdout); err != nil {
		logrus.Fatalf("Analysis failed: %v", err)
	}
	logrus.Info("Analysis complete.")
}

// runAnalysis evaluates both models, prints the report to out and writes the
// requested artifacts. Any error is fatal to the caller; there is no retry.
func runAnalysis(opts runOptions, out io.Writer) error {
	params := sim.DefaultParams()
	if opts.ConfigPath != "" {
		var err error
		if params, err = loadModelConfig(opts.ConfigPath, params); err != nil {
			return err
		}
	}
	logrus.Infof("Starting analysis with C=%d, L0=%v, k=%v, B=%v, seed=%d",
		params.Capacity, params.Latency.BaseLatency, params.Latency.Scaling, params.Throughput.Bandwidth, opts.Seed)

	analysis, err := report.Analyze(params, sim.NewSimulationKey(opts.Seed))
	if err != nil {
		return err
	}
	analysis.PrintAnalysis(out)

	if !opts.NoPlots {
		fmt.Fprintln(out, "\nGenerating plots...")
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return fmt.Errorf("create output dir %s: %w", opts.OutputDir, err)
		}
		if _, err := plot.WriteAll(plot.Figures(params), opts.OutputDir, opts.Open); err != nil {
			return err
		}
	}

	analysis.PrintSummary(out)

	if opts.ResultsPath != "" {
		if err := analysis.SaveResults(opts.ResultsPath); err != nil {
			return err
		}
		logrus.Infof("Saved results to %s", opts.ResultsPath)
	}
	if opts.MetricsPath != "" {
		if err := analysis.WriteMetrics(opts.MetricsPath); err != nil {
			return err
		}
		logrus.Infof("Saved metrics to %s", opts.MetricsPath)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for the simulated latency noise")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding the built-in model constants")

	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", ".", "Directory for "+plot.LatencyFileName+" and "+plot.ThroughputFileName)
	rootCmd.PersistentFlags().BoolVar(&show, "show", true, "Open each figure in the default image viewer (--show=false for headless runs)")
	rootCmd.PersistentFlags().BoolVar(&noPlots, "no-plots", false, "Skip figure generation")
	rootCmd.PersistentFlags().StringVar(&resultsPath, "results-path", "", "Write the analysis as JSON to this file")
	rootCmd.PersistentFlags().StringVar(&metricsPath, "metrics-path", "", "Write the analysis as a Prometheus textfile")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
