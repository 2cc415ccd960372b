package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/netopt/sim/plot"
)

func TestRunAnalysis_WritesReportAndFigures(t *testing.T) {
	// GIVEN default constants and a temp output dir
	dir := t.TempDir()
	var out bytes.Buffer

	// WHEN the analysis runs
	err := runAnalysis(runOptions{Seed: 42, OutputDir: dir}, &out)
	require.NoError(t, err)

	// THEN both figures exist under their fixed names
	assert.FileExists(t, filepath.Join(dir, plot.LatencyFileName))
	assert.FileExists(t, filepath.Join(dir, plot.ThroughputFileName))

	// AND the report sections appear in order
	text := out.String()
	order := []string{
		"NETWORK OPTIMIZATION ANALYSIS",
		"L'(n) > 1 when n > 968.42",
		"Optimal point: n = 500",
		"Maximum throughput: R(500) = 250000.00",
		"throughput gain: 50.0%",
		"Mean simulated latency error: 0.0",
		"Simulated optimal n: 501",
		"Generating plots...",
		"SUMMARY",
		"Minimum latency: L(1) = 3.9980",
		"Per-user throughput at optimum: 500.00 Mbps",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(text, s)
		require.GreaterOrEqual(t, i, 0, "missing %q in report:\n%s", s, text)
		assert.Greater(t, i, last, "%q out of order", s)
		last = i
	}
	assert.Contains(t, text, strings.Repeat("=", 60))
}

func TestRunAnalysis_NoPlots(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, runAnalysis(runOptions{Seed: 1, OutputDir: dir, NoPlots: true}, &out))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotContains(t, out.String(), "Generating plots")
}

func TestRunAnalysis_OptionalArtifacts(t *testing.T) {
	dir := t.TempDir()
	opts := runOptions{
		Seed:        42,
		NoPlots:     true,
		ResultsPath: filepath.Join(dir, "results.json"),
		MetricsPath: filepath.Join(dir, "netopt.prom"),
	}
	require.NoError(t, runAnalysis(opts, &bytes.Buffer{}))
	assert.FileExists(t, opts.ResultsPath)
	assert.FileExists(t, opts.MetricsPath)
}

func TestRunAnalysis_OpenerReceivesFigures(t *testing.T) {
	var opened []string
	opts := runOptions{
		Seed:      42,
		OutputDir: t.TempDir(),
		Open: func(path string) error {
			opened = append(opened, filepath.Base(path))
			return nil
		},
	}
	require.NoError(t, runAnalysis(opts, &bytes.Buffer{}))
	assert.Equal(t, []string{plot.LatencyFileName, plot.ThroughputFileName}, opened)
}

func TestRunAnalysis_DisplayFailureIsError(t *testing.T) {
	dir := t.TempDir()
	opts := runOptions{
		Seed:        42,
		OutputDir:   dir,
		ResultsPath: filepath.Join(dir, "results.json"),
		Open:        func(string) error { return errors.New("no display") },
	}
	err := runAnalysis(opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.NoFileExists(t, opts.ResultsPath, "run must stop at the display failure")
}

func TestRunAnalysis_BadConfigIsError(t *testing.T) {
	err := runAnalysis(runOptions{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"), NoPlots: true}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	tests := map[string]string{
		"seed":       "42",
		"log":        "warn",
		"output-dir": ".",
		"show":       "true",
		"no-plots":   "false",
	}
	for name, want := range tests {
		f := flags.Lookup(name)
		require.NotNil(t, f, "flag --%s not registered", name)
		assert.Equal(t, want, f.DefValue, "--%s default", name)
	}

	sub, _, err := rootCmd.Find([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "run", sub.Name())
}
