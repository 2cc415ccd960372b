package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inference-sim/netopt/sim"
	"github.com/inference-sim/netopt/sim/latency"
	"github.com/inference-sim/netopt/sim/throughput"
)

const (
	LatencyFileName    = "latency.png"
	ThroughputFileName = "throughput.png"
)

var colorMagenta = drawing.ColorFromHex("bf00bf")

// LatencyFigure plots L(n) next to L'(n) over [1, C-1].
func LatencyFigure(p sim.Params) Figure {
	m := latency.New(p)
	xs := p.PlotRange()
	return Figure{
		FileName: LatencyFileName,
		Left: Panel{
			Title:  "Latency L(n)",
			XLabel: "Active users (n)",
			YLabel: "Latency L(n)",
			Series: []chart.Series{chart.ContinuousSeries{
				Name:    "L(n)",
				Style:   lineStyle(chart.ColorBlue),
				XValues: xs,
				YValues: sim.Evaluate(xs, m.Latency),
			}},
		},
		Right: Panel{
			Title:  "Latency derivative L'(n)",
			XLabel: "Active users (n)",
			YLabel: "L'(n)",
			Series: []chart.Series{chart.ContinuousSeries{
				Name:    "L'(n)",
				Style:   lineStyle(chart.ColorRed),
				XValues: xs,
				YValues: sim.Evaluate(xs, m.Derivative),
			}},
		},
	}
}

// ThroughputFigure plots R(n) and T(n) next to R'(n), marking the optimum C/2.
func ThroughputFigure(p sim.Params) Figure {
	m := throughput.New(p)
	xs := p.PlotRange()
	dR := sim.Evaluate(xs, m.Derivative)
	opt := m.Maximum()
	lo, hi := xs[0], xs[len(xs)-1]

	return Figure{
		FileName: ThroughputFileName,
		Left: Panel{
			Title:  "Total and per-user throughput",
			XLabel: "Active users (n)",
			YLabel: "Throughput (Mbps)",
			Legend: true,
			Series: []chart.Series{
				chart.ContinuousSeries{
					Name:    "R(n) total",
					Style:   lineStyle(chart.ColorGreen),
					XValues: xs,
					YValues: sim.Evaluate(xs, m.Total),
				},
				chart.ContinuousSeries{
					Name:    "T(n) per user",
					Style:   lineStyle(colorMagenta),
					XValues: xs,
					YValues: sim.Evaluate(xs, m.PerUser),
				},
			},
		},
		Right: Panel{
			Title:  "Total throughput derivative",
			XLabel: "Active users (n)",
			YLabel: "R'(n)",
			Legend: true,
			Series: []chart.Series{
				chart.ContinuousSeries{
					Name:    "R'(n)",
					Style:   lineStyle(chart.ColorBlue),
					XValues: xs,
					YValues: dR,
				},
				chart.ContinuousSeries{
					Name:    "R'(n) = 0",
					Style:   dashedStyle(chart.ColorRed),
					XValues: []float64{lo, hi},
					YValues: []float64{0, 0},
				},
				chart.ContinuousSeries{
					Name:    fmt.Sprintf("optimal n = %g", opt.Users),
					Style:   dashedStyle(chart.ColorRed),
					XValues: []float64{opt.Users, opt.Users},
					YValues: []float64{dR[len(dR)-1], dR[0]},
				},
			},
		},
	}
}

// Figures returns both model figures in report order.
func Figures(p sim.Params) []Figure {
	return []Figure{LatencyFigure(p), ThroughputFigure(p)}
}
