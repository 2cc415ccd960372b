// Package plot renders the netopt model curves as two-panel PNG figures.
package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// PanelWidth and PanelHeight size one panel; a figure is two panels wide.
	PanelWidth  = 600
	PanelHeight = 500
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("e0e0e0"),
	StrokeWidth: 1.0,
}

// Panel is one chart of a figure.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Series []chart.Series
	Legend bool
}

// Figure is a named pair of side-by-side panels written to FileName.
type Figure struct {
	FileName string
	Left     Panel
	Right    Panel
}

// lineStyle returns a solid line style of the given color.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}

// dashedStyle returns a thin dashed reference-line style.
func dashedStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor:     col,
		StrokeWidth:     1.5,
		StrokeDashArray: []float64{6, 4},
	}
}

// Render draws one panel into an image of the given size.
func (p Panel) Render(width, height int) (image.Image, error) {
	ch := chart.Chart{
		Title:      p.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           p.XLabel,
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           p.YLabel,
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: p.Series,
	}
	if p.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render panel %q: %w", p.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel %q: %w", p.Title, err)
	}
	return img, nil
}

// Image renders both panels and places them side by side.
func (f Figure) Image() (image.Image, error) {
	left, err := f.Left.Render(PanelWidth, PanelHeight)
	if err != nil {
		return nil, err
	}
	right, err := f.Right.Render(PanelWidth, PanelHeight)
	if err != nil {
		return nil, err
	}
	return sideBySide(left, right), nil
}

// sideBySide composes a and b horizontally on a white canvas.
func sideBySide(a, b image.Image) image.Image {
	ab, bb := a.Bounds(), b.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, ab.Dx()+bb.Dx(), max(ab.Dy(), bb.Dy())))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, ab.Dx(), ab.Dy()), a, ab.Min, draw.Over)
	draw.Draw(out, image.Rect(ab.Dx(), 0, ab.Dx()+bb.Dx(), bb.Dy()), b, bb.Min, draw.Over)
	return out
}

// Write renders the figure and saves it as PNG under dir.
// Returns the written path.
func (f Figure) Write(dir string) (string, error) {
	img, err := f.Image()
	if err != nil {
		return "", fmt.Errorf("figure %s: %w", f.FileName, err)
	}
	path := filepath.Join(dir, f.FileName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	logrus.Infof("Wrote figure %s", path)
	return path, nil
}
