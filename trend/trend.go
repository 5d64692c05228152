// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trend relates transcription level to GC content by least squares
// regression and renders the result as a scatter plot with the fitted line.
package trend

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/biogo/rnagc/gene"
)

// Plot labels.
const (
	Title  = "Transcription Level vs GC%"
	XLabel = "Transcription Level"
	YLabel = "GC%"
)

// ErrNoPoints is returned when there are no points to fit.
var ErrNoPoints = errors.New("trend: no points")

// Points returns the transcription level and GC fraction of each record
// that has an available level, in record order.
func Points(recs []gene.Record) (plotter.XYs, error) {
	var xys plotter.XYs
	for _, r := range recs {
		if !r.Level.Valid() {
			continue
		}
		x, err := r.Level.Float()
		if err != nil {
			return nil, fmt.Errorf("trend: level for %s: %w", r.Name, err)
		}
		xys = append(xys, plotter.XY{X: x, Y: r.GC})
	}
	return xys, nil
}

// Line is a fitted line, y = Alpha + Beta*x.
type Line struct {
	Alpha, Beta float64
}

// At returns the value of the line at x.
func (l Line) At(x float64) float64 { return l.Alpha + l.Beta*x }

// Fit returns the ordinary least squares fit of y on x for the points in
// xys. If all x values are equal the fitted slope is zero and the intercept
// is the mean of y.
func Fit(xys plotter.XYer) (Line, error) {
	n := xys.Len()
	if n == 0 {
		return Line{}, ErrNoPoints
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i], y[i] = xys.XY(i)
	}
	if n == 1 || stat.Variance(x, nil) == 0 {
		return Line{Alpha: stat.Mean(y, nil)}, nil
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return Line{Alpha: alpha, Beta: beta}, nil
}

// New returns a scatter plot of xys overlaid with l drawn across the
// range of x values in xys.
func New(xys plotter.XYs, l Line) (*plot.Plot, error) {
	if len(xys) == 0 {
		return nil, ErrNoPoints
	}
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(1)

	min, max := math.Inf(1), math.Inf(-1)
	for _, xy := range xys {
		min = math.Min(min, xy.X)
		max = math.Max(max, xy.X)
	}
	fit, err := plotter.NewLine(plotter.XYs{{X: min, Y: l.At(min)}, {X: max, Y: l.At(max)}})
	if err != nil {
		return nil, err
	}
	fit.LineStyle.Color = color.RGBA{G: 128, A: 255}

	p.Add(sc, fit)
	return p, nil
}

// Rendered plot dimensions.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Save renders p to the file at path. The image format is taken from the
// path's extension.
func Save(p *plot.Plot, path string) error {
	return p.Save(Width, Height, path)
}
