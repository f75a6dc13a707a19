// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface samples fitted Gaussian process models on regular
// grids and renders gonum plots of them.
package surface

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/figkit/figures/gpr"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Grid is a surface sampled at the points of a rectangular grid.
// It implements plotter.GridXYZ.
type Grid struct {
	Xs, Ys []float64

	// Zs holds the samples in row-major order: Zs[r*len(Xs)+c] is
	// the value at (Xs[c], Ys[r]).
	Zs []float64
}

// Sample predicts r's mean over the n×n grid spanning [lo, hi] on
// both axes.
func Sample(r *gpr.Regressor, lo, hi float64, n int) (*Grid, error) {
	zs, err := r.Predict(gpr.Grid(lo, hi, n))
	if err != nil {
		return nil, err
	}
	ticks := vec.Linspace(lo, hi, n)
	return &Grid{Xs: ticks, Ys: append([]float64(nil), ticks...), Zs: zs}, nil
}

func (g *Grid) Dims() (c, r int) { return len(g.Xs), len(g.Ys) }
func (g *Grid) Z(c, r int) float64 { return g.Zs[r*len(g.Xs)+c] }
func (g *Grid) X(c int) float64 { return g.Xs[c] }
func (g *Grid) Y(r int) float64 { return g.Ys[r] }

// Min returns the smallest non-NaN sample of g.
func (g *Grid) Min() float64 {
	min := math.Inf(1)
	for _, z := range g.Zs {
		if z < min {
			min = z
		}
	}
	return min
}

// Max returns the largest non-NaN sample of g.
func (g *Grid) Max() float64 {
	max := math.Inf(-1)
	for _, z := range g.Zs {
		if z > max {
			max = z
		}
	}
	return max
}

// Rescale returns a copy of g with its coordinates mapped from the
// unit square to [x.Min, x.Max]×[y.Min, y.Max].
func (g *Grid) Rescale(x, y scale.Linear) *Grid {
	out := &Grid{Xs: make([]float64, len(g.Xs)), Ys: make([]float64, len(g.Ys)), Zs: g.Zs}
	for i, v := range g.Xs {
		out.Xs[i] = x.Unmap(v)
	}
	for i, v := range g.Ys {
		out.Ys[i] = y.Unmap(v)
	}
	return out
}

// Levels returns at most n evenly spaced round contour levels within
// [min, max].
func Levels(min, max float64, n int) []float64 {
	major, _ := scale.Linear{Min: min, Max: max}.Ticks(scale.TickOptions{Max: n})
	return major
}

// White fills c with white. Plots fill only their own area, so
// composite figures call this before drawing.
func White(c draw.Canvas) {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())
}

// Points returns scatter plotters drawing pts as circles filled by
// mapping values through cm, each on a white disc so the points stand
// out from a colored surface. Add outline before front. Values
// outside cm's range take the nearest end color.
func Points(pts plotter.XYs, values []float64, cm palette.ColorMap) (outline, front *plotter.Scatter, err error) {
	if len(pts) != len(values) {
		return nil, nil, fmt.Errorf("%d points but %d values", len(pts), len(values))
	}
	if outline, err = plotter.NewScatter(pts); err != nil {
		return nil, nil, err
	}
	outline.GlyphStyle = draw.GlyphStyle{Color: color.White, Radius: vg.Points(6), Shape: draw.CircleGlyph{}}

	if front, err = plotter.NewScatter(pts); err != nil {
		return nil, nil, err
	}
	fills := make([]color.Color, len(values))
	for i, v := range values {
		c, err := cm.At(math.Max(cm.Min(), math.Min(cm.Max(), v)))
		if err != nil {
			c = color.Gray{0x80}
		}
		fills[i] = c
	}
	front.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: fills[i], Radius: vg.Points(4.5), Shape: draw.CircleGlyph{}}
	}
	return outline, front, nil
}

// DPI is the resolution of raster output.
const DPI = 150

// Size converts a length in output pixels to a vg.Length.
func Size(px int) vg.Length {
	return vg.Length(px) * vg.Inch / DPI
}

// Write renders a width×height figure in the format named by ext
// (".png" or ".svg") to w by calling render with the figure's canvas.
func Write(w io.Writer, ext string, width, height vg.Length, render func(c draw.Canvas)) error {
	var cw vg.CanvasWriterTo
	switch ext {
	case ".png":
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(DPI))
		render(draw.New(c))
		cw = vgimg.PngCanvas{Canvas: c}
	case ".svg":
		c := vgsvg.New(width, height)
		render(draw.New(c))
		cw = c
	default:
		return fmt.Errorf("unsupported figure format %q", ext)
	}
	_, err := cw.WriteTo(w)
	return err
}
