// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aclements/go-moremath/scale"
	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/gpr"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

func TestSample(t *testing.T) {
	r := gpr.Regressor{LengthScale: 0.5, Fixed: true}
	x := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	y := []float64{0, 1, 2, 3}
	require.NoError(t, r.Fit(x, y))

	g, err := Sample(&r, 0, 1, 5)
	require.NoError(t, err)
	c, rows := g.Dims()
	require.Equal(t, 5, c)
	require.Equal(t, 5, rows)
	require.Equal(t, 0.25, g.X(1))
	require.Equal(t, 1.0, g.Y(4))

	// Corners are training points.
	require.InDelta(t, 0, g.Z(0, 0), 1e-6)
	require.InDelta(t, 1, g.Z(4, 0), 1e-6)
	require.InDelta(t, 2, g.Z(0, 4), 1e-6)
	require.InDelta(t, 3, g.Z(4, 4), 1e-6)
	require.LessOrEqual(t, g.Min(), 1e-6)
	require.GreaterOrEqual(t, g.Max(), 3-1e-6)

	_, err = Sample(new(gpr.Regressor), 0, 1, 5)
	require.ErrorIs(t, err, gpr.ErrNotFit)
}

func TestRescale(t *testing.T) {
	g := &Grid{Xs: []float64{0, 0.5, 1}, Ys: []float64{-0.1, 1.1}, Zs: make([]float64, 6)}
	s := g.Rescale(scale.Linear{Min: 10, Max: 20}, scale.Linear{Min: 0, Max: 250})
	require.Equal(t, []float64{10, 15, 20}, s.Xs)
	require.InDeltaSlice(t, []float64{-25, 275}, s.Ys, 1e-9)
	// Rescale copies; g keeps its coordinates.
	require.Equal(t, []float64{0, 0.5, 1}, g.Xs)
}

func TestLevels(t *testing.T) {
	require.Equal(t, []float64{0, 0.5, 1}, roundAll(Levels(0, 1, 6)))
	require.Equal(t, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}, roundAll(Levels(0, 1, 11)))
	ls := Levels(0.13, 0.87, 10)
	require.NotEmpty(t, ls)
	require.LessOrEqual(t, len(ls), 10)
	for _, l := range ls {
		require.True(t, l >= 0.13 && l <= 0.87, "level %v out of range", l)
	}
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(int(x*1e9+0.5)) / 1e9
	}
	return out
}

func TestPoints(t *testing.T) {
	pts := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}
	cm := colormap.Viridis.ColorMap(0, 1)
	outline, front, err := Points(pts, []float64{-5, 0.5}, cm)
	require.NoError(t, err)
	require.Len(t, outline.XYs, 2)
	// Out of range values clamp to the end color.
	want, err := cm.At(0)
	require.NoError(t, err)
	require.Equal(t, want, front.GlyphStyleFunc(0).Color)

	_, _, err = Points(pts, []float64{1}, cm)
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	p := plot.New()
	s, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	p.Add(s)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ".svg", Size(300), Size(200), p.Draw))
	require.Contains(t, buf.String(), "<svg")

	buf.Reset()
	require.NoError(t, Write(&buf, ".png", Size(300), Size(200), p.Draw))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	require.Error(t, Write(&buf, ".gif", Size(300), Size(200), p.Draw))
}
