// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/figkit/figures/internal/dataset"
	"github.com/figkit/figures/internal/surface"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestRoundRatio(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{0.09, 0},
		{0.11, 0.2},
		{0.29, 0.2},
		{0.65, 0.6},
		{0.75, 0.8},
		{1.02, 1},
	} {
		require.InDelta(t, tc.want, roundRatio(tc.in), 1e-12, "roundRatio(%v)", tc.in)
	}
}

func TestBands(t *testing.T) {
	require.True(t, bands[0].contains(0))
	require.False(t, bands[0].contains(0.05))
	require.False(t, bands[1].contains(0.05))
	require.True(t, bands[1].contains(0.06))
	require.True(t, bands[4].contains(0.29))
	require.False(t, bands[4].contains(0.30))
	require.Equal(t, "[0, 0.05)", bands[0].String())
	require.Equal(t, "(0.183, 0.25)", bands[3].String())
}

// testTable returns a 5×5 grid of samples in band 0, whose quality
// peaks at ratio 0.4 and anneal 100, plus one sample in band 2.
func testTable(t *testing.T) *table.Table {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("tbp_frac,ratio,anneal,Quality\n")
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			r, a := 0.2*float64(i)+0.01, 50*float64(j)
			q := math.Exp(-((r-0.4)*(r-0.4)/0.1 + (a-100)*(a-100)/5000))
			fmt.Fprintf(&sb, "0.01,%g,%g,%g\n", r, a, q)
		}
	}
	sb.WriteString("0.15,0.45,10,0.5\n")
	tab, err := dataset.Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return tab
}

func TestSelectBand(t *testing.T) {
	tab := testTable(t)
	s, err := selectBand(tab, 0)
	require.NoError(t, err)
	require.Equal(t, 25, s.len())
	for _, r := range s.ratio {
		require.InDelta(t, 0, math.Remainder(r, ratioStep), 1e-9)
	}

	s, err = selectBand(tab, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.4}, s.ratio)

	all, err := selectBand(tab, -1)
	require.NoError(t, err)
	require.Equal(t, 26, all.len())

	_, err = selectBand(tab, 3)
	require.ErrorContains(t, err, "(0.183, 0.25)")
	_, err = selectBand(tab, 5)
	require.Error(t, err)

	// One sample has no spread to normalize.
	_, err = fit(s, 10)
	require.Error(t, err)
}

func TestFit(t *testing.T) {
	s, err := selectBand(testTable(t), 0)
	require.NoError(t, err)
	g, err := fit(s, 21)
	require.NoError(t, err)

	c, r := g.Dims()
	require.Equal(t, 21, c)
	require.Equal(t, 21, r)
	// The grid covers the data with a margin on each side.
	require.InDelta(t, -0.04, g.X(0), 1e-9)
	require.InDelta(t, 0.84, g.X(c-1), 1e-9)
	require.InDelta(t, -10, g.Y(0), 1e-9)
	require.InDelta(t, 210, g.Y(r-1), 1e-9)

	// The peak of the surface is near the best sample.
	best := 0
	for i, z := range g.Zs {
		if z > g.Zs[best] {
			best = i
		}
	}
	require.InDelta(t, 0.4, g.X(best%c), 0.1)
	require.InDelta(t, 100, g.Y(best/c), 25)
}

func TestImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			src.Set(x, y, color.RGBA{100, 200, 20, 255})
		}
	}
	th := thumbnail(src, 100)
	require.Equal(t, image.Rect(0, 0, 100, 50), th.Bounds())
	require.Equal(t, src, thumbnail(src, 400))

	b := brighten(src, 1.75)
	require.Equal(t, color.NRGBA{175, 255, 35, 255}, b.NRGBAAt(10, 10))

	dir := t.TempDir()
	for i := 0; i < nphotos; i++ {
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, src, nil))
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("%d.jpg", i)), buf.Bytes(), 0666))
	}
	photos, err := loadPhotos(dir, nphotos)
	require.NoError(t, err)
	require.Len(t, photos, nphotos)
	require.Equal(t, thumbSize, photos[0].Bounds().Dx())

	_, err = loadPhotos(dir, nphotos+1)
	require.Error(t, err)
}

func TestArrow(t *testing.T) {
	pts := arrow(vg.Point{X: 100, Y: 0}, vg.Point{X: 0, Y: 0}, 4)
	require.Len(t, pts, 7)
	require.Equal(t, vg.Point{X: 0, Y: 0}, pts[3])
	// The head is twice the shaft width.
	require.Equal(t, vg.Point{X: 8, Y: -4}, pts[2])
	require.Nil(t, arrow(vg.Point{X: 1, Y: 1}, vg.Point{X: 1, Y: 1}, 4))

	r := fitRect(vg.Rectangle{Max: vg.Point{X: 100, Y: 100}}, image.Rect(0, 0, 200, 100))
	require.Equal(t, vg.Rectangle{Min: vg.Point{X: 0, Y: 25}, Max: vg.Point{X: 100, Y: 75}}, r)
}

func TestDrawFigure(t *testing.T) {
	s, err := selectBand(testTable(t), 0)
	require.NoError(t, err)
	g, err := fit(s, 20)
	require.NoError(t, err)
	qual, err := qualityPlot(s, g, 10)
	require.NoError(t, err)
	require.InDelta(t, -0.04, qual.X.Min, 1e-9)

	photo := image.NewRGBA(image.Rect(0, 0, 30, 20))
	photos := []image.Image{photo, photo, photo, photo, photo}
	for _, ps := range [][]image.Image{nil, photos} {
		var buf bytes.Buffer
		err := surface.Write(&buf, ".svg", surface.Size(900), surface.Size(600), func(c draw.Canvas) {
			drawFigure(c, qual, barPlot(), ps)
		})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "Poor")
	}
}
