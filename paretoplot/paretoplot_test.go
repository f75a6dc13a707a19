// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/internal/dataset"
	"github.com/stretchr/testify/require"
)

func TestConductivity(t *testing.T) {
	require.Equal(t, 0.0, conductivity(0))
	want := 1e-7 / 1.59605107323 * math.Log(2) / math.Pi * 1e9
	require.InDelta(t, want, conductivity(1e-7), 1e-12)
	require.InDelta(t, 13.824, conductivity(1e-7), 1e-3)
}

func TestFrontSteps(t *testing.T) {
	c := &campaign{
		temp:   []float64{200, 250, 180, 260},
		cond:   []float64{50, 100, 20, 60},
		pareto: []bool{true, true, true, false},
	}
	xs, ys := c.frontSteps(-100, 500)
	require.Equal(t, []float64{180, 180, 200, 250, 500}, xs)
	require.Equal(t, []float64{-100, 20, 50, 100, 100}, ys)

	px, py := stepPolygon(xs, ys, -100)
	require.Equal(t, []float64{180, 180, 180, 200, 200, 250, 250, 500, 500, 500, 180, 180}, px)
	require.Equal(t, []float64{-100, -100, 20, 20, 50, 50, 100, 100, 100, -100, -100, -100}, py)

	empty := &campaign{pareto: []bool{false}}
	xs, ys = empty.frontSteps(0, 1)
	require.Nil(t, xs)
	require.Nil(t, ys)
}

func writeCampaigns(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	const header = "sample,x3: temperature,XRF-normalized conductance - mean\n"
	files := map[string]string{
		"a.csv": header + "2,200,4e-6\n1,250,8e-6\n3,180,1e-6\n4,260,2e-6\n",
		"b.csv": header + "1,220,5e-6\n2,210,6e-6\n",
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0666))
	}
	return dir
}

func TestCampaigns(t *testing.T) {
	tab, err := dataset.ReadDir(writeCampaigns(t))
	require.NoError(t, err)
	cs, err := campaigns(tab)
	require.NoError(t, err)
	require.Len(t, cs, 2)

	a := cs[0]
	require.Equal(t, "a.csv", a.file)
	require.Equal(t, []float64{1, 2, 3, 4}, a.sample)
	require.Equal(t, []float64{250, 200, 180, 260}, a.temp)
	require.Equal(t, []bool{true, true, true, false}, a.pareto)

	// b's second sample is cooler and more conductive.
	require.Equal(t, []bool{false, true}, cs[1].pareto)

	hypervolumes(cs)
	for _, c := range cs {
		require.Len(t, c.hv, len(c.sample))
		for i := 1; i < len(c.hv); i++ {
			require.GreaterOrEqual(t, c.hv[i], c.hv[i-1])
		}
	}
	// The hottest, least conductive corner is the reference point,
	// so a's first sample alone spans (260-250)/(260-180) of the
	// temperature range and its full conductivity range.
	require.InDelta(t, 10.0/80, a.hv[0], 1e-9)

	sum := summaryTable(cs)
	require.Equal(t, 6, sum.Len())
	require.Equal(t, []string{"file", "sample", "temperature", "conductivity", "pareto", "hypervolume"}, sum.Columns())
}

func TestPlot(t *testing.T) {
	tab, err := dataset.ReadDir(writeCampaigns(t))
	require.NoError(t, err)
	cs, err := campaigns(tab)
	require.NoError(t, err)
	hypervolumes(cs)

	ft := figureTable(cs, colormap.Viridis.Reverse())
	layers, err := dataset.Strings(ft, "layer")
	require.NoError(t, err)
	count := make(map[string]int)
	for _, l := range layers {
		count[l]++
	}
	require.Equal(t, 6, count[layerSample])
	// Each campaign's hypervolume curve appears in its own column
	// and in every other campaign's column.
	require.Equal(t, 6, count[layerHV])
	require.Equal(t, 6, count[layerHVOther])
	require.Equal(t, 6, count[layerOrder])

	// Every color has one concrete type, which go-gg needs to group
	// on them.
	for _, c := range ft.MustColumn("color").([]color.Color) {
		require.IsType(t, color.RGBA{}, c)
	}
	// The sampling order key uses the same colors as the samples.
	colors := ft.MustColumn("color").([]color.Color)
	var sampleColors, orderColors []color.Color
	for i, l := range layers {
		switch l {
		case layerSample:
			sampleColors = append(sampleColors, colors[i])
		case layerOrder:
			orderColors = append(orderColors, colors[i])
		}
	}
	require.ElementsMatch(t, sampleColors, orderColors)

	p, nrows, ncols := plot(ft)
	require.Equal(t, 2, nrows)
	require.Equal(t, 2, ncols)
	var buf bytes.Buffer
	require.NoError(t, p.WriteSVG(&buf, 500, 600))
	require.Contains(t, buf.String(), "<svg")
	require.Contains(t, buf.String(), "sampling order")
}
