// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/internal/surface"
	"github.com/stretchr/testify/require"
)

func TestTrainingData(t *testing.T) {
	x, y := trainingData(1, 10)
	require.Len(t, x, 10)
	require.Len(t, y, 10)
	for i := range x {
		require.Len(t, x[i], 2)
		for _, v := range append(x[i], y[i]) {
			require.True(t, v >= 0 && v < 1, "%v not in [0, 1)", v)
		}
	}

	// The same seed gives the same points.
	x2, y2 := trainingData(1, 10)
	require.Equal(t, x, x2)
	require.Equal(t, y, y2)
	x3, _ := trainingData(2, 10)
	require.NotEqual(t, x, x3)
}

func TestFitSurface(t *testing.T) {
	x, y := trainingData(1, 10)
	ylo, yhi := y[0], y[0]
	for _, v := range y {
		ylo, yhi = math.Min(ylo, v), math.Max(yhi, v)
	}
	g, err := fitSurface(x, y, 100)
	require.NoError(t, err)
	// The fitted surface stays near the training values rather than
	// oscillating between them.
	span := yhi - ylo
	require.GreaterOrEqual(t, g.Min(), ylo-span)
	require.LessOrEqual(t, g.Max(), yhi+span)
}

func TestPlotSurface(t *testing.T) {
	x, y := trainingData(1, 10)
	cfg := config{seed: 1, points: 10, res: 20, levels: 10, cmap: colormap.Viridis}
	p, err := plotSurface(x, y, cfg)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.X.Min)
	require.Equal(t, 1.0, p.Y.Max)

	var buf bytes.Buffer
	require.NoError(t, surface.Write(&buf, ".svg", surface.Size(400), surface.Size(300), p.Draw))
	require.Contains(t, buf.String(), "<svg")

	_, err = plotSurface(nil, nil, cfg)
	require.Error(t, err)
}
