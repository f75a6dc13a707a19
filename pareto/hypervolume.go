// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Hypervolume returns the area dominated by the 2D points y relative
// to a reference point at the origin. Both objectives are maximized,
// so y must already be scaled such that the reference corner is 0
// (see Normalize). Coordinates below the reference are clipped to it.
//
// y may contain dominated points; they don't contribute any area. On
// a Pareto front sorted by ascending x (and hence descending y), this
// is the sum of the rectangles (x[k] - x[k-1]) * y[k], with x[-1] = 0.
func Hypervolume(y [][]float64) float64 {
	pts := make([][2]float64, 0, len(y))
	for i, row := range y {
		if len(row) != 2 {
			panic(fmt.Sprintf("pareto: hypervolume of row %d with %d objectives; only 2 are supported", i, len(row)))
		}
		pts = append(pts, [2]float64{math.Max(row[0], 0), math.Max(row[1], 0)})
	}

	// Sweep from the right. Each vertical strip between
	// consecutive x values is covered up to the tallest point at
	// or to the right of it.
	sort.Slice(pts, func(i, j int) bool { return pts[i][0] > pts[j][0] })
	area, maxY := 0.0, 0.0
	for k, p := range pts {
		maxY = math.Max(maxY, p[1])
		next := 0.0
		if k+1 < len(pts) {
			next = pts[k+1][0]
		}
		area += (p[0] - next) * maxY
	}
	return area
}

// HypervolumeIter returns the hypervolume of the Pareto front of each
// prefix y[:i+1]. It takes all of the observations, not just the
// front, and like Hypervolume assumes y is scaled so the reference
// point is the origin.
func HypervolumeIter(y [][]float64, strict bool) []float64 {
	iter := BoolIter(y, strict, nil)
	result := make([]float64, len(y))
	front := make([][]float64, 0, len(y))
	for i := range y {
		front = front[:0]
		for _, k := range PrefixFront(iter, i) {
			front = append(front, y[k])
		}
		result[i] = Hypervolume(front)
	}
	return result
}

// Normalize min-max scales each column of y to [0, 1]. Columns that
// are minimized according to omax are flipped (1 - v), so that in the
// result every objective is maximized and the worst corner of the
// data is the origin. A constant column maps to 0.
func Normalize(y [][]float64, omax []bool) [][]float64 {
	if len(y) == 0 {
		return nil
	}
	m := len(y[0])
	checkShape(y, m, omax)
	lo, hi := make([]float64, m), make([]float64, m)
	col := make([]float64, len(y))
	for j := 0; j < m; j++ {
		for i, row := range y {
			col[i] = row[j]
		}
		lo[j], hi[j] = stats.Bounds(col)
	}
	return NormalizeTo(y, lo, hi, omax)
}

// NormalizeTo is like Normalize, but scales column j from the given
// bounds [lo[j], hi[j]] rather than the bounds of y. This is useful
// for normalizing a subset of observations globally.
func NormalizeTo(y [][]float64, lo, hi []float64, omax []bool) [][]float64 {
	if len(lo) != len(hi) {
		panic(fmt.Sprintf("pareto: %d lower bounds but %d upper bounds", len(lo), len(hi)))
	}
	checkShape(y, len(lo), omax)
	out := make([][]float64, len(y))
	for i, row := range y {
		nrow := make([]float64, len(row))
		for j, v := range row {
			span := hi[j] - lo[j]
			if span == 0 {
				nrow[j] = 0
				continue
			}
			v = (v - lo[j]) / span
			if omax != nil && !omax[j] {
				v = 1 - v
			}
			nrow[j] = v
		}
		out[i] = nrow
	}
	return out
}
