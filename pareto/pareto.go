// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pareto computes Pareto fronts and hypervolumes of
// multi-objective observations.
//
// Observations are given as a matrix y where y[i] is the i'th
// observation and y[i][j] is its value for objective j. Every row must
// have the same length.
//
// An observation is on the Pareto front (or "non-dominated") if no
// other observation is better than it on every objective. Whether
// "better" means larger or smaller is controlled per objective by an
// omax slice: omax[j] is true if objective j is maximized. A nil omax
// maximizes every objective.
package pareto

import "fmt"

// Never is the BoolIter value for an observation that was never on
// the Pareto front.
const Never = -1

// Bool returns a mask of the rows of y that are on the Pareto front.
//
// If strict is false, a row is excluded only if some other row is
// strictly better on every objective. Hence, rows that lie on a
// horizontal or vertical segment between two front points are kept.
//
// If strict is true, a row is excluded if some other row is at least
// as good on every objective and strictly better on at least one.
// Rows in between front points are excluded, but exact duplicates of
// a front point are kept.
//
// Bool compares every pair of rows and takes O(n²m) time.
func Bool(y [][]float64, strict bool, omax []bool) []bool {
	sy := signed(y, omax)
	mask := make([]bool, len(sy))
	for i := range sy {
		mask[i] = true
		for k := range sy {
			if k != i && dominates(sy[k], sy[i], strict) {
				mask[i] = false
				break
			}
		}
	}
	return mask
}

// BoolIter computes the Pareto front incrementally as the rows of y
// are revealed in order.
//
// The result has one element per row of y. Element j is the last
// iteration (row index) at which row j was on the front of y[:i+1],
// or Never if row j was never on the front. Since a dominated row can
// never return to the front, row j is on the front of the prefix
// y[:i+1] exactly when j <= i and result[j] >= i.
//
// strict and omax have the same meaning as for Bool.
func BoolIter(y [][]float64, strict bool, omax []bool) []int {
	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = Never
	}
	if len(y) == 0 {
		return idx
	}
	sy := signed(y, omax)

	// The first observation is always on the front.
	idx[0] = 0
	front := []int{0}

	for i := 1; i < len(sy); i++ {
		// If the new point is dominated by the current front,
		// the front doesn't change.
		dominated := false
		for _, k := range front {
			if dominates(sy[k], sy[i], strict) {
				dominated = true
				break
			}
		}
		if dominated {
			for _, k := range front {
				idx[k] = i
			}
			continue
		}

		// Recompute the front over the old front plus the new
		// point. Dominance is transitive, so points that fell
		// off the front earlier cannot affect this.
		front = append(front, i)
		nfront := make([]int, 0, len(front))
		for _, a := range front {
			keep := true
			for _, b := range front {
				if a != b && dominates(sy[b], sy[a], strict) {
					keep = false
					break
				}
			}
			if keep {
				nfront = append(nfront, a)
			}
		}
		front = nfront
		for _, k := range front {
			idx[k] = i
		}
	}
	return idx
}

// PrefixFront returns the indexes of the rows on the front after
// iteration i, given the result of BoolIter.
func PrefixFront(iter []int, i int) []int {
	var front []int
	for j := 0; j <= i && j < len(iter); j++ {
		if iter[j] >= i {
			front = append(front, j)
		}
	}
	return front
}

// dominates reports whether a dominates b, where both have already
// been sign-flipped so that every objective is maximized.
func dominates(a, b []float64, strict bool) bool {
	if !strict {
		for j := range a {
			if !(a[j] > b[j]) {
				return false
			}
		}
		return true
	}
	better := false
	for j := range a {
		if a[j] < b[j] {
			return false
		}
		if a[j] > b[j] {
			better = true
		}
	}
	return better
}

// signed returns a copy of y with minimized objectives negated.
func signed(y [][]float64, omax []bool) [][]float64 {
	if len(y) == 0 {
		return nil
	}
	m := len(y[0])
	checkShape(y, m, omax)
	out := make([][]float64, len(y))
	for i, row := range y {
		nrow := make([]float64, m)
		for j, v := range row {
			if omax != nil && !omax[j] {
				v = -v
			}
			nrow[j] = v
		}
		out[i] = nrow
	}
	return out
}

// checkShape panics unless every row of y and omax, if non-nil, have
// m objectives.
func checkShape(y [][]float64, m int, omax []bool) {
	if omax != nil && len(omax) != m {
		panic(fmt.Sprintf("pareto: omax has %d objectives; y has %d", len(omax), m))
	}
	for i, row := range y {
		if len(row) != m {
			panic(fmt.Sprintf("pareto: row %d has %d objectives; want %d", i, len(row), m))
		}
	}
}

// Select returns the rows of y for which mask is true.
func Select(y [][]float64, mask []bool) [][]float64 {
	var out [][]float64
	for i, ok := range mask {
		if ok {
			out = append(out, y[i])
		}
	}
	return out
}
