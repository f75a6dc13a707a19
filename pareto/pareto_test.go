// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pareto

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoints(r *rand.Rand, n, m int, grid bool) [][]float64 {
	y := make([][]float64, n)
	for i := range y {
		y[i] = make([]float64, m)
		for j := range y[i] {
			if grid {
				// Coarse values produce ties.
				y[i][j] = float64(r.Intn(5))
			} else {
				y[i][j] = r.Float64()
			}
		}
	}
	return y
}

func TestBool(t *testing.T) {
	for _, test := range []struct {
		name   string
		y      [][]float64
		strict bool
		omax   []bool
		want   []bool
	}{
		{"empty", nil, false, nil, []bool{}},
		{"single", [][]float64{{1, 1}}, false, nil, []bool{true}},
		{"dominated", [][]float64{{1, 1}, {2, 2}}, false, nil, []bool{false, true}},
		{"tradeoff", [][]float64{{1, 3}, {2, 2}, {3, 1}}, false, nil, []bool{true, true, true}},
		// (2, 3) lies on the segment between (1, 3) and (3, 3).
		{"between weak", [][]float64{{1, 3}, {2, 3}, {3, 3}}, false, nil, []bool{true, true, true}},
		{"between strict", [][]float64{{1, 3}, {2, 3}, {3, 3}}, true, nil, []bool{false, false, true}},
		{"duplicates strict", [][]float64{{2, 2}, {2, 2}, {1, 1}}, true, nil, []bool{true, true, false}},
		{"minimize", [][]float64{{1, 1}, {2, 2}}, false, []bool{false, false}, []bool{true, false}},
		{"mixed", [][]float64{{10, 200}, {5, 250}, {8, 250}, {12, 300}}, false, []bool{true, false}, []bool{true, false, false, true}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Bool(test.y, test.strict, test.omax)
			require.Equal(t, test.want, got)
		})
	}
}

// TestBoolNotDominated checks that no row flagged as on the front is
// dominated by any other row.
func TestBoolNotDominated(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		y := randomPoints(r, 1+r.Intn(40), 1+r.Intn(3), trial%2 == 0)
		m := len(y[0])
		omax := make([]bool, m)
		for j := range omax {
			omax[j] = r.Intn(2) == 0
		}
		for _, strict := range []bool{false, true} {
			mask := Bool(y, strict, omax)
			sy := signed(y, omax)
			nfront := 0
			for i, ok := range mask {
				if !ok {
					continue
				}
				nfront++
				for k := range sy {
					if k == i {
						continue
					}
					require.False(t, dominates(sy[k], sy[i], strict),
						"row %d %v on front but dominated by row %d %v", i, y[i], k, y[k])
				}
			}
			require.NotZero(t, nfront, "empty front")
		}
	}
}

func TestBoolIterMatchesPrefixes(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		y := randomPoints(r, 1+r.Intn(30), 2, trial%3 == 0)
		omax := []bool{r.Intn(2) == 0, r.Intn(2) == 0}
		for _, strict := range []bool{false, true} {
			iter := BoolIter(y, strict, omax)
			require.Len(t, iter, len(y))
			for i := range y {
				want := Bool(y[:i+1], strict, omax)
				for j := 0; j <= i; j++ {
					require.Equal(t, want[j], iter[j] >= i,
						"trial %d strict %v: row %d at iteration %d", trial, strict, j, i)
				}
			}
		}
	}
}

func TestBoolIter(t *testing.T) {
	y := [][]float64{
		{1, 1}, // dominated by row 1 at iteration 1
		{2, 2}, // on the front until row 3
		{1, 0}, // never on the front
		{3, 3}, // on the front to the end
		{0, 4}, // on the front to the end
	}
	got := BoolIter(y, false, nil)
	require.Equal(t, []int{0, 2, Never, 4, 4}, got)
	require.Equal(t, []int{1}, PrefixFront(got, 2))
	require.Equal(t, []int{3, 4}, PrefixFront(got, 4))
}

func TestSignedPanics(t *testing.T) {
	require.Panics(t, func() { Bool([][]float64{{1, 2}, {1}}, false, nil) })
	require.Panics(t, func() { Bool([][]float64{{1, 2}}, false, []bool{true}) })
}

func TestSelect(t *testing.T) {
	y := [][]float64{{1}, {2}, {3}}
	require.Equal(t, [][]float64{{1}, {3}}, Select(y, []bool{true, false, true}))
}
