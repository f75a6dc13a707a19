// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/figkit/figures/gpr"
	"github.com/figkit/figures/internal/dataset"
	"github.com/figkit/figures/internal/surface"
)

const (
	colTBP     = "tbp_frac"
	colRatio   = "ratio"
	colAnneal  = "anneal"
	colQuality = "Quality"
)

const (
	// ratioStep is the resolution dopant ratios are rounded to.
	ratioStep = 0.2

	// alphaQuality is the noise added to the kernel diagonal when
	// fitting quality scores, which are repeated and noisy.
	alphaQuality = 1e-3

	// margin is how far the sampled surface extends past the data
	// on each side, as a fraction of the data range.
	margin = 0.05
)

// A band is a range of additive (tBP) fractions.
type band struct {
	lo, hi   float64
	closedLo bool
}

func (b band) contains(v float64) bool {
	if b.closedLo {
		return v >= b.lo && v < b.hi
	}
	return v > b.lo && v < b.hi
}

func (b band) String() string {
	open := "("
	if b.closedLo {
		open = "["
	}
	return fmt.Sprintf("%s%g, %g)", open, b.lo, b.hi)
}

// bands are the additive fraction ranges the samples were prepared
// at. Values on an open boundary belong to no band.
var bands = []band{
	{0, 0.05, true},
	{0.05, 0.12, false},
	{0.12, 0.183, false},
	{0.183, 0.25, false},
	{0.25, 0.30, false},
}

// samples are the measured films of one band.
type samples struct {
	ratio   []float64 // rounded to ratioStep
	anneal  []float64
	quality []float64
}

func (s *samples) len() int { return len(s.quality) }

// roundRatio rounds r to the nearest multiple of ratioStep, with
// ties to even.
func roundRatio(r float64) float64 {
	return math.RoundToEven(r/ratioStep) * ratioStep
}

// selectBand returns the samples of t in band b, or all samples if b
// is negative.
func selectBand(t *table.Table, b int) (*samples, error) {
	if b >= len(bands) {
		return nil, fmt.Errorf("band %d out of range [0, %d]", b, len(bands)-1)
	}
	var cols [4][]float64
	for i, name := range []string{colTBP, colRatio, colAnneal, colQuality} {
		var err error
		if cols[i], err = dataset.Floats(t, name); err != nil {
			return nil, err
		}
	}
	tbp, ratio, anneal, quality := cols[0], cols[1], cols[2], cols[3]

	s := new(samples)
	for i := range tbp {
		if b >= 0 && !bands[b].contains(tbp[i]) {
			continue
		}
		if math.IsNaN(ratio[i]) || math.IsNaN(anneal[i]) || math.IsNaN(quality[i]) {
			continue
		}
		s.ratio = append(s.ratio, roundRatio(ratio[i]))
		s.anneal = append(s.anneal, anneal[i])
		s.quality = append(s.quality, quality[i])
	}
	if s.len() == 0 {
		if b >= 0 {
			return nil, fmt.Errorf("no samples with %s in %v", colTBP, bands[b])
		}
		return nil, fmt.Errorf("no samples")
	}
	return s, nil
}

// domain returns the scales normalizing s's ratio and anneal values
// to [0, 1].
func (s *samples) domain() (x0, x1 scale.Linear, err error) {
	x0.Min, x0.Max = stats.Bounds(s.ratio)
	x1.Min, x1.Max = stats.Bounds(s.anneal)
	if x0.Min == x0.Max {
		return x0, x1, fmt.Errorf("all samples have %s %g", colRatio, x0.Min)
	}
	if x1.Min == x1.Max {
		return x0, x1, fmt.Errorf("all samples have %s %g", colAnneal, x1.Min)
	}
	return x0, x1, nil
}

// fit fits a Gaussian process to quality over normalized (ratio,
// anneal) and samples it on a res×res grid extending margin past the
// data, in data coordinates.
func fit(s *samples, res int) (*surface.Grid, error) {
	x0, x1, err := s.domain()
	if err != nil {
		return nil, err
	}
	x := make([][]float64, s.len())
	for i := range x {
		x[i] = []float64{x0.Map(s.ratio[i]), x1.Map(s.anneal[i])}
	}
	r := gpr.Regressor{Alpha: alphaQuality}
	if err := r.Fit(x, s.quality); err != nil {
		return nil, err
	}
	g, err := surface.Sample(&r, -margin, 1+margin, res)
	if err != nil {
		return nil, err
	}
	return g.Rescale(x0, x1), nil
}
