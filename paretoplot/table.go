// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/internal/dataset"
	"github.com/figkit/figures/pareto"
)

// Input columns.
const (
	colSample      = "sample"
	colTemperature = "x3: temperature"
	colConductance = "XRF-normalized conductance - mean"
)

// conductivity converts an XRF-normalized conductance in S/cps to a
// thin-film conductivity in S/m.
func conductivity(xrf float64) float64 {
	// Film thickness calibration, in cps/nm.
	const slope = 1.59605107323
	sNm := xrf / slope * math.Ln2 / math.Pi
	return sNm * 1e9
}

// A campaign is one optimization campaign: the samples of one input
// file in sampling order.
type campaign struct {
	file   string
	sample []float64
	temp   []float64 // °C, minimized
	cond   []float64 // S/m, maximized
	pareto []bool
	hv     []float64
}

// campaigns splits the rows of t by file, sorts each campaign by
// sample, and computes each campaign's Pareto front.
func campaigns(t *table.Table) ([]*campaign, error) {
	var cs []*campaign
	g := table.SortBy(table.GroupBy(t, "file"), colSample)
	for _, gid := range g.Tables() {
		gt := g.Table(gid)
		c := &campaign{file: fmt.Sprint(gid.Label())}
		var err error
		if c.sample, err = dataset.Floats(gt, colSample); err != nil {
			return nil, err
		}
		if c.temp, err = dataset.Floats(gt, colTemperature); err != nil {
			return nil, err
		}
		xrf, err := dataset.Floats(gt, colConductance)
		if err != nil {
			return nil, err
		}
		c.cond = make([]float64, len(xrf))
		for i, x := range xrf {
			c.cond[i] = conductivity(x)
		}
		c.pareto = pareto.Bool(c.points(), false, []bool{false, true})
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].file < cs[j].file })
	return cs, nil
}

// points returns c's observations as (temperature, conductivity)
// rows.
func (c *campaign) points() [][]float64 {
	y := make([][]float64, len(c.temp))
	for i := range y {
		y[i] = []float64{c.temp[i], c.cond[i]}
	}
	return y
}

// hypervolumes computes the hypervolume after each sample of every
// campaign. All campaigns are normalized to the same global bounds,
// with temperature flipped so the reference point is the origin.
func hypervolumes(cs []*campaign) {
	var temps, conds []float64
	for _, c := range cs {
		temps = append(temps, c.temp...)
		conds = append(conds, c.cond...)
	}
	tlo, thi := stats.Bounds(temps)
	clo, chi := stats.Bounds(conds)
	lo, hi := []float64{tlo, clo}, []float64{thi, chi}
	omax := []bool{false, true}
	for _, c := range cs {
		y := pareto.NormalizeTo(c.points(), lo, hi, omax)
		c.hv = pareto.HypervolumeIter(y, true)
	}
}

// frontSteps returns the vertices of c's Pareto front as a post-step
// line, extended down to lower at its left end and out to upper at its
// right end. Both temperature and conductivity increase along the
// front, so it is drawn with the coordinates sorted independently.
func (c *campaign) frontSteps(lower, upper float64) (xs, ys []float64) {
	for i, on := range c.pareto {
		if on {
			xs = append(xs, c.temp[i])
			ys = append(ys, c.cond[i])
		}
	}
	if len(xs) == 0 {
		return nil, nil
	}
	sort.Float64s(xs)
	sort.Float64s(ys)
	xs = append(append([]float64{xs[0]}, xs...), upper)
	ys = append(append([]float64{lower}, ys...), ys[len(ys)-1])
	return xs, ys
}

// stepPolygon returns the closed polygon under the post-step line
// through xs, ys, down to base.
func stepPolygon(xs, ys []float64, base float64) (px, py []float64) {
	if len(xs) == 0 {
		return nil, nil
	}
	for i := range xs {
		if i > 0 {
			px, py = append(px, xs[i]), append(py, ys[i-1])
		}
		px, py = append(px, xs[i]), append(py, ys[i])
	}
	px = append(px, xs[len(xs)-1], xs[0], xs[0])
	py = append(py, base, base, ys[0])
	return px, py
}

// Plot layers.
const (
	layerSample  = "sample"
	layerFill    = "front fill"
	layerFront   = "front"
	layerHVOther = "hypervolume (all)"
	layerHV      = "hypervolume"
	layerOrder   = "sampling order"
)

// Panels, one row of the figure each.
const (
	panelFront = "1 conductivity vs. temperature"
	panelHV    = "2 hypervolume vs. sample"
)

// plotTable flattens cs into one long table with a row for every
// vertex drawn in the figure. Each row belongs to a file (figure
// column), panel (figure row), layer, and series, and has x, y, and
// color.
type plotTable struct {
	file, panel, layer, series []string
	x, y                       []float64
	color                      []color.Color
}

func (p *plotTable) add(file, panel, layer, series string, xs, ys []float64, c func(i int) color.Color) {
	for i := range xs {
		p.file = append(p.file, file)
		p.panel = append(p.panel, panel)
		p.layer = append(p.layer, layer)
		p.series = append(p.series, series)
		p.x = append(p.x, xs[i])
		p.y = append(p.y, ys[i])
		p.color = append(p.color, c(i))
	}
}

func (p *plotTable) table() *table.Table {
	return new(table.Builder).
		Add("file", p.file).
		Add("panel", p.panel).
		Add("layer", p.layer).
		Add("series", p.series).
		Add("x", p.x).
		Add("y", p.y).
		Add("color", p.color).
		Done()
}

// constColor returns a color function that always returns c. go-gg
// groups on colors, which requires every value in the column to have
// the same concrete type, so c is converted to the color.RGBA the
// color maps return.
func constColor(c color.Color) func(int) color.Color {
	rgba := color.RGBAModel.Convert(c)
	return func(int) color.Color { return rgba }
}

// figureTable builds the long plotting table for cs. Samples are
// colored by cmap over their sampling order.
func figureTable(cs []*campaign, cmap colormap.Map) *table.Table {
	var temps, conds []float64
	for _, c := range cs {
		temps = append(temps, c.temp...)
		conds = append(conds, c.cond...)
	}
	_, tmax := stats.Bounds(temps)
	cmin, _ := stats.Bounds(conds)

	var pt plotTable
	for _, c := range cs {
		_, last := stats.Bounds(c.sample)
		order := func(i int) color.Color { return cmap.Map(c.sample[i] / last) }
		pt.add(c.file, panelFront, layerSample, "", c.temp, c.cond, order)

		xs, ys := c.frontSteps(cmin, tmax)
		px, py := stepPolygon(xs, ys, cmin)
		pt.add(c.file, panelFront, layerFill, "", px, py, constColor(color.Gray{192}))
		pt.add(c.file, panelFront, layerFront, "", xs, ys, constColor(color.Gray{160}))

		idx := make([]float64, len(c.hv))
		for i := range idx {
			idx[i] = float64(i)
		}
		pt.add(c.file, panelHV, layerHV, c.file, idx, c.hv, constColor(color.Gray{0x33}))
		// The hypervolume's x axis is the sampling order, so
		// coloring its points the same way keys the sample colors.
		pt.add(c.file, panelHV, layerOrder, c.file, idx, c.hv, order)
		for _, other := range cs {
			if other != c {
				oidx := make([]float64, len(other.hv))
				for i := range oidx {
					oidx[i] = float64(i)
				}
				pt.add(c.file, panelHV, layerHVOther, other.file, oidx, other.hv, constColor(color.Gray{211}))
			}
		}
	}
	return pt.table()
}

// summaryTable returns one row per sample with the derived columns,
// for -table output.
func summaryTable(cs []*campaign) *table.Table {
	var (
		file         []string
		sample, temp []float64
		cond, hv     []float64
		front        []bool
	)
	for _, c := range cs {
		for range c.sample {
			file = append(file, c.file)
		}
		sample = append(sample, c.sample...)
		temp = append(temp, c.temp...)
		cond = append(cond, c.cond...)
		front = append(front, c.pareto...)
		hv = append(hv, c.hv...)
	}
	return new(table.Builder).
		Add("file", file).
		Add("sample", sample).
		Add("temperature", temp).
		Add("conductivity", cond).
		Add("pareto", front).
		Add("hypervolume", hv).
		Done()
}
