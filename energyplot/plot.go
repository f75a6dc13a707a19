// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

var (
	colorRenew  = hex("#1e90ff") // dodger blue
	colorFossil = hex("#ff4a59")
	colorTotal  = hex("#4d4d4d")
	colorDark   = hex("#444444")
)

// Sources of the proportion figure, bottom to top.
var proportionSeries = []series{
	{"Solar", "Solar", hex("#ff4500")},
	{"Wind", "Wind", hex("#ff6347")},
	{"Other", "Other", hex("#fa8072")},
	{"Nuclear", "Nuclear", hex("#696969")},
	{"Hydro", "Hydro", hex("#808080")},
	{"Oil", "Oil", hex("#1e90ff")},
	{"Gas", "Gas", hex("#00bfff")},
	{"Coal", "Coal", hex("#40e0d0")},
}

// Summary lines of the consumption figures.
var summarySeries = []series{
	{"Renew", "Renewables", colorRenew},
	{"Fossil", "Fossil fuels", colorFossil},
	{"Total", "Total", colorTotal},
}

// plotProportion plots each source's share of total consumption as
// stacked areas separated by white lines.
func plotProportion(t *table.Table) (*gg.Plot, error) {
	st, err := stack(t, proportionSeries, 1, true)
	if err != nil {
		return nil, err
	}
	p := gg.NewPlot(st)
	p.GroupBy("series")
	p.Add(gg.LayerArea{X: "Year", Upper: "upper", Lower: "lower", Fill: "fill"})
	p.Add(gg.LayerLines{X: "Year", Y: "upper", Color: p.Const(color.White)})
	tags(p, lastOf(st, "Year", "upper"), "Year", "upper")
	p.SetScale("y", gg.NewLinearScaler().SetMin(0).SetMax(1))
	p.Add(gg.AxisLabel("x", "year"), gg.AxisLabel("y", "source of energy consumed"))
	return p, nil
}

// plotLines plots summary series of t as labeled lines from year
// from on, after applying f to each column.
func plotLines(t *table.Table, from float64, f func([]float64) []float64, ylabel string) (*gg.Plot, error) {
	lt, err := long(t, summarySeries, f)
	if err != nil {
		return nil, err
	}
	lt = since(lt, from)
	ends, err := lastRows(lt)
	if err != nil {
		return nil, err
	}
	p := gg.NewPlot(lt)
	p.Add(gg.LayerLines{X: "Year", Y: "value", Color: "color"})
	p.Save()
	p.SetData(ends)
	p.Add(gg.LayerTags{X: "Year", Y: "value", Label: "series"})
	p.Restore()
	p.Add(gg.AxisLabel("x", "year"), gg.AxisLabel("y", ylabel))
	return p, nil
}

// plotAbsDifference plots the year-over-year change of the summary
// series in GW.
func plotAbsDifference(t *table.Table, from float64) (*gg.Plot, error) {
	gw := func(xs []float64) []float64 {
		d := diff(xs)
		for i := range d {
			d[i] *= 1000
		}
		return d
	}
	return plotLines(t, from, gw, "annual change in global consumption (GW)")
}

// plotConsumption plots the summary series in TW.
func plotConsumption(t *table.Table, from float64) (*gg.Plot, error) {
	return plotLines(t, from, nil, "power consumption (TW)")
}

// plotChange plots the annual percent change of total consumption.
func plotChange(t *table.Table, from float64) (*gg.Plot, error) {
	lt, err := long(t, []series{{"Total", "Total", colorTotal}}, pctChange)
	if err != nil {
		return nil, err
	}
	p := gg.NewPlot(since(lt, from))
	p.Add(gg.LayerLines{X: "Year", Y: "value", Color: "color"})
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.AxisLabel("x", "year"), gg.AxisLabel("y", "percent change, annual"))
	return p, nil
}

// plotProjected plots the stacked nuclear and hydro, renewable, and
// fossil consumption as translucent areas with solid outlines.
func plotProjected(t *table.Table) (*gg.Plot, error) {
	st, err := stack(t, []series{
		{"NuclearHydro", "Nuclear & hydro", hex("#d3d3d3")},
		{"Renew", "Renewables", colorRenew},
		{"Fossil", "Fossil fuels", colorFossil},
	}, 0.5, false)
	if err != nil {
		return nil, err
	}
	p := gg.NewPlot(st)
	p.GroupBy("series")
	p.Add(gg.LayerArea{X: "Year", Upper: "upper", Lower: "lower", Fill: "fill"})
	p.Add(gg.LayerLines{X: "Year", Y: "upper", Color: "line"})
	tags(p, lastOf(st, "Year", "upper"), "Year", "upper")
	p.SetScale("x", gg.NewLinearScaler().SetMin(1965).SetMax(2050))
	p.SetScale("y", gg.NewLinearScaler().SetMin(0).SetMax(30))
	p.Add(gg.AxisLabel("x", "year"), gg.AxisLabel("y", "power consumption (TW)"))
	return p, nil
}

// plotFossilNonfossil plots stacked historic non-fossil and fossil
// consumption and the forecast in pred.
func plotFossilNonfossil(t, pred *table.Table) (*gg.Plot, error) {
	st, err := stack(t, []series{
		{"Nonfossil", "Non-fossil fuels", colorRenew},
		{"Fossil", "Fossil fuels", colorDark},
	}, 0.3, false)
	if err != nil {
		return nil, err
	}
	fc, err := long(pred, []series{
		{"Total", "Current forecast", colorDark},
		{"Nonfossil", "Non-fossil forecast", alpha(colorRenew, 0.4)},
	}, nil)
	if err != nil {
		return nil, err
	}
	ends, err := lastRows(fc)
	if err != nil {
		return nil, err
	}

	p := gg.NewPlot(st)
	p.GroupBy("series")
	p.Add(gg.LayerArea{X: "Year", Upper: "upper", Lower: "lower", Fill: "fill"})
	p.Add(gg.LayerLines{X: "Year", Y: "upper", Color: "line"})
	tags(p, lastOf(st, "Year", "upper"), "Year", "upper")

	p.Save()
	p.SetData(fc)
	p.Add(gg.LayerLines{X: "Year", Y: "value", Color: "color"})
	p.SetData(ends)
	p.Add(gg.LayerPoints{X: "Year", Y: "value", Color: "color"})
	p.Add(gg.LayerTags{X: "Year", Y: "value", Label: "series"})
	p.Restore()

	p.SetScale("x", gg.NewLinearScaler().SetMin(1965).SetMax(2050))
	p.SetScale("y", gg.NewLinearScaler().SetMin(0).SetMax(30))
	p.Add(gg.Title("Carbon neutrality by 2050 to limit global heating to 1.5°C (IPCC criterion)"))
	p.Add(gg.AxisLabel("x", "year"), gg.AxisLabel("y", "total global power consumption (TW)"))
	return p, nil
}

// lastOf returns the row of each series of t with the greatest x, for
// labeling stacked bands at their right edge.
func lastOf(t *table.Table, x, y string) *table.Table {
	g := table.GroupBy(t, "series")
	b := new(table.Builder)
	var names []string
	var xs, ys []float64
	for _, gid := range g.Tables() {
		gt := g.Table(gid)
		gx := gt.MustColumn(x).([]float64)
		gy := gt.MustColumn(y).([]float64)
		if len(gx) == 0 {
			continue
		}
		best := 0
		for i := range gx {
			if gx[i] > gx[best] {
				best = i
			}
		}
		names = append(names, gid.Label().(string))
		xs = append(xs, gx[best])
		ys = append(ys, gy[best])
	}
	return b.Add("series", names).Add(x, xs).Add(y, ys).Done()
}

// tags labels the series of p at the points in t.
func tags(p *gg.Plot, t *table.Table, x, y string) {
	defer p.Save().Restore()
	p.SetData(t)
	p.Add(gg.LayerTags{X: x, Y: y, Label: "series"})
}
