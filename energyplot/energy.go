// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/figkit/figures/internal/dataset"
	"github.com/figkit/figures/matcolor"
)

// mtoeToTW converts Mtoe/yr to TW: 1 Mtoe = 11.63 TWh, spread over
// the hours of a year.
const mtoeToTW = 11.63 / (24 * 365)

// Primary energy sources, in the column order of the input.
var sources = []string{"Oil", "Gas", "Coal", "Nuclear", "Hydro", "Solar", "Wind", "Other"}

// Summary columns and the sources they add up.
var groups = []struct {
	name    string
	sources []string
}{
	{"Total", sources},
	{"Fossil", []string{"Oil", "Gas", "Coal"}},
	{"Nonfossil", []string{"Wind", "Solar", "Other", "Hydro", "Nuclear"}},
	{"Renew", []string{"Wind", "Solar", "Other"}},
	{"NuclearHydro", []string{"Hydro", "Nuclear"}},
}

// load reads the energy consumption table from r. The input has a
// "Year" column naming each source and one column per year, in
// Mtoe/yr. load returns a table with one row per year, a column per
// source in TW, and the summary columns.
func load(r io.Reader) (*table.Table, error) {
	raw, err := dataset.Read(r)
	if err != nil {
		return nil, err
	}
	t, err := dataset.Transpose(raw, "Year")
	if err != nil {
		return nil, err
	}
	if _, err := dataset.Floats(t, "Year"); err != nil {
		return nil, fmt.Errorf("years: %w", err)
	}

	b := table.NewBuilder(t)
	tw := make(map[string][]float64)
	for _, src := range sources {
		mtoe, err := dataset.Floats(t, src)
		if err != nil {
			return nil, err
		}
		col := make([]float64, len(mtoe))
		for i, v := range mtoe {
			col[i] = v * mtoeToTW
		}
		tw[src] = col
		b.Add(src, col)
	}
	for _, g := range groups {
		sum := make([]float64, t.Len())
		for _, src := range g.sources {
			for i, v := range tw[src] {
				sum[i] += v
			}
		}
		b.Add(g.name, sum)
	}
	return b.Done(), nil
}

// loadPrediction reads a forecast table with "Year", "Total",
// "Fossil", and "Nonfossil" columns and scales each forecast column so
// its first year meets the last year of hist.
func loadPrediction(r io.Reader, hist *table.Table) (*table.Table, error) {
	t, err := dataset.Read(r)
	if err != nil {
		return nil, err
	}
	if _, err := dataset.Floats(t, "Year"); err != nil {
		return nil, err
	}
	b := table.NewBuilder(t)
	for _, col := range []string{"Total", "Fossil", "Nonfossil"} {
		pred, err := dataset.Floats(t, col)
		if err != nil {
			return nil, err
		}
		h, err := dataset.Floats(hist, col)
		if err != nil {
			return nil, err
		}
		if len(pred) == 0 || len(h) == 0 {
			return nil, fmt.Errorf("empty %s data", col)
		}
		f := h[len(h)-1] / pred[0]
		scaled := make([]float64, len(pred))
		for i, v := range pred {
			scaled[i] = v * f
		}
		b.Add(col, scaled)
	}
	return b.Done(), nil
}

// diff returns the difference between successive elements of xs. The
// first element has no predecessor and is NaN.
func diff(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = xs[i] - xs[i-1]
	}
	return out
}

// pctChange returns the percent change between successive elements
// of xs. Changes from zero are NaN rather than infinite.
func pctChange(xs []float64) []float64 {
	out := diff(xs)
	for i := 1; i < len(xs); i++ {
		out[i] = out[i] / xs[i-1] * 100
		if math.IsInf(out[i], 0) {
			out[i] = math.NaN()
		}
	}
	return out
}

// A series is one named, colored column of the energy table.
type series struct {
	col   string
	label string
	color color.Color
}

func hex(s string) color.Color {
	c, err := matcolor.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// alpha returns c at the given opacity. The result is a premultiplied
// color.RGBA like hex's, since go-gg requires every value of a
// grouping column to have the same concrete type.
func alpha(c color.Color, a float64) color.Color {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return color.RGBA{
		uint8(float64(r.R)*a + 0.5),
		uint8(float64(r.G)*a + 0.5),
		uint8(float64(r.B)*a + 0.5),
		uint8(float64(r.A)*a + 0.5),
	}
}

// long converts the named columns of t into a long table with one
// row per year and series, with columns "Year", "series", "value",
// and "color". If f is non-nil, it transforms each column first.
// Rows where the value is NaN are dropped.
func long(t *table.Table, ss []series, f func([]float64) []float64) (*table.Table, error) {
	years, err := dataset.Floats(t, "Year")
	if err != nil {
		return nil, err
	}
	var (
		year, value []float64
		name        []string
		colors      []color.Color
	)
	for _, s := range ss {
		xs, err := dataset.Floats(t, s.col)
		if err != nil {
			return nil, err
		}
		if f != nil {
			xs = f(xs)
		}
		for i, x := range xs {
			if math.IsNaN(x) {
				continue
			}
			year = append(year, years[i])
			value = append(value, x)
			name = append(name, s.label)
			colors = append(colors, s.color)
		}
	}
	return new(table.Builder).
		Add("Year", year).
		Add("series", name).
		Add("value", value).
		Add("color", colors).
		Done(), nil
}

// stack stacks the named columns of t on top of each other, in order.
// The result has one row per year and series, with the series' band
// between "lower" and "upper", a "fill" color, and a "line" color for
// its upper edge. If frac is true, each year is scaled so the
// "Total" column is 1.
func stack(t *table.Table, ss []series, fillAlpha float64, frac bool) (*table.Table, error) {
	years, err := dataset.Floats(t, "Year")
	if err != nil {
		return nil, err
	}
	total, err := dataset.Floats(t, "Total")
	if err != nil {
		return nil, err
	}
	var (
		year, lower, upper []float64
		name               []string
		fill, line         []color.Color
	)
	base := make([]float64, len(years))
	for _, s := range ss {
		xs, err := dataset.Floats(t, s.col)
		if err != nil {
			return nil, err
		}
		for i, x := range xs {
			if frac {
				x /= total[i]
			}
			year = append(year, years[i])
			lower = append(lower, base[i])
			base[i] += x
			upper = append(upper, base[i])
			name = append(name, s.label)
			fill = append(fill, alpha(s.color, fillAlpha))
			line = append(line, s.color)
		}
	}
	return new(table.Builder).
		Add("Year", year).
		Add("series", name).
		Add("lower", lower).
		Add("upper", upper).
		Add("fill", fill).
		Add("line", line).
		Done(), nil
}

// since returns the rows of t from year on.
func since(t *table.Table, year float64) *table.Table {
	return table.Flatten(table.Filter(t, func(y float64) bool { return y >= year }, "Year"))
}

// lastRows returns the last row of each series of the long table t,
// for labeling line ends.
func lastRows(t *table.Table) (*table.Table, error) {
	year, err := dataset.Floats(t, "Year")
	if err != nil {
		return nil, err
	}
	value, err := dataset.Floats(t, "value")
	if err != nil {
		return nil, err
	}
	names, err := dataset.Strings(t, "series")
	if err != nil {
		return nil, err
	}
	colors := t.MustColumn("color").([]color.Color)

	last := make(map[string]int)
	var order []string
	for i, name := range names {
		if _, ok := last[name]; !ok {
			order = append(order, name)
		}
		last[name] = i
	}
	b := new(table.Builder)
	var ly, lv []float64
	var lc []color.Color
	for _, name := range order {
		i := last[name]
		ly, lv, lc = append(ly, year[i]), append(lv, value[i]), append(lc, colors[i])
	}
	return b.Add("Year", ly).Add("series", order).Add("value", lv).Add("color", lc).Done(), nil
}
