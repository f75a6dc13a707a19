// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// plot lays out the figure for the long table t produced by
// figureTable. It returns the plot and its number of rows and columns.
func plot(t *table.Table) (*gg.Plot, int, int) {
	ncols := len(table.GroupBy(t, "file").Tables())
	nrows := len(table.GroupBy(t, "panel").Tables())

	p := gg.NewPlot(t)

	// One row per panel with its own scales, shared across the
	// campaigns in that row.
	p.Add(gg.FacetY{
		Col:          "panel",
		SplitXScales: true,
		SplitYScales: true,
		Labeler: func(v interface{}) string {
			// Panels are named with a sort prefix.
			_, label, _ := strings.Cut(v.(string), " ")
			return label
		},
	})
	p.Add(gg.FacetX{Col: "file"})

	layer := func(name string, l gg.Plotter) {
		defer p.Save().Restore()
		p.SetData(table.FilterEq(p.Data(), "layer", name))
		// Grouping drops subplots without any rows in this
		// layer and separates the series.
		p.GroupBy("series")
		p.Add(l)
	}

	none := p.Const(color.Color(color.Transparent))

	layer(layerFill, gg.LayerPaths{X: "x", Y: "y", Fill: "color", Color: none})
	layer(layerFront, gg.LayerSteps{LayerPaths: gg.LayerPaths{X: "x", Y: "y", Color: "color"}, Step: gg.StepHV})
	layer(layerHVOther, gg.LayerSteps{LayerPaths: gg.LayerPaths{X: "x", Y: "y", Color: "color"}, Step: gg.StepHV})
	layer(layerHV, gg.LayerSteps{LayerPaths: gg.LayerPaths{X: "x", Y: "y", Color: "color"}, Step: gg.StepHV})
	layer(layerOrder, gg.LayerPoints{X: "x", Y: "y", Color: "color"})
	layer(layerSample, gg.LayerPoints{X: "x", Y: "y", Color: "color"})

	p.Add(gg.Title("point color: sampling order, first to last along the hypervolume x axis"))

	p.Add(gg.AxisLabel("x", "temperature (°C) · sample"))
	p.Add(gg.AxisLabel("y", "conductivity (S m⁻¹) · normalized hypervolume"))

	return p, nrows, ncols
}
