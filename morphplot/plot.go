// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/vec"
	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/internal/surface"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure layout as fractions of the canvas, (left, right, bottom,
// top).
var (
	areaQuality = [4]float64{3. / 65, 38. / 65, 2. / 12, 10. / 12}
	areaBar     = [4]float64{39. / 65, 45. / 65, 2. / 12, 10. / 12}
	areaArrows  = [4]float64{45. / 65, 53. / 65, 0, 1}
	areaPhotos  = [4]float64{54. / 65, 64. / 65, 0, 1}
)

// Scores are drawn with reversed plasma, so good films are dark.
var qualityMap = colormap.Plasma.Reverse()

// qualityPlot plots the fitted quality surface g as translucent filled
// bands with contour lines, and the samples s colored by quality.
func qualityPlot(s *samples, g *surface.Grid, levels int) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Dopant:HTM (n/n)"
	p.Y.Label.Text = "Annealing time (s)"

	fill := plotter.NewHeatMap(g, qualityMap.WithAlpha(0.3).Palette(levels))
	p.Add(fill)

	if ls := surface.Levels(g.Min(), g.Max(), levels); len(ls) > 0 {
		lines := plotter.NewContour(g, ls, qualityMap.Palette(levels))
		lines.LineStyles = []draw.LineStyle{{Width: vg.Points(2)}}
		p.Add(lines)
	}

	pts := make(plotter.XYs, s.len())
	for i := range pts {
		pts[i].X, pts[i].Y = s.ratio[i], s.anneal[i]
	}
	qmin, qmax := minMax(s.quality)
	outline, front, err := surface.Points(pts, s.quality, qualityMap.ColorMap(qmin, qmax))
	if err != nil {
		return nil, err
	}
	p.Add(outline, front)

	// The surface extends margin past the data, so show exactly
	// that and tick the data range in fifths.
	x0, x1, err := s.domain()
	if err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = x0.Unmap(-margin), x0.Unmap(1+margin)
	p.Y.Min, p.Y.Max = x1.Unmap(-margin), x1.Unmap(1+margin)
	p.X.Tick.Marker = fifths(x0.Min, x0.Max)
	p.Y.Tick.Marker = fifths(x1.Min, x1.Max)
	return p, nil
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

func fifths(lo, hi float64) plot.ConstantTicks {
	var ticks []plot.Tick
	for _, v := range vec.Linspace(lo, hi, 6) {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 3, 64)})
	}
	return ticks
}

// barPlot plots the quality color bar, labeled only at its ends.
func barPlot() *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: colormap.Plasma.ColorMap(0, 1), Vertical: true})
	p.HideX()
	p.Y.Label.Text = "Dewetting score (S_dewet)"
	p.Y.Tick.Marker = plot.ConstantTicks{{Value: 0, Label: "Poor"}, {Value: 1, Label: "Good"}}
	return p
}

// region returns the part of c given by area.
func region(c draw.Canvas, area [4]float64) draw.Canvas {
	c.Rectangle = vg.Rectangle{Min: relPoint(c, area[0], area[2]), Max: relPoint(c, area[1], area[3])}
	return c
}

// relPoint returns the point at fraction (fx, fy) of c.
func relPoint(c draw.Canvas, fx, fy float64) vg.Point {
	size := c.Size()
	return vg.Point{X: c.Min.X + vg.Length(fx)*size.X, Y: c.Min.Y + vg.Length(fy)*size.Y}
}

var arrowColor = color.Gray{0xd3} // light gray

// nphotos is the number of example photographs, best film first.
const nphotos = 5

// drawFigure draws the quality and color bar plots side by side on c,
// then a column of photos to their right, worst at the bottom, with
// arrows from each photo to its place along the color bar. photos
// must be nil or have nphotos elements; if it is nil, only the arrows
// are drawn.
func drawFigure(c draw.Canvas, qual, bar *plot.Plot, photos []image.Image) {
	surface.White(c)
	qual.Draw(region(c, areaQuality))
	bar.Draw(region(c, areaBar))

	ac := region(c, areaArrows)
	pc := region(c, areaPhotos)
	for i := 0; i < nphotos; i++ {
		tail := relPoint(ac, 1, 0.1+0.2*float64(i))
		head := relPoint(ac, 0.05, areaBar[2]+float64(i)*(areaBar[3]-areaBar[2])/(nphotos-1))
		if pts := arrow(tail, head, vg.Points(6)); pts != nil {
			ac.FillPolygon(arrowColor, pts)
		}

		if photos == nil {
			continue
		}
		img := photos[nphotos-1-i]
		box := vg.Rectangle{
			Min: relPoint(pc, 0, 0.01+0.2*float64(i)),
			Max: relPoint(pc, 1, 0.19+0.2*float64(i)),
		}
		pc.DrawImage(fitRect(box, img.Bounds()), img)
	}
}

// fitRect returns the largest rectangle with the aspect ratio of r
// centered in box.
func fitRect(box vg.Rectangle, r image.Rectangle) vg.Rectangle {
	size := box.Size()
	aspect := vg.Length(r.Dx()) / vg.Length(r.Dy())
	w, h := size.X, size.X/aspect
	if h > size.Y {
		w, h = size.Y*aspect, size.Y
	}
	mid := vg.Point{X: (box.Min.X + box.Max.X) / 2, Y: (box.Min.Y + box.Max.Y) / 2}
	return vg.Rectangle{
		Min: vg.Point{X: mid.X - w/2, Y: mid.Y - h/2},
		Max: vg.Point{X: mid.X + w/2, Y: mid.Y + h/2},
	}
}

// arrow returns the outline of an arrow from tail to head with a
// shaft of the given width, or nil if tail and head coincide.
func arrow(tail, head vg.Point, width vg.Length) []vg.Point {
	dx, dy := head.X-tail.X, head.Y-tail.Y
	l := vg.Length(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return nil
	}
	ux, uy := dx/l, dy/l
	nx, ny := -uy, ux
	hl := math.Min(float64(2*width), float64(l))
	base := vg.Point{X: head.X - ux*vg.Length(hl), Y: head.Y - uy*vg.Length(hl)}
	off := func(p vg.Point, d vg.Length) vg.Point {
		return vg.Point{X: p.X + nx*d, Y: p.Y + ny*d}
	}
	return []vg.Point{
		off(tail, width/2),
		off(base, width/2),
		off(base, width),
		head,
		off(base, -width),
		off(base, -width/2),
		off(tail, -width/2),
	}
}
