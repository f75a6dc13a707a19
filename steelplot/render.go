// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
	"github.com/figkit/figures/matcolor"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Diagram geometry in cell units. Element columns are at x = 0, 1,
// ...; steel rows are at y = 0, -1, ....
const (
	radius  = 0.175
	stroke  = 0.05
	labelX  = -1.5
	countX  = -1
	headerY = 0.5
	margin  = 0.25
)

var face = basicfont.Face7x13

type anchor int

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

func (a anchor) String() string {
	switch a {
	case anchorMiddle:
		return "middle"
	case anchorEnd:
		return "end"
	}
	return "start"
}

type circle struct{ x, y, r float64 }

// A label is a line of text vertically centered on y.
type label struct {
	x, y   float64
	text   string
	anchor anchor
}

// A scene is a laid out diagram in pixel coordinates.
type scene struct {
	width, height int
	fill, edge    color.Color
	edgeWidth     float64
	circles       []circle
	labels        []label
}

func textWidth(s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

// layout lays out d in a width×height pixel box with square cells.
// If height is 0, it is derived from width.
func layout(d *diagram, width, height int, fill, edge color.Color) *scene {
	var lw float64
	for _, s := range d.steels {
		lw = math.Max(lw, textWidth(s.Label()))
	}

	// The label column is a fixed pixel width left of labelX, so
	// solve for the cell size that fills the width.
	ncols := float64(len(d.elements))
	nrows := float64(len(d.steels))
	cell := (float64(width) - lw) / (ncols - labelX + margin)
	if height > 0 {
		cell = math.Min(cell, float64(height)/(nrows+1))
	}
	cell = math.Max(cell, 1)

	xs := scale.Linear{Min: labelX - margin - lw/cell, Max: ncols}
	ys := scale.Linear{Min: -nrows, Max: 1}
	w, h := (xs.Max-xs.Min)*cell, (ys.Max-ys.Min)*cell
	sc := &scene{
		width:     int(math.Ceil(w)),
		height:    int(math.Ceil(h)),
		fill:      fill,
		edge:      edge,
		edgeWidth: stroke * cell,
	}
	px := func(x float64) float64 { return xs.Map(x) * w }
	py := func(y float64) float64 { return (1 - ys.Map(y)) * h }

	for i, e := range d.elements {
		sc.labels = append(sc.labels, label{px(float64(i)), py(headerY), e, anchorMiddle})
	}
	for i, s := range d.steels {
		y := -float64(i)
		for _, e := range s.Elements {
			sc.circles = append(sc.circles, circle{px(float64(d.column[e])), py(y), radius * cell})
		}
		sc.labels = append(sc.labels,
			label{px(labelX), py(y), s.Label(), anchorEnd},
			label{px(countX), py(y), fmt.Sprint(len(s.Elements)), anchorStart},
		)
	}
	return sc
}

// writeSVG writes sc to w as an SVG document.
func (sc *scene) writeSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(sc.width, sc.height)
	canvas.Rect(0, 0, sc.width, sc.height, "fill:white")

	canvas.Gstyle(fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%.2f", matcolor.Hex(sc.fill), matcolor.Hex(sc.edge), sc.edgeWidth))
	for _, c := range sc.circles {
		canvas.Circle(round(c.x), round(c.y), round(c.r))
	}
	canvas.Gend()

	// Shift by a third of the font size to center on the line.
	size := face.Height
	canvas.Gstyle(fmt.Sprintf("font-family:sans-serif;font-size:%dpx;fill:black", size))
	for _, l := range sc.labels {
		canvas.Text(round(l.x), round(l.y)+size/3, l.text, "text-anchor:"+l.anchor.String())
	}
	canvas.Gend()
	canvas.End()
	return bw.Flush()
}

func round(x float64) int {
	return int(math.Round(x))
}

// image rasterizes sc.
func (sc *scene) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sc.width, sc.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	z := vector.NewRasterizer(sc.width, sc.height)
	for _, c := range sc.circles {
		fillCircle(img, z, c.x, c.y, c.r+sc.edgeWidth/2, sc.edge)
		fillCircle(img, z, c.x, c.y, c.r-sc.edgeWidth/2, sc.fill)
	}

	d := font.Drawer{Dst: img, Src: image.Black, Face: face}
	m := face.Metrics()
	for _, l := range sc.labels {
		x := fixed.Int26_6(l.x * 64)
		switch l.anchor {
		case anchorMiddle:
			x -= d.MeasureString(l.text) / 2
		case anchorEnd:
			x -= d.MeasureString(l.text)
		}
		d.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(l.y*64) + (m.Ascent-m.Descent)/2}
		d.DrawString(l.text)
	}
	return img
}

// fillCircle fills a circle on dst using z, approximating each
// quadrant with a cubic Bézier.
func fillCircle(dst draw.Image, z *vector.Rasterizer, cx, cy, r float64, c color.Color) {
	const k = 0.5522847498 // 4/3·(√2-1)
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	x, y, rr := float32(cx), float32(cy), float32(r)
	kr := float32(k) * rr
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+kr, x+kr, y+rr, x, y+rr)
	z.CubeTo(x-kr, y+rr, x-rr, y+kr, x-rr, y)
	z.CubeTo(x-rr, y-kr, x-kr, y-rr, x, y-rr)
	z.CubeTo(x+kr, y-rr, x+rr, y-kr, x+rr, y)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
