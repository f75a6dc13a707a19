// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides perceptually uniform sequential color
// maps for both gg plots and gonum plots.
package colormap

import (
	"image/color"
	"math"

	ggpalette "github.com/aclements/go-gg/palette"
	"gonum.org/v1/plot/palette"
)

// A Map is a sequential color map from [0, 1] to colors.
type Map struct {
	// g repeats the first color of the map. RGBGradient returns
	// its first color unblended over the whole first segment, so
	// lookups skip that segment.
	g     ggpalette.RGBGradient
	alpha float64
}

func newMap(hex ...uint32) Map {
	cs := make([]color.RGBA, len(hex))
	for i, h := range hex {
		cs[i] = color.RGBA{uint8(h >> 16), uint8(h >> 8), uint8(h), 0xff}
	}
	return fromColors(cs, 1)
}

func fromColors(cs []color.RGBA, alpha float64) Map {
	g := append([]color.RGBA{cs[0]}, cs...)
	return Map{ggpalette.RGBGradient{Colors: g}, alpha}
}

// stops returns the colors m interpolates between.
func (m Map) stops() []color.RGBA {
	return m.g.Colors[1:]
}

// Viridis is matplotlib's default color map, from dark purple to
// yellow.
var Viridis = newMap(
	0x440154, 0x482878, 0x3e4989, 0x31688e, 0x26828e,
	0x1f9e89, 0x35b779, 0x6ece58, 0xfde725,
)

// Plasma runs from dark blue through magenta to yellow.
var Plasma = newMap(
	0x0d0887, 0x4c02a1, 0x7e03a8, 0xa92395, 0xcc4778,
	0xe56b5d, 0xf89441, 0xfdc328, 0xf0f921,
)

// ByName maps matplotlib color map names to Maps, including the
// reversed "_r" variants.
var ByName = map[string]Map{
	"viridis":   Viridis,
	"viridis_r": Viridis.Reverse(),
	"plasma":    Plasma,
	"plasma_r":  Plasma.Reverse(),
}

// Map returns the color at x. x is clamped to [0, 1]; NaN maps to
// transparent.
func (m Map) Map(x float64) color.Color {
	if math.IsNaN(x) {
		return color.Transparent
	}
	x = math.Max(0, math.Min(1, x))
	n := float64(len(m.g.Colors) - 1)
	c := color.RGBAModel.Convert(m.g.Map((1 + x*(n-1)) / n)).(color.RGBA)
	if m.alpha >= 1 {
		return c
	}
	a := m.alpha
	return color.RGBA{
		uint8(float64(c.R)*a + 0.5),
		uint8(float64(c.G)*a + 0.5),
		uint8(float64(c.B)*a + 0.5),
		uint8(float64(c.A)*a + 0.5),
	}
}

// Reverse returns m running from its last color to its first.
func (m Map) Reverse() Map {
	stops := m.stops()
	n := len(stops)
	cs := make([]color.RGBA, n)
	for i, c := range stops {
		cs[n-1-i] = c
	}
	return fromColors(cs, m.alpha)
}

// WithAlpha returns m with every color made alpha opaque.
func (m Map) WithAlpha(alpha float64) Map {
	m.alpha = alpha
	return m
}

// Alpha returns the opacity of m's colors.
func (m Map) Alpha() float64 {
	return m.alpha
}

// Colors returns n colors evenly spaced over m, from both ends.
func (m Map) Colors(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		cs[i] = m.Map(x)
	}
	return cs
}

// Palette returns a gonum palette of n colors sampled from m.
func (m Map) Palette(n int) palette.Palette {
	return colors(m.Colors(n))
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// ColorMap returns a gonum palette.ColorMap that maps [min, max] onto m.
func (m Map) ColorMap(min, max float64) palette.ColorMap {
	return &colorMap{m: m, min: min, max: max}
}

type colorMap struct {
	m        Map
	min, max float64
}

func (c *colorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < c.min:
		return nil, palette.ErrUnderflow
	case v > c.max:
		return nil, palette.ErrOverflow
	}
	if c.max == c.min {
		return c.m.Map(0), nil
	}
	return c.m.Map((v - c.min) / (c.max - c.min)), nil
}

func (c *colorMap) Min() float64 { return c.min }
func (c *colorMap) Max() float64 { return c.max }
func (c *colorMap) SetMin(v float64) { c.min = v }
func (c *colorMap) SetMax(v float64) { c.max = v }
func (c *colorMap) Alpha() float64 { return c.m.alpha }
func (c *colorMap) SetAlpha(a float64) { c.m.alpha = a }
func (c *colorMap) Palette(n int) palette.Palette { return c.m.Palette(n) }
