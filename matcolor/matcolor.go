// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcolor provides the Material Design color palette.
//
// Each Hue has ten primary shades, S50 (lightest) through S900
// (darkest), and, except for brown, gray, and blue gray, four accent
// shades A100 through A700.
package matcolor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Hue is one color of the palette in all of its shades.
type Hue struct {
	// Name is the lower-case hue name with spaces removed, for
	// example "deeppurple". Short is its abbreviation, "dp".
	Name, Short string

	S50, S100, S200, S300, S400, S500, S600, S700, S800, S900 color.RGBA

	// Accent shades. These are the zero color for hues without
	// accents.
	A100, A200, A400, A700 color.RGBA
}

// ShadeNames lists the shade names accepted by Hue.Shade, from
// lightest primary to the last accent.
var ShadeNames = []string{
	"50", "100", "200", "300", "400", "500", "600", "700", "800", "900",
	"A100", "A200", "A400", "A700",
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// HasAccents reports whether h has accent shades.
func (h *Hue) HasAccents() bool {
	return h.A100.A != 0
}

// Shade returns the shade of h named name, such as "400" or "A200".
func (h *Hue) Shade(name string) (color.RGBA, bool) {
	var c color.RGBA
	switch strings.ToUpper(name) {
	case "50":
		c = h.S50
	case "100":
		c = h.S100
	case "200":
		c = h.S200
	case "300":
		c = h.S300
	case "400":
		c = h.S400
	case "500":
		c = h.S500
	case "600":
		c = h.S600
	case "700":
		c = h.S700
	case "800":
		c = h.S800
	case "900":
		c = h.S900
	case "A100":
		c = h.A100
	case "A200":
		c = h.A200
	case "A400":
		c = h.A400
	case "A700":
		c = h.A700
	}
	return c, c.A != 0
}

// Find returns the hue named name. name may be the full name or the
// short name, and is matched ignoring case, spaces, and underscores,
// so "Deep Purple", "deep_purple", and "dp" all find DeepPurple. The
// British "grey" spelling is accepted.
func Find(name string) (*Hue, bool) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "", "grey", "gray").Replace(strings.ToLower(name))
	for _, h := range Hues {
		if h.Name == key || h.Short == key {
			return h, true
		}
	}
	return nil, false
}

// Lookup returns the given shade of the named hue.
func Lookup(hue, shade string) (color.RGBA, error) {
	h, ok := Find(hue)
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown hue %q", hue)
	}
	c, ok := h.Shade(shade)
	if !ok {
		return color.RGBA{}, fmt.Errorf("hue %s has no shade %q", h.Name, shade)
	}
	return c, nil
}

// Parse parses a color given either as a hex string (see ParseHex)
// or as "hue.shade", for example "pink.400".
func Parse(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	hue, shade, ok := strings.Cut(s, ".")
	if !ok {
		return color.RGBA{}, fmt.Errorf("bad color %q: want #rrggbb or hue.shade", s)
	}
	return Lookup(hue, shade)
}

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: missing #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return rgb(uint32(v)), nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}
