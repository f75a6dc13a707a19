// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/figkit/figures/matcolor"
	"github.com/stretchr/testify/require"
)

func TestDiagram(t *testing.T) {
	d := newDiagram(builtin)
	require.Equal(t, []string{"C", "Cr", "Ni", "V", "Mn", "P", "S", "Si", "Cu"}, d.elements)

	var years []int
	for _, s := range d.steels {
		years = append(years, s.Year)
	}
	require.Equal(t, []int{1865, 1888, 1900, 1900, 2000, 2001, 2001}, years)
	// Steels from the same year keep their order.
	require.Equal(t, []string{"C", "Ni", "Cr"}, d.steels[2].Elements)
	require.Equal(t, "Cor-Ten ASTM A242 (2001)", d.steels[5].Label())
	require.Equal(t, "(1865)", d.steels[0].Label())
}

func TestDiagramOrder(t *testing.T) {
	d := newDiagram([]Steel{
		{Name: "late", Year: 2000, Elements: []string{"Mo", "C"}},
		{Name: "early", Year: 1900, Elements: []string{"C", "Fe"}},
	})
	require.Equal(t, "early", d.steels[0].Name)
	require.Equal(t, []string{"C", "Fe", "Mo"}, d.elements)
	require.Equal(t, 2, d.column["Mo"])
}

func TestReadSteels(t *testing.T) {
	steels, err := readSteels(strings.NewReader(`name,year,elements
A36,1960,C Mn P S Si Cu
,1865,C Cr
`))
	require.NoError(t, err)
	require.Equal(t, []Steel{
		{Name: "A36", Year: 1960, Elements: []string{"C", "Mn", "P", "S", "Si", "Cu"}},
		{Name: "", Year: 1865, Elements: []string{"C", "Cr"}},
	}, steels)

	// Numeric grades are names, not numbers.
	steels, err = readSteels(strings.NewReader("name,year,elements\n304,1924,Cr Ni C\n316,1950,Cr Ni Mo C\n"))
	require.NoError(t, err)
	require.Len(t, steels, 2)
	require.Equal(t, "304", steels[0].Name)
	require.Equal(t, "316 (1950)", steels[1].Label())
	require.Equal(t, []string{"Cr", "Ni", "Mo", "C"}, steels[1].Elements)

	for _, bad := range []string{
		"name,year\nA36,1960\n",
		"name,year,elements\nA36,1960.5,C\n",
		"name,year,elements\nA36,1960,\n",
		"name,year,elements\nA36,new,C\n",
	} {
		_, err := readSteels(strings.NewReader(bad))
		require.Error(t, err, "%q", bad)
	}
}

func TestLayout(t *testing.T) {
	d := newDiagram(builtin)
	sc := layout(d, 1000, 0, matcolor.Pink.S400, matcolor.Pink.S700)

	var n int
	for _, s := range d.steels {
		n += len(s.Elements)
	}
	require.Len(t, sc.circles, n)
	require.Len(t, sc.labels, len(d.elements)+2*len(d.steels))
	require.InDelta(t, 1000, sc.width, 1)

	// Cells are square.
	dx := sc.labels[1].x - sc.labels[0].x
	dy := sc.circles[len(d.steels[0].Elements)].y - sc.circles[0].y
	require.InDelta(t, dx, dy, 1e-9)

	for _, c := range sc.circles {
		require.True(t, c.x-c.r >= 0 && c.x+c.r <= float64(sc.width), "circle %v outside width %d", c, sc.width)
		require.True(t, c.y-c.r >= 0 && c.y+c.r <= float64(sc.height), "circle %v outside height %d", c, sc.height)
	}

	// A height limit shrinks the cells.
	small := layout(d, 1000, 200, matcolor.Pink.S400, matcolor.Pink.S700)
	require.LessOrEqual(t, small.height, 200)
	require.Less(t, small.width, sc.width)
}

func TestRender(t *testing.T) {
	sc := layout(newDiagram(builtin), 600, 0, matcolor.Pink.S400, matcolor.Pink.S700)

	var buf bytes.Buffer
	require.NoError(t, sc.writeSVG(&buf))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Equal(t, len(sc.circles), strings.Count(out, "<circle"))
	require.Contains(t, out, "fill:#ec407a;stroke:#c2185b")
	require.Contains(t, out, ">Cor-Ten ASTM A588 (2001)</text>")

	img := sc.image()
	require.Equal(t, sc.width, img.Bounds().Dx())
	require.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(0, sc.height-1))
	c := sc.circles[0]
	require.Equal(t, matcolor.Pink.S400, img.RGBAAt(round(c.x), round(c.y)))
}
