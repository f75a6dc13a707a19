// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/figkit/figures/internal/dataset"
)

// A Steel is an alloy and the elements it contains.
type Steel struct {
	Name     string
	Year     int
	Elements []string
}

// Label returns the row label of s: "name (year)", or just the year
// in parentheses for unnamed steels.
func (s Steel) Label() string {
	if s.Name == "" {
		return fmt.Sprintf("(%d)", s.Year)
	}
	return fmt.Sprintf("%s (%d)", s.Name, s.Year)
}

// builtin is the steel history plotted when no data file is given.
var builtin = []Steel{
	{Year: 1865, Elements: []string{"C", "Cr"}},
	{Year: 1888, Elements: []string{"C", "Ni"}},
	{Year: 1900, Elements: []string{"C", "Ni", "Cr"}},
	{Year: 1900, Elements: []string{"C", "Cr", "V"}},
	{Year: 2000, Elements: []string{"Cr", "Ni", "Mn", "P", "S", "Si", "C"}},
	{Name: "Cor-Ten ASTM A242", Year: 2001, Elements: []string{"C", "Si", "Mn", "P", "S", "Cr", "Cu", "Ni"}},
	{Name: "Cor-Ten ASTM A588", Year: 2001, Elements: []string{"C", "Si", "Mn", "P", "S", "Cr", "Cu", "V", "Ni"}},
}

// A diagram is a list of steels ordered by year, with the element
// columns in the order the elements first appear.
type diagram struct {
	steels   []Steel
	elements []string
	column   map[string]int
}

func newDiagram(steels []Steel) *diagram {
	d := &diagram{
		steels: append([]Steel(nil), steels...),
		column: make(map[string]int),
	}
	sort.SliceStable(d.steels, func(i, j int) bool {
		return d.steels[i].Year < d.steels[j].Year
	})
	for _, s := range d.steels {
		for _, e := range s.Elements {
			if _, ok := d.column[e]; !ok {
				d.column[e] = len(d.elements)
				d.elements = append(d.elements, e)
			}
		}
	}
	return d
}

// readSteels reads steels from a CSV file with "name", "year", and
// "elements" columns. Elements are separated by spaces. Names are
// text even when they look like numbers, as grades such as 304 do.
func readSteels(r io.Reader) ([]Steel, error) {
	t, err := dataset.Read(r, "name", "elements")
	if err != nil {
		return nil, err
	}
	names, err := dataset.Strings(t, "name")
	if err != nil {
		return nil, err
	}
	years, err := dataset.Floats(t, "year")
	if err != nil {
		return nil, err
	}
	elems, err := dataset.Strings(t, "elements")
	if err != nil {
		return nil, err
	}
	var steels []Steel
	for i := range names {
		if math.IsNaN(years[i]) || years[i] != math.Trunc(years[i]) {
			return nil, fmt.Errorf("row %d: bad year %v", i+1, years[i])
		}
		s := Steel{Name: names[i], Year: int(years[i]), Elements: strings.Fields(elems[i])}
		if len(s.Elements) == 0 {
			return nil, fmt.Errorf("row %d: %s has no elements", i+1, s.Label())
		}
		steels = append(steels, s)
	}
	return steels, nil
}
