// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command steelplot draws the growing complexity of steel alloys over
// time: one row per steel, ordered by year, with a circle for each
// element it contains.
//
// By default it plots a built-in history. With -data, it reads steels
// from a CSV file with "name", "year", and "elements" columns, where
// elements is a space-separated list of element symbols.
//
// steelplot writes both an SVG and a PNG rendering.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/figkit/figures/internal/figure"
	"github.com/figkit/figures/matcolor"
)

func main() {
	log.SetPrefix("steelplot: ")
	log.SetFlags(0)

	var fig figure.Flags
	fig.Register(flag.CommandLine, "steel", 1000, 0)
	flagData := flag.String("data", "", "read steels from CSV `file` instead of the built-in list")
	flagFill := flag.String("fill", "pink.400", "circle fill `color` (#rrggbb or hue.shade)")
	flagEdge := flag.String("edge", "pink.700", "circle edge `color`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	fill, err := matcolor.Parse(*flagFill)
	if err != nil {
		log.Fatal(err)
	}
	edge, err := matcolor.Parse(*flagEdge)
	if err != nil {
		log.Fatal(err)
	}

	steels := builtin
	if *flagData != "" {
		f, err := os.Open(*flagData)
		if err != nil {
			log.Fatal(err)
		}
		steels, err = readSteels(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %s", *flagData, err)
		}
	}
	if len(steels) == 0 {
		log.Fatal("no steels to plot")
	}

	sc := layout(newDiagram(steels), fig.Width, fig.Height, fill, edge)
	if err := fig.Write(".svg", sc.writeSVG); err != nil {
		log.Fatal(err)
	}
	err = fig.Write(".png", func(w io.Writer) error {
		return png.Encode(w, sc.image())
	})
	if err != nil {
		log.Fatal(err)
	}
	fig.OpenAll()
}
