// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command morphplot plots film quality against dopant ratio and
// annealing time.
//
// It reads a CSV file with tbp_frac, ratio, anneal, and Quality
// columns, selects the samples in one additive fraction band, fits a
// Gaussian process to quality, and plots the fitted surface with the
// samples, a color bar, and photographs of example films.
//
// Bands are numbered from 0:
//
//	0  0 ≤ tbp_frac < 0.05
//	1  0.05 < tbp_frac < 0.12
//	2  0.12 < tbp_frac < 0.183
//	3  0.183 < tbp_frac < 0.25
//	4  0.25 < tbp_frac < 0.30
//
// and -band=-1 uses every sample.
//
// The photographs are read from 0.jpg (best) through 4.jpg (worst) in
// the -photos directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/figkit/figures/internal/dataset"
	"github.com/figkit/figures/internal/figure"
	"github.com/figkit/figures/internal/surface"
	"gonum.org/v1/plot/vg/draw"
)

func main() {
	log.SetPrefix("morphplot: ")
	log.SetFlags(0)

	var fig figure.Flags
	fig.Register(flag.CommandLine, "morphology_data", 1350, 900)
	flagData := flag.String("data", "morphology_data.csv", "read samples from CSV `file`")
	flagBand := flag.Int("band", 0, "plot tbp_frac `band` (-1 for all samples)")
	flagRes := flag.Int("res", 100, "sample the fitted surface on an `n`×n grid")
	flagLevels := flag.Int("levels", 10, "maximum number of contour `levels`")
	flagImages := flag.Bool("images", true, "draw the example photographs")
	flagPhotos := flag.String("photos", "raw_images", "read example photographs from `dir`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagRes < 2 || *flagLevels < 1 {
		log.Fatal("-res must be at least 2 and -levels at least 1")
	}

	t, err := dataset.ReadFile(*flagData)
	if err != nil {
		log.Fatal(err)
	}
	s, err := selectBand(t, *flagBand)
	if err != nil {
		log.Fatalf("%s: %s", *flagData, err)
	}
	g, err := fit(s, *flagRes)
	if err != nil {
		log.Fatal(err)
	}
	qual, err := qualityPlot(s, g, *flagLevels)
	if err != nil {
		log.Fatal(err)
	}
	bar := barPlot()

	var photos []image.Image
	if *flagImages {
		if photos, err = loadPhotos(*flagPhotos, nphotos); err != nil {
			log.Fatal(err)
		}
	}

	w, h := surface.Size(fig.Width), surface.Size(fig.Height)
	render := func(c draw.Canvas) { drawFigure(c, qual, bar, photos) }
	for _, ext := range []string{".png", ".svg"} {
		err := fig.Write(ext, func(out io.Writer) error {
			return surface.Write(out, ext, w, h, render)
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	fig.OpenAll()
}
