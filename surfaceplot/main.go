// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command surfaceplot fits a Gaussian process to random points in the
// unit square and plots the predicted surface as a heat map with
// contour lines and the training points.
//
// It writes surface.png and surface.svg.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/gpr"
	"github.com/figkit/figures/internal/figure"
	"github.com/figkit/figures/internal/surface"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type config struct {
	seed   int64
	points int
	res    int
	levels int
	cmap   colormap.Map
}

func main() {
	log.SetPrefix("surfaceplot: ")
	log.SetFlags(0)

	var (
		fig figure.Flags
		cfg config
	)
	fig.Register(flag.CommandLine, "surface", 750, 600)
	flag.Int64Var(&cfg.seed, "seed", 1, "random `seed` for the training points")
	flag.IntVar(&cfg.points, "n", 10, "number of training `points`")
	flag.IntVar(&cfg.res, "res", 100, "sample the surface on an `n`×n grid")
	flag.IntVar(&cfg.levels, "levels", 10, "maximum number of contour `levels`")
	flagCmap := flag.String("cmap", "viridis", "surface color `map`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	var ok bool
	if cfg.cmap, ok = colormap.ByName[*flagCmap]; !ok {
		log.Fatalf("unknown color map %q", *flagCmap)
	}
	if cfg.points < 1 || cfg.res < 2 {
		log.Fatal("need at least one point and a 2×2 grid")
	}

	x, y := trainingData(cfg.seed, cfg.points)
	p, err := plotSurface(x, y, cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := surface.Size(fig.Width), surface.Size(fig.Height)
	for _, ext := range []string{".png", ".svg"} {
		err := fig.Write(ext, func(out io.Writer) error {
			return surface.Write(out, ext, w, h, p.Draw)
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	fig.OpenAll()
}

// trainingData returns n random points in the unit square and a
// random value for each.
func trainingData(seed int64, n int) (x [][]float64, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([][]float64, n)
	for i := range x {
		x[i] = []float64{rng.Float64(), rng.Float64()}
	}
	y = make([]float64, n)
	for i := range y {
		y[i] = rng.Float64()
	}
	return x, y
}

// fitSurface fits a Gaussian process to the training data and samples
// it on a res×res grid over the unit square.
func fitSurface(x [][]float64, y []float64, res int) (*surface.Grid, error) {
	var r gpr.Regressor
	if err := r.Fit(x, y); err != nil {
		return nil, err
	}
	return surface.Sample(&r, 0, 1, res)
}

func plotSurface(x [][]float64, y []float64, cfg config) (*plot.Plot, error) {
	g, err := fitSurface(x, y, cfg.res)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = "x₀"
	p.Y.Label.Text = "x₁"

	heat := plotter.NewHeatMap(g, cfg.cmap.Palette(256))
	p.Add(heat)

	levels := surface.Levels(g.Min(), g.Max(), cfg.levels)
	if len(levels) > 0 {
		lines := plotter.NewContour(g, levels, nil)
		lines.LineStyles = []draw.LineStyle{{Color: color.Gray{0x33}, Width: vg.Points(1)}}
		p.Add(lines)
	}

	pts := make(plotter.XYs, len(x))
	for i, xi := range x {
		pts[i].X, pts[i].Y = xi[0], xi[1]
	}
	outline, front, err := surface.Points(pts, y, cfg.cmap.ColorMap(g.Min(), g.Max()))
	if err != nil {
		return nil, err
	}
	p.Add(outline, front)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p, nil
}
