// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paretoplot plots the Pareto front of thin-film optimization
// campaigns in the order they were sampled.
//
// paretoplot reads every CSV file in the data directory. Each file is
// one campaign and must have "sample", "x3: temperature", and
// "XRF-normalized conductance - mean" columns. The conductance is
// converted to conductivity and the Pareto front of high conductivity
// and low temperature is computed for each campaign.
//
// The figure has one column per campaign. The top row shows the
// samples, colored by sampling order, over the campaign's Pareto
// front. The bottom row shows the hypervolume of the front after each
// sample, normalized across all campaigns, with the other campaigns'
// curves in the background for comparison.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/figkit/figures/colormap"
	"github.com/figkit/figures/internal/dataset"
	"github.com/figkit/figures/internal/figure"
)

func main() {
	log.SetPrefix("paretoplot: ")
	log.SetFlags(0)

	var fig figure.Flags
	fig.Register(flag.CommandLine, "ordered_pareto_front", 0, 0)
	var (
		flagData  = flag.String("data", "data", "read campaign CSV files from `dir`")
		flagTable = flag.Bool("table", false, "print the derived table instead of plotting")
		flagCmap  = flag.String("cmap", "viridis_r", "color samples by sampling order using color `map`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	cmap, ok := colormap.ByName[*flagCmap]
	if !ok {
		log.Fatalf("unknown color map %q", *flagCmap)
	}

	t, err := dataset.ReadDir(*flagData)
	if err != nil {
		log.Fatal(err)
	}
	cs, err := campaigns(t)
	if err != nil {
		log.Fatal(err)
	}
	hypervolumes(cs)

	if *flagTable {
		table.Fprint(os.Stdout, summaryTable(cs))
		return
	}

	p, nrows, ncols := plot(figureTable(cs, cmap))
	w, h := fig.Width, fig.Height
	if w == 0 {
		w = 250 * ncols
	}
	if h == 0 {
		h = 300 * nrows
	}
	err = fig.Write(".svg", func(out io.Writer) error {
		return p.WriteSVG(out, w, h)
	})
	if err != nil {
		log.Fatal(err)
	}
	fig.OpenAll()
}
