// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command energyplot plots world primary energy consumption.
//
// The input CSV has a "Year" column naming each energy source (Oil,
// Gas, Coal, Nuclear, Hydro, Solar, Wind, Other) and one column per
// year giving consumption in Mtoe/yr. energyplot converts these to TW
// and plots them in one of several ways, selected by subcommand.
//
// Usage:
//
//	energyplot [-data data.csv] [-table] <subcommand> [flags]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/figkit/figures/internal/figure"
)

var (
	dataPath  string
	showTable bool
)

type subcommand struct {
	name, desc string
	out        string // default output name
	w, h       int

	// setup registers the subcommand's flags on fs and returns the
	// function that plots once they are parsed.
	setup func(fs *flag.FlagSet) plotter
}

type plotter func(t *table.Table) (*gg.Plot, error)

var subcommands = []subcommand{
	{"proportion", "stacked share of each source", "proportion", 640, 480, cmdProportion},
	{"abs-difference", "annual change of renewable, fossil, and total consumption", "abs_difference", 800, 300, cmdAbsDifference},
	{"consumption", "renewable, fossil, and total consumption", "consumption", 800, 400, cmdConsumption},
	{"change", "annual percent change of total consumption", "change", 700, 300, cmdChange},
	{"projected", "stacked nuclear and hydro, renewable, and fossil consumption", "consumption_projected", 800, 400, cmdProjected},
	{"fossil-nonfossil", "non-fossil and fossil consumption with a forecast", "fossil_nonfossil", 600, 300, cmdFossilNonfossil},
}

func main() {
	log.SetPrefix("energyplot: ")
	log.SetFlags(0)

	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [flags] <subcommand> [subcommand flags]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(w, "\nSubcommands:\n")
		for _, sc := range subcommands {
			fmt.Fprintf(w, "  %-17s%s\n", sc.name, sc.desc)
		}
	}
	flag.StringVar(&dataPath, "data", "data.csv", "read energy consumption from `file`")
	flag.BoolVar(&showTable, "table", false, "print the converted table instead of plotting")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]
	for _, sc := range subcommands {
		if sc.name == cmd {
			sc.main(args)
			return
		}
	}
	flag.Usage()
	os.Exit(2)
}

func (sc subcommand) main(args []string) {
	log.SetPrefix("energyplot " + sc.name + ": ")

	fig, run, err := sc.parse(args, flag.ExitOnError)
	if err != nil {
		// Only positional arguments get here.
		os.Exit(2)
	}

	f, err := os.Open(dataPath)
	if err != nil {
		log.Fatal(err)
	}
	t, err := load(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %s", dataPath, err)
	}
	if showTable {
		table.Fprint(os.Stdout, t)
		return
	}

	p, err := run(t)
	if err != nil {
		log.Fatal(err)
	}
	err = fig.Write(".svg", func(w io.Writer) error {
		return p.WriteSVG(w, fig.Width, fig.Height)
	})
	if err != nil {
		log.Fatal(err)
	}
	fig.OpenAll()
}

// parse parses the subcommand's flags from args and returns the output
// configuration and the plot function.
func (sc subcommand) parse(args []string, errorHandling flag.ErrorHandling) (*figure.Flags, plotter, error) {
	fig := new(figure.Flags)
	flags := flag.NewFlagSet(sc.name, errorHandling)
	fig.Register(flags, sc.out, sc.w, sc.h)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s %s [flags]\n", os.Args[0], sc.name)
		flags.PrintDefaults()
	}
	run := sc.setup(flags)
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}
	if flags.NArg() != 0 {
		flags.Usage()
		return nil, nil, fmt.Errorf("unexpected arguments %q", flags.Args())
	}
	return fig, run, nil
}

func cmdProportion(*flag.FlagSet) plotter {
	return plotProportion
}

func cmdAbsDifference(flags *flag.FlagSet) plotter {
	from := flags.Float64("from", 2000, "plot from `year` on")
	return func(t *table.Table) (*gg.Plot, error) {
		return plotAbsDifference(t, *from)
	}
}

func cmdConsumption(flags *flag.FlagSet) plotter {
	from := flags.Float64("from", 2000, "plot from `year` on")
	return func(t *table.Table) (*gg.Plot, error) {
		return plotConsumption(t, *from)
	}
}

func cmdChange(flags *flag.FlagSet) plotter {
	from := flags.Float64("from", 2000, "plot from `year` on")
	return func(t *table.Table) (*gg.Plot, error) {
		return plotChange(t, *from)
	}
}

func cmdProjected(*flag.FlagSet) plotter {
	return plotProjected
}

func cmdFossilNonfossil(flags *flag.FlagSet) plotter {
	predPath := flags.String("predict", "prediction.csv", "read the consumption forecast from `file`")
	return func(t *table.Table) (*gg.Plot, error) {
		f, err := os.Open(*predPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		pred, err := loadPrediction(f, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *predPath, err)
		}
		return plotFossilNonfossil(t, pred)
	}
}
