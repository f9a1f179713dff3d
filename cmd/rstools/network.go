package main

import (
	"flag"
	"fmt"

	"github.com/TuftsBCB/tools/util"
	"gonum.org/v1/plot/vg"

	"github.com/sesterhe/RosettaSilentToolbox/design"
	"github.com/sesterhe/RosettaSilentToolbox/viz"
)

var (
	flagNetworkDot       = ""
	flagNetworkPlot      = ""
	flagNetworkPositions = ""
)

var cmdNetwork = &command{
	name:            "network",
	positionalUsage: "silent-file [ silent-file ... ]",
	shortHelp:       "per-position sequence transition network",
	help: `
The network command builds the frequency network of a decoy population:
a directed graph with one node per observed (position, residue) state
plus an artificial source and sink, and an edge for every transition
between consecutive positions weighted by how many decoys make it.

The graph is written in Graphviz DOT form to stdout, to a file with
-dot, or drawn with -plot.
`,
	flags: flag.NewFlagSet("network", flag.ExitOnError),
	run:   network,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagNetworkDot, "dot", flagNetworkDot,
			"Write the DOT rendering to this file instead of stdout.")
		c.flags.StringVar(&flagNetworkPlot, "plot", flagNetworkPlot,
			"Draw the network to this image file (format by extension).")
		c.flags.StringVar(&flagNetworkPositions, "positions", flagNetworkPositions,
			"Restrict to these 1-based positions, e.g. '3,7,10-14'.")
		c.setOverwriteFlag()
	},
}

func network(c *command) {
	c.assertLeastNArg(1)

	set := readSet(c.flags.Args(), flagNetworkPositions)
	g, err := design.Network(set)
	util.Assert(err)

	if flagNetworkPlot != "" {
		util.AssertOverwritable(flagNetworkPlot, flagOverwrite)
		p, err := viz.Network(g)
		util.Assert(err)
		width := vg.Points(float64(g.Sink.Order+2) * 18)
		util.Assert(viz.Save(p, width, vg.Points(400), flagNetworkPlot))
		verbosef("wrote %s", flagNetworkPlot)
		return
	}

	out, err := g.DOT()
	util.Assert(err)
	if flagNetworkDot == "" {
		fmt.Printf("%s\n", out)
		return
	}
	util.AssertOverwritable(flagNetworkDot, flagOverwrite)
	f := util.CreateFile(flagNetworkDot)
	defer f.Close()
	_, err = f.Write(out)
	util.Assert(err)
	verbosef("wrote %s", flagNetworkDot)
}
