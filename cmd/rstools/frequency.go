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
	flagFreqPlot      = ""
	flagFreqClean     = -1.0
	flagFreqPositions = ""
)

var cmdFrequency = &command{
	name:            "frequency",
	positionalUsage: "silent-file [ silent-file ... ]",
	shortHelp:       "per-position residue frequencies of a population",
	help: `
The frequency command tallies how often each residue type appears at
each sequence position across all decoys of the given silent files.
The matrix is printed as a tab-delimited table, residues as rows and
1-based positions as columns, or rendered as a heatmap with -plot.

All decoy sequences must have the same length.
`,
	flags: flag.NewFlagSet("frequency", flag.ExitOnError),
	run:   frequency,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagFreqPlot, "plot", flagFreqPlot,
			"Render a heatmap to this image file (format by extension)\n"+
				"instead of printing the matrix.")
		c.flags.Float64Var(&flagFreqClean, "clean", flagFreqClean,
			"Drop residue types never observed above this frequency.\n"+
				"Residues of the reference sequence are kept. Negative\n"+
				"keeps everything.")
		c.flags.StringVar(&flagFreqPositions, "positions", flagFreqPositions,
			"Restrict to these 1-based positions, e.g. '3,7,10-14'.")
		c.setOverwriteFlag()
	},
}

func frequency(c *command) {
	c.assertLeastNArg(1)

	set := readSet(c.flags.Args(), flagFreqPositions)
	freqs, err := design.Count(set)
	util.Assert(err)

	if flagFreqClean >= 0 {
		keep := ""
		for _, r := range set.Reference.Residues {
			keep += string(rune(r))
		}
		freqs = freqs.CleanUnused(flagFreqClean, keep)
	}

	if flagFreqPlot == "" {
		fmt.Print(freqs.TSV())
		return
	}
	util.AssertOverwritable(flagFreqPlot, flagOverwrite)
	p, err := viz.Heatmap(freqs, set.Reference)
	util.Assert(err)
	width := vg.Points(float64(freqs.Positions()) * 12)
	height := vg.Points(float64(len(freqs.Alphabet)) * 12)
	util.Assert(viz.Save(p, width, height, flagFreqPlot))
	verbosef("wrote %s", flagFreqPlot)
}
