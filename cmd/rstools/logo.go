package main

import (
	"flag"

	"github.com/TuftsBCB/tools/util"
	"gonum.org/v1/plot/vg"

	"github.com/sesterhe/RosettaSilentToolbox/design"
	"github.com/sesterhe/RosettaSilentToolbox/viz"
)

var (
	flagLogoOut       = ""
	flagLogoLineBreak = 0
	flagLogoPositions = ""
)

var cmdLogo = &command{
	name:            "logo",
	positionalUsage: "silent-file [ silent-file ... ]",
	shortHelp:       "render a sequence logo of a population",
	help: `
The logo command renders the classic LOGO plot of the decoy sequences
of the given silent files: one stacked column of letters per position,
each letter sized by its frequency, colored by residue class.

With -line-break n, the logo wraps into rows of n positions.
`,
	flags: flag.NewFlagSet("logo", flag.ExitOnError),
	run:   logo,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagLogoOut, "o", flagLogoOut,
			"Output image file (format by extension). Required.")
		c.flags.IntVar(&flagLogoLineBreak, "line-break", flagLogoLineBreak,
			"Force a line change after this many positions. Zero keeps\n"+
				"the logo on a single row.")
		c.flags.StringVar(&flagLogoPositions, "positions", flagLogoPositions,
			"Restrict to these 1-based positions, e.g. '3,7,10-14'.")
		c.setOverwriteFlag()
	},
}

func logo(c *command) {
	c.assertLeastNArg(1)
	if flagLogoOut == "" {
		c.showUsage()
	}
	util.AssertOverwritable(flagLogoOut, flagOverwrite)

	set := readSet(c.flags.Args(), flagLogoPositions)
	freqs, err := design.Count(set)
	util.Assert(err)

	plots := viz.Logo(freqs, viz.LogoOptions{
		LineBreak: flagLogoLineBreak,
		Reference: set.Reference,
	})

	cols := freqs.Positions()
	if flagLogoLineBreak > 0 && flagLogoLineBreak < cols {
		cols = flagLogoLineBreak
	}
	width := vg.Points(float64(cols) * 24)
	height := vg.Points(120)
	util.Assert(viz.SaveAligned(plots, width, height, flagLogoOut))
	verbosef("wrote %s", flagLogoOut)
}
