package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/TuftsBCB/tools/util"

	"github.com/sesterhe/RosettaSilentToolbox/silent"
)

var cmdView = &command{
	name:            "view",
	positionalUsage: "silent-file",
	shortHelp:       "view information about a silent file",
	help: `
View information (decoy count, score columns, sequence length) about a
silent file.

This command may also be used to check whether a silent file is valid.
In particular, if this command fails, then the file given is not in a
format understood by the silent package.
`,
	flags: flag.NewFlagSet("view", flag.ExitOnError),
	run:   view,
}

func view(c *command) {
	c.assertNArg(1)

	f, err := silent.Read(c.flags.Arg(0), silent.Selection{})
	util.Assert(err)

	fmt.Printf("Decoys: %d\n", len(f.Decoys))
	fmt.Printf("Score columns: %s\n", strings.Join(f.ScoreColumns, " "))
	fmt.Printf("Compression: %s\n", silent.CompressionOf(c.flags.Arg(0)))
	if f.Sequence.Len() > 0 {
		fmt.Printf("Sequence length: %d\n", f.Sequence.Len())
	}
	for _, d := range f.Decoys {
		if d.Sequence.Len() > 0 {
			fmt.Printf("First decoy with sequence: %s (%d residues)\n",
				d.Name, d.Sequence.Len())
			break
		}
	}
}
