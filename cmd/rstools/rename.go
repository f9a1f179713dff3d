package main

import (
	"flag"
	"fmt"

	"github.com/TuftsBCB/tools/util"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sesterhe/RosettaSilentToolbox/decoy"
)

var (
	flagRenameIn     = ""
	flagRenameOut    = ""
	flagRenamePrefix = ""
	flagRenameDryRun = false
)

var cmdRename = &command{
	name:            "rename",
	positionalUsage: "",
	shortHelp:       "rename the decoys of a silent file",
	help: `
The rename command renames every decoy of a silent file with a new naming
schema: the given prefix followed by the decoy's position in the file,
zero-padded to five digits (prefix "design" names the seventh decoy
"design_00007"). Every occurrence of each old name in the file is
rewritten; everything else is kept byte for byte.

The output is compressed when the output path ends in ".gz", regardless
of whether the input was. The input file is never modified.
`,
	flags: flag.NewFlagSet("rename", flag.ExitOnError),
	run:   renameDecoys,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagRenameIn, "in:file", flagRenameIn,
			"Input silent file.")
		c.flags.StringVar(&flagRenamePrefix, "prefix", flagRenamePrefix,
			"Prefix for the new naming schema.")
		c.flags.StringVar(&flagRenameOut, "out:file", flagRenameOut,
			"Output silent file.")
		c.setOverwriteFlag()
		c.flags.BoolVar(&flagRenameDryRun, "dry-run", flagRenameDryRun,
			"When set, print the renaming as a patch instead of writing\n"+
				"the output file.")
	},
}

func renameDecoys(c *command) {
	c.assertNArg(0)

	opts := decoy.Options{
		In:        flagRenameIn,
		Out:       flagRenameOut,
		Prefix:    flagRenamePrefix,
		Overwrite: flagOverwrite,
	}
	if flagRenameDryRun {
		plan, before, after, err := decoy.Preview(opts)
		util.Assert(err)
		for _, r := range plan {
			verbosef("%s -> %s", r.Old, r.New)
		}
		dmp := diffmatchpatch.New()
		fmt.Print(dmp.PatchToText(dmp.PatchMake(before, after)))
		return
	}
	util.Assert(decoy.Rename(opts))
	verbosef("renamed %s into %s", opts.In, opts.Out)
}
