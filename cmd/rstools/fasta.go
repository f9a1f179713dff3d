package main

import (
	"flag"
	"os"

	"github.com/TuftsBCB/tools/util"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/sesterhe/RosettaSilentToolbox/silent"
)

var flagFastaOut = ""

var cmdFasta = &command{
	name:            "fasta",
	positionalUsage: "silent-file",
	shortHelp:       "export decoy sequences as FASTA",
	help: `
The fasta command writes the sequence of every decoy of a silent file
as a FASTA record named after the decoy. Decoys without an annotated
sequence are skipped.
`,
	flags: flag.NewFlagSet("fasta", flag.ExitOnError),
	run:   fastaExport,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagFastaOut, "o", flagFastaOut,
			"Output FASTA file. Writes to stdout when empty.")
		c.setOverwriteFlag()
	},
}

func fastaExport(c *command) {
	c.assertNArg(1)

	f, err := silent.Read(c.flags.Arg(0), silent.Selection{
		Scores: []string{silent.DescriptionColumn},
	})
	util.Assert(err)

	out := os.Stdout
	if flagFastaOut != "" {
		util.AssertOverwritable(flagFastaOut, flagOverwrite)
		out = util.CreateFile(flagFastaOut)
		defer out.Close()
	}

	w := fasta.NewWriter(out, 60)
	n := 0
	for _, d := range f.Decoys {
		if d.Sequence.Len() == 0 {
			verbosef("decoy %s has no annotated sequence, skipping", d.Name)
			continue
		}
		letters := make([]alphabet.Letter, d.Sequence.Len())
		for i, r := range d.Sequence.Residues {
			letters[i] = alphabet.Letter(r)
		}
		s := linear.NewSeq(d.Name, letters, alphabet.Protein)
		_, err := w.Write(s)
		util.Assert(err)
		n++
	}
	verbosef("wrote %d sequences", n)
}
