package main

import (
	"flag"
	"fmt"

	"github.com/TuftsBCB/seq"
	"github.com/TuftsBCB/tools/util"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gonum.org/v1/plot/vg"

	"github.com/sesterhe/RosettaSilentToolbox/design"
	"github.com/sesterhe/RosettaSilentToolbox/viz"
)

var (
	flagSimRef       = ""
	flagSimPlot      = ""
	flagSimPositions = ""
)

var cmdSimilarity = &command{
	name:            "similarity",
	positionalUsage: "silent-file [ silent-file ... ]",
	shortHelp:       "positional identity/similarity against a reference",
	help: `
The similarity command scores every sequence position of a decoy
population against a reference sequence: the fraction of decoys with
the identical residue and the fraction with a positive BLOSUM62 score.

The reference is the first record of the FASTA file given with -ref,
or the SEQUENCE header of the first silent file when -ref is omitted.
Results are printed as a tab-delimited table or rendered with -plot.
`,
	flags: flag.NewFlagSet("similarity", flag.ExitOnError),
	run:   similarity,
	addFlags: func(c *command) {
		c.flags.StringVar(&flagSimRef, "ref", flagSimRef,
			"FASTA file with the reference sequence (first record).")
		c.flags.StringVar(&flagSimPlot, "plot", flagSimPlot,
			"Render the identity/similarity profile to this image file\n"+
				"(format by extension) instead of printing the table.")
		c.flags.StringVar(&flagSimPositions, "positions", flagSimPositions,
			"Restrict to these 1-based positions, e.g. '3,7,10-14'.")
		c.setOverwriteFlag()
	},
}

func similarity(c *command) {
	c.assertLeastNArg(1)

	set := readSet(c.flags.Args(), flagSimPositions)

	ref := set.Reference
	if flagSimRef != "" {
		ref = readReference(flagSimRef)
		if flagSimPositions != "" {
			positions, err := parsePositions(flagSimPositions)
			util.Assert(err)
			refSet := &design.Set{Reference: ref}
			refSet, err = refSet.Subset(positions)
			util.Assert(err)
			ref = refSet.Reference
		}
	}
	if ref.Len() == 0 {
		util.Fatalf("No reference sequence: give -ref or a silent file " +
			"with a SEQUENCE header.")
	}

	scores, err := design.Similarity(set, ref)
	util.Assert(err)

	if flagSimPlot == "" {
		fmt.Println("position\tidentity\tpositive")
		for i, s := range scores {
			fmt.Printf("%d\t%.4f\t%.4f\n", i+1, s.Identity, s.Positive)
		}
		return
	}
	util.AssertOverwritable(flagSimPlot, flagOverwrite)
	p, err := viz.Profile(scores)
	util.Assert(err)
	util.Assert(viz.Save(p, vg.Points(600), vg.Points(200), flagSimPlot))
	verbosef("wrote %s", flagSimPlot)
}

// readReference reads the first record of a FASTA file as the
// reference protein sequence.
func readReference(path string) seq.Sequence {
	f := util.OpenFile(path)
	defer f.Close()

	sc := seqio.NewScanner(
		fasta.NewReader(f, linear.NewSeq("", nil, alphabet.Protein)))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			util.Fatalf("Could not read reference %s: %s", path, err)
		}
		util.Fatalf("Reference %s holds no sequences.", path)
	}
	s := sc.Seq().(*linear.Seq)

	residues := make([]seq.Residue, len(s.Seq))
	for i, l := range s.Seq {
		residues[i] = seq.Residue(l)
	}
	return seq.Sequence{Name: s.ID, Residues: residues}
}
