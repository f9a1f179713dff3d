package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TuftsBCB/tools/util"

	"github.com/sesterhe/RosettaSilentToolbox/design"
	"github.com/sesterhe/RosettaSilentToolbox/silent"
)

// parsePositions parses a 1-based residue selection like "3,7,10-14"
// into the explicit list of positions, in the order written.
func parsePositions(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}
	var positions []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		lo, hi, found := strings.Cut(part, "-")
		if !found {
			hi = lo
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("bad position %q", part)
		}
		end, err := strconv.Atoi(hi)
		if err != nil || end < start || start < 1 {
			return nil, fmt.Errorf("bad position range %q", part)
		}
		for p := start; p <= end; p++ {
			positions = append(positions, p)
		}
	}
	return positions, nil
}

// readSet parses the given silent files into one merged design
// population, optionally restricted to a residue selection.
func readSet(paths []string, positionSpec string) *design.Set {
	set := &design.Set{}
	for _, path := range paths {
		f, err := silent.Read(path, silent.Selection{
			Scores: []string{silent.DescriptionColumn},
		})
		util.Assert(err)
		set.Merge(design.FromSilent(f))
	}

	positions, err := parsePositions(positionSpec)
	util.Assert(err)
	if positions != nil {
		sub, err := set.Subset(positions)
		util.Assert(err)
		set = sub
	}
	return set
}
