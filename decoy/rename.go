// Package decoy renames the decoys of a silent file under a new naming
// schema. New names are derived from a prefix and each decoy's 1-based
// position in the file; the original names play no part beyond being
// the text that gets replaced.
package decoy

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sesterhe/RosettaSilentToolbox/silent"
)

// NewName builds the replacement identifier for the decoy at the given
// 1-based position. The position is zero-padded to five digits and
// simply grows wider past 99999; it is never truncated.
func NewName(position int, prefix string) string {
	return fmt.Sprintf("%s_%05d", prefix, position)
}

// A Renaming is one old-name/new-name pair of a plan.
type Renaming struct {
	Old string
	New string
}

// A Plan is the ordered renaming of every decoy in a file, one entry
// per decoy in file order. It is built once per invocation, applied
// once, and discarded.
type Plan []Renaming

// BuildPlan pairs each name with its generated replacement. Position
// is the 1-based index in names; the given order is kept as-is.
func BuildPlan(names []string, prefix string) Plan {
	plan := make(Plan, len(names))
	for i, old := range names {
		plan[i] = Renaming{Old: old, New: NewName(i+1, prefix)}
	}
	return plan
}

// Apply rewrites every literal occurrence of each old name with its
// replacement, one renaming at a time in plan order.
//
// Substitution is sequential, not simultaneous: if an old name is a
// substring of another old name (say "d1" inside "d10"), an earlier
// renaming can corrupt a later one. This mirrors the reference
// behavior and is a known limitation, not something Apply guards
// against.
func (p Plan) Apply(text string) string {
	for _, r := range p {
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}

// Options is the full configuration of one renaming run. It is built
// once at the boundary and passed in; the renamer reads no ambient
// state.
type Options struct {
	// In is the source silent file. Read-only; never mutated.
	In string

	// Out is the destination path. Its own extension decides whether
	// the output is gzipped, independent of the source's.
	Out string

	// Prefix is the stem of the new naming schema.
	Prefix string

	// Overwrite permits replacing an existing destination.
	Overwrite bool
}

func (o Options) validate() error {
	if o.In == "" {
		return errf(InvalidArguments, "an input silent file must be provided")
	}
	if o.Out == "" {
		return errf(InvalidArguments, "an output file must be provided")
	}
	if o.Prefix == "" {
		return errf(InvalidArguments,
			"a prefix for the naming schema must be provided")
	}
	return nil
}

// Rename renames every decoy of o.In and writes the resulting file to
// o.Out. The output is byte-identical to the input except for the
// renamed identifiers; the whole transformed text is held in memory
// before the destination is touched, so a failed run leaves no partial
// output behind.
func Rename(o Options) error {
	if err := o.validate(); err != nil {
		return err
	}
	if _, err := os.Stat(o.Out); err == nil && !o.Overwrite {
		return errf(AlreadyExists,
			"%s exists and will not be overwritten", o.Out)
	}

	_, _, text, err := plan(o.In, o.Prefix)
	if err != nil {
		return err
	}
	if err := silent.WriteAll(o.Out, text); err != nil {
		return wrapf(IOFailure, err, "writing %s", o.Out)
	}
	return nil
}

// Preview computes the plan and transformed text of a run without
// touching the destination. The destination path and overwrite flag of
// o are ignored.
func Preview(o Options) (Plan, string, string, error) {
	if o.In == "" {
		return nil, "", "", errf(InvalidArguments,
			"an input silent file must be provided")
	}
	if o.Prefix == "" {
		return nil, "", "", errf(InvalidArguments,
			"a prefix for the naming schema must be provided")
	}
	return plan(o.In, o.Prefix)
}

func plan(in, prefix string) (Plan, string, string, error) {
	names, err := silent.Names(in)
	if err != nil {
		if errors.Is(err, silent.ErrFormat) {
			return nil, "", "", wrapf(ParseFailure, err, "parsing %s", in)
		}
		return nil, "", "", wrapf(IOFailure, err, "reading %s", in)
	}
	before, err := silent.ReadAll(in)
	if err != nil {
		return nil, "", "", wrapf(IOFailure, err, "reading %s", in)
	}
	p := BuildPlan(names, prefix)
	return p, before, p.Apply(before), nil
}
