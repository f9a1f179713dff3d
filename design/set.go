// Package design computes sequence statistics over a population of
// decoys: per-position residue frequencies, similarity against a
// reference sequence and per-position transition networks.
package design

import (
	"fmt"

	"github.com/TuftsBCB/seq"

	"github.com/sesterhe/RosettaSilentToolbox/silent"
)

// A Set is an ordered population of designed sequences, usually all
// the decoys of one or more silent files.
type Set struct {
	Names     []string
	Sequences []seq.Sequence

	// Reference is the sequence the designs are measured against.
	// Zero length when the source file carried none.
	Reference seq.Sequence
}

// FromSilent builds a Set from a parsed silent file. Decoys without an
// annotated sequence are skipped; scores-only files yield an empty set.
func FromSilent(f *silent.File) *Set {
	s := &Set{Reference: f.Sequence}
	for _, d := range f.Decoys {
		if d.Sequence.Len() == 0 {
			continue
		}
		s.Names = append(s.Names, d.Name)
		s.Sequences = append(s.Sequences, d.Sequence)
	}
	return s
}

// Merge appends the population of other, keeping order. The reference
// of the receiver wins when both have one.
func (s *Set) Merge(other *Set) {
	s.Names = append(s.Names, other.Names...)
	s.Sequences = append(s.Sequences, other.Sequences...)
	if s.Reference.Len() == 0 {
		s.Reference = other.Reference
	}
}

// Len returns the number of sequences in the population.
func (s *Set) Len() int { return len(s.Sequences) }

// Subset restricts every sequence (and the reference, if any) to the
// given 1-based positions, in the order given. Positions outside any
// sequence fail.
func (s *Set) Subset(positions []int) (*Set, error) {
	sub := &Set{Names: s.Names}
	for _, sq := range s.Sequences {
		picked, err := pick(sq, positions)
		if err != nil {
			return nil, err
		}
		sub.Sequences = append(sub.Sequences, picked)
	}
	if s.Reference.Len() > 0 {
		ref, err := pick(s.Reference, positions)
		if err != nil {
			return nil, err
		}
		sub.Reference = ref
	}
	return sub, nil
}

func pick(sq seq.Sequence, positions []int) (seq.Sequence, error) {
	rs := make([]seq.Residue, len(positions))
	for i, p := range positions {
		if p < 1 || p > sq.Len() {
			return seq.Sequence{}, fmt.Errorf(
				"position %d out of range for %s (length %d)",
				p, sq.Name, sq.Len())
		}
		rs[i] = sq.Residues[p-1]
	}
	return seq.Sequence{Name: sq.Name, Residues: rs}, nil
}

// length returns the common sequence length of the population, or an
// error when lengths differ. Frequency and similarity statistics are
// positional and need aligned, equal-length sequences.
func (s *Set) length() (int, error) {
	if s.Len() == 0 {
		return 0, fmt.Errorf("empty design population")
	}
	n := s.Sequences[0].Len()
	for _, sq := range s.Sequences[1:] {
		if sq.Len() != n {
			return 0, fmt.Errorf(
				"sequence %s has length %d, expected %d",
				sq.Name, sq.Len(), n)
		}
	}
	return n, nil
}
