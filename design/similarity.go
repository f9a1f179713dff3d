package design

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/seq"
)

// blosum62 in Alphabet (ARNDCQEGHILKMFPSTWYV) order.
var blosum62 = [20][20]int8{
	{4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0},
	{-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3},
	{-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3},
	{-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3},
	{0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1},
	{-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2},
	{-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2},
	{0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3},
	{-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3},
	{-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3},
	{-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1},
	{-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2},
	{-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1},
	{-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1},
	{-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2},
	{1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2},
	{0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0},
	{-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3},
	{-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1},
	{0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4},
}

// Blosum62 returns the BLOSUM62 substitution score of two residue
// types. Residues outside the 20 canonical amino acids score 0.
func Blosum62(a, b byte) int {
	i := strings.IndexByte(Alphabet, a)
	j := strings.IndexByte(Alphabet, b)
	if i < 0 || j < 0 {
		return 0
	}
	return int(blosum62[i][j])
}

// A PositionScore measures how one position of the population relates
// to the reference: the fraction of decoys with the identical residue
// and the fraction with a positive BLOSUM62 score against it.
type PositionScore struct {
	Identity float64
	Positive float64
}

// Similarity scores every position of the population against ref. All
// sequences and the reference must share one length.
func Similarity(s *Set, ref seq.Sequence) ([]PositionScore, error) {
	n, err := s.length()
	if err != nil {
		return nil, err
	}
	if ref.Len() != n {
		return nil, fmt.Errorf(
			"reference length %d does not match population length %d",
			ref.Len(), n)
	}

	scores := make([]PositionScore, n)
	for pos := 0; pos < n; pos++ {
		want := byte(ref.Residues[pos])
		for _, sq := range s.Sequences {
			got := byte(sq.Residues[pos])
			if got == want {
				scores[pos].Identity++
			}
			if Blosum62(got, want) > 0 {
				scores[pos].Positive++
			}
		}
		scores[pos].Identity /= float64(s.Len())
		scores[pos].Positive /= float64(s.Len())
	}
	return scores, nil
}
