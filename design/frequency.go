package design

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// HeatmapAlphabet orders residue types the way frequency heatmaps and
// logos group them: hydrophobic, polar, charged, special.
const HeatmapAlphabet = "AVILMFYWSTNQRHKDECGP"

// Alphabet is the classic one-letter amino acid order used for
// transition-network rows.
const Alphabet = "ARNDCQEGHILKMFPSTWYV"

// Frequencies is a per-position residue frequency matrix over a fixed
// alphabet. Rows are residue types in Alphabet order (of the matrix,
// not the package constant), columns are sequence positions, values
// are relative frequencies in [0,1].
type Frequencies struct {
	Alphabet string
	M        *mat.Dense
}

// Count tallies the relative per-position residue frequencies of the
// population over HeatmapAlphabet. Residues outside the alphabet
// (gaps, unknowns) count toward the column total but get no row.
func Count(s *Set) (*Frequencies, error) {
	n, err := s.length()
	if err != nil {
		return nil, err
	}

	m := mat.NewDense(len(HeatmapAlphabet), n, nil)
	for _, sq := range s.Sequences {
		for pos := 0; pos < n; pos++ {
			row := strings.IndexByte(HeatmapAlphabet, byte(sq.Residues[pos]))
			if row < 0 {
				continue
			}
			m.Set(row, pos, m.At(row, pos)+1)
		}
	}
	m.Scale(1/float64(s.Len()), m)
	return &Frequencies{Alphabet: HeatmapAlphabet, M: m}, nil
}

// Positions returns the number of sequence positions covered.
func (f *Frequencies) Positions() int {
	_, c := f.M.Dims()
	return c
}

// At returns the relative frequency of residue aa at the 0-based
// position. Residues outside the alphabet are always 0.
func (f *Frequencies) At(aa byte, pos int) float64 {
	row := strings.IndexByte(f.Alphabet, aa)
	if row < 0 {
		return 0
	}
	return f.M.At(row, pos)
}

// Column returns the (residue, frequency) pairs of one 0-based
// position, sorted by ascending frequency with zero entries dropped.
// This is the stacking order of a logo column.
func (f *Frequencies) Column(pos int) []ResidueFreq {
	var col []ResidueFreq
	for i := 0; i < len(f.Alphabet); i++ {
		if v := f.M.At(i, pos); v > 0 {
			col = append(col, ResidueFreq{Residue: f.Alphabet[i], Freq: v})
		}
	}
	for i := 1; i < len(col); i++ {
		for j := i; j > 0 && col[j].Freq < col[j-1].Freq; j-- {
			col[j], col[j-1] = col[j-1], col[j]
		}
	}
	return col
}

// A ResidueFreq is one entry of a frequency column.
type ResidueFreq struct {
	Residue byte
	Freq    float64
}

// CleanUnused drops residue rows whose frequency never exceeds min at
// any position. Residues of keep (typically the reference sequence)
// are retained regardless. The receiver is unchanged.
func (f *Frequencies) CleanUnused(min float64, keep string) *Frequencies {
	var kept []int
	var alpha []byte
	for i := 0; i < len(f.Alphabet); i++ {
		used := strings.IndexByte(keep, f.Alphabet[i]) >= 0
		for pos := 0; !used && pos < f.Positions(); pos++ {
			used = f.M.At(i, pos) > min
		}
		if used {
			kept = append(kept, i)
			alpha = append(alpha, f.Alphabet[i])
		}
	}

	if len(kept) == 0 {
		// A threshold that drops every row is almost certainly a
		// mistake; keep the matrix intact rather than go empty.
		return f
	}

	m := mat.NewDense(len(kept), f.Positions(), nil)
	for to, from := range kept {
		for pos := 0; pos < f.Positions(); pos++ {
			m.Set(to, pos, f.M.At(from, pos))
		}
	}
	return &Frequencies{Alphabet: string(alpha), M: m}
}

// TSV renders the matrix as a tab-separated table, residues as rows
// and 1-based positions as columns.
func (f *Frequencies) TSV() string {
	var b strings.Builder
	b.WriteString("residue")
	for pos := 1; pos <= f.Positions(); pos++ {
		fmt.Fprintf(&b, "\t%d", pos)
	}
	b.WriteByte('\n')
	for i := 0; i < len(f.Alphabet); i++ {
		b.WriteByte(f.Alphabet[i])
		for pos := 0; pos < f.Positions(); pos++ {
			fmt.Fprintf(&b, "\t%.4f", f.M.At(i, pos))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
