package design

import (
	"math"
	"strings"
	"testing"

	"github.com/TuftsBCB/seq"

	"github.com/sesterhe/RosettaSilentToolbox/silent"
)

func mkSeq(name, residues string) seq.Sequence {
	rs := make([]seq.Residue, len(residues))
	for i := 0; i < len(residues); i++ {
		rs[i] = seq.Residue(residues[i])
	}
	return seq.Sequence{Name: name, Residues: rs}
}

func mkSet(ref string, seqs ...string) *Set {
	s := &Set{}
	for i, sq := range seqs {
		s.Names = append(s.Names, string(rune('a'+i)))
		s.Sequences = append(s.Sequences, mkSeq(s.Names[i], sq))
	}
	if ref != "" {
		s.Reference = mkSeq("reference", ref)
	}
	return s
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCount(t *testing.T) {
	set := mkSet("", "MKV", "MKC", "MRV")
	f, err := Count(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Positions() != 3 {
		t.Fatalf("expected 3 positions, got %d", f.Positions())
	}
	tests := []struct {
		aa   byte
		pos  int
		want float64
	}{
		{'M', 0, 1.0},
		{'K', 1, 2.0 / 3},
		{'R', 1, 1.0 / 3},
		{'V', 2, 2.0 / 3},
		{'C', 2, 1.0 / 3},
		{'A', 0, 0},
	}
	for _, tt := range tests {
		if got := f.At(tt.aa, tt.pos); !almost(got, tt.want) {
			t.Fatalf("At(%c, %d) = %v, want %v", tt.aa, tt.pos, got, tt.want)
		}
	}
}

func TestCountLengthMismatch(t *testing.T) {
	set := mkSet("", "MKV", "MK")
	if _, err := Count(set); err == nil {
		t.Fatal("expected an error for unequal sequence lengths")
	}
}

func TestCountEmptySet(t *testing.T) {
	if _, err := Count(&Set{}); err == nil {
		t.Fatal("expected an error for an empty population")
	}
}

func TestColumnStacking(t *testing.T) {
	set := mkSet("", "MKV", "MKC", "MRV")
	f, err := Count(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	col := f.Column(2)
	if len(col) != 2 {
		t.Fatalf("expected 2 observed residues, got %d", len(col))
	}
	// Ascending frequency: C (1/3) before V (2/3).
	if col[0].Residue != 'C' || col[1].Residue != 'V' {
		t.Fatalf("unexpected stacking order: %+v", col)
	}
	if col[0].Freq > col[1].Freq {
		t.Fatal("column not sorted by ascending frequency")
	}
}

func TestCleanUnused(t *testing.T) {
	set := mkSet("", "MKV", "MKC", "MRV")
	f, err := Count(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clean := f.CleanUnused(0, "")
	want := "MVRKC"
	if len(clean.Alphabet) != 5 {
		// M, V, K, R, C survive; alphabet order is preserved.
		t.Fatalf("expected 5 residue rows, got %q", clean.Alphabet)
	}
	for i := 0; i < len(clean.Alphabet); i++ {
		aa := clean.Alphabet[i]
		found := false
		for j := 0; j < len(want); j++ {
			found = found || want[j] == aa
		}
		if !found {
			t.Fatalf("unexpected residue %c kept", aa)
		}
	}
	if !almost(clean.At('K', 1), 2.0/3) {
		t.Fatalf("cleaned matrix lost values: %v", clean.At('K', 1))
	}

	// Reference residues survive cleaning even when unobserved.
	keep := f.CleanUnused(0, "W")
	if clean2 := keep.At('W', 0); !almost(clean2, 0) {
		t.Fatalf("unexpected W frequency: %v", clean2)
	}
	hasW := false
	for i := 0; i < len(keep.Alphabet); i++ {
		hasW = hasW || keep.Alphabet[i] == 'W'
	}
	if !hasW {
		t.Fatal("reference residue W was dropped")
	}
}

func TestSubset(t *testing.T) {
	set := mkSet("MKV", "MKV", "MRC")
	sub, err := set.Subset([]int{3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(byte(sub.Sequences[1].Residues[0])); got != "C" {
		t.Fatalf("subset picked %q, want C", got)
	}
	if got := string(byte(sub.Reference.Residues[1])); got != "M" {
		t.Fatalf("subset reference picked %q, want M", got)
	}

	if _, err := set.Subset([]int{4}); err == nil {
		t.Fatal("expected an error for an out-of-range position")
	}
	if _, err := set.Subset([]int{0}); err == nil {
		t.Fatal("expected an error for position 0")
	}
}

func TestSimilarity(t *testing.T) {
	// Position 1: all M (identical). Position 2: K,K,R vs K — R/K is
	// positive under BLOSUM62. Position 3: V,C,V vs V — C/V is not.
	set := mkSet("", "MKV", "MKC", "MRV")
	scores, err := Similarity(set, mkSeq("ref", "MKV"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(scores))
	}
	if !almost(scores[0].Identity, 1) || !almost(scores[0].Positive, 1) {
		t.Fatalf("position 1: %+v", scores[0])
	}
	if !almost(scores[1].Identity, 2.0/3) || !almost(scores[1].Positive, 1) {
		t.Fatalf("position 2: %+v", scores[1])
	}
	if !almost(scores[2].Identity, 2.0/3) || !almost(scores[2].Positive, 2.0/3) {
		t.Fatalf("position 3: %+v", scores[2])
	}
}

func TestSimilarityLengthMismatch(t *testing.T) {
	set := mkSet("", "MKV")
	if _, err := Similarity(set, mkSeq("ref", "MK")); err == nil {
		t.Fatal("expected an error for a mismatched reference length")
	}
}

func TestBlosum62(t *testing.T) {
	tests := []struct {
		a, b byte
		want int
	}{
		{'W', 'W', 11},
		{'A', 'A', 4},
		{'R', 'K', 2},
		{'C', 'V', -1},
		{'E', 'D', 2},
		{'A', 'X', 0},
	}
	for _, tt := range tests {
		if got := Blosum62(tt.a, tt.b); got != tt.want {
			t.Fatalf("Blosum62(%c, %c) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Blosum62(tt.b, tt.a); got != tt.want {
			t.Fatalf("Blosum62(%c, %c) not symmetric", tt.b, tt.a)
		}
	}
}

func TestNetwork(t *testing.T) {
	set := mkSet("", "MKV", "MKC", "MRV")
	g, err := Network(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// States: 1M, 2K, 2R, 3V, 3C plus source and sink.
	if got := len(g.Nodes()); got != 7 {
		t.Fatalf("expected 7 nodes, got %d", got)
	}

	tests := []struct {
		from, to string
		want     float64
	}{
		{"0X", "1M", 3},
		{"1M", "2K", 2},
		{"1M", "2R", 1},
		{"2K", "3V", 1},
		{"2K", "3C", 1},
		{"2R", "3V", 1},
		{"3V", "-1X", 2},
		{"3C", "-1X", 1},
		{"2K", "3X", 0},
	}
	for _, tt := range tests {
		if got := g.Edge(tt.from, tt.to); !almost(got, tt.want) {
			t.Fatalf("Edge(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}

	if g.Source.Order != 0 || g.Sink.Order != 4 {
		t.Fatalf("unexpected source/sink orders: %d, %d",
			g.Source.Order, g.Sink.Order)
	}
}

func TestNetworkDOT(t *testing.T) {
	set := mkSet("", "MK")
	g, err := Network(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := g.DOT()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dot := string(out)
	for _, want := range []string{"digraph", "1M", "2K", "0X", "-1X"} {
		if !strings.Contains(dot, want) {
			t.Fatalf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestFromSilent(t *testing.T) {
	f := &silent.File{
		Sequence: mkSeq("reference", "MKV"),
		Decoys: []silent.Decoy{
			{Name: "alpha", Sequence: mkSeq("alpha", "MKV")},
			{Name: "scores-only"},
			{Name: "beta", Sequence: mkSeq("beta", "MKC")},
		},
	}
	set := FromSilent(f)
	if set.Len() != 2 {
		t.Fatalf("expected 2 sequences, got %d", set.Len())
	}
	if set.Names[0] != "alpha" || set.Names[1] != "beta" {
		t.Fatalf("unexpected names: %v", set.Names)
	}
	if set.Reference.Len() != 3 {
		t.Fatal("reference sequence was not carried over")
	}
}

func TestMerge(t *testing.T) {
	a := mkSet("MKV", "MKV")
	b := mkSet("AAA", "MKC", "MRV")
	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 sequences, got %d", a.Len())
	}
	if got := string(byte(a.Reference.Residues[0])); got != "M" {
		t.Fatal("merge replaced an existing reference")
	}
}
