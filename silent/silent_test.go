package silent

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const sample = `SEQUENCE: MKV
SCORE:     score     rms description
REMARK BINARY SILENTFILE
SCORE:   -10.500     1.2 alpha
ANNOTATED_SEQUENCE: M[MET:NtermProteinFull]KV alpha
LKV 1 2 3 alpha
SCORE:    -9.000     2.0 beta
ANNOTATED_SEQUENCE: M[MET:NtermProteinFull]KC beta
LKC 1 2 3 beta
SCORE:    -8.250     0.4 gamma
ANNOTATED_SEQUENCE: M[MET:NtermProteinFull]RV gamma
LRV 1 2 3 gamma
`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if CompressionOf(path) == Gzipped {
		f, err := os.Create(path)
		if err != nil {
			t.Fatalf("create %s: %v", path, err)
		}
		gz := gzip.NewWriter(f)
		if _, err := gz.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		if err := gz.Close(); err != nil {
			t.Fatalf("close gzip %s: %v", path, err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("close %s: %v", path, err)
		}
		return path
	}
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadOrderAndNames(t *testing.T) {
	path := writeSample(t, "sample.silent", sample)
	f, err := Read(path, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	got := f.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d decoys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("decoy %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadScoresAndSelection(t *testing.T) {
	path := writeSample(t, "sample.silent", sample)

	f, err := Read(path, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Decoys[0].Scores["score"] != "-10.500" {
		t.Fatalf("unexpected score: %q", f.Decoys[0].Scores["score"])
	}
	if f.Decoys[2].Scores["rms"] != "0.4" {
		t.Fatalf("unexpected rms: %q", f.Decoys[2].Scores["rms"])
	}

	f, err = Read(path, Selection{Scores: []string{DescriptionColumn}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.Decoys[0].Scores["score"]; ok {
		t.Fatal("selection should have dropped the score column")
	}
	if f.Decoys[0].Scores[DescriptionColumn] != "alpha" {
		t.Fatalf("unexpected description: %q",
			f.Decoys[0].Scores[DescriptionColumn])
	}
}

func TestReadSequences(t *testing.T) {
	path := writeSample(t, "sample.silent", sample)
	f, err := Read(path, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(f.Sequence.Residues[0]) + string(f.Sequence.Residues[1]) +
		string(f.Sequence.Residues[2]); got != "MKV" {
		t.Fatalf("unexpected reference sequence: %q", got)
	}
	wantSeqs := []string{"MKV", "MKC", "MRV"}
	for i, want := range wantSeqs {
		sq := f.Decoys[i].Sequence
		if sq.Len() != len(want) {
			t.Fatalf("decoy %d: sequence length %d, want %d",
				i, sq.Len(), len(want))
		}
		for j := range want {
			if byte(sq.Residues[j]) != want[j] {
				t.Fatalf("decoy %d: sequence %v, want %q",
					i, sq.Residues, want)
			}
		}
	}
}

func TestReadGzipped(t *testing.T) {
	path := writeSample(t, "sample.silent.gz", sample)
	names, err := Names(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 || names[0] != "alpha" || names[2] != "gamma" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeSample(t, "empty.silent", "")
	f, err := Read(path, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Decoys) != 0 {
		t.Fatalf("expected no decoys, got %d", len(f.Decoys))
	}
}

func TestReadMissingDescriptionColumn(t *testing.T) {
	content := "SCORE: score rms\nSCORE: -1.0 2.0\n"
	path := writeSample(t, "bad.silent", content)
	_, err := Read(path, Selection{})
	if err == nil {
		t.Fatal("expected an error for a header without description")
	}
}

func TestReadDataBeforeHeader(t *testing.T) {
	content := "SCORE: -1.0 2.0 alpha\n"
	path := writeSample(t, "bad.silent", content)
	_, err := Read(path, Selection{})
	if err == nil {
		t.Fatal("expected an error for data before the header")
	}
}

func TestStripAnnotations(t *testing.T) {
	tests := []struct{ in, want string }{
		{"M[MET:NtermProteinFull]KV", "MKV"},
		{"MKV", "MKV"},
		{"M[A][B]K", "MK"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripAnnotations(tt.in); got != tt.want {
			t.Fatalf("stripAnnotations(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
