package silent

import (
	"path/filepath"
	"testing"
)

func TestCompressionOf(t *testing.T) {
	tests := []struct {
		path string
		want Compression
	}{
		{"out.silent", Uncompressed},
		{"out.silent.gz", Gzipped},
		{"out.gz", Gzipped},
		{"out.gzip", Uncompressed},
		{"archive.gz.silent", Uncompressed},
	}
	for _, tt := range tests {
		if got := CompressionOf(tt.path); got != tt.want {
			t.Fatalf("CompressionOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"plain.silent", "packed.silent.gz"} {
		path := filepath.Join(dir, name)
		if err := WriteAll(path, sample); err != nil {
			t.Fatalf("WriteAll(%s): %v", name, err)
		}
		got, err := ReadAll(path)
		if err != nil {
			t.Fatalf("ReadAll(%s): %v", name, err)
		}
		if got != sample {
			t.Fatalf("%s: round trip changed content", name)
		}
	}
}

func TestReadAllDecompresses(t *testing.T) {
	path := writeSample(t, "sample.silent.gz", sample)
	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sample {
		t.Fatal("gzipped content did not decompress to the original text")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.silent")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
