package silent

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Compression says how the bytes of a silent file are stored on disk.
// It is resolved once from a path and passed into the read/write
// routines; file content is never sniffed.
type Compression int

const (
	Uncompressed Compression = iota
	Gzipped
)

func (c Compression) String() string {
	if c == Gzipped {
		return "gzip"
	}
	return "none"
}

// CompressionOf resolves the compression of a path from its extension.
// Only a ".gz" suffix selects gzip.
func CompressionOf(path string) Compression {
	if strings.HasSuffix(path, ".gz") {
		return Gzipped
	}
	return Uncompressed
}

type gzReadCloser struct {
	io.Reader
	gz *gzip.Reader
	f  *os.File
}

func (r *gzReadCloser) Close() error {
	if err := r.gz.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}

// Open opens path for reading, decompressing transparently when the
// path's extension says so.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if CompressionOf(path) == Uncompressed {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	return &gzReadCloser{Reader: gz, gz: gz, f: f}, nil
}

// ReadAll returns the entire text of a silent file, decompressed
// according to the source path's extension.
func ReadAll(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteAll writes text to path in one shot, compressing according to
// the destination path's extension. The destination's compression is
// independent of wherever the text came from.
func WriteAll(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if CompressionOf(path) == Uncompressed {
		if _, err := io.WriteString(f, text); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		return f.Close()
	}

	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(text)); err != nil {
		gz.Close()
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
