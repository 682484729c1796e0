// Package textio opens text files that may be UTF-8 (with or without a BOM)
// or legacy Windows-1252, as produced by Dutch online banking exports.
package textio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the decoder a File was opened with.
type Encoding string

const (
	// UTF8 is UTF-8 with an optional leading byte order mark.
	UTF8 Encoding = "utf-8-sig"
	// Windows1252 is the single-byte fallback (cp1252).
	Windows1252 Encoding = "cp1252"
)

// File is a decoded view over an open file. Reads yield UTF-8.
type File struct {
	r   io.Reader
	f   *os.File
	enc Encoding
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) { return f.r.Read(p) }

// Close closes the underlying file.
func (f *File) Close() error { return f.f.Close() }

// Encoding reports which decoder is in use.
func (f *File) Encoding() Encoding { return f.enc }

// Open opens path as UTF-8 when the whole file decodes as UTF-8 and falls
// back to Windows-1252 otherwise. The caller must Close.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	if err := probeUTF8(f); err != nil {
		f.Close()
		if !errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return openLegacy(path)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("rewinding %s: %w", path, err)
	}

	return &File{r: transform.NewReader(f, unicode.UTF8BOM.NewDecoder()), f: f, enc: UTF8}, nil
}

func openLegacy(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reopening %s: %w", path, err)
	}
	return &File{
		r:   transform.NewReader(f, charmap.Windows1252.NewDecoder()),
		f:   f,
		enc: Windows1252,
	}, nil
}

// probeUTF8 runs the entire content through a UTF-8 validator. A legacy
// export commonly has an ASCII header and accented bytes further down.
func probeUTF8(r io.Reader) error {
	_, err := io.Copy(io.Discard, transform.NewReader(r, encoding.UTF8Validator))
	return err
}
