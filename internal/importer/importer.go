package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Converter turns one bank's CSV export into the normalized 3-column form.
type Converter interface {
	Format() string
	RequiredColumns() []string
	Convert(r io.Reader, w io.Writer) (Summary, error)
}

// Registry holds named converters.
type Registry struct {
	converters map[string]Converter
}

// FileInfo describes a candidate CSV file in the input directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty converter registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[string]Converter)}
}

// Register adds a converter. Panics on duplicate format.
func (r *Registry) Register(c Converter) {
	key := strings.ToLower(c.Format())
	if _, ok := r.converters[key]; ok {
		panic("duplicate converter format: " + key)
	}
	r.converters[key] = c
}

// Get returns the converter for format, or nil.
func (r *Registry) Get(format string) Converter {
	return r.converters[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in converters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&RabobankConverter{})
	return r
}

// Directory and file names under the base directory.
const (
	InDir          = "IN"
	OutDir         = "OUT"
	DoneDir        = "DONE"
	DefaultLogFile = "log.txt"
)

// UnknownDatePrefix replaces the date prefix when no usable date was found.
const UnknownDatePrefix = "onbekend"

const prefixDateLayout = "2006-01-02"

// Layout locates the working directories under a base directory.
type Layout struct {
	Base    string
	In      string
	Out     string
	Done    string
	LogFile string
}

// NewLayout returns the standard IN/OUT/DONE layout rooted at base.
func NewLayout(base string) Layout {
	return Layout{
		Base:    base,
		In:      filepath.Join(base, InDir),
		Out:     filepath.Join(base, OutDir),
		Done:    filepath.Join(base, DoneDir),
		LogFile: filepath.Join(base, DefaultLogFile),
	}
}

// Ensure creates the IN, OUT and DONE directories.
func (l Layout) Ensure() error {
	for _, d := range []string{l.In, l.Out, l.Done} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	return nil
}

// Scan returns regular files in dir whose name matches pattern, sorted by
// name. A missing dir yields no files.
func Scan(dir, pattern string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Archive moves src into dstDir under its original name, replacing any
// file already there.
func Archive(src, dstDir string) error {
	name := filepath.Base(src)
	if err := os.Rename(src, filepath.Join(dstDir, name)); err != nil {
		return fmt.Errorf("moving %s to %s: %w", name, filepath.Base(dstDir), err)
	}
	return nil
}

// OutputName returns "<YYYY-MM-DD>_<original>" using firstDate, or
// "onbekend_<original>" when firstDate is not a year-month-day date.
func OutputName(firstDate, original string) string {
	prefix := UnknownDatePrefix
	if dt, err := time.Parse("2006-1-2", firstDate); err == nil {
		prefix = dt.Format(prefixDateLayout)
	}
	return prefix + "_" + original
}
