package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cleared-dev/bankconverter/internal/textio"
)

// ValidationResult reports whether a header carries every required column.
type ValidationResult struct {
	Valid   bool
	Missing []string // sorted; empty when Valid
}

// MissingColumnsError describes a header that lacks required columns.
type MissingColumnsError struct {
	File    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: ontbrekende kolommen %s", e.File, FormatColumnSet(e.Missing))
}

// Err returns a *MissingColumnsError for file, or nil when the result is valid.
func (v ValidationResult) Err(file string) error {
	if v.Valid {
		return nil
	}
	return &MissingColumnsError{File: file, Missing: v.Missing}
}

// FormatColumnSet renders column names as {"A", "B"}.
func FormatColumnSet(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// ValidateFile opens path with encoding fallback and checks its header.
func ValidateFile(path string, required []string) (ValidationResult, error) {
	f, err := textio.Open(path)
	if err != nil {
		return ValidationResult{}, err
	}
	defer f.Close()

	return ValidateHeader(f, required)
}

// ValidateHeader reads the first line of r as a CSV header and reports
// which of required are absent. An empty input or a blank first line lacks
// every column.
func ValidateHeader(r io.Reader, required []string) (ValidationResult, error) {
	br := bufio.NewReader(r)
	var header []string
	if !blankFirstLine(br) {
		h, err := newCSVReader(br).Read()
		if err != nil && !errors.Is(err, io.EOF) {
			return ValidationResult{}, fmt.Errorf("reading header: %w", err)
		}
		header = h
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)

	return ValidationResult{Valid: len(missing) == 0, Missing: missing}, nil
}

// newCSVReader returns a reader that accepts ragged rows and stray quotes.
// blankFirstLine reports whether br starts with an empty line. encoding/csv
// skips such lines and would take the next one as the header.
func blankFirstLine(br *bufio.Reader) bool {
	b, _ := br.Peek(2)
	switch {
	case len(b) > 0 && b[0] == '\n':
		return true
	case len(b) > 1 && b[0] == '\r' && b[1] == '\n':
		return true
	}
	return false
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = ','
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}
