package importer

import (
	"bufio"
	"io"
	"strings"
)

// recordWriter writes comma separated records with CRLF endings. A field is
// quoted only when it contains a comma, a quote or a line break, so leading
// whitespace is written as is. encoding/csv would quote those fields too.
type recordWriter struct {
	w *bufio.Writer
}

func newRecordWriter(w io.Writer) *recordWriter {
	return &recordWriter{w: bufio.NewWriter(w)}
}

func (rw *recordWriter) Write(rec []string) error {
	for i, field := range rec {
		if i > 0 {
			rw.w.WriteByte(',')
		}
		if !strings.ContainsAny(field, ",\"\r\n") {
			rw.w.WriteString(field)
			continue
		}
		rw.w.WriteByte('"')
		rw.w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		rw.w.WriteByte('"')
	}
	_, err := rw.w.WriteString("\r\n")
	return err
}

func (rw *recordWriter) Flush() error {
	return rw.w.Flush()
}
