package importer

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bankconverter/internal/textio"
)

// Summary describes the result of converting one file.
type Summary struct {
	FirstDate string // raw Datum of the first converted row; "" when none
	Rows      int
	Skipped   int             // rows dropped for an empty date
	Total     decimal.Decimal // sum of amounts that parse as decimals
	Unparsed  int             // amounts written through that are not decimals
}

func (s *Summary) add(amount string) {
	s.Rows++
	d, err := decimal.NewFromString(amount)
	if err != nil {
		s.Unparsed++
		return
	}
	s.Total = s.Total.Add(d)
}

// ConvertFile converts inPath into a UTF-8 file at outPath, truncating any
// existing output.
func ConvertFile(c Converter, inPath, outPath string) (Summary, error) {
	in, err := textio.Open(inPath)
	if err != nil {
		return Summary{}, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return Summary{}, fmt.Errorf("creating output: %w", err)
	}

	sum, err := c.Convert(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output: %w", cerr)
	}
	return sum, err
}
