package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bankconverter/internal/model"
	"github.com/cleared-dev/bankconverter/internal/textnorm"
)

// RabobankConverter converts Rabobank "CSV (alle rekeningen)" exports.
type RabobankConverter struct{}

// Format returns the converter name.
func (c *RabobankConverter) Format() string { return "rabobank" }

// RequiredColumns returns the header names the conversion reads.
func (c *RabobankConverter) RequiredColumns() []string {
	return []string{
		model.ColDate,
		model.ColAmount,
		model.ColCounterparty,
		model.ColDescription,
		model.ColPaymentRef,
	}
}

// Convert reads a Rabobank export from r and writes date, amount and
// description rows to w. Rows without a date are dropped.
func (c *RabobankConverter) Convert(r io.Reader, w io.Writer) (Summary, error) {
	sum := Summary{Total: decimal.Zero}

	cr := newCSVReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return sum, nil
	}
	if err != nil {
		return sum, fmt.Errorf("reading header: %w", err)
	}

	cw := newRecordWriter(w)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("reading rabobank CSV: %w", err)
		}

		row := model.NewSourceRow(header, rec)
		out, ok := TransformRow(row)
		if !ok {
			sum.Skipped++
			continue
		}
		if sum.Rows == 0 {
			sum.FirstDate = strings.TrimSpace(row.Get(model.ColDate))
		}
		sum.add(out.Amount)

		if err := cw.Write(out.Record()); err != nil {
			line, _ := cr.FieldPos(0)
			return sum, fmt.Errorf("writing row for line %d: %w", line, err)
		}
	}

	if err := cw.Flush(); err != nil {
		return sum, fmt.Errorf("flushing output: %w", err)
	}
	return sum, nil
}

// TransformRow maps one statement line to an output row. It reports false
// when the line has no date and must be skipped.
func TransformRow(row model.SourceRow) (model.OutputRow, bool) {
	date := strings.TrimSpace(row.Get(model.ColDate))
	if date == "" {
		return model.OutputRow{}, false
	}

	return model.OutputRow{
		Date:   ReformatDate(date),
		Amount: ReformatAmount(row.Get(model.ColAmount)),
		Description: BuildDescription(
			row.Get(model.ColCounterparty),
			row.Get(model.ColPaymentRef),
			row.Get(model.ColDescription),
		),
	}, true
}

// ReformatDate turns "A-B-C" into "C/B/A". Anything that does not split
// into exactly three hyphen-separated parts is returned unchanged. The
// swap is positional; no calendar validation happens.
func ReformatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ReformatAmount converts "+1.234,56" to "1234.56". A leading minus is kept.
func ReformatAmount(amount string) string {
	amount = strings.ReplaceAll(amount, "+", "")
	amount = strings.ReplaceAll(amount, ".", "")
	amount = strings.ReplaceAll(amount, ",", ".")
	return strings.TrimSpace(amount)
}

// BuildDescription joins counterparty, payment reference and description.
// The reference is glued to the name without a separator.
func BuildDescription(counterparty, paymentRef, description string) string {
	name := textnorm.Normalize(counterparty)
	ref := textnorm.Normalize(paymentRef)
	desc := textnorm.Normalize(description)

	if ref != "" {
		return textnorm.Normalize(name + ref + " " + desc)
	}
	return textnorm.Normalize(name + " " + desc)
}
