package model

import "fmt"

// Rabobank export column names consumed by the converter.
const (
	ColDate         = "Datum"
	ColAmount       = "Bedrag"
	ColCounterparty = "Naam tegenpartij"
	ColDescription  = "Omschrijving-1"
	ColPaymentRef   = "Betalingskenmerk"
)

// SourceRow maps header names to the raw text of one statement line.
// Columns the converter does not use are kept but ignored.
type SourceRow map[string]string

// Get returns the value for column, or "" when the column is absent.
func (r SourceRow) Get(column string) string {
	return r[column]
}

// NewSourceRow zips a header with one CSV record. Short records leave the
// trailing columns absent; extra fields are dropped.
func NewSourceRow(header, record []string) SourceRow {
	row := make(SourceRow, len(header))
	for i, col := range header {
		if i >= len(record) {
			break
		}
		row[col] = record[i]
	}
	return row
}

// OutputRow is one converted line: date, amount, description.
type OutputRow struct {
	Date        string
	Amount      string
	Description string
}

const (
	numOutputFields = 3
	colOutDate      = 0
	colOutAmount    = 1
	colOutDesc      = 2
)

// Record converts an OutputRow to a CSV record.
func (r OutputRow) Record() []string {
	rec := make([]string, numOutputFields)
	rec[colOutDate] = r.Date
	rec[colOutAmount] = r.Amount
	rec[colOutDesc] = r.Description
	return rec
}

// UnmarshalOutputRow converts a CSV record to an OutputRow.
func UnmarshalOutputRow(record []string) (OutputRow, error) {
	if len(record) != numOutputFields {
		return OutputRow{}, fmt.Errorf("expected %d fields, got %d", numOutputFields, len(record))
	}
	return OutputRow{
		Date:        record[colOutDate],
		Amount:      record[colOutAmount],
		Description: record[colOutDesc],
	}, nil
}
