package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/bankconverter/internal/model"
)

// ReadOutput parses a converted file back into rows.
func ReadOutput(r io.Reader) ([]model.OutputRow, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading converted CSV: %w", err)
	}

	var rows []model.OutputRow
	for i, rec := range records {
		row, err := model.UnmarshalOutputRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
