package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceRow(t *testing.T) {
	row := NewSourceRow([]string{"Datum", "Bedrag", "Extra"}, []string{"2024-01-15", "+1,00"})
	assert.Equal(t, "2024-01-15", row.Get(ColDate))
	assert.Equal(t, "+1,00", row.Get(ColAmount))
	assert.Equal(t, "", row.Get("Extra"))
	assert.Equal(t, "", row.Get(ColPaymentRef))
	assert.Len(t, row, 2)
}

func TestNewSourceRow_ExtraFields(t *testing.T) {
	row := NewSourceRow([]string{"Datum"}, []string{"2024-01-15", "surplus"})
	assert.Equal(t, SourceRow{"Datum": "2024-01-15"}, row)
}

func TestOutputRow_Record(t *testing.T) {
	r := OutputRow{Date: "15/01/2024", Amount: "-12.34", Description: "ACME BV invoice"}
	rec := r.Record()
	assert.Equal(t, []string{"15/01/2024", "-12.34", "ACME BV invoice"}, rec)

	got, err := UnmarshalOutputRow(rec)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestUnmarshalOutputRow_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalOutputRow([]string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 fields, got 2")
}
