package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rabobankColumns = (&RabobankConverter{}).RequiredColumns()

func TestValidateHeader_Valid(t *testing.T) {
	res, err := ValidateHeader(strings.NewReader(minimalHeader+"2024-01-01,1,a,b,c\n"), rabobankColumns)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Missing)
	assert.NoError(t, res.Err("stmt.csv"))
}

func TestValidateHeader_MissingBedrag(t *testing.T) {
	header := "Datum,Naam tegenpartij,Omschrijving-1,Betalingskenmerk\n"
	res, err := ValidateHeader(strings.NewReader(header), rabobankColumns)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Bedrag"}, res.Missing)
}

func TestValidateHeader_MissingSorted(t *testing.T) {
	res, err := ValidateHeader(strings.NewReader("Omschrijving-1,Naam tegenpartij\n"), rabobankColumns)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bedrag", "Betalingskenmerk", "Datum"}, res.Missing)
}

func TestValidateHeader_QuotedHeader(t *testing.T) {
	header := `"Datum","Bedrag","Naam tegenpartij","Omschrijving-1","Betalingskenmerk","Omschrijving-2"` + "\n"
	res, err := ValidateHeader(strings.NewReader(header), rabobankColumns)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidateHeader_Empty(t *testing.T) {
	res, err := ValidateHeader(strings.NewReader(""), rabobankColumns)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Len(t, res.Missing, len(rabobankColumns))
}

func TestValidateHeader_BlankFirstLine(t *testing.T) {
	for _, lead := range []string{"\n", "\r\n"} {
		res, err := ValidateHeader(strings.NewReader(lead+minimalHeader), rabobankColumns)
		require.NoError(t, err)
		assert.False(t, res.Valid, "lead %q", lead)
		assert.Len(t, res.Missing, len(rabobankColumns))
	}
}

func TestValidateHeader_WrongDelimiter(t *testing.T) {
	header := "Datum;Bedrag;Naam tegenpartij;Omschrijving-1;Betalingskenmerk\n"
	res, err := ValidateHeader(strings.NewReader(header), rabobankColumns)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Len(t, res.Missing, 5)
}

func TestValidateFile(t *testing.T) {
	res, err := ValidateFile(statementFixture, rabobankColumns)
	require.NoError(t, err)
	assert.True(t, res.Valid)

	_, err = ValidateFile(filepath.Join(t.TempDir(), "missing.csv"), rabobankColumns)
	assert.Error(t, err)
}

func TestValidateFile_ReleasesHandle(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(src, []byte("Datum\n"), 0o644))

	res, err := ValidateFile(src, rabobankColumns)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	// The file can be moved right away.
	require.NoError(t, os.Rename(src, filepath.Join(dir, "moved.csv")))
}

func TestMissingColumnsError(t *testing.T) {
	res := ValidationResult{Missing: []string{"Bedrag", "Datum"}}
	err := res.Err("stmt.csv")
	require.Error(t, err)

	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"Bedrag", "Datum"}, mce.Missing)
	assert.Equal(t, `stmt.csv: ontbrekende kolommen {"Bedrag", "Datum"}`, err.Error())
}

func TestFormatColumnSet(t *testing.T) {
	assert.Equal(t, `{"Bedrag"}`, FormatColumnSet([]string{"Bedrag"}))
	assert.Equal(t, "{}", FormatColumnSet(nil))
}
