package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheetFixture struct {
	name string
	rows [][]string
}

func buildWorkbook(t *testing.T, sheets []sheetFixture) []byte {
	t.Helper()

	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for r, cells := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			row := make([]interface{}, len(cells))
			for j, c := range cells {
				row[j] = c
			}
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &row))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestSpreadsheetReaderReadsFirstSheet(t *testing.T) {
	data := buildWorkbook(t, []sheetFixture{
		{name: "Leads", rows: [][]string{
			{"name", "surname", "email"},
			{"John", "Doe", "john@x.com"},
			{"Jane", "Roe", "jane@x.com"},
		}},
	})

	reader, err := NewSpreadsheetReader(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "surname", "email"}, reader.Headers())

	rows := readAll(t, reader)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)

	v, _ := rows[1].Get("email")
	assert.Equal(t, "jane@x.com", v)
}

func TestSpreadsheetReaderIgnoresSubsequentSheets(t *testing.T) {
	data := buildWorkbook(t, []sheetFixture{
		{name: "Leads", rows: [][]string{
			{"name", "surname"},
			{"John", "Doe"},
		}},
		{name: "Archive", rows: [][]string{
			{"name", "surname"},
			{"Old", "Lead"},
			{"Older", "Lead"},
		}},
	})

	reader, err := NewSpreadsheetReader(data)
	require.NoError(t, err)

	rows := readAll(t, reader)
	require.Len(t, rows, 1)

	v, _ := rows[0].Get("name")
	assert.Equal(t, "John", v)
}

func TestSpreadsheetReaderSkipsBlankRows(t *testing.T) {
	data := buildWorkbook(t, []sheetFixture{
		{name: "Leads", rows: [][]string{
			{"name", "surname"},
			{"", ""},
			{"John", "Doe"},
		}},
	})

	reader, err := NewSpreadsheetReader(data)
	require.NoError(t, err)

	rows := readAll(t, reader)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Index)
}

func TestSpreadsheetReaderNotAWorkbook(t *testing.T) {
	_, err := NewSpreadsheetReader([]byte("definitely not xlsx"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
