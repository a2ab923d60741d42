package importer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r RowReader) []Row {
	t.Helper()
	var rows []Row
	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestCSVReaderZipsAgainstHeader(t *testing.T) {
	input := "name,surname,email_address,mobile_number\nJohn,Doe,john@x.com,+27821234567\nJane,Roe,jane@x.com,+27821111111\n"

	reader, err := NewCSVReader([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "surname", "email_address", "mobile_number"}, reader.Headers())

	rows := readAll(t, reader)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 2, rows[1].Index)

	v, ok := rows[0].Get("email_address")
	assert.True(t, ok)
	assert.Equal(t, "john@x.com", v)
}

func TestCSVReaderToleratesShortRows(t *testing.T) {
	input := "name,surname,email\nJohn,Doe\n"

	reader, err := NewCSVReader([]byte(input))
	require.NoError(t, err)

	rows := readAll(t, reader)
	require.Len(t, rows, 1)

	// The missing trailing cell is absent from the row, not empty.
	_, ok := rows[0].Get("email")
	assert.False(t, ok)
	assert.Len(t, rows[0].Fields, 2)
}

func TestCSVReaderStripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,surname\nJohn,Doe\n")...)

	reader, err := NewCSVReader(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "surname"}, reader.Headers())
}

func TestCSVReaderEmptyFile(t *testing.T) {
	_, err := NewCSVReader(nil)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestCSVReaderHeaderOnly(t *testing.T) {
	reader, err := NewCSVReader([]byte("name,surname\n"))
	require.NoError(t, err)

	_, err = reader.ReadRow()
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestCSVReaderSkipsBlankLines(t *testing.T) {
	input := "name,surname\n\nJohn,Doe\n,\nJane,Roe\n"

	reader, err := NewCSVReader([]byte(input))
	require.NoError(t, err)

	rows := readAll(t, reader)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 2, rows[1].Index)
}

func TestCSVReaderRestartsFromScratch(t *testing.T) {
	input := []byte("name,surname\nJohn,Doe\n")

	first, err := NewCSVReader(input)
	require.NoError(t, err)
	require.Len(t, readAll(t, first), 1)

	second, err := NewCSVReader(input)
	require.NoError(t, err)
	require.Len(t, readAll(t, second), 1)
}
