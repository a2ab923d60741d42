package importer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetReader yields one Row per data row of a workbook's first sheet,
// keyed by that sheet's own header cells. Subsequent sheets are never read.
type SpreadsheetReader struct {
	headers  []string
	rows     [][]string
	pos      int
	rowsRead int
}

// NewSpreadsheetReader decodes a workbook from raw bytes.
// Returns ErrMalformedInput when the workbook cannot be decoded or its first
// sheet has no header row.
func NewSpreadsheetReader(data []byte) (*SpreadsheetReader, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMalformedInput
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	// The first non-empty row is the header.
	headerIdx := -1
	for i, cells := range all {
		if !allBlank(cells) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, ErrMalformedInput
	}

	headers := make([]string, len(all[headerIdx]))
	for i, h := range all[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}

	return &SpreadsheetReader{headers: headers, rows: all[headerIdx+1:]}, nil
}

// Headers returns the sheet's header cells.
func (p *SpreadsheetReader) Headers() []string {
	return p.headers
}

// ReadRow returns the next data row, io.EOF after the last one.
func (p *SpreadsheetReader) ReadRow() (Row, error) {
	for p.pos < len(p.rows) {
		cells := p.rows[p.pos]
		p.pos++

		if allBlank(cells) {
			continue
		}

		p.rowsRead++
		row := Row{Index: p.rowsRead}
		for i, header := range p.headers {
			if i >= len(cells) {
				break
			}
			row.Fields = append(row.Fields, Field{Key: header, Value: strings.TrimSpace(cells[i])})
		}
		return row, nil
	}
	return Row{}, io.EOF
}

func allBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
