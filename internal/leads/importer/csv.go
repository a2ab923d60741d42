package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVReader yields one Row per CSV data line, keyed by the header row.
// Short rows are tolerated: missing trailing cells are simply absent.
// Construct a new reader over the same bytes to restart from scratch.
type CSVReader struct {
	reader   *csv.Reader
	headers  []string
	rowsRead int
}

// NewCSVReader prepares a reader over raw CSV bytes. The first non-empty
// line is the header row. Returns ErrMalformedInput when no header exists.
func NewCSVReader(data []byte) (*CSVReader, error) {
	buf := bufio.NewReader(bytes.NewReader(data))

	// Strip a UTF-8 BOM if present; hand-exported files often carry one.
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	r := csv.NewReader(buf)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	p := &CSVReader{reader: r}
	if err := p.readHeader(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *CSVReader) readHeader() error {
	for {
		record, err := p.reader.Read()
		if err == io.EOF {
			return ErrMalformedInput
		}
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}

		headers := make([]string, 0, len(record))
		empty := true
		for _, h := range record {
			trimmed := strings.TrimSpace(h)
			if trimmed != "" {
				empty = false
			}
			headers = append(headers, trimmed)
		}
		if empty {
			continue
		}

		p.headers = headers
		return nil
	}
}

// Headers returns the parsed header names.
func (p *CSVReader) Headers() []string {
	return p.headers
}

// ReadRow returns the next data row. Cells are zipped against the header
// positionally; excess cells beyond the header are dropped. After the last
// row it returns io.EOF, or ErrMalformedInput when the input held a header
// but no data rows at all.
func (p *CSVReader) ReadRow() (Row, error) {
	for {
		record, err := p.reader.Read()
		if err == io.EOF {
			if p.rowsRead == 0 {
				return Row{}, ErrMalformedInput
			}
			return Row{}, io.EOF
		}
		if err != nil {
			return Row{}, fmt.Errorf("read row %d: %w", p.rowsRead+1, err)
		}

		row := Row{Index: p.rowsRead + 1}
		for i, header := range p.headers {
			if i >= len(record) {
				break
			}
			row.Fields = append(row.Fields, Field{Key: header, Value: strings.TrimSpace(record[i])})
		}
		if row.IsEmpty() {
			continue
		}

		p.rowsRead++
		row.Index = p.rowsRead
		return row, nil
	}
}
