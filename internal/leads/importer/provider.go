package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ProviderReader adapts an already-fetched array of provider lead payloads to
// the row pipeline. The payloads arrive in near-canonical form, so this is an
// identity mapping plus value stringification; it exists to slot the provider
// path into the same interface as CSV and spreadsheet input.
type ProviderReader struct {
	payloads []map[string]any
	pos      int
}

// NewProviderReader wraps decoded provider payload objects.
func NewProviderReader(payloads []map[string]any) *ProviderReader {
	return &ProviderReader{payloads: payloads}
}

// ReadRow returns the next payload as a Row, io.EOF after the last one.
// Keys are emitted in sorted order so a payload always maps to the same row.
func (p *ProviderReader) ReadRow() (Row, error) {
	if p.pos >= len(p.payloads) {
		return Row{}, io.EOF
	}

	payload := p.payloads[p.pos]
	p.pos++

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	row := Row{Index: p.pos}
	for _, k := range keys {
		row.Fields = append(row.Fields, Field{Key: k, Value: stringifyValue(payload[k])})
	}
	return row, nil
}

// stringifyValue renders a payload value as the string form the rest of the
// pipeline works with. Nested structures are JSON-encoded verbatim.
func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}
