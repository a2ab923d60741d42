// Package importer implements the lead ingestion pipeline: source parsers,
// the canonical field mapper, row validation and the batch importer.
package importer

// Field is one cell of a source row. After mapping, Canonical marks fields
// whose Key is a recognized canonical field name; everything else is a
// passthrough field carried under its original key.
type Field struct {
	Key       string
	Value     string
	Canonical bool
}

// Row is an ordered sequence of fields read from one source row.
// Index is the 1-based data row position used in error reporting.
type Row struct {
	Index  int
	Fields []Field
}

// Get returns the first value stored under key.
func (r Row) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// IsEmpty reports whether the row holds no non-empty values.
func (r Row) IsEmpty() bool {
	for _, f := range r.Fields {
		if f.Value != "" {
			return false
		}
	}
	return true
}
