package importer

import "errors"

var (
	// ErrMalformedInput means the parser could not find a usable header/row
	// structure. Fatal to the import; zero rows were processed.
	ErrMalformedInput = errors.New("malformed input: no usable data rows found")

	// ErrEmptyInput means the input decoded cleanly but contained zero data
	// rows. Fatal to the import before any row processing.
	ErrEmptyInput = errors.New("input contains no data rows")

	// ErrPersistence means the final bulk write failed. The whole batch is
	// considered not imported; there is no row-by-row retry.
	ErrPersistence = errors.New("bulk persistence failed")

	// ErrUnsupportedFormat means the declared format has no parser.
	ErrUnsupportedFormat = errors.New("unsupported import format")
)
