package ingest

import "errors"

var (
	// ErrMalformedInput is returned when a line is not a JSON object.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnsupportedSchema is returned when a JSON object lacks "v": 1.
	ErrUnsupportedSchema = errors.New("unsupported schema")
)
