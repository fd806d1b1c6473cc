package ingest

import "github.com/tinytelemetry/prettylogs/internal/model"

// LineSink receives output lines, in order, without trailing newline.
type LineSink interface {
	WriteLine(line string) error
}

// EnvelopeProcessor consumes source-tagged ingest lines and emits display lines.
type EnvelopeProcessor interface {
	ProcessEnvelope(model.IngestEnvelope) error
}

// NewEnvelopeProcessor creates the prettifying processor writing to sink.
func NewEnvelopeProcessor(sink LineSink, opts Options) EnvelopeProcessor {
	p := NewProcessor(opts)
	p.sink = sink
	return p
}
