package ingest

import (
	"bufio"
	"io"

	"github.com/tinytelemetry/prettylogs/internal/filter"
	"github.com/tinytelemetry/prettylogs/internal/model"
	"github.com/tinytelemetry/prettylogs/internal/render"
)

// Options configures a Processor.
type Options struct {
	Filter filter.Options
	Render render.Options
	Styler render.Styler

	// DiscardNonConforming drops lines that fail to parse instead of
	// passing them through unchanged.
	DiscardNonConforming bool
}

// Processor turns raw input lines into display lines. It keeps no state
// between lines.
type Processor struct {
	matcher  filter.Matcher
	renderer *render.Renderer
	discard  bool
	sink     LineSink
}

// NewProcessor creates a new line processor.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		matcher:  filter.NewMatcher(opts.Filter),
		renderer: render.New(opts.Render, opts.Styler),
		discard:  opts.DiscardNonConforming,
	}
}

// ProcessLine processes a single log line. It returns the text to print and
// whether anything should be printed at all.
//
// Lines that are not pino records are passed through verbatim unless
// discarding is enabled. Records rejected by a filter are always dropped.
func (p *Processor) ProcessLine(line string) (string, bool) {
	record, err := Parse(line)
	if err != nil {
		if p.discard {
			return "", false
		}
		return line, true
	}
	if !p.matcher.Match(record) {
		return "", false
	}
	return p.renderer.Render(record), true
}

// ProcessEnvelope processes one source-tagged line and writes the result,
// if any, to the sink.
func (p *Processor) ProcessEnvelope(env model.IngestEnvelope) error {
	out, ok := p.ProcessLine(env.Line)
	if !ok || p.sink == nil {
		return nil
	}
	return p.sink.WriteLine(out)
}

// WriterSink writes lines to an io.Writer, flushing after every line so an
// interrupted run never leaves a partial line behind.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}
