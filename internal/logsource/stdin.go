package logsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tinytelemetry/prettylogs/internal/model"
)

const (
	// DefaultBuffer is the default channel buffer size for input lines.
	DefaultBuffer = model.DefaultLineBuffer

	// DefaultMaxLineSize is the default maximum size (in bytes) of a single line.
	DefaultMaxLineSize = model.DefaultMaxLineSize
)

// Config holds tunable parameters for a source.
type Config struct {
	BufferSize  int
	MaxLineSize int
}

func (c Config) withDefaults() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBuffer
	}
	if c.MaxLineSize <= 0 {
		c.MaxLineSize = DefaultMaxLineSize
	}
	return c
}

// input is one stream read by a source. Inputs are read one after another.
type input struct {
	name string
	open func() (io.ReadCloser, error)
}

// ReaderSource reads log lines from one or more inputs in a background
// goroutine. Empty lines are forwarded like any other line.
type ReaderSource struct {
	name   string
	ch     chan model.IngestEnvelope
	cancel context.CancelFunc
	err    error
}

// NewStdinSource creates a source that reads from stdin.
func NewStdinSource(ctx context.Context, conf ...Config) *ReaderSource {
	return NewReaderSource(ctx, "stdin", os.Stdin, conf...)
}

// NewReaderSource creates a source named name reading lines from r.
func NewReaderSource(ctx context.Context, name string, r io.Reader, conf ...Config) *ReaderSource {
	in := input{name: name, open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil }}
	return newReaderSource(ctx, name, []input{in}, firstConfig(conf))
}

func firstConfig(conf []Config) Config {
	if len(conf) > 0 {
		return conf[0].withDefaults()
	}
	return Config{}.withDefaults()
}

func newReaderSource(ctx context.Context, name string, inputs []input, conf Config) *ReaderSource {
	ctx, cancel := context.WithCancel(ctx)
	s := &ReaderSource{
		name:   name,
		ch:     make(chan model.IngestEnvelope, conf.BufferSize),
		cancel: cancel,
	}
	go s.read(ctx, inputs, conf.MaxLineSize)
	return s
}

type scanResult struct {
	source string
	line   string
	err    error
}

func (s *ReaderSource) read(ctx context.Context, inputs []input, maxLineSize int) {
	defer close(s.ch)

	// Use a single goroutine for blocking scans with a done channel to
	// detect context cancellation without spawning a goroutine per line.
	results := make(chan scanResult)
	go func() {
		defer close(results)
		for _, in := range inputs {
			if ctx.Err() != nil {
				return
			}
			if err := scanInput(ctx, in, maxLineSize, results); err != nil {
				select {
				case results <- scanResult{source: in.name, err: err}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-results:
			if !ok {
				return
			}
			if r.err != nil {
				s.err = fmt.Errorf("%s: %w", r.source, r.err)
				return
			}
			select {
			case s.ch <- model.IngestEnvelope{Source: r.source, Line: r.line}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func scanInput(ctx context.Context, in input, maxLineSize int, results chan<- scanResult) error {
	rc, err := in.open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)
	for scanner.Scan() {
		select {
		case results <- scanResult{source: in.name, line: scanner.Text()}:
		case <-ctx.Done():
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line exceeded max size (%d bytes): %w", maxLineSize, err)
		}
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}

func (s *ReaderSource) Lines() <-chan model.IngestEnvelope { return s.ch }
func (s *ReaderSource) Stop()                              { s.cancel() }
func (s *ReaderSource) Name() string                       { return s.name }
func (s *ReaderSource) Err() error                         { return s.err }
