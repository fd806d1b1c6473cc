package logsource

import "github.com/tinytelemetry/prettylogs/internal/model"

// LogSource is a unified interface for all log input sources (stdin, files).
type LogSource interface {
	Lines() <-chan model.IngestEnvelope // read-only channel of log lines, in input order
	Stop()                              // graceful shutdown
	Name() string                       // "stdin", "file"
	Err() error                         // why the source ended early; valid once Lines is closed
}
