package model

// Shared defaults used by the CLI and the ingest pipeline.
const (
	DefaultLineBuffer  = 1024
	DefaultMaxLineSize = 1024 * 1024 // 1MB
	DefaultSkin        = "default"
)
