package logsource

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// NewFileSource creates a source that reads paths one after another.
// Compressed files are decoded based on their extension, see OpenFile.
func NewFileSource(ctx context.Context, paths []string, conf ...Config) *ReaderSource {
	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		path := path
		inputs = append(inputs, input{name: path, open: func() (io.ReadCloser, error) { return OpenFile(path) }})
	}
	return newReaderSource(ctx, "file", inputs, firstConfig(conf))
}

// OpenFile opens a log file, transparently decompressing ".gz" and ".zst"
// files.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &decodedFile{Reader: zr, file: f, closeDecoder: zr.Close}, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &decodedFile{Reader: zr, file: f, closeDecoder: func() error {
			zr.Close()
			return nil
		}}, nil
	default:
		return f, nil
	}
}

// decodedFile closes both the decoder and the underlying file.
type decodedFile struct {
	io.Reader
	file         *os.File
	closeDecoder func() error
}

func (d *decodedFile) Close() error {
	decErr := d.closeDecoder()
	if err := d.file.Close(); err != nil {
		return err
	}
	return decErr
}
