package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/tinytelemetry/prettylogs/internal/logsource"
)

// NamedLogSource aliases the shared source abstraction to keep app-layer APIs explicit.
type NamedLogSource = logsource.LogSource

// InputSourcePlugin is a small plugin primitive for wiring log inputs.
type InputSourcePlugin interface {
	Name() string
	Enabled() bool
	Build(ctx context.Context) (NamedLogSource, error)
}

// InputPluginConfig defines runtime input selection.
type InputPluginConfig struct {
	Files  []string
	Stdin  io.Reader
	Source logsource.Config
}

var errNoInput = errors.New("no input source enabled")

func buildInputPlugins(cfg InputPluginConfig) []InputSourcePlugin {
	plugins := make([]InputSourcePlugin, 0, 2)
	plugins = append(plugins, fileInputPlugin{
		paths: cfg.Files,
		conf:  cfg.Source,
	})
	plugins = append(plugins, stdinInputPlugin{
		reader:  cfg.Stdin,
		enabled: len(cfg.Files) == 0,
		conf:    cfg.Source,
	})
	return plugins
}

// buildSource builds the first enabled plugin. Inputs are never merged:
// output order has to follow input order.
func buildSource(ctx context.Context, plugins []InputSourcePlugin) (NamedLogSource, error) {
	for _, plugin := range plugins {
		if !plugin.Enabled() {
			continue
		}
		source, err := plugin.Build(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s input: %w", plugin.Name(), err)
		}
		return source, nil
	}
	return nil, errNoInput
}

type fileInputPlugin struct {
	paths []string
	conf  logsource.Config
}

func (p fileInputPlugin) Name() string { return "file" }

func (p fileInputPlugin) Enabled() bool { return len(p.paths) > 0 }

func (p fileInputPlugin) Build(ctx context.Context) (NamedLogSource, error) {
	for _, path := range p.paths {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
	}
	return logsource.NewFileSource(ctx, p.paths, p.conf), nil
}

type stdinInputPlugin struct {
	reader  io.Reader
	enabled bool
	conf    logsource.Config
}

func (p stdinInputPlugin) Name() string { return "stdin" }

func (p stdinInputPlugin) Enabled() bool { return p.enabled }

func (p stdinInputPlugin) Build(ctx context.Context) (NamedLogSource, error) {
	if p.reader == nil {
		return logsource.NewStdinSource(ctx, p.conf), nil
	}
	return logsource.NewReaderSource(ctx, "stdin", p.reader, p.conf), nil
}

// interactive reports whether r is a terminal rather than a pipe or file.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
