package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/prettylogs/internal/ingest"
	"github.com/tinytelemetry/prettylogs/internal/render"
)

func runPrettifier(ctx context.Context, cfg appConfig, files []string, stdin io.Reader, stdout io.Writer) error {
	skin, err := render.LoadSkin(cfg.SkinPath())
	if err != nil {
		return fmt.Errorf("loading skin: %w", err)
	}
	styler := render.NewStyler(stdout, !cfg.NoColor, skin)

	sink := ingest.NewWriterSink(stdout)
	processor := ingest.NewEnvelopeProcessor(sink, cfg.processorOptions(styler))

	if len(files) == 0 && interactive(stdin) {
		log.Printf("reading from terminal; pipe pino output in, e.g. node app.js | prettylogs")
	}

	source, err := buildSource(ctx, buildInputPlugins(InputPluginConfig{
		Files:  files,
		Stdin:  stdin,
		Source: cfg.sourceConfig(),
	}))
	if err != nil {
		return err
	}
	defer source.Stop()

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	// Printer: drains the source in order until it closes.
	g.Go(func() error {
		defer close(done)
		for env := range source.Lines() {
			if err := processor.ProcessEnvelope(env); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		return source.Err()
	})

	// Shutdown watcher.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			source.Stop()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}

// shutdownContext cancels on SIGTERM or on a second SIGINT. The first
// SIGINT is ignored so exit logs written upstream of the pipe still show up.
func shutdownContext(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		interrupted := false
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigCh:
				if sig == syscall.SIGINT && !interrupted {
					interrupted = true
					continue
				}
				log.Printf("received %v, shutting down", sig)
				cancel()
				return
			}
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
